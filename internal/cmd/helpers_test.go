package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"botkit/internal/config/propstore"
)

// setupTestApp creates an App backed by a properties file in a temp
// directory, seeded with pairs.
func setupTestApp(t *testing.T, pairs map[string]string) (*App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	store := propstore.New(filepath.Join(dir, "options.properties"))
	if len(pairs) > 0 {
		for k, v := range pairs {
			store.Put(k, v)
		}
		if err := store.Save(); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}

	var out bytes.Buffer
	app := &App{
		ConfigStore: store,
		In:          strings.NewReader(""),
		Out:         &out,
		Err:         &bytes.Buffer{},
	}
	return app, &out
}

// readConfigFile returns the saved properties file contents.
func readConfigFile(t *testing.T, app *App) string {
	t.Helper()
	data, err := os.ReadFile(app.ConfigStore.Path())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	return string(data)
}
