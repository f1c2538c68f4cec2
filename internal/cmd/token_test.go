package cmd

import (
	"errors"
	"strings"
	"testing"

	"botkit/internal/config"
)

func TestTokenSet_Arg(t *testing.T) {
	app, out := setupTestApp(t, nil)

	cmd := newTokenSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"abcdefghijklmnop"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("token set failed: %v", err)
	}
	if strings.Contains(out.String(), "abcdefghijklmnop") {
		t.Errorf("token echoed in full: %q", out.String())
	}
	if got := readConfigFile(t, app); got != "token=abcdefghijklmnop\n" {
		t.Errorf("file = %q", got)
	}
}

func TestTokenSet_Stdin(t *testing.T) {
	app, _ := setupTestApp(t, nil)
	app.In = strings.NewReader("  from-stdin-token \n")

	cmd := newTokenSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("token set failed: %v", err)
	}
	if got, _ := app.ConfigStore.Lookup(config.KeyToken); got != "from-stdin-token" {
		t.Errorf("token = %q, want %q", got, "from-stdin-token")
	}
}

func TestTokenSet_Blank(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	cmd := newTokenSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func TestTokenCheck(t *testing.T) {
	tests := []struct {
		name    string
		stored  map[string]string
		env     string
		wantErr error
		wantOut string
	}{
		{"placeholder", map[string]string{"token": "TOKEN"}, "", config.ErrTokenNotConfigured, "No token configured."},
		{"missing", nil, "", config.ErrTokenNotConfigured, "No token configured."},
		{"stored", map[string]string{"token": "abcdefghijklmnop"}, "", nil, "Token configured: abcdefghij... (from config)"},
		{"env", nil, "envtokenvalue123", nil, "Token configured: envtokenva... (from env)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvToken, tt.env)
			app, out := setupTestApp(t, tt.stored)

			cmd := newTokenCheckCmd(NewTestProvider(app))
			cmd.SetArgs([]string{})
			err := cmd.Execute()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("token check error = %v, want %v", err, tt.wantErr)
			}
			if got := strings.TrimSpace(out.String()); got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
		})
	}
}
