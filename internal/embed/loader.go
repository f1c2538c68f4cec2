package embed

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SearchPath is an ordered list of directories to search for embed
// templates. Earlier entries take priority.
type SearchPath []string

// templateExts maps file suffixes to decoder formats, in lookup order.
var templateExts = []struct {
	suffix string
	format string
}{
	{".embed.json", "json"},
	{".embed.toml", "toml"},
	{".embed.yaml", "yaml"},
	{".embed.yml", "yaml"},
}

// DefaultSearchPath returns, highest priority first:
//  1. <configDir>/embeds
//  2. ~/.botkit/embeds
func DefaultSearchPath(configDir string) SearchPath {
	path := SearchPath{filepath.Join(configDir, "embeds")}
	if home, err := os.UserHomeDir(); err == nil {
		path = append(path, filepath.Join(home, ".botkit", "embeds"))
	}
	return path
}

// LoadTemplate finds <name>.embed.{json,toml,yaml,yml} in the search path.
// The first match wins and its extension selects the parser.
func LoadTemplate(name string, path SearchPath) (*Template, error) {
	for _, dir := range path {
		for _, ext := range templateExts {
			filePath := filepath.Join(dir, name+ext.suffix)
			data, err := os.ReadFile(filePath)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("reading template %s: %w", filePath, err)
			}
			t, err := DecodeTemplate(data, ext.format)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filePath, err)
			}
			return t, nil
		}
	}
	return nil, fmt.Errorf("embed template %q not found in search path: %s", name, strings.Join(path, ", "))
}

// LoadTemplateFile reads a single template, choosing the parser from the
// file extension.
func LoadTemplateFile(filePath string) (*Template, error) {
	format := formatOf(filePath)
	if format == "" {
		return nil, fmt.Errorf("unsupported template file %s", filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", filePath, err)
	}
	t, err := DecodeTemplate(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return t, nil
}

// ListTemplates returns the template names found in the search path, sorted.
func ListTemplates(path SearchPath) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range path {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
		}
		for _, de := range entries {
			if de.IsDir() {
				continue
			}
			for _, ext := range templateExts {
				if name, ok := strings.CutSuffix(de.Name(), ext.suffix); ok && !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func formatOf(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
