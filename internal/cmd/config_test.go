package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestConfigGet(t *testing.T) {
	app, out := setupTestApp(t, map[string]string{"prefix": "!"})

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"prefix"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "!" {
		t.Errorf("config get prefix = %q, want %q", got, "!")
	}
}

func TestConfigGet_NotSet(t *testing.T) {
	app, out := setupTestApp(t, nil)

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"owners"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "owners (not set)" {
		t.Errorf("config get owners = %q, want %q", got, "owners (not set)")
	}
}

func TestConfigGet_TokenMasked(t *testing.T) {
	app, out := setupTestApp(t, map[string]string{"token": "abcdefghijklmnopqrstuvwxyz"})

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"token"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "abcdefghij..." {
		t.Errorf("config get token = %q, want masked", got)
	}
}

func TestConfigGet_JSON(t *testing.T) {
	app, out := setupTestApp(t, map[string]string{"name": "Helper"})
	app.JSON = true

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"name"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get --json failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result["key"] != "name" || result["value"] != "Helper" || result["set"] != true {
		t.Errorf("result = %v", result)
	}
}

func TestConfigSet(t *testing.T) {
	app, out := setupTestApp(t, nil)

	cmd := newConfigSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"owners", "1,2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "Set owners = 1,2" {
		t.Errorf("output = %q", got)
	}
	if got := readConfigFile(t, app); got != "owners=1,2\n" {
		t.Errorf("file = %q, want %q", got, "owners=1,2\n")
	}
}

func TestConfigSet_InvalidKey(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	cmd := newConfigSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"bad=key", "v"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for key containing '='")
	}
}

func TestConfigList(t *testing.T) {
	app, out := setupTestApp(t, map[string]string{
		"prefix": "!",
		"token":  "abcdefghijklmnop",
	})

	cmd := newConfigListCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config list failed: %v", err)
	}

	got := out.String()
	prefixAt := strings.Index(got, "prefix = !")
	tokenAt := strings.Index(got, "token = abcdefghij...")
	if prefixAt < 0 || tokenAt < 0 || prefixAt > tokenAt {
		t.Errorf("unexpected list output:\n%s", got)
	}
	if strings.Contains(got, "abcdefghijklmnop") {
		t.Errorf("token printed in full:\n%s", got)
	}
}

func TestConfigList_Empty(t *testing.T) {
	app, out := setupTestApp(t, nil)

	cmd := newConfigListCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config list failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "No configuration set" {
		t.Errorf("output = %q", got)
	}
}

func TestConfigUnset(t *testing.T) {
	app, _ := setupTestApp(t, map[string]string{"prefix": "!", "owners": "1"})

	cmd := newConfigUnsetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"owners"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config unset failed: %v", err)
	}

	if got := readConfigFile(t, app); got != "prefix=!\n" {
		t.Errorf("file = %q, want %q", got, "prefix=!\n")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		pairs     map[string]string
		wantValid bool
	}{
		{"valid", map[string]string{"prefix": "!", "token": "real-token"}, true},
		{"placeholder token", map[string]string{"token": "TOKEN"}, false},
		{"empty prefix", map[string]string{"prefix": ""}, false},
		{"blank prefix", map[string]string{"prefix": " "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := setupTestApp(t, tt.pairs)
			app.JSON = true

			cmd := newConfigValidateCmd(NewTestProvider(app))
			cmd.SetArgs([]string{})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("config validate --json failed: %v", err)
			}

			var result struct {
				Valid  bool     `json:"valid"`
				Issues []string `json:"issues"`
			}
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (issues %v)", result.Valid, tt.wantValid, result.Issues)
			}
		})
	}
}

func TestConfigValidate_Text(t *testing.T) {
	app, out := setupTestApp(t, map[string]string{"prefix": "a b"})

	cmd := newConfigValidateCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(out.String(), "prefix: must not contain inner whitespace") {
		t.Errorf("output = %q", out.String())
	}
}
