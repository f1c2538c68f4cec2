package e2etests

import (
	"os"
	"path/filepath"
	"strings"
)

// testCases is the ordered registry of all e2e test cases.
var testCases = []TestCase{
	{"01_config", caseConfig, wantConfig},
	{"02_parse", caseParse, wantParse},
	{"03_prefix_simulate", casePrefixSimulate, wantPrefixSimulate},
	{"04_token", caseToken, wantToken},
	{"05_embed", caseEmbed, wantEmbed},
}

// 01: Config set/get/list/unset/validate lifecycle, starting from the
// bundled defaults.
func caseConfig(r *Runner, sandbox string) (string, error) {
	return runSections(r, sandbox,
		[]string{"config", "set", "prefix", "!", "--json"},
		[]string{"config", "get", "prefix", "--json"},
		[]string{"config", "list", "--json"},
		[]string{"config", "unset", "name", "--json"},
		[]string{"config", "validate", "--json"},
	)
}

const wantConfig = `=== config set prefix ! --json ===
{"key":"prefix","value":"!"}

=== config get prefix --json ===
{"key":"prefix","set":true,"value":"!"}

=== config list --json ===
{"name":"Botkit","prefix":"!","token":"TOKEN"}

=== config unset name --json ===
{"key":"name"}

=== config validate --json ===
{"issues":["token: is not configured"],"valid":false}

`

// 02: Message parsing with the default prefix and a bot mention.
func caseParse(r *Runner, sandbox string) (string, error) {
	return runSections(r, sandbox,
		[]string{"parse", "?ban 123 456", "--json"},
		[]string{"parse", "?cmd  a", "--json"},
		[]string{"parse", "--self", "12345", "<@!12345> help", "--json"},
		[]string{"parse", "?", "--json"},
		[]string{"parse", "?kick", "bob"},
	)
}

const wantParse = `=== parse ?ban 123 456 --json ===
{"matched":true,"command":"ban","args":["123","456"],"prefix":"?","body":"ban 123 456"}

=== parse ?cmd  a --json ===
{"matched":true,"command":"cmd","args":["","a"],"prefix":"?","body":"cmd  a"}

=== parse --self 12345 <@!12345> help --json ===
{"matched":true,"command":"help","prefix":"\u003c@!12345\u003e","body":"help"}

=== parse ? --json ===
{"matched":false}

=== parse ?kick bob ===
prefix:  "?"
command: "kick"
args:    ["bob"]

`

// 03: Changing the prefix and running the built-in commands.
func casePrefixSimulate(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	steps, err := runSections(r, sandbox,
		[]string{"prefix"},
		[]string{"prefix", "!"},
		[]string{"simulate", "!echo hello there"},
		[]string{"simulate", "?echo old prefix"},
	)
	if err != nil {
		return "", err
	}
	out.WriteString(steps)

	result := r.Run(sandbox, "simulate", "!echo")
	sectionExitCode(&out, "simulate !echo", result.ExitCode)
	section(&out, "simulate !echo stderr", result.Stderr)

	result = r.Run(sandbox, "simulate", "!dance")
	sectionExitCode(&out, "simulate !dance", result.ExitCode)

	return out.String(), nil
}

const wantPrefixSimulate = `=== prefix ===
?

=== prefix ! ===
Prefix set to !

=== simulate !echo hello there ===
{
  "type": "rich",
  "description": "hello there"
}

=== simulate ?echo old prefix ===
Not a command.

=== simulate !echo ===
EXIT_CODE: 1

=== simulate !echo stderr ===
usage: !echo <text>

=== simulate !dance ===
EXIT_CODE: 1

`

// 04: Token storage and checks. The token never appears in full.
func caseToken(r *Runner, sandbox string) (string, error) {
	var out strings.Builder

	result := r.Run(sandbox, "token", "check")
	sectionExitCode(&out, "token check (placeholder)", result.ExitCode)

	steps, err := runSections(r, sandbox,
		[]string{"token", "set", "abcdefghijklmnopqrstuvwxyz"},
		[]string{"token", "check", "--json"},
		[]string{"config", "get", "token"},
	)
	if err != nil {
		return "", err
	}
	out.WriteString(steps)
	return out.String(), nil
}

const wantToken = `=== token check (placeholder) ===
EXIT_CODE: 1

=== token set abcdefghijklmnopqrstuvwxyz ===
Token saved: abcdefghij...

=== token check --json ===
{"configured":true,"source":"config","token":"abcdefghij..."}

=== config get token ===
abcdefghij...

`

// 05: Rendering a template from the sandbox's embeds/ directory.
func caseEmbed(r *Runner, sandbox string) (string, error) {
	dir := filepath.Join(sandbox, "embeds")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	tpl := `title = "Rules for {guild}"
description = "Use {prefix}help for help."

[[groups]]
name = "Rules:"
values = ["Be kind", "No spam"]
`
	if err := os.WriteFile(filepath.Join(dir, "rules.embed.toml"), []byte(tpl), 0644); err != nil {
		return "", err
	}

	return runSections(r, sandbox,
		[]string{"embed", "list"},
		[]string{"embed", "render", "rules", "--var", "guild=Gophers", "--json"},
	)
}

const wantEmbed = "=== embed list ===\n" +
	"rules\n\n" +
	"=== embed render rules --var guild=Gophers --json ===\n" +
	`{"type":"rich","title":"Rules for Gophers","description":"Use ?help for help.","fields":[{"name":"Rules:","value":"` +
	"```\\n- Be kind\\n- No spam```" + `"}]}` + "\n\n"
