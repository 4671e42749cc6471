package branding

import (
	"strings"
	"testing"
)

func TestEmbeddedBrandingIsValid(t *testing.T) {
	b, err := parse(rawBranding)
	if err != nil {
		t.Fatalf("embedded branding.yaml failed validation: %v", err)
	}
	if b.CLIName != "apa" {
		t.Errorf("CLIName = %q, want %q", b.CLIName, "apa")
	}
	if len(b.Commands) == 0 {
		t.Error("expected at least one downstream command")
	}
}

func TestTitle(t *testing.T) {
	if got, want := Title(), "APA (Always Plan Ahead)"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestEnvVar(t *testing.T) {
	if got, want := EnvVar("package_root"), "APA_PACKAGE_ROOT"; got != want {
		t.Errorf("EnvVar() = %q, want %q", got, want)
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	cmds := Commands()
	if len(cmds) == 0 {
		t.Fatal("no commands")
	}
	cmds[0].Name = "/mutated"
	if Commands()[0].Name == "/mutated" {
		t.Error("Commands() exposed internal slice")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "empty"},
		{"missing commands", "cli_name: apa\ndisplay_name: APA\n", "invalid branding"},
		{"bad cli name", "cli_name: Apa Tool\ndisplay_name: APA\ncommands: []\n", "/cli_name"},
		{"command without slash", "cli_name: apa\ndisplay_name: APA\ncommands:\n  - name: plan\n    description: x\n", "/commands/0/name"},
		{"unknown field", "cli_name: apa\ndisplay_name: APA\ncommands: []\nextra: 1\n", "invalid branding"},
		{"malformed yaml", "cli_name: [apa\n", "parsing YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
			if b.CLIName != "apa" {
				t.Errorf("defaults not kept on failure, CLIName = %q", b.CLIName)
			}
		})
	}
}

func TestParseKeepsDefaultsForOmittedFields(t *testing.T) {
	b, err := parse([]byte("cli_name: apa\ndisplay_name: APA\ncommands: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.EnvPrefix != "APA" {
		t.Errorf("EnvPrefix = %q, want default %q", b.EnvPrefix, "APA")
	}
	if b.HostTool != "Claude Code" {
		t.Errorf("HostTool = %q, want default %q", b.HostTool, "Claude Code")
	}
}
