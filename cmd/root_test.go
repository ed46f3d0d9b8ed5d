package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"traverse", "devices", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestConfigureLogging_RejectsUnknownLevel(t *testing.T) {
	if err := configureLogging("chatty"); err == nil {
		t.Error("expected error for unknown log level")
	}
	for _, level := range []string{"none", "error", "warn", "info", "debug"} {
		if err := configureLogging(level); err != nil {
			t.Errorf("level %q: unexpected error %v", level, err)
		}
	}
}
