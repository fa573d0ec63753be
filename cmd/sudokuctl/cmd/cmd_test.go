package cmd

import "testing"

func TestParseModeFlagAcceptsKnownModes(t *testing.T) {
	for _, s := range []string{"first", "all", "unique"} {
		if _, err := parseModeFlag(s); err != nil {
			t.Errorf("parseModeFlag(%q) unexpected error: %v", s, err)
		}
	}
}

func TestParseModeFlagRejectsUnknown(t *testing.T) {
	if _, err := parseModeFlag("bogus"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestSolveCommandHasExpectedFlags(t *testing.T) {
	for _, name := range []string{"mode", "file", "seed"} {
		if solveCmd.Flags().Lookup(name) == nil {
			t.Errorf("solve command missing --%s flag", name)
		}
	}
}

func TestGenerateCommandHasExpectedFlags(t *testing.T) {
	for _, name := range []string{"size", "mode", "empty-rate", "seed"} {
		if generateCmd.Flags().Lookup(name) == nil {
			t.Errorf("generate command missing --%s flag", name)
		}
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"solve", "generate", "serve"} {
		if !names[want] {
			t.Errorf("root command missing %q subcommand", want)
		}
	}
}
