package cli

import (
	"testing"
)

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	want := map[string]bool{"measure": false, "validate": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if !root.SilenceErrors || !root.SilenceUsage {
		t.Error("root command should silence Cobra errors and usage")
	}
}
