package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "bramble" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "bramble")
	}
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"demo", "list"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, name := range []string{"cursors", "row", "stack"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %q:\n%s", name, out)
		}
	}
}

func TestDemoUnknownName(t *testing.T) {
	_, err := executeCommand(rootCmd, "demo", "nope")
	if err == nil || !strings.Contains(err.Error(), `unknown demo "nope"`) {
		t.Fatalf("err = %v, want unknown demo", err)
	}
}

func TestDemoRequiresName(t *testing.T) {
	if _, err := executeCommand(rootCmd, "demo"); err == nil {
		t.Fatal("expected an argument error")
	}
}
