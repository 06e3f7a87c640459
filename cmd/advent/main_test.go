package main

import "testing"

func TestNewRootCommand_RegistersEveryDay(t *testing.T) {
	root := newRootCommand()

	want := []string{
		"toboggan-trajectory",
		"password-philosophy",
		"report-repair",
		"passport-processing",
		"binary-boarding",
		"custom-customs",
		"handy-haversacks",
		"handheld-halting",
		"encoding-error",
		"adapter-array",
		"seating-system",
		"rain-risk",
		"shuttle-search",
		"tui",
	}
	registered := map[string]bool{}
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
}

func TestNewRootCommand_Flags(t *testing.T) {
	root := newRootCommand()
	for _, flag := range []string{"config", "input-root", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q is missing", flag)
		}
	}
}
