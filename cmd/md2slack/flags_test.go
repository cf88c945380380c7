package main

import (
	"errors"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseFlags([]string{"input.md"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "input.md" {
		t.Errorf("positional = %v, want [input.md]", positional)
	}
	if flags.mode != "" {
		t.Errorf("mode = %q, want empty (resolved later)", flags.mode)
	}
	if flags.output != "" {
		t.Errorf("output = %q, want empty", flags.output)
	}
	if flags.limits != (limitFlags{}) {
		t.Errorf("limits = %+v, want zero overrides", flags.limits)
	}
}

func TestParseFlagsValues(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseFlags([]string{
		"--mode", "inline",
		"-o", "out.json",
		"--config", "team.yaml",
		"--header-limit", "100",
		"--max-blocks", "10",
		"--style", "monokai",
		"-v",
		"notes.md",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.mode != "inline" {
		t.Errorf("mode = %q, want inline", flags.mode)
	}
	if flags.output != "out.json" {
		t.Errorf("output = %q, want out.json", flags.output)
	}
	if flags.common.config != "team.yaml" {
		t.Errorf("config = %q, want team.yaml", flags.common.config)
	}
	if flags.limits.headerLimit != 100 {
		t.Errorf("headerLimit = %d, want 100", flags.limits.headerLimit)
	}
	if flags.limits.maxBlocks != 10 {
		t.Errorf("maxBlocks = %d, want 10", flags.limits.maxBlocks)
	}
	if flags.style != "monokai" {
		t.Errorf("style = %q, want monokai", flags.style)
	}
	if !flags.common.verbose {
		t.Error("verbose = false, want true")
	}
	if len(positional) != 1 || positional[0] != "notes.md" {
		t.Errorf("positional = %v, want [notes.md]", positional)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--no-such-flag"})
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("parseFlags() error = %v, want ErrInvalidArgs", err)
	}
}
