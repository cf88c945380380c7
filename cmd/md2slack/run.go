package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	md2slack "github.com/alnah/go-md2slack"
	"github.com/alnah/go-md2slack/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs   = errors.New("invalid arguments")
	ErrTooManyInputs = errors.New("at most one input file may be given")
	ErrReadMarkdown  = errors.New("failed to read markdown input")
	ErrWriteOutput   = errors.New("failed to write output")
)

// run parses arguments, reads markdown, and writes the selected output.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(positional))
	}

	// Load optional config profile
	var cfg *config.Config
	if flags.common.config != "" {
		cfg, err = config.Load(flags.common.config)
		if err != nil {
			return err
		}
	}

	markdown, err := readMarkdown(positional, stdin)
	if err != nil {
		return err
	}

	svc := md2slack.New(serviceOptions(cfg, flags)...)

	if flags.common.verbose && !flags.common.quiet {
		l := svc.Limits()
		fmt.Fprintf(os.Stderr, "limits: header=%d section=%d blocks=%d table=%dx%d\n",
			l.HeaderLimit, l.SectionLimit, l.MaxBlocks, l.MaxTableRows, l.MaxTableCols)
	}

	mode := resolveMode(cfg, flags)
	switch mode {
	case config.ModeBlocks, config.ModeInline, config.ModePreview:
	default:
		return fmt.Errorf("%w: %q (must be blocks, inline, or preview)", config.ErrInvalidMode, mode)
	}

	out, err := render(svc, mode, markdown)
	if err != nil {
		return err
	}

	return writeOutput(resolveOutputPath(cfg, flags), out, stdout)
}

// render produces the output for one mode.
func render(svc *md2slack.Service, mode, markdown string) (string, error) {
	switch mode {
	case config.ModeInline:
		return svc.ConvertInline(markdown), nil

	case config.ModePreview:
		return svc.Preview(context.Background(), markdown)

	default: // config.ModeBlocks
		payload := svc.Compile(markdown)
		body, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding payload: %w", err)
		}
		return string(body) + "\n", nil
	}
}

// readMarkdown reads the positional input file, or stdin when none is given.
func readMarkdown(positional []string, stdin io.Reader) (string, error) {
	if len(positional) == 1 {
		data, err := os.ReadFile(positional[0])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// writeOutput writes to the output file, or stdout when no path is set.
func writeOutput(path, out string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// serviceOptions merges defaults, config profile, and flag overrides into
// Service options. Flags win over config; config wins over defaults.
func serviceOptions(cfg *config.Config, flags *convertFlags) []md2slack.Option {
	limits := md2slack.DefaultLimits()
	if cfg != nil {
		applyLimitOverrides(&limits, limitFlags{
			headerLimit:  cfg.Limits.HeaderLimit,
			sectionLimit: cfg.Limits.SectionLimit,
			maxBlocks:    cfg.Limits.MaxBlocks,
			maxTableRows: cfg.Limits.MaxTableRows,
			maxTableCols: cfg.Limits.MaxTableCols,
		})
	}
	applyLimitOverrides(&limits, flags.limits)

	opts := []md2slack.Option{md2slack.WithLimits(limits)}

	style := flags.style
	if style == "" && cfg != nil {
		style = cfg.Preview.Style
	}
	if style != "" {
		opts = append(opts, md2slack.WithHighlightStyle(style))
	}
	return opts
}

// applyLimitOverrides copies non-zero overrides onto limits.
func applyLimitOverrides(limits *md2slack.Limits, f limitFlags) {
	if f.headerLimit > 0 {
		limits.HeaderLimit = f.headerLimit
	}
	if f.sectionLimit > 0 {
		limits.SectionLimit = f.sectionLimit
	}
	if f.maxBlocks > 0 {
		limits.MaxBlocks = f.maxBlocks
	}
	if f.maxTableRows > 0 {
		limits.MaxTableRows = f.maxTableRows
	}
	if f.maxTableCols > 0 {
		limits.MaxTableCols = f.maxTableCols
	}
}

// resolveMode picks the output mode: flag, then config, then blocks.
func resolveMode(cfg *config.Config, flags *convertFlags) string {
	if flags.mode != "" {
		return flags.mode
	}
	if cfg != nil && cfg.Output.Mode != "" {
		return cfg.Output.Mode
	}
	return config.ModeBlocks
}

// resolveOutputPath picks the output file: flag, then config, then stdout.
func resolveOutputPath(cfg *config.Config, flags *convertFlags) string {
	if flags.output != "" {
		return flags.output
	}
	if cfg != nil {
		return cfg.Output.Path
	}
	return ""
}
