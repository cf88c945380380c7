package md2slack

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	svc := New()

	if got := svc.Limits(); got != DefaultLimits() {
		t.Errorf("Limits() = %+v, want %+v", got, DefaultLimits())
	}
	if svc.preview == nil {
		t.Error("preview renderer not created")
	}
}

func TestWithLimits(t *testing.T) {
	t.Parallel()

	limits := Limits{
		HeaderLimit:  10,
		SectionLimit: 20,
		MaxBlocks:    3,
		MaxTableRows: 2,
		MaxTableCols: 2,
	}
	svc := New(WithLimits(limits))

	if got := svc.Limits(); got != limits {
		t.Errorf("Limits() = %+v, want %+v", got, limits)
	}

	// The custom ceilings actually bite.
	payload := svc.Compile("one\n\ntwo\n\nthree\n\nfour")
	if len(payload.Blocks) != 3 {
		t.Errorf("got %d blocks, want 3 under MaxBlocks=3", len(payload.Blocks))
	}
}

func TestWithLimitsPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithLimits(zero Limits) did not panic")
		}
	}()
	WithLimits(Limits{})
}

func TestLimitsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Limits)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Limits) {},
			wantErr: nil,
		},
		{
			name:    "zero header limit",
			mutate:  func(l *Limits) { l.HeaderLimit = 0 },
			wantErr: ErrInvalidHeaderLimit,
		},
		{
			name:    "negative section limit",
			mutate:  func(l *Limits) { l.SectionLimit = -1 },
			wantErr: ErrInvalidSectionLimit,
		},
		{
			name:    "zero max blocks",
			mutate:  func(l *Limits) { l.MaxBlocks = 0 },
			wantErr: ErrInvalidMaxBlocks,
		},
		{
			name:    "zero table rows",
			mutate:  func(l *Limits) { l.MaxTableRows = 0 },
			wantErr: ErrInvalidMaxTableRows,
		},
		{
			name:    "zero table cols",
			mutate:  func(l *Limits) { l.MaxTableCols = 0 },
			wantErr: ErrInvalidMaxTableCols,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limits := DefaultLimits()
			tt.mutate(&limits)

			err := limits.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceCompileMatchesPackageLevel(t *testing.T) {
	t.Parallel()

	markdown := "# T\n\n**b** and `c`"
	svc := New()

	if got, want := svc.ConvertInline(markdown), ConvertInline(markdown); got != want {
		t.Errorf("Service.ConvertInline = %q, package ConvertInline = %q", got, want)
	}
	if got, want := len(svc.Compile(markdown).Blocks), len(Compile(markdown).Blocks); got != want {
		t.Errorf("Service.Compile yields %d blocks, package Compile yields %d", got, want)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	svc := New()

	html, err := svc.Preview(context.Background(), "# Hello\n\n**world**")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	for _, want := range []string{"<!DOCTYPE html>", "Hello", "<strong>world</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("Preview() output missing %q", want)
		}
	}
}

func TestPreviewEmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := New()

	_, err := svc.Preview(context.Background(), "")
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("Preview(\"\") error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestPreviewCancelledContext(t *testing.T) {
	t.Parallel()

	svc := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Preview(ctx, "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Preview() error = %v, want context.Canceled", err)
	}
}

func TestPreviewRendersTable(t *testing.T) {
	t.Parallel()

	svc := New()

	html, err := svc.Preview(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Preview() output missing <table>: %q", html)
	}
}
