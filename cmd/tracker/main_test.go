package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/database"
	"github.com/akyairhashvil/prep-tracker/internal/testutil"
)

func TestParseArgsOverridesConfig(t *testing.T) {
	base := config.Config{DataDir: "/var/lib/prep", Theme: "default"}
	opts, err := parseArgs([]string{"-data-dir", "/tmp/prep", "-theme", "dracula", "-plain"}, base)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.cfg.DataDir != "/tmp/prep" || opts.cfg.Theme != "dracula" || !opts.plain {
		t.Fatalf("unexpected options %+v", opts)
	}
	opts, err = parseArgs(nil, base)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.cfg != base || opts.plain {
		t.Fatalf("defaults should pass through, got %+v", opts)
	}
	if _, err := parseArgs([]string{"-bogus"}, base); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestRunPlainFreshStart(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-data-dir", dir}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Day 1 - Quantitative Aptitude") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, config.DBFileName)); err != nil {
		t.Fatalf("expected database to be created: %v", err)
	}
}

func TestRunPlainReadsSavedProgress(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := database.Open(ctx, filepath.Join(dir, config.DBFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Save(ctx, testutil.NewProgress().OnDay(2).WithCompletedDays(2).Build()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out bytes.Buffer
	if err := run(ctx, []string{"-plain", "-data-dir", dir}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"Day 2 - Quantitative Aptitude (3/3 topics)", "Days completed: 1/25", "Recent achievements: Day 2"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), config.AppName+" ") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
