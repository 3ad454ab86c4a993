package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pasha-bolokhov/banner/banner"

	"github.com/scott-cotton/cli"

	"github.com/google/go-cmp/cmp"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func runBanner(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader(in)),
		Out: nopWriteCloser{&out},
		Err: nopWriteCloser{io.Discard},
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, args)
	return out.String(), err
}

var refBanner = strings.Join([]string{
	"%%%%%%%%%%%%%%%%%%%%%",
	"%                   %",
	"%                   %",
	"%   T H E   E N D   %",
	"%                   %",
	"%                   %",
	"%%%%%%%%%%%%%%%%%%%%%",
	"",
}, "\n")

func TestRunReference(t *testing.T) {
	got, err := runBanner(t, "", "-w", "21", "-r", "2", "-p", "1", "the", "end")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff(refBanner, got); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDefaults(t *testing.T) {
	got, err := runBanner(t, "", "hello")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	// default rank 2, pad 1
	if len(lines) != 7 {
		t.Errorf("got %d lines, want 7", len(lines))
	}
	for i, ln := range lines {
		if len(ln) != banner.DefaultWidth {
			t.Errorf("line %d length = %d, want %d", i, len(ln), banner.DefaultWidth)
		}
	}
}

func TestRunStdin(t *testing.T) {
	got, err := runBanner(t, "the end\nignored\n", "-w", "21", "-")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff(refBanner, got); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMarker(t *testing.T) {
	got, err := runBanner(t, "", "-w", "21", "-c", "#", "the", "end")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.ReplaceAll(refBanner, "%", "#")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestRunManual(t *testing.T) {
	got, err := runBanner(t, "", "-manual")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != manual {
		t.Errorf("manual output = %q", got)
	}
}

func TestRunHelp(t *testing.T) {
	got, err := runBanner(t, "", "-h")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(got, "synopsis:") {
		t.Errorf("help output = %q", got)
	}
	if strings.Contains(got, "%%%") {
		t.Errorf("help output contains a banner: %q", got)
	}
}

func TestRunFitError(t *testing.T) {
	got, err := runBanner(t, "", "-w", "10", "a", "long", "title")
	if !errors.Is(err, banner.ErrFit) {
		t.Errorf("got %v, want ErrFit", err)
	}
	if got != "" {
		t.Errorf("partial output on fit error: %q", got)
	}
}

func TestRunUnknownOption(t *testing.T) {
	got, err := runBanner(t, "", "-frobnicate", "title")
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
	if got != "" {
		t.Errorf("partial output on option error: %q", got)
	}
}
