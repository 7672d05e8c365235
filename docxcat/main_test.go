package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNoArgs(t *testing.T) {
	var out bytes.Buffer
	run(&out, nil)
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestRunSuccess(t *testing.T) {
	input := filepath.Join(t.TempDir(), "document.xml")
	if err := os.WriteFile(input, []byte(`<w:p><w:r><w:t>hi</w:t></w:r></w:p>`), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	run(&out, []string{input, "ignored"})

	want := "Extracted to " + input + ".txt\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
	data, err := os.ReadFile(input + ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi" {
		t.Errorf("expected %q, got %q", "hi", data)
	}
}

func TestRunFailureIsReported(t *testing.T) {
	input := filepath.Join(t.TempDir(), "missing.xml")

	var out bytes.Buffer
	run(&out, []string{input})

	got := out.String()
	if !strings.HasPrefix(got, "Error reading "+input+": ") {
		t.Errorf("unexpected message %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line, got %q", got)
	}
}

func TestRootCmdNeverFails(t *testing.T) {
	input := filepath.Join(t.TempDir(), "broken.xml")
	if err := os.WriteFile(input, []byte("<a><b></a>"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{{}, {input}, {"--not-a-flag"}} {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Errorf("args %q: expected nil error, got %v", args, err)
		}
	}
}
