package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Files(t *testing.T) {
	good := writeFile(t, "good.txt", []byte("héllo wörld"))
	bad := writeFile(t, "bad.bin", []byte("abc\xc0\xafdef"))

	var out strings.Builder
	ok, err := run(&CLI{Paths: []string{good, bad}}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("run() = ok with an invalid file")
	}
	if !strings.Contains(out.String(), "ok\t"+good) {
		t.Errorf("missing ok line, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "INVALID\t"+bad) {
		t.Errorf("missing INVALID line, got:\n%s", out.String())
	}
}

func TestRun_Quiet(t *testing.T) {
	good := writeFile(t, "good.txt", []byte("plain"))
	var out strings.Builder
	ok, err := run(&CLI{Paths: []string{good}, Quiet: true}, &out)
	if err != nil || !ok {
		t.Fatalf("run() = %v, %v", ok, err)
	}
	if out.Len() != 0 {
		t.Errorf("quiet mode produced output: %q", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	var out strings.Builder
	if _, err := run(&CLI{Paths: []string{"does-not-exist"}}, &out); err == nil {
		t.Error("run() = nil error for missing file")
	}
}

func TestNewValidator_WidthFlags(t *testing.T) {
	for _, w := range []int{16, 32, 64} {
		v, err := newValidator(&CLI{Width: w})
		if err != nil {
			t.Fatalf("width %d: %v", w, err)
		}
		if got := v.Width().Lanes(); got != w {
			t.Errorf("width %d: validator runs at %d", w, got)
		}
	}
	if _, err := newValidator(&CLI{Width: 24}); err == nil {
		t.Error("width 24 accepted")
	}
	if _, err := newValidator(&CLI{Scalar: true}); err != nil {
		t.Errorf("scalar tier: %v", err)
	}
}
