package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSVG(t *testing.T) {
	out, err := run(t, "svg", "--width", "200", "--height", "100", "--radius", "20")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<svg") || !strings.Contains(out, `<path fill="black" d="M0,`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, " A") {
		t.Errorf("expected arcs in output:\n%s", out)
	}

	out, err = run(t, "svg", "--radius", "20", "--lower", "0.1", "--path-only")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "A") || strings.Contains(out, "<svg") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "svg", "--width", "100", "--height", "50", "--radii", "10,0,10,0", "--style", "circular", "--path-only")
	if err != nil {
		t.Fatal(err)
	}
	if want := "M0,10 A10,10 0 0,1 10,0 L100,0 L100,40 A10,10 0 0,1 90,50 L0,50 Z\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSVGErrors(t *testing.T) {
	for _, args := range [][]string{
		{"svg", "--radii", "1,2,3"},
		{"svg", "--style", "bevel"},
		{"svg", "--profile", "squircle"},
		{"svg", "--radius", "5", "--radii", "1,2,3,4"},
		{"svg", "--width=-10"},
		{"svg", "--style", "circular", "--profile", "capsule"},
		{"svg", "--style", "circular", "--profile-file", "soft.toml"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestProfileCommand(t *testing.T) {
	out, err := run(t, "profile", "capsule")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"extended_fraction", "arc_fraction = 0", "# P0 = ", "# end curvature = "} {
		if !strings.Contains(out, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, out)
		}
	}

	name := filepath.Join(t.TempDir(), "soft.toml")
	if err := os.WriteFile(name, []byte("arc_fraction = 0.25\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "profile", "--file", name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "arc_fraction = 0.25") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if err := os.WriteFile(name, []byte("arc_fraction = 3\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "svg", "--profile-file", name); err == nil {
		t.Error("expected error for invalid profile")
	}
}

func TestClassifyCommand(t *testing.T) {
	tests := map[string][]string{
		"rounded rectangle\n":  {"classify", "--width", "200", "--height", "100", "--radius", "20"},
		"horizontal capsule\n": {"classify", "--width", "200", "--height", "100", "--radius", "60"},
		"circle\n":             {"classify", "--radius", "50"},
		"rectangle\n":          {"classify"},
	}
	for want, args := range tests {
		out, err := run(t, args...)
		if err != nil {
			t.Fatal(err)
		}
		if out != want {
			t.Errorf("%v: got %q, want %q", args, out, want)
		}
	}
}
