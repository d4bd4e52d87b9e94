package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"aspectarian/report"
)

// TestRootCommand tests that the root command is properly configured
func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "aspectarian" {
		t.Errorf("expected Use 'aspectarian', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if rootCmd.Version != Version {
		t.Errorf("expected Version %q, got %q", Version, rootCmd.Version)
	}
}

// TestDetectCommand tests the detect command configuration
func TestDetectCommand(t *testing.T) {
	if detectCmd == nil {
		t.Fatal("detectCmd should not be nil")
	}
	if !strings.HasPrefix(detectCmd.Use, "detect") {
		t.Errorf("expected Use to start with 'detect', got %q", detectCmd.Use)
	}
	if detectCmd.RunE == nil {
		t.Error("RunE should not be nil")
	}
	if err := detectCmd.Args(detectCmd, []string{}); err == nil {
		t.Error("detect should reject zero arguments")
	}
	if err := detectCmd.Args(detectCmd, []string{"a", "b"}); err == nil {
		t.Error("detect should reject two arguments")
	}
}

// TestAspectsCommand tests the aspects command configuration
func TestAspectsCommand(t *testing.T) {
	if aspectsCmd == nil {
		t.Fatal("aspectsCmd should not be nil")
	}
	if !strings.HasPrefix(aspectsCmd.Use, "aspects") {
		t.Errorf("expected Use to start with 'aspects', got %q", aspectsCmd.Use)
	}
	if err := aspectsCmd.Args(aspectsCmd, []string{"chart.yaml"}); err != nil {
		t.Errorf("aspects should accept one argument, got error: %v", err)
	}
}

// TestCatalogCommand tests the catalog command configuration
func TestCatalogCommand(t *testing.T) {
	if catalogCmd == nil {
		t.Fatal("catalogCmd should not be nil")
	}
	if catalogCmd.Use != "catalog" {
		t.Errorf("expected Use 'catalog', got %q", catalogCmd.Use)
	}
}

// TestFingerprintCommand tests the fingerprint command configuration
func TestFingerprintCommand(t *testing.T) {
	if fingerprintCmd == nil {
		t.Fatal("fingerprintCmd should not be nil")
	}
	if !strings.HasPrefix(fingerprintCmd.Use, "fingerprint") {
		t.Errorf("expected Use to start with 'fingerprint', got %q", fingerprintCmd.Use)
	}
}

// TestCommandFlags tests that commands have expected flags
func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd     *cobra.Command
		flags   []string
		cmdName string
	}{
		{detectCmd, []string{"json", "catalog", "bodies", "merge-conjunctions"}, "detect"},
		{aspectsCmd, []string{"json", "minor", "catalog"}, "aspects"},
		{catalogCmd, []string{"catalog"}, "catalog"},
	}

	for _, tt := range tests {
		for _, flagName := range tt.flags {
			flag := tt.cmd.Flags().Lookup(flagName)
			if flag == nil {
				t.Errorf("%s should have --%s flag", tt.cmdName, flagName)
			}
		}
	}
}

// TestFlagsHaveDefaults tests that flags have appropriate defaults
func TestFlagsHaveDefaults(t *testing.T) {
	flag := detectCmd.Flags().Lookup("merge-conjunctions")
	if flag != nil && flag.DefValue != "true" {
		t.Errorf("detect --merge-conjunctions should default to true, got %s", flag.DefValue)
	}

	flag = detectCmd.Flags().Lookup("json")
	if flag != nil && flag.DefValue != "false" {
		t.Errorf("detect --json should default to false, got %s", flag.DefValue)
	}
}

// TestAllCommandsRegistered tests that all expected commands are registered
func TestAllCommandsRegistered(t *testing.T) {
	expectedCommands := []string{"detect", "aspects", "catalog", "fingerprint"}

	registeredCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registeredCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !registeredCommands[expected] {
			t.Errorf("command %q should be registered", expected)
		}
	}
}

// TestCommandHelp tests that commands have help text
func TestCommandHelp(t *testing.T) {
	commands := []*cobra.Command{rootCmd, detectCmd, aspectsCmd, catalogCmd, fingerprintCmd}

	for _, cmd := range commands {
		if cmd.Short == "" {
			t.Errorf("%s command should have Short description", cmd.Use)
		}
	}
}

// TestShortKey tests the shortKey helper function
func TestShortKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234567890123456", "123456789012"},
		{"123456789012", "123456789012"},
		{"short", "short"},
		{"", ""},
	}

	for _, tt := range tests {
		result := shortKey(tt.input)
		if result != tt.expected {
			t.Errorf("shortKey(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

// TestJoinIndices tests the 1-based index formatting
func TestJoinIndices(t *testing.T) {
	if got := joinIndices([]int{0, 2}); got != "1, 3" {
		t.Errorf("joinIndices([0 2]) = %q, want %q", got, "1, 3")
	}
	if got := joinIndices(nil); got != "" {
		t.Errorf("joinIndices(nil) = %q, want empty", got)
	}
}

// TestAppendUnique tests deduplicating index appends
func TestAppendUnique(t *testing.T) {
	refs := appendUnique(nil, 1)
	refs = appendUnique(refs, 1)
	refs = appendUnique(refs, 0)
	if len(refs) != 2 || refs[0] != 1 || refs[1] != 0 {
		t.Errorf("unexpected refs: %v", refs)
	}
}

// TestLinkRefs tests minor link pattern references
func TestLinkRefs(t *testing.T) {
	if got := linkRefs(report.MinorLink{}); got != "" {
		t.Errorf("expected empty refs, got %q", got)
	}

	got := linkRefs(report.MinorLink{
		APatterns: []int{1, 0},
		BPatterns: []int{1},
	})
	if got != "  [patterns 1, 2]" {
		t.Errorf("unexpected refs: %q", got)
	}
}

func writeChart(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	return buf.String()
}

const grandCrossChart = `placements:
  - name: Sun
    longitude: 0
  - name: Moon
    longitude: 90
  - name: Mars
    longitude: 180
  - name: Venus
    longitude: 270
`

// TestRunDetect_Text tests the human-readable detect output
func TestRunDetect_Text(t *testing.T) {
	path := writeChart(t, grandCrossChart)

	out := captureStdout(t, func() error {
		return runDetect(detectCmd, []string{path})
	})

	if !strings.Contains(out, "Grand Cross") {
		t.Errorf("expected the grand cross named, got:\n%s", out)
	}
	if !strings.Contains(out, "Component 1") {
		t.Errorf("expected component numbering, got:\n%s", out)
	}
	if !strings.Contains(out, "Patterns: 1") {
		t.Errorf("expected the pattern count, got:\n%s", out)
	}
}

// TestRunDetect_JSON tests the JSON detect output
func TestRunDetect_JSON(t *testing.T) {
	path := writeChart(t, grandCrossChart)

	detectJSON = true
	defer func() { detectJSON = false }()

	out := captureStdout(t, func() error {
		return runDetect(detectCmd, []string{path})
	})

	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got:\n%s", out)
	}
	if !strings.Contains(out, `"chart_key"`) {
		t.Errorf("expected the chart key field, got:\n%s", out)
	}
}

// TestRunDetect_MissingFile tests detect with a missing chart
func TestRunDetect_MissingFile(t *testing.T) {
	err := runDetect(detectCmd, []string{filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Error("expected an error for a missing chart file")
	}
}

// TestRunAspects tests the aspect listing output
func TestRunAspects(t *testing.T) {
	path := writeChart(t, `placements:
  - name: Sun
    longitude: 0
  - name: Moon
    longitude: 120
`)

	out := captureStdout(t, func() error {
		return runAspects(aspectsCmd, []string{path})
	})

	if !strings.Contains(out, "Trine") {
		t.Errorf("expected the trine listed, got:\n%s", out)
	}
	if !strings.Contains(out, "Sun") || !strings.Contains(out, "Moon") {
		t.Errorf("expected both bodies listed, got:\n%s", out)
	}
}

// TestRunCatalog tests the catalog listing output
func TestRunCatalog(t *testing.T) {
	out := captureStdout(t, func() error {
		return runCatalog(catalogCmd, nil)
	})

	for _, name := range []string{"Conjunction", "Sextile", "Opposition"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s in the catalog listing, got:\n%s", name, out)
		}
	}
}

// TestRunFingerprint tests the fingerprint output
func TestRunFingerprint(t *testing.T) {
	path := writeChart(t, grandCrossChart)

	out := captureStdout(t, func() error {
		return runFingerprint(fingerprintCmd, []string{path})
	})

	key := strings.TrimSpace(out)
	if len(key) != 64 {
		t.Errorf("expected a 64-char fingerprint, got %q", key)
	}
}
