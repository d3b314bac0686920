package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())

	stuck := createValidConfig()
	// Black's only home stones are boxed into the corners.
	stuck.Boards[0] = []string{"12..", "22..", "....", "...."}
	stuck.Boards[1] = []string{"12..", "22..", "....", "...."}
	writeConfigFile(t, dir, "stuck", stuck)

	os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{`), 0644)

	results, err := ValidateDir(dir)
	if err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	byFile := map[string]ValidationResult{}
	for _, r := range results {
		byFile[r.File] = r
	}

	if r := byFile["classic.json"]; !r.Valid || len(r.Notes) != 2 {
		t.Errorf("Expected classic to be valid with notes, got %+v", r)
	}
	if r := byFile["broken.json"]; r.Valid || !strings.Contains(r.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got %+v", r)
	}
	if r := byFile["stuck.json"]; r.Valid || !strings.Contains(r.Errors[0], "no legal move") {
		t.Errorf("Expected stuck to be invalid, got %+v", r)
	}
}

func TestValidateFile_Missing(t *testing.T) {
	r := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	if r.Valid || !strings.Contains(r.Errors[0], "Failed to read file") {
		t.Errorf("Expected read error, got %+v", r)
	}
}

func TestValidateFile_RuleViolation(t *testing.T) {
	dir := t.TempDir()
	config := createValidConfig()
	config.Boards[2] = []string{"1111", "1...", "....", "2222"}
	writeConfigFile(t, dir, "crowded", config)

	r := ValidateFile(filepath.Join(dir, "crowded.json"))
	if r.Valid {
		t.Fatal("Expected five black stones on board c to be rejected")
	}
	if strings.HasPrefix(r.Errors[0], "config validation") {
		t.Errorf("Expected the prefix to be trimmed, got %q", r.Errors[0])
	}
}
