package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGameConfig_ValidConfig(t *testing.T) {
	if err := ValidateGameConfig(createTestConfig()); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}
	if err := ValidateGameConfig(DefaultConfig()); err != nil {
		t.Errorf("Expected default config to be valid, got error: %v", err)
	}
}

func TestValidateGameConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
		errMsg string
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *GameConfig) { c.Description = "" }, "description is required"},
		{"three boards", func(c *GameConfig) { c.Boards = c.Boards[:3] }, "boards must have 4 entries"},
		{"short board", func(c *GameConfig) { c.Boards[1] = c.Boards[1][:3] }, "board b must have 4 rows"},
		{"short row", func(c *GameConfig) { c.Boards[2] = []string{"111", "....", "....", "2222"} }, "board c row 1"},
		{"bad char", func(c *GameConfig) { c.Boards[3] = []string{"1111", ".x..", "....", "2222"} }, "invalid character 'x'"},
		{"too many stones", func(c *GameConfig) { c.Boards[0] = []string{"1111", "1...", "....", "2222"} }, "more than 4 stones"},
		{"already won", func(c *GameConfig) { c.Boards[0] = []string{"1111", "....", "....", "...."} }, "stones of both players"},
		{"victory format", func(c *GameConfig) { c.Messages.Victory = "Game over" }, "messages.victory"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := createTestConfig()
			test.mutate(config)
			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), test.errMsg) {
				t.Errorf("Expected error containing %q, got %v", test.errMsg, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestParseBoards(t *testing.T) {
	config := createTestConfig()
	config.Boards[2] = []string{"11.1", ".2..", "..1.", "2.22"}

	boards, err := ParseBoards(config)
	if err != nil {
		t.Fatalf("ParseBoards: %v", err)
	}
	if boards[0] != StandardBoards()[0] {
		t.Errorf("Board a should be the standard opening, got %v", boards[0])
	}
	want := Board{Black, Black, Nobody, Black, Nobody, White, Nobody, Nobody, Nobody, Nobody, Black, Nobody, White, Nobody, White, White}
	if boards[2] != want {
		t.Errorf("Board c = %v, want %v", boards[2], want)
	}

	rows := FormatBoards(boards)
	if strings.Join(rows[2], "/") != "11.1/.2../..1./2.22" {
		t.Errorf("FormatBoards did not reproduce the setup: %v", rows[2])
	}
}

func TestLoadGameConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_config.json")

	configContent := `{
		"name": "corner",
		"description": "Black to win in one",
		"boards": [
			["1111", "....", "....", "2222"],
			["....", "....", "1...", "2222"],
			["1111", "....", "....", "2222"],
			["2...", "1...", "....", "...1"]
		],
		"messages": {"victory": "%s takes it"}
	}`
	if err := os.WriteFile(tempFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadGameConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Name != "corner" {
		t.Errorf("Expected name 'corner', got %q", config.Name)
	}

	state := InitGameStateFromConfig(config)
	if state.Boards[3][0] != White || state.Boards[3][4] != Black {
		t.Errorf("Unexpected board d: %v", state.Boards[3])
	}
	if state.Message == "" {
		t.Error("Expected the default welcome message")
	}

	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.json")
	os.WriteFile(invalid, []byte(`{"name": "x"`), 0644)
	if _, err := LoadGameConfig(invalid); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestInitGameStateFromConfig_Nil(t *testing.T) {
	state := InitGameStateFromConfig(nil)
	if state.ConfigName != "classic" || state.Turn != Black || state.Winner != Nobody {
		t.Errorf("Unexpected default state %+v", state)
	}
	if state.Boards != StandardBoards() {
		t.Error("Expected the standard opening")
	}
}
