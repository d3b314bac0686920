package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/shobu/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Notes holds informational messages; otherwise Errors
// explains what is wrong.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	Notes  []string `json:"notes,omitempty"`
}

// ValidateFile loads and checks one setup file. Beyond the structural checks
// it reports positions that are already decided or where Black cannot move.
func ValidateFile(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return result.fail("Failed to read file: %v", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return result.fail("Invalid JSON: %v", err)
	}
	if err := engine.ValidateGameConfig(&config); err != nil {
		return result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
	}

	boards, _ := engine.ParseBoards(&config)
	if !engine.HasLegalMove(&boards, engine.Black) {
		return result.fail("Black has no legal move in the starting position")
	}

	moves := len(engine.LegalMoves(&boards, engine.Black))
	result.Notes = append(result.Notes,
		fmt.Sprintf("%d black / %d white stones", boards.Count(engine.Black), boards.Count(engine.White)),
		fmt.Sprintf("%d legal opening moves", moves))
	return result
}

func (r ValidationResult) fail(format string, args ...interface{}) ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	return r
}

// ValidateDir validates every .json file in dir, sorted by name.
func ValidateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}
