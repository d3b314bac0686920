package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/shobu/game/config"
	"github.com/wricardo/shobu/game/engine"
	"github.com/wricardo/shobu/game/strategy"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "shobu" {
		t.Errorf("Expected app name shobu, got %s", AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	gameService, err := initializeServices("configs", "", "random", 1)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	state, err := gameService.GetGameState(context.Background())
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.ConfigName != "classic" {
		t.Errorf("Expected classic setup by default, got %q", state.ConfigName)
	}
}

func TestInitializeServices_Errors(t *testing.T) {
	tests := []struct {
		name      string
		configDir string
		setup     string
		strategy  string
	}{
		{"missing config directory", "/non/existent/path", "", "random"},
		{"unknown setup", t.TempDir(), "nope", "random"},
		{"unknown strategy", t.TempDir(), "", "telepathy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := initializeServices(tt.configDir, tt.setup, tt.strategy, 1); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseAuto(t *testing.T) {
	tests := map[string]engine.Player{
		"":      engine.Nobody,
		"none":  engine.Nobody,
		"Black": engine.Black,
		"white": engine.White,
		"2":     engine.White,
	}
	for in, want := range tests {
		got, err := parseAuto(in)
		if err != nil {
			t.Fatalf("parseAuto(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("parseAuto(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseAuto("both"); err == nil {
		t.Error("Expected error for invalid side")
	}
}

func TestREPL(t *testing.T) {
	svc, err := initializeServices(t.TempDir(), "", "fixed", 1)
	if err != nil {
		t.Fatalf("initializeServices: %v", err)
	}

	input := strings.Join([]string{
		"help",
		"moves",
		"a1 s1 c2",
		"ai",
		"history",
		"nonsense",
		"q",
		"board",
	}, "\n")
	var out bytes.Buffer
	if err := runREPL(context.Background(), svc, strings.NewReader(input), &out, engine.White); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Commands:",
		"legal moves",
		"a1 s1 c2",
		"white plays: c16 n1 d16",
		"rejected (home_board)",
		"white c16 n1 d16",
		"error: failed to parse move",
		"exiting...",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}

	state, _ := svc.GetGameState(context.Background())
	if state.TotalMoves != 2 {
		t.Errorf("Expected 2 moves played, got %d", state.TotalMoves)
	}
}

func TestREPL_Win(t *testing.T) {
	svc, err := initializeServices("configs", "last_stone", "none", 1)
	if err != nil {
		t.Fatalf("initializeServices: %v", err)
	}

	var out bytes.Buffer
	if err := runREPL(context.Background(), svc, strings.NewReader("b9 n1 d5\nhint\n"), &out, engine.Nobody); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"white stone pushed off board d",
		"game over: black wins the puzzle!",
		"error: no strategy configured",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
}

func TestREPL_Restart(t *testing.T) {
	svc, err := initializeServices("configs", "", "random", 7)
	if err != nil {
		t.Fatalf("initializeServices: %v", err)
	}

	var out bytes.Buffer
	input := "a1 s1 c2\nrestart skirmish\nrestart missing\n"
	if err := runREPL(context.Background(), svc, strings.NewReader(input), &out, engine.Nobody); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	state, _ := svc.GetGameState(context.Background())
	if state.ConfigName != "skirmish" {
		t.Errorf("Expected skirmish after restart, got %q", state.ConfigName)
	}
	if state.TotalMoves != 0 {
		t.Errorf("Expected history cleared, got %d moves", state.TotalMoves)
	}
	if !strings.Contains(out.String(), "error: config 'missing' not found") {
		t.Errorf("Expected missing setup error:\n%s", out.String())
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := runApp(t, "--config-dir", "configs", "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All configurations are valid!") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestValidateCommand_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "--config-dir", dir, "validate")
	if err != errSomeInvalid {
		t.Fatalf("Expected errSomeInvalid, got %v", err)
	}
	if !strings.Contains(out, "❌ INVALID") || !strings.Contains(out, "Invalid JSON") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	out, err = runApp(t, "validate", bad, filepath.Join("configs", "classic.json"))
	if err != errSomeInvalid {
		t.Fatalf("Expected errSomeInvalid for explicit files, got %v", err)
	}
	if !strings.Contains(out, "classic.json") {
		t.Errorf("Expected classic.json in report:\n%s", out)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := runApp(t, "--config-dir", "configs", "analyze", "classic", "missing")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{
		"=== Analyzing classic ===",
		"Board a (light, black home): 4 black, 4 white",
		"Board b (dark, black home): 4 black, 4 white",
		"Board d (light, white home): 4 black, 4 white",
		"=== Analyzing missing ===",
		"Error:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeConfig_Pushes(t *testing.T) {
	var out bytes.Buffer
	cfg := engine.DefaultConfig()
	cfg.Boards[3] = []string{"2...", "1...", "....", "...1"}
	analyzeConfig(&out, cfg)
	if !strings.Contains(out.String(), "Board d (light, white home): 2 black, 1 white") {
		t.Errorf("Unexpected board summary:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "black: ") || !strings.Contains(out.String(), "white: ") {
		t.Errorf("Expected move statistics for both players:\n%s", out.String())
	}
}

func TestLoggingFlags(t *testing.T) {
	if _, err := runApp(t, "--log-format", "xml", "--config-dir", "configs", "analyze", "classic"); err == nil {
		t.Error("Expected error for unknown log format")
	}
	if _, err := runApp(t, "--log-level", "loud", "--config-dir", "configs", "analyze", "classic"); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func TestPlayMatch(t *testing.T) {
	manager, err := config.NewManager("configs")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	cfg, err := manager.LoadConfig("last_stone")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	winner, moves, err := playMatch(context.Background(), cfg, strategy.NewAggressive(1), strategy.NewRandom(2), 10)
	if err != nil {
		t.Fatalf("playMatch: %v", err)
	}
	if winner != engine.Black || moves != 1 {
		t.Errorf("Expected black to win in 1 move, got %v after %d", winner, moves)
	}
}

func TestPlayMatch_MoveCap(t *testing.T) {
	winner, moves, err := playMatch(context.Background(), engine.DefaultConfig(), strategy.NewRandom(1), strategy.NewRandom(2), 4)
	if err != nil {
		t.Fatalf("playMatch: %v", err)
	}
	if winner != engine.Nobody || moves != 4 {
		t.Errorf("Expected unfinished game after 4 moves, got %v after %d", winner, moves)
	}
}

func TestPlayMatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := playMatch(ctx, engine.DefaultConfig(), strategy.NewRandom(1), strategy.NewRandom(2), 4); err == nil {
		t.Error("Expected context error")
	}
}

func TestSelfPlayCommand(t *testing.T) {
	out, err := runApp(t, "--config-dir", "configs", "--setup", "last_stone", "selfplay", "--games", "3")
	if err != nil {
		t.Fatalf("selfplay: %v", err)
	}
	for _, want := range []string{
		"Setup: last_stone | aggressive (black) vs random (white)",
		"Games: 3 | Black wins: 3 | White wins: 0 | Unfinished: 0",
		"Average length: 1.0 moves",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}
