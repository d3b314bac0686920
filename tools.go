package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/shobu/game/config"
	"github.com/wricardo/shobu/game/engine"
)

var errSomeInvalid = errors.New("some configurations have errors")

// runValidate checks the named files, or every setup in --config-dir, and
// fails when any of them is invalid.
func runValidate(ctx context.Context, cmd *cli.Command) error {
	var results []config.ValidationResult
	if cmd.Args().Len() > 0 {
		for _, file := range cmd.Args().Slice() {
			results = append(results, config.ValidateFile(file))
		}
	} else {
		var err error
		results, err = config.ValidateDir(cmd.String("config-dir"))
		if err != nil {
			return fmt.Errorf("error finding config files: %w", err)
		}
	}

	if !reportValidation(cmd.Root().Writer, results) {
		return errSomeInvalid
	}
	return nil
}

// reportValidation prints one block per file and reports whether all passed.
func reportValidation(out io.Writer, results []config.ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), result.File)
		if result.Valid {
			fmt.Fprintln(out, "✅ VALID")
			for _, note := range result.Notes {
				fmt.Fprintln(out, "  "+note)
			}
			continue
		}
		allValid = false
		fmt.Fprintln(out, "❌ INVALID")
		for _, err := range result.Errors {
			fmt.Fprintln(out, "  ❌ "+err)
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if len(results) == 0 {
		fmt.Fprintln(out, "No configuration files found")
	} else if allValid {
		fmt.Fprintln(out, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(out, "❌ Some configurations have errors")
	}
	return allValid
}

// runAnalyze prints per-board stone counts and move statistics for the named
// setups, or for every setup in --config-dir.
func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()
	if len(names) == 0 {
		infos, err := manager.ListConfigs()
		if err != nil {
			return err
		}
		for _, info := range infos {
			names = append(names, info.ConfigID)
		}
	}

	out := cmd.Root().Writer
	for _, name := range names {
		fmt.Fprintf(out, "\n=== Analyzing %s ===\n", name)
		cfg, err := manager.LoadConfig(name)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		analyzeConfig(out, cfg)
	}
	return nil
}

func analyzeConfig(out io.Writer, cfg *engine.GameConfig) {
	boards, err := engine.ParseBoards(cfg)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "Name: %s\n", cfg.Name)
	fmt.Fprintf(out, "Description: %s\n", cfg.Description)
	for i := range boards {
		b := engine.BoardIndex(i)
		color := "light"
		if b.ColorClass() == 1 {
			color = "dark"
		}
		home := "white"
		if engine.IsHomeBoard(b, engine.Black) {
			home = "black"
		}
		fmt.Fprintf(out, "Board %s (%s, %s home): %d black, %d white\n",
			b.Letter(), color, home, boards[i].Count(engine.Black), boards[i].Count(engine.White))
	}

	for _, p := range []engine.Player{engine.Black, engine.White} {
		moves := engine.LegalMoves(&boards, p)
		pushes, offBoard := 0, 0
		for _, m := range moves {
			if !m.Active.Push {
				continue
			}
			pushes++
			if !m.Active.PushDestination.OnBoard() {
				offBoard++
			}
		}
		fmt.Fprintf(out, "%s: %d legal moves, %d pushes, %d push a stone off\n", p, len(moves), pushes, offBoard)
	}
}
