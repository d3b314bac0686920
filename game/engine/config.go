package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Setup cell characters
const (
	SetupBlack = '1'
	SetupWhite = '2'
	SetupEmpty = '.'
)

// GameConfig describes a named starting position loaded from JSON. Each board
// is four rows of four characters, top row first.
type GameConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Boards      [][]string    `json:"boards"`
	Messages    SetupMessages `json:"messages"`
}

// SetupMessages are the texts shown by the session. Empty fields fall back
// to defaults.
type SetupMessages struct {
	Welcome string `json:"welcome"`
	Victory string `json:"victory"` // must contain %s for the winner
}

// DefaultConfig returns the standard opening setup.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "classic",
		Description: "Standard opening: four stones per side on the home row of every board",
		Messages: SetupMessages{
			Welcome: "Black to move. Play a passive move on a home board and an active move on a board of the other color.",
			Victory: "%s wins!",
		},
	}
	config.Boards = make([][]string, BoardCount)
	for i := range config.Boards {
		config.Boards[i] = []string{"1111", "....", "....", "2222"}
	}
	return config
}

// ValidateGameConfig checks a setup for shape and playability.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if len(config.Boards) != BoardCount {
		return fmt.Errorf("config validation: boards must have %d entries, got %d", BoardCount, len(config.Boards))
	}

	for b, rows := range config.Boards {
		letter := BoardIndex(b).Letter()
		if len(rows) != BoardSide {
			return fmt.Errorf("config validation: board %s must have %d rows, got %d", letter, BoardSide, len(rows))
		}
		black, white := 0, 0
		for y, row := range rows {
			if len(row) != BoardSide {
				return fmt.Errorf("config validation: board %s row %d must have %d characters, got %d",
					letter, y+1, BoardSide, len(row))
			}
			for x, char := range row {
				switch char {
				case SetupBlack:
					black++
				case SetupWhite:
					white++
				case SetupEmpty:
				default:
					return fmt.Errorf("config validation: invalid character '%c' on board %s at row %d, col %d",
						char, letter, y+1, x+1)
				}
			}
		}
		if black > StonesPerSide || white > StonesPerSide {
			return fmt.Errorf("config validation: board %s holds more than %d stones for one player", letter, StonesPerSide)
		}
		if black == 0 || white == 0 {
			return fmt.Errorf("config validation: board %s must hold stones of both players", letter)
		}
	}

	if config.Messages.Victory != "" && !strings.Contains(config.Messages.Victory, "%s") {
		return fmt.Errorf("config validation: messages.victory must contain %%s for the winner")
	}
	return nil
}

// ParseBoards converts a validated setup into a board snapshot.
func ParseBoards(config *GameConfig) (Boards, error) {
	var boards Boards
	if err := ValidateGameConfig(config); err != nil {
		return boards, err
	}
	for b, rows := range config.Boards {
		for y, row := range rows {
			for x, char := range row {
				c := CellAt(x, y)
				switch char {
				case SetupBlack:
					boards[b][c] = Black
				case SetupWhite:
					boards[b][c] = White
				}
			}
		}
	}
	return boards, nil
}

// FormatBoards is the inverse of ParseBoards.
func FormatBoards(boards Boards) [][]string {
	out := make([][]string, BoardCount)
	for b := range boards {
		rows := make([]string, BoardSide)
		for y := 0; y < BoardSide; y++ {
			var sb strings.Builder
			for x := 0; x < BoardSide; x++ {
				switch boards[b][CellAt(x, y)] {
				case Black:
					sb.WriteRune(SetupBlack)
				case White:
					sb.WriteRune(SetupWhite)
				default:
					sb.WriteRune(SetupEmpty)
				}
			}
			rows[y] = sb.String()
		}
		out[b] = rows
	}
	return out
}

// LoadGameConfig loads and validates a setup from a JSON file.
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// InitGameStateFromConfig creates a fresh session state. A nil config uses
// the standard opening.
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}
	boards, err := ParseBoards(config)
	if err != nil {
		boards = StandardBoards()
	}

	welcome := config.Messages.Welcome
	if welcome == "" {
		welcome = DefaultConfig().Messages.Welcome
	}

	return &GameState{
		Boards:      boards,
		Turn:        Black,
		Winner:      Nobody,
		ConfigName:  config.Name,
		Message:     welcome,
		MoveHistory: []MoveHistoryEntry{},
		TotalMoves:  0,
	}
}

func victoryMessage(config *GameConfig, winner Player) string {
	format := DefaultConfig().Messages.Victory
	if config != nil && config.Messages.Victory != "" {
		format = config.Messages.Victory
	}
	return fmt.Sprintf(format, winner)
}
