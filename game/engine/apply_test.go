package engine

import (
	"errors"
	"testing"
)

func TestResolveMove_OffBoard(t *testing.T) {
	tests := []struct {
		name string
		move Move
		leg  Leg
	}{
		{"passive leaves board", Move{Passive: SubMove{Board: 0, Origin: 0}, Active: SubMove{Board: 2, Origin: 13}, Direction: North, Length: 1}, LegPassive},
		{"active leaves board", Move{Passive: SubMove{Board: 0, Origin: 4}, Active: SubMove{Board: 2, Origin: 1}, Direction: North, Length: 1}, LegActive},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ResolveMove(test.move)
			if !errors.Is(err, ErrGeometry) {
				t.Fatalf("Expected geometry rejection, got %v", err)
			}
			var r *Rejection
			if !errors.As(err, &r) || r.Leg != test.leg {
				t.Errorf("Expected leg %q, got %v", test.leg, err)
			}
		})
	}
}

func TestApply_PushOneStep(t *testing.T) {
	boards := StandardBoards()
	boards[2][5] = P2
	boards[2][12] = E
	m := mustMove(t, 0, 1, South, 1, 2, 1)

	if r := Check(m, &boards, Black); r != nil {
		t.Fatalf("Expected legal push, got %v", r)
	}
	m = Classify(m, &boards)
	if !m.Active.Push || m.Active.PushDestination != 9 {
		t.Fatalf("Expected push to 9, got push=%v dest=%d", m.Active.Push, m.Active.PushDestination)
	}

	next := Apply(boards, m, Black)
	if next[2][1] != E || next[2][5] != P1 || next[2][9] != P2 {
		t.Errorf("Unexpected board c after push: %v", next[2])
	}
	if next.Count(White) != boards.Count(White) {
		t.Errorf("Push must not change white's stone count")
	}
}

func TestApply_PushThroughMidpoint(t *testing.T) {
	boards := StandardBoards()
	boards[2][5] = P2
	boards[2][13] = E
	m := mustMove(t, 0, 1, South, 2, 2, 1)

	if r := Check(m, &boards, Black); r != nil {
		t.Fatalf("Expected legal push, got %v", r)
	}
	next := Apply(boards, m, Black)

	if next[2][1] != E || next[2][5] != E || next[2][9] != P1 || next[2][13] != P2 {
		t.Errorf("Unexpected board c after push: %v", next[2])
	}
	if next[0][1] != E || next[0][9] != P1 {
		t.Errorf("Unexpected board a after passive: %v", next[0])
	}
}

func TestApply_Elimination(t *testing.T) {
	boards := StandardBoards()
	boards[1][0], boards[1][8] = E, P1
	boards[3][0], boards[3][4], boards[3][12] = P2, P1, E
	m := mustMove(t, 1, 8, North, 1, 3, 4)

	if r := Check(m, &boards, Black); r != nil {
		t.Fatalf("Expected legal push, got %v", r)
	}
	m = Classify(m, &boards)
	if !m.Active.Push || m.Active.PushDestination != OffBoard {
		t.Fatalf("Expected push off the board, got %+v", m.Active)
	}

	next := Apply(boards, m, Black)
	if got, want := next.Count(White), boards.Count(White)-1; got != want {
		t.Errorf("Expected %d white stones, got %d", want, got)
	}
	if next.Count(Black) != boards.Count(Black) {
		t.Errorf("Black stone count changed")
	}
	if next[3][0] != P1 || next[3][4] != E {
		t.Errorf("Unexpected board d: %v", next[3])
	}
}

func TestDetectWinner(t *testing.T) {
	boards := StandardBoards()
	if w := DetectWinner(&boards, Black); w != Nobody {
		t.Errorf("Expected no winner at the start, got %s", w)
	}

	boards[3] = boardOf(P1)
	if w := DetectWinner(&boards, White); w != Black {
		t.Errorf("Expected black to win even after white moved, got %s", w)
	}

	// both sides cleared a board: the mover takes it
	boards[2] = boardOf(E, E, E, E, E, E, E, E, E, E, E, E, P2)
	if w := DetectWinner(&boards, Black); w != Black {
		t.Errorf("Expected black (mover), got %s", w)
	}
	if w := DetectWinner(&boards, White); w != White {
		t.Errorf("Expected white (mover), got %s", w)
	}
}
