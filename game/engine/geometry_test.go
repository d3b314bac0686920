package engine

import "testing"

func TestResolve_Directions(t *testing.T) {
	tests := []struct {
		origin Cell
		dir    Direction
		length int
		want   Cell
	}{
		{5, North, 1, 1},
		{5, NorthEast, 1, 2},
		{5, East, 1, 6},
		{5, SouthEast, 1, 10},
		{5, South, 1, 9},
		{5, SouthWest, 1, 8},
		{5, West, 1, 4},
		{5, NorthWest, 1, 0},
		{0, SouthEast, 2, 10},
		{0, South, 2, 8},
		{15, NorthWest, 2, 5},
		{0, North, 1, OffBoard},
		{0, West, 1, OffBoard},
		{3, East, 1, OffBoard},
		{12, South, 1, OffBoard},
		{9, South, 2, OffBoard},
		{5, NorthEast, 2, OffBoard},
	}

	for _, test := range tests {
		if got := Resolve(test.origin, test.dir, test.length); got != test.want {
			t.Errorf("Resolve(%d, %s, %d) = %d, want %d", test.origin, test.dir, test.length, got, test.want)
		}
	}
}

func TestResolve_RoundTrip(t *testing.T) {
	for origin := Cell(0); origin < CellsPerBoard; origin++ {
		for dir := Direction(0); dir < DirectionCount; dir++ {
			for length := MinLength; length <= MaxLength; length++ {
				dest := Resolve(origin, dir, length)
				if dest == OffBoard {
					continue
				}
				if back := Resolve(dest, Opposite(dir), length); back != origin {
					t.Errorf("%d %s%d -> %d, back %s -> %d", origin, dir, length, dest, Opposite(dir), back)
				}
			}
		}
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		origin, dest, want Cell
	}{
		{0, 10, 5},
		{0, 8, 4},
		{15, 5, 10},
		{3, 1, 2},
		{12, 6, 9},
	}

	for _, test := range tests {
		if got := Midpoint(test.origin, test.dest); got != test.want {
			t.Errorf("Midpoint(%d, %d) = %d, want %d", test.origin, test.dest, got, test.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		North:     South,
		NorthEast: SouthWest,
		East:      West,
		SouthEast: NorthWest,
	}
	for d, want := range pairs {
		if Opposite(d) != want || Opposite(want) != d {
			t.Errorf("Opposite(%s) = %s, want %s", d, Opposite(d), want)
		}
	}
}
