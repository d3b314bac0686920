package engine

// Resolve returns the cell reached from origin after length steps in dir,
// or OffBoard when the step leaves the grid. OffBoard is a normal result:
// it is how eliminations are expressed.
func Resolve(origin Cell, dir Direction, length int) Cell {
	if !origin.OnBoard() || !dir.Valid() {
		return OffBoard
	}
	x, y := origin.X(), origin.Y()

	// Diagonals satisfy two of the four tests.
	if dir == NorthWest || dir < East {
		y -= length
	}
	if dir >= SouthEast && dir <= SouthWest {
		y += length
	}
	if dir > South {
		x -= length
	}
	if dir >= NorthEast && dir <= SouthEast {
		x += length
	}
	return CellAt(x, y)
}

// Midpoint returns the cell stepped over by a length-2 move.
func Midpoint(origin, destination Cell) Cell {
	return origin + (destination-origin)/2
}

// Opposite returns the direction pointing the other way.
func Opposite(dir Direction) Direction {
	return (dir + DirectionCount/2) % DirectionCount
}
