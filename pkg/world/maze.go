package world

import (
	"errors"
	"fmt"
)

// Maze dimensions
const (
	MazeWidth = 10
	MazeDepth = 10
)

// Layout characters
const (
	WallChar  = '#'
	FloorChar = '.'
)

// ErrInvalidMaze is returned when a maze layout cannot be parsed
var ErrInvalidMaze = errors.New("invalid maze layout")

// DefaultLayout is the built-in maze. Row k is the column of cells at x=k,
// character index is z.
var DefaultLayout = []string{
	"##########",
	"#........#",
	"########.#",
	"#........#",
	"#.##.###.#",
	"#.##..#..#",
	"#...#.#.##",
	"#####.####",
	"#........#",
	"##########",
}

// StartCell is where the player begins
var StartCell = Cell{X: 1, Z: 1}

// Cell is an integer grid coordinate
type Cell struct {
	X int
	Z int
}

// Maze is a static wall/floor grid indexed [x][z]
type Maze struct {
	cells [MazeWidth][MazeDepth]bool
}

// DefaultMaze returns the built-in layout
func DefaultMaze() *Maze {
	m, err := ParseMaze(DefaultLayout)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMaze builds a maze from text rows of '#' and '.'
func ParseMaze(rows []string) (*Maze, error) {
	if len(rows) != MazeWidth {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidMaze, MazeWidth, len(rows))
	}

	m := &Maze{}
	for x, row := range rows {
		if len(row) != MazeDepth {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidMaze, x, len(row), MazeDepth)
		}
		for z, ch := range row {
			switch ch {
			case WallChar:
				m.cells[x][z] = true
			case FloorChar:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrInvalidMaze, ch, x, z)
			}
		}
	}

	if m.IsWall(StartCell.X, StartCell.Z) {
		return nil, fmt.Errorf("%w: start cell %d,%d is a wall", ErrInvalidMaze, StartCell.X, StartCell.Z)
	}
	if goal := m.Goal(); m.IsWall(goal.X, goal.Z) {
		return nil, fmt.Errorf("%w: goal cell %d,%d is a wall", ErrInvalidMaze, goal.X, goal.Z)
	}

	return m, nil
}

// Width returns the number of cells along X
func (m *Maze) Width() int { return MazeWidth }

// Depth returns the number of cells along Z
func (m *Maze) Depth() int { return MazeDepth }

// IsWall reports whether the cell is a wall. Cells outside the grid count as walls.
func (m *Maze) IsWall(x, z int) bool {
	if x < 0 || x >= MazeWidth || z < 0 || z >= MazeDepth {
		return true
	}
	return m.cells[x][z]
}

// Walls returns every wall cell, x-major
func (m *Maze) Walls() []Cell {
	walls := make([]Cell, 0, MazeWidth*MazeDepth)
	for x := 0; x < MazeWidth; x++ {
		for z := 0; z < MazeDepth; z++ {
			if m.cells[x][z] {
				walls = append(walls, Cell{X: x, Z: z})
			}
		}
	}
	return walls
}

// Goal returns the target cell
func (m *Maze) Goal() Cell {
	return Cell{X: MazeWidth - 2, Z: MazeDepth - 2}
}

// CellAt returns the cell containing a world-space X/Z position
func CellAt(x, z float32) Cell {
	return Cell{X: roundToInt(x), Z: roundToInt(z)}
}
