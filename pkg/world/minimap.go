package world

import "strings"

// Minimap glyphs
const (
	glyphPlayer   = '@'
	glyphGoal     = 'G'
	glyphObstacle = 'O'
)

// RenderMinimap draws a top-down text map, one line per X column of the
// grid. The player wins over the obstacle, which wins over the goal.
func RenderMinimap(s *State) string {
	player := CellAt(s.Camera.Position.X(), s.Camera.Position.Z())
	obstacle := CellAt(s.Obstacle.X, s.Obstacle.Z())
	goal := s.Maze.Goal()

	var b strings.Builder
	b.Grow((s.Maze.Depth() + 1) * s.Maze.Width())

	for x := 0; x < s.Maze.Width(); x++ {
		for z := 0; z < s.Maze.Depth(); z++ {
			cell := Cell{X: x, Z: z}
			switch {
			case cell == player:
				b.WriteByte(glyphPlayer)
			case cell == obstacle:
				b.WriteByte(glyphObstacle)
			case cell == goal:
				b.WriteByte(glyphGoal)
			case s.Maze.IsWall(x, z):
				b.WriteByte(WallChar)
			default:
				b.WriteByte(FloorChar)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
