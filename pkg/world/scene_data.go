package world

import "github.com/go-gl/mathgl/mgl32"

// SceneData is everything the renderer needs to draw one frame
type SceneData struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ClearColor mgl32.Vec4

	Floor    mgl32.Mat4
	Walls    []mgl32.Mat4
	Goal     mgl32.Mat4
	Obstacle mgl32.Mat4

	GoalColor     mgl32.Vec4
	ObstacleColor mgl32.Vec4
}

var (
	defaultClearColor    = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}
	defaultGoalColor     = mgl32.Vec4{0.0, 1.0, 0.0, 1.0}
	defaultObstacleColor = mgl32.Vec4{1.0, 0.0, 0.0, 1.0}
)

// BuildScene snapshots the state into model/view/projection matrices.
// All meshes are the unit cube centred on the origin.
func BuildScene(s *State, aspect float32) *SceneData {
	w := float32(s.Maze.Width())
	d := float32(s.Maze.Depth())

	scene := &SceneData{
		View:          s.Camera.ViewMatrix(),
		Projection:    s.Camera.Projection(aspect),
		ClearColor:    defaultClearColor,
		GoalColor:     defaultGoalColor,
		ObstacleColor: defaultObstacleColor,
	}

	scene.Floor = mgl32.Translate3D(w/2-0.5, -0.5, d/2-0.5).Mul4(mgl32.Scale3D(w, 0.1, d))

	walls := s.Maze.Walls()
	scene.Walls = make([]mgl32.Mat4, 0, len(walls))
	for _, c := range walls {
		model := mgl32.Translate3D(float32(c.X), 0.5, float32(c.Z)).Mul4(mgl32.Scale3D(1, 2, 1))
		scene.Walls = append(scene.Walls, model)
	}

	goal := s.Maze.Goal()
	scene.Goal = mgl32.Translate3D(float32(goal.X), 0.5, float32(goal.Z)).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))

	o := s.Obstacle
	scene.Obstacle = mgl32.Translate3D(o.X, o.RenderY, o.Z()).Mul4(mgl32.Scale3D(o.Size, 0.4, o.Size))

	return scene
}
