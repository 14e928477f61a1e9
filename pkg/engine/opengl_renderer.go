package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mazewalk/pkg/assets"
	"mazewalk/pkg/config"
	"mazewalk/pkg/world"
)

// cubeVertices is a unit cube centred on the origin: position, texcoord
var cubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,
	// front
	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	// left
	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,
	// right
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	// bottom
	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	// top
	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

const cubeVertexCount = 36

// program is a linked shader program with its uniform locations
type program struct {
	id         uint32
	model      int32
	view       int32
	projection int32
	sampler    int32
	color      int32
}

func (p *program) use(view, projection mgl32.Mat4) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.view, 1, false, &view[0])
	gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
}

func (p *program) draw(model mgl32.Mat4) {
	gl.UniformMatrix4fv(p.model, 1, false, &model[0])
	gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
}

// OpenGLRenderer draws the maze scene
type OpenGLRenderer struct {
	width  int
	height int

	cubeVAO uint32
	cubeVBO uint32

	textured *program
	solid    *program

	floorTexture uint32
	wallTexture  uint32
}

// NewOpenGLRenderer compiles shaders, builds the cube mesh and loads the
// floor and wall textures. A GL context must be current.
func NewOpenGLRenderer(cfg config.TexturesConfig, width, height int) (*OpenGLRenderer, error) {
	r := &OpenGLRenderer{width: width, height: height}

	gl.Enable(gl.DEPTH_TEST)

	var err error
	if r.textured, err = newProgram(sceneVertexShaderSource, texturedFragmentShaderSource); err != nil {
		return nil, fmt.Errorf("textured shader: %w", err)
	}
	if r.solid, err = newProgram(sceneVertexShaderSource, solidFragmentShaderSource); err != nil {
		r.Close()
		return nil, fmt.Errorf("solid shader: %w", err)
	}

	r.setupCube()

	if r.floorTexture, err = loadTexture(cfg.Floor); err != nil {
		r.Close()
		return nil, err
	}
	if r.wallTexture, err = loadTexture(cfg.Wall); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *OpenGLRenderer) setupCube() {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)

	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// loadTexture uploads an image file as a mipmapped, repeating 2D texture
func loadTexture(path string) (uint32, error) {
	img, err := assets.LoadRGBA(path)
	if err != nil {
		return 0, err
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Dx()),
		int32(img.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return texture, nil
}

// Render draws one frame from the scene snapshot
func (r *OpenGLRenderer) Render(scene *world.SceneData) {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	c := scene.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.BindVertexArray(r.cubeVAO)

	// Floor and walls
	r.textured.use(scene.View, scene.Projection)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.textured.sampler, 0)

	gl.BindTexture(gl.TEXTURE_2D, r.floorTexture)
	r.textured.draw(scene.Floor)

	gl.BindTexture(gl.TEXTURE_2D, r.wallTexture)
	for _, model := range scene.Walls {
		r.textured.draw(model)
	}

	// Goal and obstacle
	r.solid.use(scene.View, scene.Projection)
	gl.Uniform4fv(r.solid.color, 1, &scene.GoalColor[0])
	r.solid.draw(scene.Goal)
	gl.Uniform4fv(r.solid.color, 1, &scene.ObstacleColor[0])
	r.solid.draw(scene.Obstacle)

	gl.BindVertexArray(0)
}

// Resize updates the viewport size
func (r *OpenGLRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// AspectRatio returns width/height of the viewport
func (r *OpenGLRenderer) AspectRatio() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Close releases all OpenGL resources
func (r *OpenGLRenderer) Close() {
	gl.DeleteVertexArrays(1, &r.cubeVAO)
	gl.DeleteBuffers(1, &r.cubeVBO)
	gl.DeleteTextures(1, &r.floorTexture)
	gl.DeleteTextures(1, &r.wallTexture)
	if r.textured != nil {
		gl.DeleteProgram(r.textured.id)
	}
	if r.solid != nil {
		gl.DeleteProgram(r.solid.id)
	}
}

// newProgram compiles and links a shader program and looks up its uniforms
func newProgram(vertexSource, fragmentSource string) (*program, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	// Shaders are no longer needed once linked
	gl.DetachShader(id, vertexShader)
	gl.DetachShader(id, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)

		return nil, fmt.Errorf("shader program linking failed: %v", log)
	}

	return &program{
		id:         id,
		model:      uniform(id, "model"),
		view:       uniform(id, "view"),
		projection: uniform(id, "projection"),
		sampler:    uniform(id, "texture1"),
		color:      uniform(id, "color"),
	}, nil
}

// uniform returns -1 for names the program does not use
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
