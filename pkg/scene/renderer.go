package scene

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer draws the composited scene image onto the viewport through the
// radial distortion shader. It owns one shader program, one fullscreen-quad
// buffer and one texture; all three live from scene start to scene end and
// are released together by Close.
type Renderer struct {
	width  int
	height int

	program uint32
	quadVAO uint32
	quadVBO uint32
	texture uint32
}

// NewRenderer compiles the distortion program and creates the quad and
// texture sized to the viewport. The distortion coefficients are uploaded
// once; they never change for the lifetime of the renderer.
func NewRenderer(width, height int, params Params) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	program, err := createShaderProgram(quadVertexShaderSource, distortFragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r.program = program

	gl.UseProgram(r.program)
	gl.Uniform1f(gl.GetUniformLocation(r.program, gl.Str("k\x00")), float32(params.K))
	gl.Uniform1f(gl.GetUniformLocation(r.program, gl.Str("kcube\x00")), float32(params.Kcube))
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("sceneTexture\x00")), 0)

	r.setupQuad()
	r.setupTexture()

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)

	return r, nil
}

// setupQuad creates the immutable 6-vertex fullscreen quad
func (r *Renderer) setupQuad() {
	vertices := []float32{
		// Position   // Texture coordinates
		-1.0, -1.0, 0.0, 1.0, // Bottom left
		1.0, -1.0, 1.0, 1.0, // Bottom right
		1.0, 1.0, 1.0, 0.0, // Top right
		-1.0, -1.0, 0.0, 1.0, // Bottom left
		1.0, 1.0, 1.0, 0.0, // Top right
		-1.0, 1.0, 0.0, 0.0, // Top left
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// setupTexture creates the scene texture sized to the current viewport
func (r *Renderer) setupTexture() {
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(r.width), int32(r.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// Upload replaces the texture contents with one frame's composited image.
// The image must match the renderer's current dimensions.
func (r *Renderer) Upload(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != r.width || b.Dy() != r.height {
		return fmt.Errorf("image size %dx%d does not match renderer size %dx%d",
			b.Dx(), b.Dy(), r.width, r.height)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(r.width), int32(r.height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return nil
}

// Resize reallocates the texture storage and viewport for new dimensions.
// A call with the current dimensions does nothing.
func (r *Renderer) Resize(width, height int) {
	if r.width == width && r.height == height {
		return
	}

	r.width = width
	r.height = height

	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw renders the distorted quad to the screen
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Close releases all OpenGL resources
func (r *Renderer) Close() {
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteProgram(r.program)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Check for linking errors
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	// Detach and delete shaders since they're linked to the program now
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	// Check for compilation errors
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
