package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Display is the capability surface the frame driver needs from the host
// window: drawable dimensions, the device pixel ratio, a resize notification
// and the frame-boundary handshake.
type Display interface {
	// FramebufferSize returns the drawable size in device pixels.
	FramebufferSize() (int, int)

	// ContentScale returns the device pixel ratio of the display.
	ContentScale() float64

	// SetResizeCallback installs fn as the resize listener; nil detaches it.
	SetResizeCallback(fn func(width, height int))

	// ShouldClose reports whether the host asked for teardown.
	ShouldClose() bool

	// SwapBuffers presents the finished frame, waiting for the next display
	// refresh when vsync is on.
	SwapBuffers()

	// PollEvents delivers pending host events, including resize.
	PollEvents()
}

// GLFWDisplay is the Display implementation used by the standalone host.
type GLFWDisplay struct {
	window *glfw.Window
}

// NewGLFWDisplay initializes GLFW, opens a resizable window with an OpenGL
// 4.1 core context and makes the context current. Escape closes the window.
func NewGLFWDisplay(width, height int, title string, vsync bool) (*GLFWDisplay, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return &GLFWDisplay{window: window}, nil
}

// FramebufferSize returns the drawable size in device pixels
func (d *GLFWDisplay) FramebufferSize() (int, int) {
	return d.window.GetFramebufferSize()
}

// ContentScale returns the window's device pixel ratio
func (d *GLFWDisplay) ContentScale() float64 {
	sx, _ := d.window.GetContentScale()
	return float64(sx)
}

// SetResizeCallback installs fn as the framebuffer resize listener
func (d *GLFWDisplay) SetResizeCallback(fn func(width, height int)) {
	if fn == nil {
		d.window.SetFramebufferSizeCallback(nil)
		return
	}
	d.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		fn(w, h)
	})
}

// ShouldClose reports whether the window was asked to close
func (d *GLFWDisplay) ShouldClose() bool {
	return d.window.ShouldClose()
}

// SwapBuffers presents the finished frame
func (d *GLFWDisplay) SwapBuffers() {
	d.window.SwapBuffers()
}

// PollEvents delivers pending window events
func (d *GLFWDisplay) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW
func (d *GLFWDisplay) Close() {
	d.window.Destroy()
	glfw.Terminate()
}
