package scene

// Default construction parameters.
const (
	DefaultSpeed = 20.0  // pixels per second
	DefaultK     = -0.28 // negative pushes the image outward (bulge)
	DefaultKcube = 0.10
)

// DefaultText is the placeholder paragraph scrolled when no text is given.
const DefaultText = "Somewhere beyond the glass the letters keep climbing, " +
	"line after line, toward a vanishing point that never arrives. " +
	"The lens bends what it cannot hold and the words slide past the " +
	"edge of the light, patient as the tide, repeating themselves for " +
	"no one in particular."

// Options are the construction parameters of a scene. They are immutable for
// the lifetime of a scene instance: changing any of them requires tearing the
// scene down and creating a new one.
type Options struct {
	// Text is the paragraph scrolled through the viewport.
	Text string

	// Speed is the scroll speed in pixels per second.
	Speed float64

	// K is the quadratic radial distortion coefficient. Coefficients are
	// taken literally: K and Kcube both zero draw the scene undistorted.
	// DefaultK and DefaultKcube give the usual fisheye look.
	K float64

	// Kcube is the cubic radial distortion coefficient.
	Kcube float64

	// FrameRate caps the frame rate of Run in frames per second. Zero
	// leaves pacing to the display's swap interval.
	FrameRate int

	// FontPath optionally points at a TTF/OTF file to use instead of the
	// embedded face.
	FontPath string
}

// withDefaults fills in the zero-valued text and speed fields. The
// distortion coefficients are left untouched so an explicit identity
// mapping stays expressible.
func (o Options) withDefaults() Options {
	if o.Text == "" {
		o.Text = DefaultText
	}
	if o.Speed == 0 {
		o.Speed = DefaultSpeed
	}
	return o
}
