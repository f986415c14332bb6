package render

import (
	"image/color"
	"strconv"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer presents framebuffers on a terminal.
type TerminalRenderer struct {
	term          *uv.Terminal
	width, height int // terminal cells
}

// NewTerminalRenderer creates a renderer for a terminal of the given size
// in cells.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{term: term, width: width, height: height}
}

// FramebufferSize returns the framebuffer size that fills the terminal.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.width, t.height * 2
}

// Render draws fb on the terminal screen.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.term, uv.Rect(0, 0, t.width, t.height))
}

// Flush writes pending changes to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.term.Display()
}

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorOrange  = color.RGBA{255, 136, 0, 255}
)

// axisColors follows the X=red, Y=green, Z=blue convention and continues
// with distinct hues for the higher axes.
var axisColors = []color.RGBA{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// AxisColor returns the gizmo color of an axis. Colors repeat after the
// eighth axis.
func AxisColor(axis int) color.RGBA {
	if axis < 0 {
		return ColorGray
	}
	return axisColors[axis%len(axisColors)]
}

// AxisName returns the conventional letter of an axis: X, Y, Z, W, V, U,
// then A<n> for the rest.
func AxisName(axis int) string {
	const names = "XYZWVU"
	if axis >= 0 && axis < len(names) {
		return names[axis : axis+1]
	}
	return "A" + strconv.Itoa(axis)
}

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
