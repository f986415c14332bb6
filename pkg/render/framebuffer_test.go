package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(ColorBlack)
	fb.SetPixel(1, 2, ColorRed)
	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(4, 0, ColorRed)

	assert.Equal(t, ColorRed, fb.GetPixel(1, 2))
	assert.Equal(t, ColorBlack, fb.GetPixel(0, 0))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(9, 9))
}

func TestFramebufferDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		on             [][2]int
	}{
		{"horizontal", 0, 2, 4, 2, [][2]int{{0, 2}, {2, 2}, {4, 2}}},
		{"vertical reversed", 3, 4, 3, 0, [][2]int{{3, 0}, {3, 2}, {3, 4}}},
		{"diagonal", 0, 0, 4, 4, [][2]int{{0, 0}, {2, 2}, {4, 4}}},
		{"clipped by bounds", -5, 1, 10, 1, [][2]int{{0, 1}, {4, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(5, 5)
			fb.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)
			for _, p := range tc.on {
				assert.Equal(t, ColorWhite, fb.GetPixel(p[0], p[1]), "pixel %v", p)
			}
		})
	}
}

func TestFramebufferDrawRectOutline(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	fb.DrawRectOutline(1, 1, 4, 3, ColorGreen)

	assert.Equal(t, ColorGreen, fb.GetPixel(1, 1))
	assert.Equal(t, ColorGreen, fb.GetPixel(4, 3))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(2, 2), "inside stays empty")
}

func TestFramebufferIsDrawImage(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	var img draw.Image = fb
	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(ColorBlue), image.Point{}, draw.Src)

	assert.Equal(t, ColorBlue, fb.GetPixel(2, 2))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(0, 0))
	assert.Equal(t, image.Rect(0, 0, 4, 4), fb.Bounds())
}

func TestFramebufferSnapshot(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(1, 0, ColorRed)

	img := fb.Snapshot(3)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())
	assert.Equal(t, ColorRed, img.RGBAAt(4, 1))
	assert.Equal(t, ColorBlack, img.RGBAAt(1, 4))

	assert.Equal(t, image.Rect(0, 0, 2, 2), fb.Snapshot(0).Bounds())
}

func TestDrawLabel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 16))
	DrawLabel(img, 2, 12, "XW", ColorWhite)

	lit := 0
	for y := range 16 {
		for x := range 40 {
			if img.RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(2, 1, ColorCyan)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, fb.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, ColorCyan, color.RGBAModel.Convert(img.At(2, 1)))
}

func TestWritePNGInvalidPath(t *testing.T) {
	assert.Error(t, WritePNG("/nonexistent/dir/frame.png", image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestAxisColorAndName(t *testing.T) {
	assert.Equal(t, ColorRed, AxisColor(0))
	assert.Equal(t, ColorYellow, AxisColor(3))
	assert.Equal(t, AxisColor(1), AxisColor(9))
	assert.Equal(t, ColorGray, AxisColor(-1))

	assert.Equal(t, "X", AxisName(0))
	assert.Equal(t, "W", AxisName(3))
	assert.Equal(t, "A7", AxisName(7))
}
