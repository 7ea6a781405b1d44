package main

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf16"
)

const (
	iconSize = 64

	// NOTIFYICONDATA.szTip holds 128 UTF-16 units including the terminator.
	maxTooltip = 127
)

var (
	iconBackground = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	iconForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	menuShowStatus = "Show status"
	menuExit       = "Exit"
)

func tooltipText(name, msg string) string {
	return name + " - " + msg
}

// tooltipUTF16 encodes s for szTip, cutting it to maxTooltip units without
// splitting a surrogate pair.
func tooltipUTF16(s string) []uint16 {
	u := utf16.Encode([]rune(s))
	if len(u) <= maxTooltip {
		return u
	}

	n := maxTooltip
	if utf16.IsSurrogate(rune(u[n-1])) && u[n-1] < 0xDC00 {
		n--
	}
	return u[:n]
}

// trayIconImage is a blue square with a white square inside.
func trayIconImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: iconBackground}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(16, 16, 48, 48), &image.Uniform{C: iconForeground}, image.Point{}, draw.Src)
	return img
}

// bgraBits converts img to the top-down 32bpp BGRA layout GDI bitmaps expect.
func bgraBits(img *image.RGBA) []byte {
	b := img.Bounds()
	bits := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			bits = append(bits, c.B, c.G, c.R, c.A)
		}
	}
	return bits
}
