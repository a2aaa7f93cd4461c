// Package pixel565 provides the 16-bit RGB565 pixel format used by the ST7735 display.
//
// Pixels are stored big-endian, two bytes per pixel, matching the byte order
// the controller expects on the wire. This package provides the RGB565 color
// type and an Image implementation backed by that layout.
package pixel565

import (
	"image"
	"image/color"
)

// RGB565 is a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// RGBA converts the RGB565 color to standard RGBA.
// Each channel is scaled from its 5- or 6-bit range to 16-bit.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11&0x1F) * 0xFFFF / 0x1F
	g = uint32(c>>5&0x3F) * 0xFFFF / 0x3F
	b = uint32(c&0x1F) * 0xFFFF / 0x1F
	return r, g, b, 0xFFFF
}

// From packs any color.Color into RGB565.
func From(c color.Color) RGB565 {
	if rgb, ok := c.(RGB565); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; keep the top 5/6/5 bits.
	return RGB565(r>>11<<11 | g>>10<<5 | b>>11)
}

func toRGB565(c color.Color) color.Color {
	return From(c)
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB565 image with big-endian packed pixels, two bytes per pixel.
type Image struct {
	Pix    []byte          // Pixel data, big-endian (high byte first)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// New creates a new RGB565 image with the specified bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, From(c))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

// PixOffset returns the byte offset of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
