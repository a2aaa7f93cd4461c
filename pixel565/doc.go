// Package pixel565 provides the RGB565 pixel format for the ST7735 display controller.
//
// The ST7735 is driven in 16-bit color mode (COLMOD 0x05), where each pixel
// is a packed RGB565 word: 5 bits red, 6 bits green, 5 bits blue. Words are
// transmitted high byte first, so this package stores pixels big-endian,
// two bytes per pixel. An Image's Pix buffer is therefore byte-for-byte
// what the controller receives during a RAM write.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0      1
//	Colors: 0xF800 0x07E0 (red, green)
//	Bytes:  0xF8 0x00 0x07 0xE0
//
// This package provides:
//
// - RGB565: a color type for packed 16-bit color
// - Model: a color model converting standard Go colors to RGB565
// - Image: an image.Image and draw.Image implementation in wire layout
//
// Example usage:
//
//	// Create a 128x160 image
//	img := pixel565.New(image.Rect(0, 0, 128, 160))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, 0xF800)
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(pixel565.RGB565(0xFFFF)), image.Point{}, draw.Src)
package pixel565
