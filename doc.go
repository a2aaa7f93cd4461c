// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a single-chip TFT controller for panels of up to 162x132
// pixels, driven here in 16-bit RGB565 color mode. This driver implements
// the display.Drawer interface from periph.io.
//
// # Transactional batching
//
// Every write to the controller pays a fixed addressing overhead: a column
// address command (CASET), a row address command (RASET) and a memory write
// command (RAMWR) precede the pixel data. Writing pixels one at a time
// spends most of the bus on addressing.
//
// The driver instead batches pixels through the batch subpackage: runs of
// horizontally contiguous pixels are grouped into rows, and stacks of
// identically-bounded rows into rectangular blocks. Each row or block costs
// one window setup and one sequential memory write, whatever its size. For
// row-major input such as a full image, this collapses thousands of
// transactions into a handful.
//
// # Hardware Connection
//
// Connect the ST7735 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/st7735"
//		"github.com/flavioheleno/st7735/pixel565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := st7735.NewSPI(spiBus, dcPin, &st7735.Opts{
//			W: 128,
//			H: 160,
//		})
//		defer dev.Halt()
//
//		// Create an image in the display's native format
//		img := pixel565.New(dev.Bounds())
//
//		// Draw a gradient (from black to white)
//		for y := 0; y < 160; y++ {
//			for x := 0; x < 128; x++ {
//				gray := uint16(x * 31 / 128)
//				img.SetRGB565(x, y, pixel565.RGB565(gray<<11|gray<<6|gray))
//			}
//		}
//
//		// Display the image
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RES) pin connected to a GPIO, provide it in
// the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := st7735.NewSPI(spiBus, dcPin, &st7735.Opts{
//		W:   128,
//		H:   160,
//		RST: rstPin, // Optional reset pin
//	})
//
// The driver performs a hardware reset sequence (pull RST low, wait, pull
// high, wait) during initialization. If RST is nil the driver relies on
// power-on reset.
//
// # Drawing Modes
//
// The driver supports three drawing paths:
//
// ## Full-Frame Update
//
// Write raw big-endian RGB565 data directly. Use this for maximum
// performance when updating the entire frame:
//
//	pixels := make([]byte, 128*160*2) // 40960 bytes for 128x160
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// ## Image Drawing
//
// Use the Draw method with any image.Image. Pixels are streamed row-major
// through the batching pipeline; a *pixel565.Image source skips color
// conversion entirely:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// ## Pixel Streams
//
// Use DrawPixels with any batch.PixelSource to write an arbitrary set of
// pixels. Contiguous pixels are merged into windowed writes automatically:
//
//	dev.DrawPixels(batch.NewSliceSource(pixels))
//
// # Panel Variants
//
// Modules differ in subpixel order, inversion and RAM offset. If colors
// look wrong set BGR; if the image looks like a photo negative set
// Inverted; if the image is shifted a few pixels set OffsetX/OffsetY:
//
//	Opts{W: 160, H: 80, BGR: true, Inverted: true, OffsetX: 1, OffsetY: 26}
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package st7735
