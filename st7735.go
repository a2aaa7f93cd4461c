// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a 262K color single-chip TFT controller driving panels of
// up to 162x132 pixels, commonly found as 128x160 or 160x80 modules.
//
// See the examples for how to use this package.
package st7735

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/st7735/batch"
	"github.com/flavioheleno/st7735/pixel565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Orientation is the MADCTL value selecting how display RAM is scanned out
// to the panel.
type Orientation byte

// Supported orientations.
const (
	Portrait         Orientation = 0x00
	Landscape        Orientation = 0x60
	PortraitSwapped  Orientation = 0xC0
	LandscapeSwapped Orientation = 0xA0
)

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤240)
	H int // Height (default: 160, must be ≤320)

	// Panel wiring
	BGR      bool // Panel subpixel order is BGR instead of RGB
	Inverted bool // Panel colors are inverted

	// Position of the visible panel inside the controller RAM. Some
	// modules are wired a few pixels off the RAM origin.
	OffsetX int
	OffsetY int

	// Batching capacity bounds. Zero selects the defaults: W for
	// MaxRowWidth and batch.DefaultMaxBlockHeight for MaxBlockHeight.
	// Smaller bounds never change what is drawn, only how many write
	// transactions it takes.
	MaxRowWidth    int
	MaxBlockHeight int

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the ST7735 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect    image.Rectangle
	offsetX int // Panel offset inside controller RAM
	offsetY int

	// Panel subpixel order
	bgr bool

	// Batching bounds
	maxRowWidth    int
	maxBlockHeight int

	// Scratch buffer for encoding color words
	buf []byte

	// State
	halted bool
}

var _ display.Drawer = &Dev{}

// NewSPI creates a new ST7735 device connected via SPI.
//
// The SPI port is configured for 12MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x160 display, RGB order).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 128, H: 160}
	}

	if opts.W <= 0 || opts.W > 240 {
		return nil, errors.New("st7735: width must be between 1 and 240")
	}
	if opts.H <= 0 || opts.H > 320 {
		return nil, errors.New("st7735: height must be between 1 and 320")
	}
	if opts.MaxRowWidth < 0 || opts.MaxBlockHeight < 0 {
		return nil, errors.New("st7735: batching bounds must not be negative")
	}

	maxRowWidth := opts.MaxRowWidth
	if maxRowWidth == 0 {
		maxRowWidth = opts.W
	}
	maxBlockHeight := opts.MaxBlockHeight
	if maxBlockHeight == 0 {
		maxBlockHeight = batch.DefaultMaxBlockHeight
	}

	// Establish SPI connection
	// The ST7735 serial interface is specified up to ~15MHz for writes.
	// Using Mode0 and 12MHz
	c, err := p.Connect(12*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:              c,
		dc:             dc,
		rst:            opts.RST,
		rect:           image.Rect(0, 0, opts.W, opts.H),
		offsetX:        opts.OffsetX,
		offsetY:        opts.OffsetY,
		bgr:            opts.BGR,
		maxRowWidth:    maxRowWidth,
		maxBlockHeight: maxBlockHeight,
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735: failed to pull RST low: %w", err)
		}
		time.Sleep(100 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735: failed to pull RST high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	if err := d.writeCommand(cmdSWRESET); err != nil {
		return err
	}
	time.Sleep(200 * time.Millisecond)

	if err := d.writeCommand(cmdSLPOUT); err != nil {
		return err
	}
	time.Sleep(200 * time.Millisecond)

	invert := byte(cmdINVOFF)
	if opts.Inverted {
		invert = cmdINVON
	}
	madctl := byte(0x00)
	if opts.BGR {
		madctl = madctlBGR
	}

	seq := []struct {
		cmd  byte
		args []byte
	}{
		{cmdFRMCTR1, []byte{0x01, 0x2C, 0x2D}}, // Frame rate: fosc/(1x2+40) * (160+44+45)
		{cmdFRMCTR2, []byte{0x01, 0x2C, 0x2D}},
		{cmdFRMCTR3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{cmdINVCTR, []byte{0x07}},             // No inversion
		{cmdPWCTR1, []byte{0xA2, 0x02, 0x84}}, // -4.6V, AUTO mode
		{cmdPWCTR2, []byte{0xC5}},             // VGH25=2.4C VGSEL=-10 VGH=3*AVDD
		{cmdPWCTR3, []byte{0x0A, 0x00}},       // Opamp current small, boost frequency
		{cmdPWCTR4, []byte{0x8A, 0x2A}},
		{cmdPWCTR5, []byte{0x8A, 0xEE}},
		{cmdVMCTR1, []byte{0x0E}},
		{invert, nil},
		{cmdMADCTL, []byte{madctl}},
		{cmdCOLMOD, []byte{0x05}}, // 16-bit color
	}
	for _, c := range seq {
		if err := d.writeCommand(c.cmd, c.args...); err != nil {
			return err
		}
	}

	// Turn display ON
	if err := d.writeCommand(cmdDISPON); err != nil {
		return err
	}
	time.Sleep(200 * time.Millisecond)

	return nil
}

// writeCommand sends a command byte followed by its parameter bytes, if any.
func (d *Dev) writeCommand(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return d.writeData(args)
}

// writeData sends a slice of data bytes.
func (d *Dev) writeData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// setAddrWindow sets the rectangular region of display RAM that the next
// memory write will fill, left-to-right then top-to-bottom.
func (d *Dev) setAddrWindow(x0, y0, x1, y1 uint16) error {
	cx0 := x0 + uint16(d.offsetX)
	cx1 := x1 + uint16(d.offsetX)
	if err := d.writeCommand(cmdCASET, byte(cx0>>8), byte(cx0), byte(cx1>>8), byte(cx1)); err != nil {
		return err
	}
	cy0 := y0 + uint16(d.offsetY)
	cy1 := y1 + uint16(d.offsetY)
	return d.writeCommand(cmdRASET, byte(cy0>>8), byte(cy0), byte(cy1>>8), byte(cy1))
}

// ramWrite streams colors into the current address window as big-endian
// 16-bit words.
func (d *Dev) ramWrite(colors []uint16) error {
	if err := d.writeCommand(cmdRAMWR); err != nil {
		return err
	}
	need := len(colors) * 2
	if cap(d.buf) < need {
		d.buf = make([]byte, need)
	}
	buf := d.buf[:need]
	for i, c := range colors {
		binary.BigEndian.PutUint16(buf[2*i:], c)
	}
	return d.writeData(buf)
}

// writeRow writes a batched row as one window setup plus one memory write.
func (d *Dev) writeRow(r batch.Row) error {
	if err := d.setAddrWindow(r.XLeft, r.Y, r.XRight, r.Y); err != nil {
		return err
	}
	return d.ramWrite(r.Colors)
}

// writeBlock writes a batched block as one window setup plus one memory write.
func (d *Dev) writeBlock(b batch.Block) error {
	if err := d.setAddrWindow(b.XLeft, b.YTop, b.XRight, b.YBottom); err != nil {
		return err
	}
	return d.ramWrite(b.Colors)
}

// SetPixel sets a single pixel, paying the full addressing overhead for it.
// Prefer DrawPixels or Draw for anything larger than isolated pixels.
func (d *Dev) SetPixel(x, y uint16, c pixel565.RGB565) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	if err := d.setAddrWindow(x, y, x, y); err != nil {
		return err
	}
	return d.ramWrite([]uint16{uint16(c)})
}

// DrawPixels pulls all pixels from src and writes them to the display,
// batching spatially contiguous pixels into as few write transactions as
// the configured bounds allow.
//
// The first transport error aborts the remaining writes; no retry is
// attempted.
func (d *Dev) DrawPixels(src batch.PixelSource) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	blocks, err := batch.Collect(src, d.maxRowWidth, d.maxBlockHeight)
	if err != nil {
		return err
	}
	for {
		b, ok := blocks.Next()
		if !ok {
			return nil
		}
		if err := d.writeBlock(b); err != nil {
			return err
		}
	}
}

// DrawRows pulls all rows from src and writes each as its own transaction,
// skipping the block grouping stage.
func (d *Dev) DrawRows(src batch.RowSource) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	for {
		r, ok := src.Next()
		if !ok {
			return nil
		}
		if err := d.writeRow(r); err != nil {
			return err
		}
	}
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return pixel565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the display.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	// Keep sp aligned with dst.Min if clipping moved it.
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	return d.DrawPixels(newImageSource(src, clipped, sp))
}

// Write writes raw pixel data to the display in big-endian RGB565 format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() * 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("st7735: halted")
	}
	if len(pixels) != d.rect.Dx()*d.rect.Dy()*2 {
		return 0, errors.New("st7735: invalid buffer size")
	}
	if err := d.setAddrWindow(0, 0, uint16(d.rect.Dx()-1), uint16(d.rect.Dy()-1)); err != nil {
		return 0, err
	}
	if err := d.writeCommand(cmdRAMWR); err != nil {
		return 0, err
	}
	if err := d.writeData(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetOrientation sets how display RAM is scanned out to the panel.
func (d *Dev) SetOrientation(o Orientation) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	madctl := byte(o)
	if d.bgr {
		madctl |= madctlBGR
	}
	return d.writeCommand(cmdMADCTL, madctl)
}

// SetOffset sets the position of the visible panel inside the controller
// RAM. It affects subsequent draws only.
func (d *Dev) SetOffset(dx, dy int) {
	d.offsetX = dx
	d.offsetY = dy
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	cmd := byte(cmdINVOFF)
	if invert {
		cmd = cmdINVON
	}
	return d.writeCommand(cmd)
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.writeCommand(cmdDISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// imageSource streams the pixels of an image region in row-major order,
// the order the batching collectors exploit best.
type imageSource struct {
	img  image.Image
	fast *pixel565.Image // Non-nil when img is already in wire format
	dst  image.Rectangle
	dp   image.Point // Source offset: src pixel = display pixel + dp
	x, y int
}

func newImageSource(img image.Image, dst image.Rectangle, sp image.Point) *imageSource {
	s := &imageSource{
		img: img,
		dst: dst,
		dp:  sp.Sub(dst.Min),
		x:   dst.Min.X,
		y:   dst.Min.Y,
	}
	if fast, ok := img.(*pixel565.Image); ok {
		s.fast = fast
	}
	return s
}

// Next implements batch.PixelSource.
func (s *imageSource) Next() (batch.Pixel, bool) {
	if s.y >= s.dst.Max.Y {
		return batch.Pixel{}, false
	}
	sx, sy := s.x+s.dp.X, s.y+s.dp.Y
	var c pixel565.RGB565
	if s.fast != nil {
		c = s.fast.RGB565At(sx, sy)
	} else {
		c = pixel565.From(s.img.At(sx, sy))
	}
	p := batch.Pixel{X: uint16(s.x), Y: uint16(s.y), Color: uint16(c)}
	s.x++
	if s.x >= s.dst.Max.X {
		s.x = s.dst.Min.X
		s.y++
	}
	return p, true
}
