// Package batch groups individually addressed pixels into windowed write
// transactions for displays whose bus charges a fixed addressing overhead
// per transaction.
package batch

// Reference capacity bounds. Collectors take explicit bounds; these are the
// values used by the st7735 driver when the caller does not override them.
const (
	DefaultMaxRowWidth    = 240
	DefaultMaxBlockHeight = 10
)

// Pixel is a single addressed pixel. Color is an opaque packed 16-bit value
// (typically RGB565); the collectors forward it without interpreting it.
type Pixel struct {
	X, Y  uint16
	Color uint16
}

// Row is a maximal run of horizontally contiguous pixels at constant Y.
// Colors[i] is the color of pixel (XLeft+i, Y).
type Row struct {
	XLeft  uint16
	XRight uint16
	Y      uint16
	Colors []uint16
}

// Width returns the number of pixels covered by the row.
func (r Row) Width() int {
	return int(r.XRight) - int(r.XLeft) + 1
}

// Block is a maximal stack of vertically contiguous rows sharing the same
// horizontal extent. Colors is row-major: each contained row's colors in
// YTop to YBottom order, each row left to right.
type Block struct {
	XLeft   uint16
	XRight  uint16
	YTop    uint16
	YBottom uint16
	Colors  []uint16
}

// Width returns the number of columns covered by the block.
func (b Block) Width() int {
	return int(b.XRight) - int(b.XLeft) + 1
}

// Height returns the number of rows covered by the block.
func (b Block) Height() int {
	return int(b.YBottom) - int(b.YTop) + 1
}

// PixelSource is an ordered stream of pixels. Next returns the next pixel,
// or ok=false once the stream is exhausted.
//
// Run detection only pays off when pixels that belong to the same run
// arrive consecutively in row-major order. Out-of-order input is never
// incorrect, it just yields more, smaller rows.
type PixelSource interface {
	Next() (p Pixel, ok bool)
}

// RowSource is an ordered stream of rows.
type RowSource interface {
	Next() (r Row, ok bool)
}

// SliceSource adapts a pixel slice to a PixelSource.
type SliceSource struct {
	pixels []Pixel
}

// NewSliceSource returns a source that yields the given pixels in order.
func NewSliceSource(pixels []Pixel) *SliceSource {
	return &SliceSource{pixels: pixels}
}

// Next implements PixelSource.
func (s *SliceSource) Next() (Pixel, bool) {
	if len(s.pixels) == 0 {
		return Pixel{}, false
	}
	p := s.pixels[0]
	s.pixels = s.pixels[1:]
	return p, true
}

// Collect chains both collection stages: pixels from src are grouped into
// rows, and the rows into blocks.
func Collect(src PixelSource, maxWidth, maxHeight int) (*BlockCollector, error) {
	rows, err := NewRowCollector(src, maxWidth)
	if err != nil {
		return nil, err
	}
	return NewBlockCollector(rows, maxHeight)
}
