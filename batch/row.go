package batch

import "errors"

// RowCollector collapses a pixel stream into maximal horizontal runs.
//
// It is a single-pass, non-restartable accumulator: it holds exactly one
// in-progress run and advances its source only when Next is called. A
// collector instance must be owned by a single caller for its lifetime.
type RowCollector struct {
	src      PixelSource
	maxWidth int

	cur     Row
	spare   []uint16
	started bool
	done    bool
}

// NewRowCollector returns a collector that reads pixels from src and emits
// rows of at most maxWidth colors. A run that would grow past maxWidth is
// closed early and the overflowing pixel starts the next run.
func NewRowCollector(src PixelSource, maxWidth int) (*RowCollector, error) {
	if maxWidth < 1 {
		return nil, errors.New("batch: row capacity must be at least 1")
	}
	return &RowCollector{
		src:      src,
		maxWidth: maxWidth,
		cur:      Row{Colors: make([]uint16, 0, maxWidth)},
		spare:    make([]uint16, 0, maxWidth),
	}, nil
}

// Next returns the next maximal row, or ok=false once the source is
// exhausted and the final pending run has been emitted.
//
// The returned row's Colors share the collector's buffers and are only
// valid until the next call to Next. Callers that retain rows must copy.
func (c *RowCollector) Next() (Row, bool) {
	if c.done {
		return Row{}, false
	}
	for {
		px, ok := c.src.Next()
		if !ok {
			c.done = true
			if !c.started {
				return Row{}, false
			}
			c.started = false
			return c.cur, true
		}
		if !c.started {
			c.begin(px)
			c.started = true
			continue
		}
		if px.Y == c.cur.Y && int(px.X) == int(c.cur.XRight)+1 && len(c.cur.Colors) < c.maxWidth {
			c.cur.Colors = append(c.cur.Colors, px.Color)
			c.cur.XRight = px.X
			continue
		}
		row := c.cur
		c.begin(px)
		return row, true
	}
}

// begin starts a new run from px in the buffer not occupied by the row
// about to be handed out.
func (c *RowCollector) begin(px Pixel) {
	buf := c.spare[:0]
	c.spare = c.cur.Colors
	c.cur = Row{
		XLeft:  px.X,
		XRight: px.X,
		Y:      px.Y,
		Colors: append(buf, px.Color),
	}
}
