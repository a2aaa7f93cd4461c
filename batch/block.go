package batch

import "errors"

// BlockCollector collapses a row stream into maximal rectangular groups of
// identically-bounded, vertically contiguous rows.
//
// Like RowCollector it is a single-pass, non-restartable accumulator owned
// by a single caller.
type BlockCollector struct {
	src       RowSource
	maxHeight int

	cur     Block
	rows    int
	spare   []uint16
	started bool
	done    bool
}

// NewBlockCollector returns a collector that reads rows from src and emits
// blocks of at most maxHeight rows. A full block is flushed as soon as it
// can no longer grow; the row that did not fit starts the next block.
func NewBlockCollector(src RowSource, maxHeight int) (*BlockCollector, error) {
	if maxHeight < 1 {
		return nil, errors.New("batch: block capacity must be at least 1")
	}
	return &BlockCollector{src: src, maxHeight: maxHeight}, nil
}

// Next returns the next maximal block, or ok=false once the source is
// exhausted and the final pending block has been emitted.
//
// The returned block's Colors share the collector's buffers and are only
// valid until the next call to Next. Callers that retain blocks must copy.
func (c *BlockCollector) Next() (Block, bool) {
	if c.done {
		return Block{}, false
	}
	for {
		row, ok := c.src.Next()
		if !ok {
			c.done = true
			if !c.started {
				return Block{}, false
			}
			c.started = false
			return c.cur, true
		}
		if !c.started {
			c.begin(row)
			c.started = true
			continue
		}
		if int(row.Y) == int(c.cur.YBottom)+1 && row.XLeft == c.cur.XLeft && row.XRight == c.cur.XRight && c.rows < c.maxHeight {
			c.cur.Colors = append(c.cur.Colors, row.Colors...)
			c.cur.YBottom = row.Y
			c.rows++
			continue
		}
		blk := c.cur
		c.begin(row)
		return blk, true
	}
}

// begin starts a new block from r, copying its colors so that r may be
// invalidated by the next pull from the row source.
func (c *BlockCollector) begin(r Row) {
	buf := c.spare[:0]
	c.spare = c.cur.Colors
	c.cur = Block{
		XLeft:   r.XLeft,
		XRight:  r.XRight,
		YTop:    r.Y,
		YBottom: r.Y,
		Colors:  append(buf, r.Colors...),
	}
	c.rows = 1
}
