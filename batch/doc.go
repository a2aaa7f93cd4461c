// Package batch implements the two-stage run-length grouping used to drive
// raster display controllers efficiently over a narrow serial bus.
//
// Writing a single pixel to a controller such as the ST7735 costs a fixed
// addressing overhead: a column address command, a row address command, and
// a RAM write command, before the two color bytes themselves. Issued per
// pixel, the overhead dwarfs the payload. The controller's address window
// removes it for rectangular regions: after one window setup, a single RAM
// write streams any number of pixels left-to-right, top-to-bottom.
//
// This package folds an ordered pixel stream into the fewest such windowed
// writes, in two stages:
//
//   - RowCollector collapses the stream into maximal horizontal runs
//     (contiguous x, constant y), emitted as Row records.
//   - BlockCollector collapses rows into maximal rectangles of vertically
//     contiguous rows sharing the same horizontal extent, emitted as Block
//     records.
//
// Both collectors are pull-based: each call to Next performs bounded work
// against the upstream source and returns a single record. They hold one
// in-progress record at a time and reuse their buffers between emissions,
// so a returned Row or Block is only valid until the next call to Next.
//
// # Capacity bounds
//
// Each collector takes an explicit capacity bound. A row that would exceed
// its bound is closed early and the overflowing pixel opens the next run; a
// block that is full simply stops accepting rows and is flushed. Reaching a
// bound is never an error, it only costs an extra transaction. Bounds below
// one are rejected at construction.
//
// # Ordering
//
// Correctness never depends on input order: any finite pixel sequence is
// reproduced exactly, in order, by the emitted records. Batching quality
// does depend on it; row-major delivery produces maximal runs, anything
// else produces more, smaller ones.
//
// Typical use with the st7735 driver:
//
//	blocks, err := batch.Collect(src, 240, 10)
//	if err != nil {
//		return err
//	}
//	for {
//		b, ok := blocks.Next()
//		if !ok {
//			break
//		}
//		// one SET_WINDOW + one RAMWR per block
//	}
package batch
