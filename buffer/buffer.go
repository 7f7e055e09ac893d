// Package buffer implements a lazy, release-windowed view over a one-shot
// input source (spec.md §4.3), grounded on tfl::InputBuffer
// (original_source/include/tfl/InputBuffer.hpp): values are pulled from the
// source on demand as higher indices are accessed, already-pulled values
// are kept in a FIFO window, and Release drops a consumed prefix and shifts
// every remaining index down.
package buffer

// Source is pulled from exactly once, in order, to populate an
// InputBuffer. Next returns ok=false once the source is exhausted; it must
// keep returning ok=false afterward.
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc adapts a plain pull function to Source.
type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) { return f() }

// InputBuffer is a FIFO of already-pulled values plus a wrapped Source.
// Indexing past the buffered window pulls from the source until the index
// is populated or the source is exhausted.
type InputBuffer[T any] struct {
	buf       []T
	source    Source[T]
	exhausted bool
}

// New wraps source in a lazy InputBuffer. source is expected to live at
// least as long as the buffer.
func New[T any](source Source[T]) *InputBuffer[T] {
	return &InputBuffer[T]{source: source}
}

// FromSlice builds an InputBuffer over an already-known-complete slice, the
// common case for lexing a fully-read file or literal string.
func FromSlice[T any](values []T) *InputBuffer[T] {
	i := 0
	return New[T](SourceFunc[T](func() (T, bool) {
		if i >= len(values) {
			var zero T
			return zero, false
		}
		v := values[i]
		i++
		return v, true
	}))
}

// ConsumedAll reports whether the source has been fully drained. Might
// never become true for an infinite source.
func (b *InputBuffer[T]) ConsumedAll() bool { return b.exhausted }

// BufferedLen returns the number of values currently held in the window.
func (b *InputBuffer[T]) BufferedLen() int { return len(b.buf) }

func (b *InputBuffer[T]) shift() bool {
	if b.exhausted {
		return false
	}
	v, ok := b.source.Next()
	if !ok {
		b.exhausted = true
		return false
	}
	b.buf = append(b.buf, v)
	return true
}

func (b *InputBuffer[T]) ensure(idx int) bool {
	for len(b.buf) <= idx {
		if !b.shift() {
			return false
		}
	}
	return true
}

// At returns the value at idx relative to the current window, pulling from
// the source as needed.
func (b *InputBuffer[T]) At(idx int) (T, error) {
	if idx < 0 || !b.ensure(idx) {
		var zero T
		return zero, tagged(ErrExhausted, "index %d out of bounds", idx)
	}
	return b.buf[idx], nil
}

// Release drops the first count values from the window and shifts every
// remaining index down by count. Any Cursor obtained before the call is
// invalidated; re-derive one with Begin afterward.
func (b *InputBuffer[T]) Release(count int) error {
	if count < 0 || count > len(b.buf) {
		return tagged(ErrExhausted, "cannot release %d values: only %d buffered", count, len(b.buf))
	}
	b.buf = b.buf[count:]
	return nil
}

// Cursor walks a buffer from a fixed starting offset. It is invalidated by
// a Release on its buffer (spec.md §4.3); AtEnd plays the role of tfl's
// Sentinel, which carries no index and so survives a Release.
type Cursor[T any] struct {
	buf *InputBuffer[T]
	idx int
}

// Begin returns a Cursor positioned at the start of the current window.
func (b *InputBuffer[T]) Begin() *Cursor[T] {
	return &Cursor[T]{buf: b, idx: 0}
}

// Next returns the value at the cursor and advances it, pulling from the
// source if necessary. ok is false once the cursor reaches the end.
func (c *Cursor[T]) Next() (value T, ok bool) {
	v, err := c.buf.At(c.idx)
	if err != nil {
		var zero T
		return zero, false
	}
	c.idx++
	return v, true
}

// AtEnd reports whether the underlying source is exhausted and the cursor
// has walked every value pulled so far.
func (c *Cursor[T]) AtEnd() bool {
	return c.buf.exhausted && c.idx >= len(c.buf.buf)
}
