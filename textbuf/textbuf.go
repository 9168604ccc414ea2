// Package textbuf implements the validate-on-commit editing discipline
// shared by the raw-expression editor and the evaluation preview's
// context editor.
//
// Free-text edits are accepted character by character without
// validation or callbacks; the buffered text is only parsed on an
// explicit commit (the UI's loss-of-focus trigger). A failed parse
// shows a generic message and never echoes the rejected input back.
package textbuf

import "github.com/ohler55/ojg/oj"

// parseErrMessage is deliberately generic: reflecting the invalid
// input back would open an injection surface.
const parseErrMessage = "invalid JSON"

// Buffer holds the in-progress text of one JSON editor.
type Buffer struct {
	text     string
	dirty    bool
	errMsg   string
	onCommit func(any)
}

// New returns a Buffer whose successful commits are forwarded to
// onCommit.
func New(onCommit func(any)) *Buffer {
	return &Buffer{onCommit: onCommit}
}

// SetText records a local edit. No validation happens and no callback
// is invoked until Commit.
func (b *Buffer) SetText(s string) {
	b.text = s
	b.dirty = true
}

// Commit parses the buffered text as JSON. On success the parsed value
// is forwarded to the commit callback, any prior error is cleared, and
// the buffer is marked clean. On failure a generic error message is
// recorded, the callback is not invoked, and the text is retained for
// further editing. Commit reports whether the parse succeeded.
func (b *Buffer) Commit() bool {
	v, err := oj.ParseString(b.text)
	if err != nil {
		b.errMsg = parseErrMessage
		return false
	}
	b.errMsg = ""
	b.dirty = false
	if b.onCommit != nil {
		b.onCommit(v)
	}
	return true
}

// Sync replaces the buffered text with the rendering of an externally
// updated value, unless a local edit is still uncommitted: in-flight
// edits are never silently overwritten by a stale external value
// racing in.
func (b *Buffer) Sync(v any) {
	if b.dirty {
		return
	}
	b.text = oj.JSON(v, 2)
	b.errMsg = ""
}

// Text returns the buffered text.
func (b *Buffer) Text() string { return b.text }

// Err returns the error message from the last failed commit, or empty.
func (b *Buffer) Err() string { return b.errMsg }

// Dirty reports whether a local edit is awaiting commit.
func (b *Buffer) Dirty() bool { return b.dirty }
