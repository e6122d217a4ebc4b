package textedit

import "time"

// BlinkInterval is how long the caret stays in each blink phase.
const BlinkInterval = 400 * time.Millisecond

// sentinel stands in for the caret character when the caret sits past the
// last character of the buffer. It is never part of the committed text.
const sentinel = '\x00'

// Editor is a caret-granular split of an editable text buffer: the runes
// before the caret, the rune the caret sits on, and the runes after it.
// prefix + caret + suffix reconstructs the buffer whenever the caret rune
// is real; at end-of-buffer the caret holds the sentinel instead.
//
// All indexing is by code point, never by byte or display width.
type Editor struct {
	prefix []rune
	caret  rune
	suffix []rune

	shown     bool
	lastBlink time.Time
}

// Load replaces the buffer with the given field value and puts the caret
// at the end.
func (e *Editor) Load(value string) {
	e.prefix = []rune(value)
	e.caret = sentinel
	e.suffix = nil
	e.shown = true
	e.lastBlink = time.Now()
}

// Insert appends a rune before the caret.
func (e *Editor) Insert(r rune) {
	e.prefix = append(e.prefix, r)
}

// Backspace removes the rune before the caret, a no-op on an empty prefix.
func (e *Editor) Backspace() {
	if len(e.prefix) > 0 {
		e.prefix = e.prefix[:len(e.prefix)-1]
	}
}

// MoveLeft shifts the caret one rune toward the start of the buffer.
func (e *Editor) MoveLeft() {
	if len(e.prefix) == 0 {
		return
	}
	if e.caret != sentinel {
		e.suffix = append([]rune{e.caret}, e.suffix...)
	}
	e.caret = e.prefix[len(e.prefix)-1]
	e.prefix = e.prefix[:len(e.prefix)-1]
	e.resetBlink()
}

// MoveRight shifts the caret one rune toward the end of the buffer.
func (e *Editor) MoveRight() {
	if e.caret == sentinel {
		return
	}
	e.prefix = append(e.prefix, e.caret)
	if len(e.suffix) > 0 {
		e.caret = e.suffix[0]
		e.suffix = e.suffix[1:]
	} else {
		e.caret = sentinel
	}
	e.resetBlink()
}

// advance applies the soft-wrap rule for one rune: a line break starts a
// new row, and a row that fills up to wrapWidth columns wraps.
func advance(r rune, x, y, wrapWidth int) (int, int) {
	if r == '\n' {
		return 0, y + 1
	}
	x++
	if wrapWidth > 0 && x >= wrapWidth {
		return x - wrapWidth, y + 1
	}
	return x, y
}

// CursorPosition projects the caret's linear offset onto wrapped screen
// coordinates for the given wrap width.
func (e *Editor) CursorPosition(wrapWidth int) (int, int) {
	x, y := 0, 0
	for _, r := range e.prefix {
		x, y = advance(r, x, y, wrapWidth)
	}
	return x, y
}

// SetCursorPosition is the inverse projection: it walks the full buffer
// under the same wrap rule and re-splits it at the first position at or
// past column x on row y, or at a line break landing exactly on row y.
// A target row beyond the buffer moves the caret to end-of-buffer.
func (e *Editor) SetCursorPosition(x, y, wrapWidth int) {
	buf := e.buffer()

	curX, curY := 0, 0
	for i, r := range buf {
		if (curX >= x && curY == y) || (r == '\n' && curY == y) {
			e.prefix = buf[:i]
			e.caret = buf[i]
			e.suffix = buf[i+1:]
			e.resetBlink()
			return
		}
		curX, curY = advance(r, curX, curY, wrapWidth)
	}

	e.prefix = buf
	e.caret = sentinel
	e.suffix = nil
	e.resetBlink()
}

// MoveUp moves the caret one visual row up, holding the screen column
// constant. On the top row it snaps to the start of the buffer.
func (e *Editor) MoveUp(wrapWidth int) {
	if len(e.prefix) == 0 {
		return
	}
	x, y := e.CursorPosition(wrapWidth)
	if y > 0 {
		e.SetCursorPosition(x, y-1, wrapWidth)
	} else {
		e.SetCursorPosition(0, 0, wrapWidth)
	}
}

// MoveDown moves the caret one visual row down, holding the screen column
// constant. Past the last row it snaps to the end of the buffer.
func (e *Editor) MoveDown(wrapWidth int) {
	x, y := e.CursorPosition(wrapWidth)
	e.SetCursorPosition(x, y+1, wrapWidth)
}

// Blink toggles the caret visibility once the blink interval has elapsed.
func (e *Editor) Blink(now time.Time) {
	if now.Sub(e.lastBlink) > BlinkInterval {
		e.shown = !e.shown
		e.lastBlink = now
	}
}

func (e *Editor) resetBlink() {
	e.shown = true
	e.lastBlink = time.Now()
}

// buffer reconstructs the full rune buffer without blink artifacts.
func (e *Editor) buffer() []rune {
	buf := make([]rune, 0, len(e.prefix)+1+len(e.suffix))
	buf = append(buf, e.prefix...)
	if e.caret != sentinel {
		buf = append(buf, e.caret)
	}
	buf = append(buf, e.suffix...)
	return buf
}

// Text returns the committed buffer value for a description field.
func (e *Editor) Text() string {
	return string(e.buffer())
}

// TitleText returns the committed buffer value for a title field, with
// embedded line breaks stripped since titles are single-line.
func (e *Editor) TitleText() string {
	out := make([]rune, 0, len(e.prefix)+1+len(e.suffix))
	for _, r := range e.buffer() {
		if r != '\n' {
			out = append(out, r)
		}
	}
	return string(out)
}

// Display returns the buffer with the caret rendered as a literal
// character for the current blink phase.
func (e *Editor) Display() string {
	glyph := e.caret
	if e.shown {
		glyph = '_'
	} else if glyph == sentinel || glyph == '\n' {
		glyph = ' '
	}

	out := make([]rune, 0, len(e.prefix)+2+len(e.suffix))
	out = append(out, e.prefix...)
	out = append(out, glyph)
	if e.caret == '\n' {
		// keep the line break the caret sits on
		out = append(out, '\n')
	}
	out = append(out, e.suffix...)
	return string(out)
}
