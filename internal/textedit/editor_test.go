package textedit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadPutsCaretAtEnd(t *testing.T) {
	var e Editor
	e.Load("hello")

	assert.Equal(t, "hello", e.Text())

	x, y := e.CursorPosition(80)
	assert.Equal(t, 5, x)
	assert.Equal(t, 0, y)
}

func TestInsertAndBackspace(t *testing.T) {
	var e Editor
	e.Load("")

	for _, r := range "Buy milk" {
		e.Insert(r)
	}
	assert.Equal(t, "Buy milk", e.Text())

	e.Backspace()
	e.Backspace()
	assert.Equal(t, "Buy mi", e.Text())
}

func TestBackspaceOnEmptyBufferIsNoop(t *testing.T) {
	var e Editor
	e.Load("")
	e.Backspace()
	assert.Equal(t, "", e.Text())
}

func TestInsertBeforeCaretMidBuffer(t *testing.T) {
	var e Editor
	e.Load("abcd")
	e.MoveLeft()
	e.MoveLeft()

	e.Insert('X')
	assert.Equal(t, "abXcd", e.Text())
}

func TestMoveLeftRightBoundaries(t *testing.T) {
	var e Editor
	e.Load("ab")

	// already at end
	e.MoveRight()
	assert.Equal(t, "ab", e.Text())

	e.MoveLeft()
	e.MoveLeft()
	// now on the first rune
	e.MoveLeft()
	assert.Equal(t, "ab", e.Text())

	e.MoveRight()
	e.MoveRight()
	e.MoveRight()
	assert.Equal(t, "ab", e.Text())

	x, _ := e.CursorPosition(80)
	assert.Equal(t, 2, x, "caret should be back at end after moving right past the last rune")
}

func TestCursorPositionWraps(t *testing.T) {
	var e Editor
	e.Load("abcdefgh")

	x, y := e.CursorPosition(4)
	assert.Equal(t, 0, x, "two full rows of four leave the caret at column 0")
	assert.Equal(t, 2, y)
}

func TestCursorPositionLineBreaks(t *testing.T) {
	var e Editor
	e.Load("ab\ncd")

	x, y := e.CursorPosition(10)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestCursorPositionCountsCodePoints(t *testing.T) {
	var e Editor
	e.Load("héllo wörld")

	x, y := e.CursorPosition(80)
	assert.Equal(t, 11, x)
	assert.Equal(t, 0, y)
}

func TestSetCursorPositionSplitsBuffer(t *testing.T) {
	var e Editor
	e.Load("abcdefgh")

	e.SetCursorPosition(0, 1, 4)
	assert.Equal(t, "abcdefgh", e.Text(), "re-splitting must not change the buffer")

	x, y := e.CursorPosition(4)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
}

func TestSetCursorPositionBeyondBufferSnapsToEnd(t *testing.T) {
	var e Editor
	e.Load("abc")
	e.MoveLeft()
	e.MoveLeft()

	e.SetCursorPosition(0, 7, 4)
	assert.Equal(t, "abc", e.Text())

	x, y := e.CursorPosition(4)
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)
}

func TestSetCursorPositionStopsAtLineBreakOnTargetRow(t *testing.T) {
	var e Editor
	e.Load("ab\ncdef")

	// column past the break on row 0 lands on the break itself
	e.SetCursorPosition(6, 0, 10)
	assert.Equal(t, "ab\ncdef", e.Text())

	x, y := e.CursorPosition(10)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
}

func TestRoundTripPreservesSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		left int
	}{
		{name: "caret at end", text: "abcdefgh", left: 0},
		{name: "caret mid-row", text: "abcdefgh", left: 3},
		{name: "line breaks", text: "ab\ncd\nef", left: 4},
		{name: "wrapped and broken", text: "abcdef\ngh", left: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Editor
			e.Load(tt.text)
			for i := 0; i < tt.left; i++ {
				e.MoveLeft()
			}

			x, y := e.CursorPosition(4)
			e.SetCursorPosition(x, y, 4)

			assert.Equal(t, tt.text, e.Text())
			gotX, gotY := e.CursorPosition(4)
			assert.Equal(t, x, gotX)
			assert.Equal(t, y, gotY)
		})
	}
}

func TestMoveUpHoldsColumnAcrossWrappedRows(t *testing.T) {
	var e Editor
	e.Load("abcdefgh")

	e.MoveUp(4)
	e.Insert('X')
	assert.Equal(t, "abcdXefgh", e.Text(), "caret should sit on the start of the second wrapped row")
}

func TestMoveUpOnTopRowSnapsToStart(t *testing.T) {
	var e Editor
	e.Load("abc")
	e.MoveLeft()

	e.MoveUp(10)
	e.Insert('X')
	assert.Equal(t, "Xabc", e.Text())
}

func TestMoveDownPastLastRowSnapsToEnd(t *testing.T) {
	var e Editor
	e.Load("abc\nde")
	e.MoveLeft()
	e.MoveLeft()
	e.MoveLeft()
	e.MoveLeft()

	e.MoveDown(10)
	e.MoveDown(10)
	e.Insert('X')
	assert.Equal(t, "abc\ndeX", e.Text())
}

func TestCommitIdempotence(t *testing.T) {
	original := "line one\nline two"

	var e Editor
	e.Load(original)
	e.MoveLeft()
	e.MoveLeft()
	e.MoveRight()
	e.MoveUp(6)
	e.MoveDown(6)

	assert.Equal(t, original, e.Text())
}

func TestTitleTextStripsLineBreaks(t *testing.T) {
	var e Editor
	e.Load("one")
	e.Insert('\n')
	e.Insert('t')
	e.Insert('w')
	e.Insert('o')

	assert.Equal(t, "onetwo", e.TitleText())
	assert.Equal(t, "one\ntwo", e.Text())
}

func TestDisplayRendersCaret(t *testing.T) {
	var e Editor
	e.Load("ab")

	// caret starts visible after load
	assert.Equal(t, "ab_", e.Display())

	e.Blink(time.Now().Add(BlinkInterval + time.Millisecond))
	assert.Equal(t, "ab ", e.Display())
}

func TestDisplayShowsCaretCharacterWhenHidden(t *testing.T) {
	var e Editor
	e.Load("ab")
	e.MoveLeft()

	e.Blink(time.Now().Add(BlinkInterval + time.Millisecond))
	assert.Equal(t, "ab", e.Display(), "hidden caret shows the rune it sits on")
}

func TestDisplayKeepsLineBreakUnderCaret(t *testing.T) {
	var e Editor
	e.Load("a\nb")
	e.MoveLeft()
	e.MoveLeft()

	// caret sits on the line break; the break must survive rendering
	assert.Equal(t, "a_\nb", e.Display())
}

func TestBlinkTogglesOnInterval(t *testing.T) {
	var e Editor
	e.Load("x")

	start := time.Now()
	e.Blink(start.Add(BlinkInterval / 2))
	assert.Equal(t, "x_", e.Display(), "blink phase should hold inside the interval")

	e.Blink(start.Add(2 * BlinkInterval))
	assert.Equal(t, "x ", e.Display())
}
