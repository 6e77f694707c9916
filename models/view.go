package models

// InputState is a single-line text field edited by key handlers.
type InputState struct {
	Value          string
	Focused        bool
	CursorPosition int
}

func (c *InputState) Set(value string) {
	c.Value = value
	c.CursorPosition = len([]rune(value))
}

func (c *InputState) Reset() {
	c.Value = ""
	c.CursorPosition = 0
}

// Insert inserts s at the cursor.
func (c *InputState) Insert(s string) {
	runes := []rune(c.Value)
	pos := c.clampedCursor(len(runes))
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:pos]...)
	out = append(out, ins...)
	out = append(out, runes[pos:]...)
	c.Value = string(out)
	c.CursorPosition = pos + len(ins)
}

// Backspace deletes the rune before the cursor.
func (c *InputState) Backspace() {
	runes := []rune(c.Value)
	pos := c.clampedCursor(len(runes))
	if pos == 0 {
		return
	}
	c.Value = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	c.CursorPosition = pos - 1
}

func (c *InputState) MoveCursor(delta int) {
	n := len([]rune(c.Value))
	c.CursorPosition = c.clampedCursor(n) + delta
	c.CursorPosition = c.clampedCursor(n)
}

func (c *InputState) clampedCursor(n int) int {
	if c.CursorPosition < 0 {
		return 0
	}
	if c.CursorPosition > n {
		return n
	}
	return c.CursorPosition
}
