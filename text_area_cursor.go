package atxt

import "image"

import "golang.org/x/text/encoding/charmap"

// Time in milliseconds the cursor stays visible, and then hidden,
// on each blink cycle.
const CursorBlinkPeriod = 500

// Enables or disables the text cursor. Enabling the cursor places it
// at the start of the text. Cursor movement and edit operations only
// work while the cursor is enabled.
//
// Enabling the cursor doesn't make it visible; see [TextArea.SetCursorVisible]().
func (self *TextArea) EnableCursor(enable bool) {
	if enable {
		self.cursorPos = 0
		self.restartBlink()
	} else {
		self.cursorPos = -1
	}
	self.recalculate()
}

// Returns whether the cursor is enabled.
func (self *TextArea) CursorEnabled() bool { return self.cursorPos >= 0 }

// Sets whether the cursor must be drawn, typically when the text area
// gains or loses focus.
func (self *TextArea) SetCursorVisible(visible bool) {
	self.cursorVisible = visible
	self.restartBlink()
}

// Returns whether the cursor is drawn (while enabled).
func (self *TextArea) CursorVisible() bool { return self.cursorVisible }

// Returns the cursor position: the index of the glyph the cursor is
// placed before, between 0 and Len(), or -1 if the cursor is disabled.
func (self *TextArea) CursorPos() int { return self.cursorPos }

// Moves the cursor to the given position, clamped to [0, Len()].
// Does nothing if the cursor is disabled.
func (self *TextArea) SetCursorPos(pos int) {
	if self.cursorPos < 0 { return }
	self.cursorPos = min(max(pos, 0), len(self.text))
	self.restartBlink()
	self.recalculate()
}

// Inserts the given character at the cursor position and moves the
// cursor after it. Characters without a Latin-1 representation are
// ignored. Does nothing if the cursor is disabled.
func (self *TextArea) AppendCharacter(char rune) {
	if self.cursorPos < 0 { return }
	code, ok := charmap.ISO8859_1.EncodeRune(char)
	if !ok {
		Logger().Debug("character outside Latin-1 ignored", "char", char)
		return
	}

	self.text = append(self.text, 0)
	copy(self.text[self.cursorPos + 1 : ], self.text[self.cursorPos : ])
	self.text[self.cursorPos] = code
	self.cursorPos += 1
	self.restartBlink()
	self.recalculate()
}

// Removes a character next to the cursor. With right == true, the
// character after the cursor is removed (like the delete key). With
// right == false, the character before it is removed and the cursor
// moves back (like backspace). Removals past the text boundaries are
// ignored, and so is everything if the cursor is disabled.
func (self *TextArea) RemoveCharacter(right bool) {
	if self.cursorPos < 0 { return }
	if right {
		if self.cursorPos >= len(self.text) { return }
		self.text = append(self.text[ : self.cursorPos], self.text[self.cursorPos + 1 : ]...)
	} else {
		if self.cursorPos == 0 { return }
		self.cursorPos -= 1
		self.text = append(self.text[ : self.cursorPos], self.text[self.cursorPos + 1 : ]...)
		self.restartBlink()
	}
	self.recalculate()
}

// Moves the cursor one position to the right or to the left, without
// going beyond the text boundaries. Does nothing if the cursor is
// disabled.
func (self *TextArea) MoveCursor(right bool) {
	if self.cursorPos < 0 { return }
	if right {
		if self.cursorPos < len(self.text) {
			self.cursorPos += 1
			self.restartBlink()
		}
	} else {
		if self.cursorPos > 0 {
			self.cursorPos -= 1
			self.restartBlink()
		}
	}
	self.recalculate()
}

// Moves an enabled cursor back to the start of the text.
func (self *TextArea) resetCursor() {
	if self.cursorPos < 0 { return }
	self.cursorPos = 0
	self.restartBlink()
}

func (self *TextArea) restartBlink() {
	self.cursorTicks = self.clock.Ticks()
}

// Returns whether the cursor is in the visible phase of its blink.
// The cursor is shown during CursorBlinkPeriod, then hidden for
// another CursorBlinkPeriod, and then the cycle restarts.
func (self *TextArea) cursorBlinkOn() bool {
	now := self.clock.Ticks()
	elapsed := now - self.cursorTicks
	if elapsed >= 2*CursorBlinkPeriod {
		self.cursorTicks = now
		return true
	}
	return elapsed < CursorBlinkPeriod
}

// Returns the screen rect of the cursor: a 1px wide bar as tall as
// the font glyphs, placed right after the glyph preceding the cursor.
// When the cursor is at the start of the text, at the first visible
// glyph, or after a glyph that is not visible, the bar is placed just
// left of the draw area instead.
//
// The returned rect is empty if the cursor is disabled or the text
// area has no font.
func (self *TextArea) CursorRect() image.Rectangle {
	if self.cursorPos < 0 || self.font == nil { return image.Rectangle{} }

	height := self.font.GlyphHeight()
	pos := self.cursorPos
	numGlyphs := len(self.glyphsCoords)
	atLeftEdge := (pos == 0 || pos > numGlyphs || self.glyphsCoords[pos - 1].Empty())
	if !atLeftEdge && pos < numGlyphs && self.glyphsCoords[pos].Min == self.drawArea.Min {
		atLeftEdge = true
	}
	if atLeftEdge {
		origin := self.drawArea.Min
		return image.Rect(origin.X - 1, origin.Y, origin.X, origin.Y + height)
	}

	prev := self.glyphsCoords[pos - 1]
	return image.Rect(prev.Max.X, prev.Min.Y, prev.Max.X + 1, prev.Min.Y + height)
}

// Draws the visible glyphs and, if enabled and visible, the
// blinking cursor.
func (self *TextArea) Draw(renderer Renderer) {
	if self.font == nil { return }

	texture := self.font.Texture()
	for i, rect := range self.glyphsCoords {
		if rect.Empty() { continue }
		renderer.DrawTexturedRect(rect, texture, self.glyphsTexCoords[i], self.color)
	}

	if !self.cursorVisible || self.cursorPos < 0 || self.cursorPos > len(self.text) { return }
	if self.cursorBlinkOn() {
		renderer.DrawFilledRect(self.CursorRect(), self.color)
	}
}
