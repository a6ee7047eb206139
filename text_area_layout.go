package atxt

import "image"

// Recomputes the screen and texture rects of every glyph. Called
// after any change of font, text, viewport, align or cursor.
func (self *TextArea) recalculate() {
	// keep the previous layout while the viewport is degenerate
	if self.screenCoords.Empty() {
		Logger().Debug("text area layout skipped", "screenCoords", self.screenCoords)
		return
	}

	textLen := len(self.text)
	self.glyphsCoords    = ensureSliceSize(self.glyphsCoords, textLen)
	self.glyphsTexCoords = ensureSliceSize(self.glyphsTexCoords, textLen)
	clear(self.glyphsCoords)
	clear(self.glyphsTexCoords)
	if self.font == nil {
		self.startInternalPos = image.Point{}
		self.startRenderPos = -1
		self.drawArea = self.screenCoords
		return
	}

	// map glyph positions without taking the viewport into account
	var textBox image.Point
	self.positions, textBox = self.font.AppendGlyphPositions(self.positions[ : 0], self.text, self.align)
	self.updateScrollOffset() // uses the previous startRenderPos
	self.startRenderPos = -1

	topMargin := self.font.TopMargin()
	self.drawArea = self.screenCoords
	self.drawArea.Min.Y += topMargin

	// align translation is shared by all glyphs
	var alignShift image.Point
	switch self.align.Vert() {
	case Bottom  : alignShift.Y = self.screenCoords.Dy() - textBox.Y
	case YCenter : alignShift.Y = (self.screenCoords.Dy() - textBox.Y)/2
	}
	switch self.align.Horz() {
	case Right   : alignShift.X = self.screenCoords.Dx() - textBox.X
	case XCenter : alignShift.X = (self.screenCoords.Dx() - textBox.X)/2
	}

	scroll := self.startInternalPos
	screen := self.screenCoords
	for i, code := range self.text {
		if code < 32 { continue } // control codes are never drawn

		size := self.font.GlyphSize(code)
		glyphRect := image.Rectangle{ Min: self.positions[i], Max: self.positions[i].Add(size) }
		glyphRect = glyphRect.Add(alignShift)
		texRect := self.font.GlyphTextureRect(code)

		// skip glyphs that end before the scroll offset
		if glyphRect.Max.Y <= scroll.Y || glyphRect.Max.X <= scroll.X { continue }

		// clip top-left against the scroll offset
		if glyphRect.Min.Y < scroll.Y {
			texRect.Min.Y += scroll.Y - glyphRect.Min.Y
			glyphRect.Min.Y = scroll.Y
		}
		if glyphRect.Min.X < scroll.X {
			texRect.Min.X += scroll.X - glyphRect.Min.X
			glyphRect.Min.X = scroll.X
		}

		// move to screen space
		glyphRect = glyphRect.Sub(scroll).Add(screen.Min)
		if !glyphRect.Overlaps(screen) { continue }

		// clip bottom-right against the viewport
		if glyphRect.Max.Y > screen.Max.Y {
			texRect.Max.Y -= glyphRect.Max.Y - screen.Max.Y
			glyphRect.Max.Y = screen.Max.Y
		}
		if glyphRect.Max.X > screen.Max.X {
			texRect.Max.X -= glyphRect.Max.X - screen.Max.X
			glyphRect.Max.X = screen.Max.X
		}

		self.glyphsCoords[i] = glyphRect
		self.glyphsTexCoords[i] = texRect
		if self.startRenderPos == -1 && glyphRect.Size() == size {
			self.startRenderPos = i
		}
	}
}

// Adjusts the scroll offset so the glyph before the cursor stays
// within the viewport. Uses the natural glyph positions, so it must
// be called after they have been computed.
func (self *TextArea) updateScrollOffset() {
	textLen := len(self.text)
	if self.cursorPos < 0 || textLen == 0 {
		self.startInternalPos = image.Point{}
		return
	}

	// stale after edits made while the viewport was degenerate
	if self.startRenderPos >= textLen { self.startRenderPos = -1 }

	if self.cursorPos == 0 || self.startRenderPos > self.cursorPos {
		// cursor reached the left side, scroll back to it
		position := self.positions[self.cursorPos]
		self.startInternalPos.X = position.X
		self.startInternalPos.Y = position.Y - self.font.TopMargin()
	} else if self.cursorPos > self.startRenderPos {
		// the glyph before the cursor must be fully visible
		viewport := image.Rectangle{
			Min: self.startInternalPos,
			Max: self.startInternalPos.Add(self.screenCoords.Size()),
		}
		prev := self.cursorPos - 1
		position := self.positions[prev]
		glyphRect := image.Rectangle{ Min: position, Max: position.Add(self.font.GlyphSize(self.text[prev])) }
		if !glyphRect.In(viewport) {
			self.startInternalPos.X = max(glyphRect.Max.X - viewport.Dx(), 0)
			self.startInternalPos.Y = max(glyphRect.Max.Y - viewport.Dy(), 0)
		}
	}
}

// Returns the index of the glyph whose visible rect contains the given
// point, or -1 if none does. Only the clipped glyph rects are tested,
// without any extra margin for spacing.
func (self *TextArea) TextPosAt(point image.Point) int {
	for i, rect := range self.glyphsCoords {
		if point.In(rect) { return i }
	}
	return -1
}
