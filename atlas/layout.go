package atlas

import "image"

// Appends the natural position of each glyph of the given text to the
// positions slice and returns it along the size of the text box.
//
// Positions are relative to the text box origin, ignoring any viewport:
//  - The first line starts at y = TopMargin().
//  - Each '\n' starts a new line, GlyphHeight() + GlyphSpacing().Y
//    below the previous one.
//  - Glyphs advance by their width plus GlyphSpacing().X. Control
//    codes (< 32) don't advance, but still get a position.
//  - With Right or XCenter aligns, each line is aligned within the
//    widest line. Vertical aligns are ignored here.
//
// The box width is the width of the widest line, without trailing
// spacing, and its height goes from 0 to the bottom of the last line.
func (self *Font) AppendGlyphPositions(positions []image.Point, text []byte, align Align) ([]image.Point, image.Point) {
	if len(text) == 0 {
		return positions, image.Pt(0, self.topMargin + self.glyphHeight)
	}

	var lineWidthsBuffer [8]int
	lineWidths := lineWidthsBuffer[ : 1]
	maxLineWidth := 0
	for i, code := range text {
		if code == '\n' {
			lineWidths = append(lineWidths, 0)
			continue
		}
		if code < 32 { continue }

		line := len(lineWidths) - 1
		lineWidths[line] += self.sizes[code].X
		if i + 1 < len(text) && text[i + 1] != '\n' {
			lineWidths[line] += self.glyphSpacing.X
		}
		maxLineWidth = max(maxLineWidth, lineWidths[line])
	}

	horzAlign := align.Horz()
	position := image.Pt(0, self.topMargin)
	line := 0
	for i, code := range text {
		if code == '\n' {
			position.Y += self.glyphHeight + self.glyphSpacing.Y
			line += 1
		}
		if code == '\n' || i == 0 {
			switch horzAlign {
			case Right   : position.X = maxLineWidth - lineWidths[line]
			case XCenter : position.X = (maxLineWidth - lineWidths[line])/2
			default:
				position.X = 0
			}
		}

		positions = append(positions, position)
		if code >= 32 {
			position.X += self.sizes[code].X + self.glyphSpacing.X
		}
	}

	return positions, image.Pt(maxLineWidth, position.Y + self.glyphHeight)
}

// Returns the size of the box required to draw the given text.
func (self *Font) MeasureText(text []byte) image.Point {
	_, size := self.AppendGlyphPositions(nil, text, TopLeft)
	return size
}
