package atxt

import "image"
import "image/color"
import "slices"
import "strings"
import "testing"

func newTestArea(t *testing.T, text string, viewport image.Rectangle) (*TextArea, *testClock) {
	t.Helper()
	clock := &testClock{}
	area := NewTextArea(clock)
	area.Reset(newTestFont(t, 10, 12, 0), text, viewport, TopLeft, color.White)
	return area, clock
}

func TestTextAreaDefaults(t *testing.T) {
	area := NewTextArea(nil)
	if area.Font() != nil { t.Fatal("expected nil font") }
	if area.Align() != TopLeft { t.Fatalf("expected TopLeft, got %s", area.Align()) }
	if area.Color() != color.White { t.Fatal("expected white") }
	if area.CursorEnabled() { t.Fatal("expected cursor disabled") }
	if area.CursorPos() != -1 { t.Fatalf("expected cursor pos -1, got %d", area.CursorPos()) }
	if area.Len() != 0 || area.Text() != "" { t.Fatal("expected empty text") }
	if !doesNotPanic(func() { area.Draw(&recordRenderer{}) }) {
		t.Fatal("drawing an empty text area panicked")
	}
	if !doesNotPanic(func() { area.SetText("nothing to see") }) {
		t.Fatal("setting text without viewport panicked")
	}
}

func TestTextAreaSizes(t *testing.T) {
	area, _ := newTestArea(t, "", image.Rect(0, 0, 100, 20))
	texts := []string{"", "a", "hello\nworld", "\n\n", strings.Repeat("x", 300)}
	for _, text := range texts {
		area.SetText(text)
		if len(area.glyphsCoords) != len(text) || len(area.glyphsTexCoords) != len(text) {
			t.Fatalf("text %q: %d coords and %d tex coords", text, len(area.glyphsCoords), len(area.glyphsTexCoords))
		}
	}
}

func TestTextAreaControlCodes(t *testing.T) {
	area, _ := newTestArea(t, "A\nB\tC\x00", image.Rect(0, 0, 100, 50))
	for i, code := range area.TextBytes() {
		rect := area.GlyphRect(i)
		if code < 32 && !rect.Empty() {
			t.Fatalf("control code at %d has rect %v", i, rect)
		}
		if code >= 32 && rect.Empty() {
			t.Fatalf("glyph at %d unexpectedly empty", i)
		}
	}

	// 'B' starts the second line, '\t' doesn't advance
	if rect := area.GlyphRect(2); rect != image.Rect(0, 12, 10, 24) {
		t.Fatalf("unexpected 'B' rect %v", rect)
	}
	if rect := area.GlyphRect(4); rect != image.Rect(10, 12, 20, 24) {
		t.Fatalf("unexpected 'C' rect %v", rect)
	}
}

func TestTextAreaIdempotent(t *testing.T) {
	area, _ := newTestArea(t, "some\ntext to lay out", image.Rect(5, 5, 60, 30))
	area.SetAlign(Center)
	area.EnableCursor(true)
	area.SetCursorPos(12)

	coords := slices.Clone(area.glyphsCoords)
	texCoords := slices.Clone(area.glyphsTexCoords)
	scroll := area.ScrollOffset()
	area.recalculate()
	if !slices.Equal(coords, area.glyphsCoords) { t.Fatal("glyph coords changed") }
	if !slices.Equal(texCoords, area.glyphsTexCoords) { t.Fatal("glyph tex coords changed") }
	if scroll != area.ScrollOffset() { t.Fatal("scroll offset changed") }
}

func TestTextAreaAlign(t *testing.T) {
	area, _ := newTestArea(t, "A", image.Rect(0, 0, 100, 50))
	area.SetAlign(Bottom | XCenter)
	expected := image.Rect(45, 38, 55, 50)
	if rect := area.GlyphRect(0); rect != expected {
		t.Fatalf("expected %v, got %v", expected, rect)
	}

	area.SetScreenCoords(image.Rect(20, 10, 120, 60))
	if rect := area.GlyphRect(0); rect != expected.Add(image.Pt(20, 10)) {
		t.Fatalf("expected %v, got %v", expected.Add(image.Pt(20, 10)), rect)
	}

	area.SetAlign(YCenter | Right)
	expected = image.Rect(110, 29, 120, 41)
	if rect := area.GlyphRect(0); rect != expected {
		t.Fatalf("expected %v, got %v", expected, rect)
	}
}

func TestTextAreaAlignLines(t *testing.T) {
	area, _ := newTestArea(t, "AB\nC", image.Rect(0, 0, 100, 50))
	area.SetAlign(TopRight)
	if rect := area.GlyphRect(0); rect != image.Rect(80, 0, 90, 12) {
		t.Fatalf("unexpected 'A' rect %v", rect)
	}
	if rect := area.GlyphRect(3); rect != image.Rect(90, 12, 100, 24) {
		t.Fatalf("unexpected 'C' rect %v", rect)
	}

	area.SetAlign(XCenter)
	if rect := area.GlyphRect(3); rect != image.Rect(45, 12, 55, 24) {
		t.Fatalf("unexpected centered 'C' rect %v", rect)
	}
}

func TestTextAreaClipping(t *testing.T) {
	area, _ := newTestArea(t, "AAAAAA", image.Rect(0, 0, 25, 12))
	if rect := area.GlyphRect(2); rect != image.Rect(20, 0, 25, 12) {
		t.Fatalf("unexpected clipped rect %v", rect)
	}
	if rect := area.GlyphTexRect(2); rect != image.Rect(10, 24, 15, 36) {
		t.Fatalf("unexpected clipped tex rect %v", rect)
	}
	if rect := area.GlyphRect(3); !rect.Empty() {
		t.Fatalf("expected glyph 3 to be hidden, got %v", rect)
	}
	if area.StartRenderPos() != 0 {
		t.Fatalf("expected start render pos 0, got %d", area.StartRenderPos())
	}

	visible := 0
	area.EachGlyph(func(i int, rect, texRect image.Rectangle) {
		if rect.Size() != texRect.Size() { t.Fatalf("glyph %d: size mismatch", i) }
		visible += 1
	})
	if visible != 3 { t.Fatalf("expected 3 visible glyphs, got %d", visible) }
}

func TestTextAreaTopMargin(t *testing.T) {
	area := NewTextArea(&testClock{})
	area.Reset(newTestFont(t, 10, 12, 2), "A", image.Rect(0, 0, 50, 10), TopLeft, color.White)
	if area.DrawArea() != image.Rect(0, 2, 50, 10) {
		t.Fatalf("unexpected draw area %v", area.DrawArea())
	}
	if rect := area.GlyphRect(0); rect != image.Rect(0, 2, 10, 10) {
		t.Fatalf("unexpected rect %v", rect)
	}
	if rect := area.GlyphTexRect(0); rect != image.Rect(10, 24, 20, 32) {
		t.Fatalf("unexpected tex rect %v", rect)
	}
	if area.StartRenderPos() != -1 {
		t.Fatalf("expected no fully visible glyph, got %d", area.StartRenderPos())
	}
}

func TestTextAreaDegenerateViewport(t *testing.T) {
	area, _ := newTestArea(t, "ABC", image.Rect(0, 0, 100, 20))
	coords := slices.Clone(area.glyphsCoords)
	area.SetScreenCoords(image.Rect(10, 10, 10, 30))
	if !slices.Equal(coords, area.glyphsCoords) {
		t.Fatal("degenerate viewport modified the layout")
	}
	area.SetScreenCoords(image.Rect(10, 10, 110, 30))
	if slices.Equal(coords, area.glyphsCoords) {
		t.Fatal("expected layout to change after a valid viewport")
	}
}

func TestTextAreaNilFont(t *testing.T) {
	area := NewTextArea(&testClock{})
	area.Reset(nil, "abc", image.Rect(0, 0, 100, 20), TopLeft, color.White)
	area.EnableCursor(true)
	area.SetCursorVisible(true)
	for i := 0; i < area.Len(); i++ {
		if !area.GlyphRect(i).Empty() { t.Fatalf("glyph %d visible without font", i) }
	}
	if area.TextPosAt(image.Pt(1, 1)) != -1 { t.Fatal("expected no hit without font") }

	renderer := &recordRenderer{}
	area.Draw(renderer)
	if len(renderer.glyphs) != 0 || len(renderer.filled) != 0 {
		t.Fatal("expected nothing drawn without font")
	}
}

func TestTextAreaScrollToCursor(t *testing.T) {
	area, _ := newTestArea(t, strings.Repeat("A", 100), image.Rect(0, 0, 50, 12))
	area.EnableCursor(true)
	for i := 0; i < 20; i++ { area.MoveCursor(true) }
	if area.CursorPos() != 20 { t.Fatalf("expected cursor at 20, got %d", area.CursorPos()) }
	if area.ScrollOffset() != image.Pt(150, 0) {
		t.Fatalf("expected scroll (150, 0), got %v", area.ScrollOffset())
	}
	if rect := area.GlyphRect(19); rect != image.Rect(40, 0, 50, 12) {
		t.Fatalf("expected glyph 19 at the right edge, got %v", rect)
	}
	if area.StartRenderPos() != 15 {
		t.Fatalf("expected start render pos 15, got %d", area.StartRenderPos())
	}

	// jumping gives the same result
	area.SetCursorPos(0)
	if area.ScrollOffset() != (image.Point{}) {
		t.Fatalf("expected no scroll at cursor 0, got %v", area.ScrollOffset())
	}
	area.SetCursorPos(20)
	if area.ScrollOffset() != image.Pt(150, 0) {
		t.Fatalf("expected scroll (150, 0), got %v", area.ScrollOffset())
	}

	// moving within the visible glyphs doesn't scroll
	area.SetCursorPos(16)
	if area.ScrollOffset() != image.Pt(150, 0) {
		t.Fatalf("unexpected scroll %v", area.ScrollOffset())
	}

	// moving before the first visible glyph scrolls back to it
	area.SetCursorPos(14)
	if area.ScrollOffset() != image.Pt(140, 0) {
		t.Fatalf("expected scroll (140, 0), got %v", area.ScrollOffset())
	}

	// disabling the cursor resets the scroll
	area.EnableCursor(false)
	if area.ScrollOffset() != (image.Point{}) {
		t.Fatalf("expected no scroll, got %v", area.ScrollOffset())
	}
}

func TestTextAreaScrollWhileTyping(t *testing.T) {
	area, _ := newTestArea(t, "", image.Rect(0, 0, 50, 12))
	area.EnableCursor(true)
	for i := 0; i < 8; i++ { area.AppendCharacter('x') }
	if area.ScrollOffset() != image.Pt(30, 0) {
		t.Fatalf("expected scroll (30, 0), got %v", area.ScrollOffset())
	}
	if rect := area.GlyphRect(7); rect != image.Rect(40, 0, 50, 12) {
		t.Fatalf("expected last glyph at the right edge, got %v", rect)
	}
}

func TestTextAreaTextPosAt(t *testing.T) {
	area, _ := newTestArea(t, "ABC\nDE", image.Rect(10, 10, 110, 60))
	tests := []struct { point image.Point; pos int }{
		{ image.Pt(10, 10), 0 },
		{ image.Pt(19, 21), 0 },
		{ image.Pt(20, 10), 1 },
		{ image.Pt(35, 15), 2 },
		{ image.Pt(45, 15), -1 },
		{ image.Pt(15, 25), 4 },
		{ image.Pt(25, 33), 5 },
		{ image.Pt(5, 5), -1 },
	}
	for _, test := range tests {
		pos := area.TextPosAt(test.point)
		if pos != test.pos { t.Fatalf("point %v: expected %d, got %d", test.point, test.pos, pos) }
	}

	// hidden glyphs can't be hit
	area.SetScreenCoords(image.Rect(10, 10, 25, 60))
	if pos := area.TextPosAt(image.Pt(30, 15)); pos != -1 {
		t.Fatalf("expected -1 for clipped out glyph, got %d", pos)
	}
}

func TestTextAreaEditing(t *testing.T) {
	area, _ := newTestArea(t, "ac", image.Rect(0, 0, 100, 20))

	// disabled cursor ignores everything
	area.AppendCharacter('x')
	area.RemoveCharacter(false)
	area.MoveCursor(true)
	area.SetCursorPos(1)
	if area.Text() != "ac" || area.CursorPos() != -1 {
		t.Fatalf("disabled cursor edited text: %q, %d", area.Text(), area.CursorPos())
	}

	area.EnableCursor(true)
	area.MoveCursor(true)
	area.AppendCharacter('b')
	if area.Text() != "abc" || area.CursorPos() != 2 {
		t.Fatalf("expected \"abc\" and cursor 2, got %q and %d", area.Text(), area.CursorPos())
	}

	area.AppendCharacter('€') // outside Latin-1
	if area.Text() != "abc" || area.CursorPos() != 2 {
		t.Fatalf("unexpected text %q, cursor %d", area.Text(), area.CursorPos())
	}
	area.AppendCharacter('é')
	if area.Text() != "abéc" || area.Len() != 4 {
		t.Fatalf("unexpected text %q", area.Text())
	}

	area.RemoveCharacter(true)
	if area.Text() != "abé" || area.CursorPos() != 3 {
		t.Fatalf("expected \"abé\" and cursor 3, got %q and %d", area.Text(), area.CursorPos())
	}
	area.RemoveCharacter(true) // at the end
	if area.Text() != "abé" || area.CursorPos() != 3 {
		t.Fatalf("delete at end modified text: %q, %d", area.Text(), area.CursorPos())
	}

	area.RemoveCharacter(false)
	if area.Text() != "ab" || area.CursorPos() != 2 {
		t.Fatalf("expected \"ab\" and cursor 2, got %q and %d", area.Text(), area.CursorPos())
	}
	area.SetCursorPos(-5)
	if area.CursorPos() != 0 { t.Fatalf("expected clamped cursor 0, got %d", area.CursorPos()) }
	area.RemoveCharacter(false) // at the start
	if area.Text() != "ab" || area.CursorPos() != 0 {
		t.Fatalf("backspace at start modified text: %q, %d", area.Text(), area.CursorPos())
	}
	area.MoveCursor(false)
	if area.CursorPos() != 0 { t.Fatalf("cursor moved before the start: %d", area.CursorPos()) }

	area.SetCursorPos(99)
	if area.CursorPos() != 2 { t.Fatalf("expected clamped cursor 2, got %d", area.CursorPos()) }
	area.MoveCursor(true)
	if area.CursorPos() != 2 { t.Fatalf("cursor moved past the end: %d", area.CursorPos()) }

	// new text moves the cursor back to the start
	area.SetText("new text")
	if area.CursorPos() != 0 { t.Fatalf("expected cursor 0 after SetText, got %d", area.CursorPos()) }
	if len(area.glyphsCoords) != area.Len() { t.Fatal("layout not updated after edit") }
}

func TestTextAreaLatin1(t *testing.T) {
	area, _ := newTestArea(t, "año 日本", image.Rect(0, 0, 200, 20))
	if area.Len() != 6 { t.Fatalf("expected 6 codes, got %d", area.Len()) }
	bytes := area.TextBytes()
	if bytes[1] != 0xF1 { t.Fatalf("expected 0xF1, got %#x", bytes[1]) }
	if bytes[4] != replacementCode || bytes[5] != replacementCode {
		t.Fatalf("expected replacement codes, got %v", bytes[4 : ])
	}
	if !area.GlyphRect(4).Empty() { t.Fatal("replacement code drawn") }
}

func TestTextAreaCursorBlink(t *testing.T) {
	area, clock := newTestArea(t, "AB", image.Rect(0, 0, 100, 20))
	area.EnableCursor(true)
	area.SetCursorVisible(true)

	renderer := &recordRenderer{}
	sequence := []struct { ticks int64; visible bool }{
		{ 0, true },
		{ CursorBlinkPeriod - 1, true },
		{ CursorBlinkPeriod, false },
		{ CursorBlinkPeriod + 1, false },
		{ 2*CursorBlinkPeriod, true },
		{ 2*CursorBlinkPeriod + CursorBlinkPeriod - 1, true },
		{ 3*CursorBlinkPeriod, false },
	}
	for _, step := range sequence {
		clock.ticks = step.ticks
		renderer.clear()
		area.Draw(renderer)
		if len(renderer.glyphs) != 2 { t.Fatalf("ticks %d: expected 2 glyphs, got %d", step.ticks, len(renderer.glyphs)) }
		visible := (len(renderer.filled) == 1)
		if visible != step.visible {
			t.Fatalf("ticks %d: expected cursor visible = %t", step.ticks, step.visible)
		}
	}
	if area.cursorTicks != 2*CursorBlinkPeriod {
		t.Fatalf("expected blink restarted at %d, got %d", 2*CursorBlinkPeriod, area.cursorTicks)
	}

	// moving the cursor restarts the blink
	clock.ticks = 3*CursorBlinkPeriod + 10
	area.MoveCursor(true)
	renderer.clear()
	area.Draw(renderer)
	if len(renderer.filled) != 1 { t.Fatal("expected cursor visible after moving") }

	// hidden cursors are never drawn
	area.SetCursorVisible(false)
	renderer.clear()
	area.Draw(renderer)
	if len(renderer.filled) != 0 { t.Fatal("expected no cursor") }
}

func TestTextAreaCursorRect(t *testing.T) {
	area, _ := newTestArea(t, "AB", image.Rect(10, 0, 110, 20))
	if !area.CursorRect().Empty() { t.Fatal("expected empty cursor rect while disabled") }

	area.EnableCursor(true)
	if rect := area.CursorRect(); rect != image.Rect(9, 0, 10, 12) {
		t.Fatalf("unexpected cursor rect at start %v", rect)
	}
	area.MoveCursor(true)
	if rect := area.CursorRect(); rect != image.Rect(20, 0, 21, 12) {
		t.Fatalf("unexpected cursor rect after 'A' %v", rect)
	}
	area.MoveCursor(true)
	if rect := area.CursorRect(); rect != image.Rect(30, 0, 31, 12) {
		t.Fatalf("unexpected cursor rect at end %v", rect)
	}

	area.SetColor(color.RGBA{255, 0, 0, 255})
	area.SetCursorVisible(true)
	renderer := &recordRenderer{}
	area.Draw(renderer)
	if len(renderer.filled) != 1 || renderer.filled[0] != image.Rect(30, 0, 31, 12) {
		t.Fatalf("unexpected cursor drawing %v", renderer.filled)
	}
	for _, clr := range renderer.colors {
		if clr != (color.RGBA{255, 0, 0, 255}) { t.Fatalf("unexpected color %v", clr) }
	}
}

func TestTextAreaEditsWhileDegenerate(t *testing.T) {
	area, _ := newTestArea(t, strings.Repeat("A", 20), image.Rect(0, 0, 50, 12))
	area.EnableCursor(true)
	area.SetCursorPos(20)
	if area.StartRenderPos() != 15 {
		t.Fatalf("expected start render pos 15, got %d", area.StartRenderPos())
	}

	area.SetScreenCoords(image.Rect(0, 0, 0, 12))
	for i := 0; i < 6; i++ { area.RemoveCharacter(false) }
	if area.Len() != 14 || area.CursorPos() != 14 {
		t.Fatalf("expected 14 glyphs and cursor 14, got %d and %d", area.Len(), area.CursorPos())
	}

	if !doesNotPanic(func() { area.SetScreenCoords(image.Rect(0, 0, 50, 12)) }) {
		t.Fatal("restoring the viewport panicked")
	}
	if len(area.glyphsCoords) != area.Len() || len(area.glyphsTexCoords) != area.Len() {
		t.Fatalf("expected %d rects, got %d and %d", area.Len(), len(area.glyphsCoords), len(area.glyphsTexCoords))
	}
	if area.ScrollOffset() != image.Pt(90, 0) {
		t.Fatalf("expected scroll (90, 0), got %v", area.ScrollOffset())
	}
	if rect := area.GlyphRect(13); rect != image.Rect(40, 0, 50, 12) {
		t.Fatalf("expected last glyph at the right edge, got %v", rect)
	}
	if area.StartRenderPos() != 9 {
		t.Fatalf("expected start render pos 9, got %d", area.StartRenderPos())
	}
}

func TestTextAreaTextWhileDegenerate(t *testing.T) {
	area, _ := newTestArea(t, "AB", image.Rect(0, 0, 100, 12))
	area.SetScreenCoords(image.Rect(0, 0, 0, 12))
	area.SetText("ABCDEF")
	area.EnableCursor(true)
	area.SetCursorPos(6)
	area.AppendCharacter('G')

	if !doesNotPanic(func() { _ = area.GlyphRect(5); _ = area.GlyphTexRect(6) }) {
		t.Fatal("glyph rect access panicked before layout")
	}
	if !area.GlyphRect(6).Empty() || !area.GlyphTexRect(6).Empty() {
		t.Fatal("expected empty rects for glyphs not laid out yet")
	}
	if !area.GlyphRect(-1).Empty() { t.Fatal("expected empty rect for negative index") }
	if !doesNotPanic(func() { area.Draw(&recordRenderer{}) }) {
		t.Fatal("drawing with a degenerate viewport panicked")
	}

	area.SetScreenCoords(image.Rect(0, 0, 100, 12))
	if len(area.glyphsCoords) != 7 || len(area.glyphsTexCoords) != 7 {
		t.Fatalf("expected 7 rects, got %d and %d", len(area.glyphsCoords), len(area.glyphsTexCoords))
	}
	if rect := area.GlyphRect(6); rect != image.Rect(60, 0, 70, 12) {
		t.Fatalf("unexpected rect for 'G' %v", rect)
	}
}
