package atxt

import "strings"

import "golang.org/x/text/encoding/charmap"

// Character code used for runes that can't be represented in Latin-1.
// Being a control code, it's never drawn.
const replacementCode byte = 0x1A

func ensureSliceSize[T any](slice []T, size int) []T {
	// easy case: slice has enough capacity already
	if cap(slice) >= size { return slice[ : size] }
	return make([]T, size)
}

// Appends the Latin-1 encoding of the given text to the buffer.
func appendLatin1(buffer []byte, text string) []byte {
	for _, codePoint := range text {
		code, ok := charmap.ISO8859_1.EncodeRune(codePoint)
		if !ok { code = replacementCode }
		buffer = append(buffer, code)
	}
	return buffer
}

func decodeLatin1(text []byte) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, code := range text {
		builder.WriteRune(charmap.ISO8859_1.DecodeByte(code))
	}
	return builder.String()
}
