package atlas

// Text align flags. A vertical and a horizontal align can be
// combined with the | operator:
//   align := atlas.Bottom | atlas.XCenter
//
// Top and Left are the zero values, so TopLeft is the default.
type Align uint8

const (
	Top     Align = 0b0000_0000
	Bottom  Align = 0b0000_0001
	YCenter Align = 0b0000_0010
	Left    Align = 0b0000_0000
	Right   Align = 0b0000_0100
	XCenter Align = 0b0000_1000

	TopLeft      = Top | Left
	TopRight     = Top | Right
	BottomLeft   = Bottom | Left
	BottomRight  = Bottom | Right
	Center       = YCenter | XCenter
)

const vertAlignMask Align = 0b0000_0011
const horzAlignMask Align = 0b0000_1100

// Returns only the vertical component of the align.
// If both Bottom and YCenter are set, Bottom wins.
func (self Align) Vert() Align {
	if self & Bottom != 0 { return Bottom }
	return self & vertAlignMask
}

// Returns only the horizontal component of the align.
// If both Right and XCenter are set, Right wins.
func (self Align) Horz() Align {
	if self & Right != 0 { return Right }
	return self & horzAlignMask
}

func (self Align) String() string {
	var vert, horz string
	switch self.Vert() {
	case Top     : vert = "Top"
	case Bottom  : vert = "Bottom"
	case YCenter : vert = "YCenter"
	}
	switch self.Horz() {
	case Left    : horz = "Left"
	case Right   : horz = "Right"
	case XCenter : horz = "XCenter"
	}
	return vert + "|" + horz
}
