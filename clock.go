package atxt

import "time"

// A source of monotonic timestamps in milliseconds. Text areas use
// clocks to make their cursors blink.
type Clock interface {
	Ticks() int64
}

var processStart = time.Now()

// A [Clock] returning the milliseconds elapsed since the program
// started. The zero value is ready to use.
type SystemClock struct{}

func (SystemClock) Ticks() int64 { return time.Since(processStart).Milliseconds() }

// A [Clock] that only advances when [FrameClock.Update]() is called,
// so every text area drawn during the same frame sees the same
// timestamp. Call Update once per frame, at the start of the game's
// update or draw function.
type FrameClock struct {
	source Clock
	ticks int64
}

// Creates a frame clock driven by the given source. A nil
// source means [SystemClock].
func NewFrameClock(source Clock) *FrameClock {
	if source == nil { source = SystemClock{} }
	return &FrameClock{ source: source, ticks: source.Ticks() }
}

// Stores the source's current timestamp as the frame timestamp.
func (self *FrameClock) Update() {
	self.ticks = self.source.Ticks()
}

// Returns the timestamp stored on the last [FrameClock.Update]().
func (self *FrameClock) Ticks() int64 { return self.ticks }
