package atxt

import "log/slog"

import "github.com/tinne26/atxt/atlas"
import "github.com/tinne26/atxt/internal"

// Helper types, wrappers, aliases and functions.

// A handy type alias for atlas.Font so you don't need to
// import it when already working with atxt.
type Font = atlas.Font

// Text align flags. See [atlas.Align].
type Align = atlas.Align

// Align constants, re-exported from the atlas package.
const (
	Top     = atlas.Top
	Bottom  = atlas.Bottom
	YCenter = atlas.YCenter
	Left    = atlas.Left
	Right   = atlas.Right
	XCenter = atlas.XCenter

	TopLeft     = atlas.TopLeft
	TopRight    = atlas.TopRight
	BottomLeft  = atlas.BottomLeft
	BottomRight = atlas.BottomRight
	Center      = atlas.Center
)

// Configures the logger for atxt and all its subpackages.
// By default, atxt produces no log output. Pass nil to disable
// logging again.
//
// Log levels used by atxt:
//   - [slog.LevelDebug]: ignored operations (degenerate viewports,
//     characters outside Latin-1), fonts loaded.
//   - [slog.LevelError]: missing fonts.
//
// Example:
//   atxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(logger *slog.Logger) { internal.SetLogger(logger) }

// Returns the current logger used by atxt.
func Logger() *slog.Logger { return internal.Logger() }
