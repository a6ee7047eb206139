package font

import "os"
import "fmt"
import "path"
import "io/fs"
import "errors"
import "path/filepath"
import "strings"

import "github.com/tinne26/atxt/atlas"
import "github.com/tinne26/atxt/internal"

// Name of the font returned by [Library.Default]() unless
// changed with [Library.SetDefaultName]().
const DefaultFontName = "tibia-10px-rounded"

// Returned or raised when the default font is not in the library.
var ErrNoDefaultFont = errors.New("default font not found")

// A collection of atlas fonts accessible by name.
//
// Fonts are meant to be loaded once at startup. After that, lookups
// are safe for concurrent use as long as the library is not modified.
type Library struct {
	fonts map[string]*atlas.Font
	defaultName string
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*atlas.Font),
		defaultName: DefaultFontName,
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found. Missing
// fonts are reported to the logger (see atxt.SetLogger), and callers
// must be ready to handle nil results.
func (self *Library) GetFont(name string) *atlas.Font {
	font, found := self.fonts[name]
	if found { return font }
	internal.Logger().Error("font not found", "name", name)
	return nil
}

// Adds the given font to the library under the given name. If another
// font with the same name was already present, it's replaced and the
// method returns true. The method panics if the font is nil.
func (self *Library) AddFont(name string, font *atlas.Font) (replaced bool) {
	if font == nil { panic("nil font") }
	_, replaced = self.fonts[name]
	self.fonts[name] = font
	return replaced
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Sets the name of the font returned by [Library.Default]().
func (self *Library) SetDefaultName(name string) { self.defaultName = name }

// Returns the name of the font returned by [Library.Default]().
func (self *Library) DefaultName() string { return self.defaultName }

// Returns the default font or an error wrapping [ErrNoDefaultFont]
// if it's not in the library.
func (self *Library) LookupDefault() (*atlas.Font, error) {
	font, found := self.fonts[self.defaultName]
	if !found { return nil, fmt.Errorf("%w: %q", ErrNoDefaultFont, self.defaultName) }
	return font, nil
}

// Returns the default font. A program can't work without its default
// font, so if it's missing the method logs the problem and panics.
// Use [Library.LookupDefault]() if you need to handle the error.
func (self *Library) Default() *atlas.Font {
	font, err := self.LookupDefault()
	if err != nil {
		internal.Logger().Error("default font not found", "name", self.defaultName)
		panic(err)
	}
	return font
}

// Parses the font definition at the given path and adds it to the
// library, named after the file. Returns the font name, whether a
// previous font was replaced and any error.
func (self *Library) ParseFromPath(filename string) (string, bool, error) {
	dir, base := filepath.Split(filename)
	if dir == "" { dir = "." }
	return self.ParseFromFS(os.DirFS(dir), base)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, filename string) (string, bool, error) {
	name := strings.TrimSuffix(path.Base(filename), atlas.DefinitionExt)
	font, err := atlas.ParseFromFS(filesys, filename)
	if err != nil { return name, false, err }
	return name, self.AddFont(name, font), nil
}

// Walks the given directory non-recursively and adds all the font
// definitions (*.yml files) in it. Returns the number of fonts added,
// the number of fonts that replaced a previous font with the same name
// and the first error found, if any. Any malformed definition stops
// the process.
func (self *Library) ParseAllFromPath(dirName string) (added, replaced int, err error) {
	return self.ParseAllFromFS(os.DirFS(dirName), ".")
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, replaced int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !strings.HasSuffix(entry.Name(), atlas.DefinitionExt) { continue }
		name, wasReplaced, err := self.ParseFromFS(filesys, path.Join(dirName, entry.Name()))
		if err != nil { return added, replaced, fmt.Errorf("font %q: %w", name, err) }
		if wasReplaced {
			replaced += 1
		} else {
			added += 1
		}
	}

	internal.Logger().Debug("fonts loaded", "dir", dirName, "added", added, "replaced", replaced)
	return added, replaced, nil
}

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing their
// names and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
// Otherwise, [Library.EachFont]() will always return nil.
func (self *Library) EachFont(fontFunc func(string, *atlas.Font) error) error {
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}
