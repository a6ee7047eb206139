package atlas

import "os"
import "fmt"
import "path"
import "image"
import "io/fs"
import "strconv"
import "strings"
import "path/filepath"

import _ "image/png"

import "gopkg.in/yaml.v3"

// File extension of font definition files.
const DefinitionExt = ".yml"

// A width and height pair. In definition files it can be written
// either as a "width height" string or as a two element sequence.
type Size struct {
	Width  int
	Height int
}

func (self *Size) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		fields := strings.Fields(node.Value)
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: expected \"width height\", got %q", ErrInvalidDefinition, node.Line, node.Value)
		}
		width, err := strconv.Atoi(fields[0])
		if err != nil { return fmt.Errorf("%w: line %d: %w", ErrInvalidDefinition, node.Line, err) }
		height, err := strconv.Atoi(fields[1])
		if err != nil { return fmt.Errorf("%w: line %d: %w", ErrInvalidDefinition, node.Line, err) }
		self.Width, self.Height = width, height
		return nil
	case yaml.SequenceNode:
		var pair []int
		err := node.Decode(&pair)
		if err != nil { return err }
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: expected 2 values, got %d", ErrInvalidDefinition, node.Line, len(pair))
		}
		self.Width, self.Height = pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("%w: line %d: unexpected size value", ErrInvalidDefinition, node.Line)
	}
}

// Parses a font definition and its texture from the given path.
// See [ParseFromFS]() for details.
func ParseFromPath(filename string) (*Font, error) {
	dir, base := filepath.Split(filename)
	if dir == "" { dir = "." }
	return ParseFromFS(os.DirFS(dir), base)
}

// Parses a font definition from the given filesystem and loads the
// texture it references, relative to the definition's directory.
//
// When the definition doesn't include a name, the file name without
// its extension is used. If first-glyph is not specified, it defaults
// to 32 (the space character).
func ParseFromFS(filesys fs.FS, filename string) (*Font, error) {
	data, err := fs.ReadFile(filesys, filename)
	if err != nil { return nil, err }

	def := Definition{ FirstGlyph: ' ' }
	err = yaml.Unmarshal(data, &def)
	if err != nil { return nil, fmt.Errorf("%s: %w", filename, err) }
	if def.Texture == "" { return nil, fmt.Errorf("%s: %w", filename, ErrNoTexture) }
	if def.Name == "" {
		def.Name = strings.TrimSuffix(path.Base(filename), DefinitionExt)
	}

	texture, err := decodeTexture(filesys, path.Join(path.Dir(filename), def.Texture))
	if err != nil { return nil, fmt.Errorf("%s: %w", filename, err) }

	font, err := New(texture, def)
	if err != nil { return nil, fmt.Errorf("%s: %w", filename, err) }
	return font, nil
}

func decodeTexture(filesys fs.FS, filename string) (image.Image, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	defer file.Close()

	texture, _, err := image.Decode(file)
	if err != nil { return nil, fmt.Errorf("texture %s: %w", filename, err) }
	return texture, nil
}
