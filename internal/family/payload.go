package family

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a payload encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

//go:embed payloads/leke.yaml
var defaultPayload []byte

// FormatFromPath picks the payload encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported payload extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Decode reads a tree payload in the given format.
func Decode(r io.Reader, format Format) (*Tree, error) {
	tree := &Tree{}
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(tree); err != nil {
			return nil, fmt.Errorf("decoding yaml payload: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(tree); err != nil {
			return nil, fmt.Errorf("decoding toml payload: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown payload format %q", format)
	}
	return tree, nil
}

// LoadFile reads a tree payload from disk.
func LoadFile(path string) (*Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening payload %s: %w", path, err)
	}
	defer f.Close()

	tree, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tree, nil
}

// Default returns the built-in Leke family payload.
func Default() *Tree {
	tree, err := Decode(bytes.NewReader(defaultPayload), FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("family: embedded payload is invalid: %v", err))
	}
	return tree
}
