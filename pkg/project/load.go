package project

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tileplan/pkg/errors"
)

// Format is a project file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	if err := errors.ValidateProjectFilename(path); err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON, nil
	}
	return FormatTOML, nil
}

// Load reads, normalises and validates a project file.
func Load(path string) (Project, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Project{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s not found", path)
		}
		return Project{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	p, err := Parse(data, format)
	if err != nil {
		return Project{}, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes, normalises and validates a project.
func Parse(data []byte, format Format) (Project, error) {
	var p Project
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Project{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode project")
		}
	case FormatTOML, "":
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return Project{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode project")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Project{}, errors.New(errors.ErrCodeInvalidFormat, "unknown project key %q", undecoded[0].String())
		}
	default:
		return Project{}, errors.New(errors.ErrCodeInvalidFormat, "unknown project format %q", format)
	}
	if err := p.Normalize(); err != nil {
		return Project{}, err
	}
	if err := p.Validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}
