// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Format registry plus the toml and yaml codecs.

package graphio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/currentflow/core"
)

// Format names a file codec.
type Format string

const (
	FormatEdgeList Format = "edgelist"
	FormatTOML     Format = "toml"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported file formats.
func Formats() []Format { return []Format{FormatEdgeList, FormatTOML, FormatYAML} }

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatEdgeList, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt", "edges":
		return FormatEdgeList, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatFromPath infers the format from the file extension.
// Unknown or missing extensions fall back to FormatEdgeList.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}

	return FormatEdgeList
}

// Decode reads a Document in format f.
func Decode(r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatEdgeList:
		return DecodeEdgeList(r)
	case FormatTOML:
		var d Document
		if err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrapf(ErrSyntax, "toml: %v", err)
		}

		return &d, nil
	case FormatYAML:
		var d Document
		if err := yaml.NewDecoder(r).Decode(&d); err != nil && err != io.EOF {
			return nil, errors.Wrapf(ErrSyntax, "yaml: %v", err)
		}

		return &d, nil
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
}

// Encode writes d in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatEdgeList:
		return EncodeEdgeList(w, d)
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(d), "encoding toml")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}

		return errors.Wrap(enc.Close(), "encoding yaml")
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", f)
}

// Read decodes a graph in format f.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	d, err := Decode(r, f)
	if err != nil {
		return nil, err
	}

	return d.Graph()
}

// Write encodes g in format f.
func Write(w io.Writer, g *core.Graph, f Format) error {
	d, err := NewDocument(g)
	if err != nil {
		return err
	}

	return Encode(w, d, f)
}

// LoadFile reads the graph stored at path. An empty f infers the format
// from the extension.
func LoadFile(path string, f Format) (*core.Graph, error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	g, err := Read(bytes.NewReader(data), f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s as %s", path, f)
	}

	return g, nil
}
