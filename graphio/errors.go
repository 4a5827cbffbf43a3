// SPDX-License-Identifier: MIT

package graphio

import "github.com/pkg/errors"

var (
	// ErrSyntax is returned for malformed input (bad token count, bad number).
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat is returned for a format name or extension without a codec.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrUnsupportedGraph is returned when writing or exporting a directed graph.
	ErrUnsupportedGraph = errors.New("graphio: directed graphs are not supported")
)
