// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Whitespace-separated edge-list codec.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const commentPrefix = "#"

// DecodeEdgeList parses an edge list into a Document.
//
//	# comment
//	a b          unit edge
//	b c 2.5      weighted edge
//	c d 1 cap=3  weight plus attribute
//	e            isolated vertex
//
// Complexity: O(size of input).
func DecodeEdgeList(r io.Reader) (*Document, error) {
	d := &Document{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 1 {
			d.Vertices = append(d.Vertices, fields[0])
			continue
		}
		rec := EdgeRecord{From: fields[0], To: fields[1]}
		for _, f := range fields[2:] {
			if k, v, ok := strings.Cut(f, "="); ok {
				x, err := strconv.ParseFloat(v, 64)
				if err != nil || k == "" {
					return nil, errors.Wrapf(ErrSyntax, "line %d: attribute %q", line, f)
				}
				if rec.Attrs == nil {
					rec.Attrs = make(map[string]float64, 1)
				}
				rec.Attrs[k] = x
				continue
			}
			if rec.Weight != nil || rec.Attrs != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: unexpected token %q", line, f)
			}
			w, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: weight %q", line, f)
			}
			rec.Weight = &w
		}
		d.Edges = append(d.Edges, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading edge list")
	}

	return d, nil
}

// EncodeEdgeList writes d as an edge list: isolated vertices first, then
// one edge per line with its weight (weighted documents) and sorted attributes.
func EncodeEdgeList(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	for _, id := range d.Vertices {
		fmt.Fprintln(bw, id)
	}
	for _, e := range d.Edges {
		bw.WriteString(e.From)
		bw.WriteByte(' ')
		bw.WriteString(e.To)
		if e.Weight != nil {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(*e.Weight, 'g', -1, 64))
		}
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(bw, " %s=%s", k, strconv.FormatFloat(e.Attrs[k], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "writing edge list")
}
