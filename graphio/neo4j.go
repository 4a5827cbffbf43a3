// SPDX-License-Identifier: MIT
//
// File: neo4j.go
// Role: Load an undirected graph from Neo4j through a minimal read-only Querier.

package graphio

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"

	"github.com/katalvlaran/currentflow/core"
)

// ErrMissingURI indicates Neo4jOptions without a URI.
var ErrMissingURI = errors.New("graphio: neo4j URI is required")

// Record is one row of a Cypher result.
type Record map[string]any

// Querier runs read-only Cypher. Neo4jQuerier implements it over Bolt;
// tests substitute an in-memory fake.
type Querier interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Neo4jOptions configures NewNeo4jQuerier.
type Neo4jOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// Neo4jQuerier is a Querier backed by the official Bolt driver.
type Neo4jQuerier struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jQuerier opens a driver and verifies connectivity.
// Anonymous auth is used when Username is empty.
func NewNeo4jQuerier(ctx context.Context, opts Neo4jOptions) (*Neo4jQuerier, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}
	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}
	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating neo4j driver")
	}
	if err = driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, errors.Wrap(err, "verifying neo4j connectivity")
	}

	return &Neo4jQuerier{driver: driver, database: opts.Database}, nil
}

// ExecuteRead runs cypher in a read session and collects every record.
func (q *Neo4jQuerier) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := q.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: q.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	var out []Record
	for res.Next(ctx) {
		rec := res.Record()
		row := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			row[key], _ = rec.Get(key)
		}
		out = append(out, row)
	}

	return out, res.Err()
}

// Close releases the driver.
func (q *Neo4jQuerier) Close(ctx context.Context) error { return q.driver.Close(ctx) }

// Neo4jQuery selects the subgraph to load.
type Neo4jQuery struct {
	// Label restricts vertices to one node label; empty matches all nodes.
	Label string
	// Relationship restricts edges to one relationship type; empty matches all.
	Relationship string
	// IDProperty names the node property used as vertex ID (default "id").
	IDProperty string
	// WeightProperty names the relationship property used as Edge.Weight.
	// Empty loads an unweighted graph; a missing property reads as 1.
	WeightProperty string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// cypher renders the vertex and edge statements of q.
func (q Neo4jQuery) cypher() (nodes, rels string, err error) {
	label, rel := "", ""
	if q.Label != "" {
		if !identifier.MatchString(q.Label) {
			return "", "", errors.Wrapf(ErrSyntax, "neo4j label %q", q.Label)
		}
		label = ":`" + q.Label + "`"
	}
	if q.Relationship != "" {
		if !identifier.MatchString(q.Relationship) {
			return "", "", errors.Wrapf(ErrSyntax, "neo4j relationship type %q", q.Relationship)
		}
		rel = ":`" + q.Relationship + "`"
	}
	nodes = fmt.Sprintf("MATCH (n%s) RETURN n[$idProp] AS id", label)
	rels = fmt.Sprintf("MATCH (a%s)-[r%s]->(b%s) RETURN a[$idProp] AS from, b[$idProp] AS to, r[$weightProp] AS weight",
		label, rel, label)

	return nodes, rels, nil
}

// LoadNeo4j reads the vertices and relationships selected by query.
//
// Implementation:
//   - Stage 1: Fetch vertex IDs, then relationships (direction ignored).
//   - Stage 2: Skip self-relationships, merge parallel ones by summing weights.
//   - Stage 3: Build the graph through a Document sorted by endpoint IDs.
//
// Errors: ErrSyntax for bad identifiers or non-numeric weights, query errors wrapped.
func LoadNeo4j(ctx context.Context, q Querier, query Neo4jQuery) (*core.Graph, error) {
	if query.IDProperty == "" {
		query.IDProperty = "id"
	}
	nodeStmt, relStmt, err := query.cypher()
	if err != nil {
		return nil, err
	}
	params := map[string]any{"idProp": query.IDProperty, "weightProp": query.WeightProperty}

	nodeRows, err := q.ExecuteRead(ctx, nodeStmt, params)
	if err != nil {
		return nil, errors.Wrap(err, "querying neo4j vertices")
	}
	relRows, err := q.ExecuteRead(ctx, relStmt, params)
	if err != nil {
		return nil, errors.Wrap(err, "querying neo4j relationships")
	}

	d := &Document{Weighted: query.WeightProperty != ""}
	for _, row := range nodeRows {
		if id := idOf(row["id"]); id != "" {
			d.Vertices = append(d.Vertices, id)
		}
	}
	sort.Strings(d.Vertices)

	merged := make(map[[2]string]float64, len(relRows))
	for i, row := range relRows {
		u, v := idOf(row["from"]), idOf(row["to"])
		if u == "" || v == "" || u == v {
			continue
		}
		if v < u {
			u, v = v, u
		}
		w := 1.0
		if d.Weighted && row["weight"] != nil {
			if w, err = toFloat(row["weight"]); err != nil {
				return nil, errors.Wrapf(err, "relationship %d (%s–%s)", i, u, v)
			}
		}
		merged[[2]string{u, v}] += w
	}
	pairs := make([][2]string, 0, len(merged))
	for p := range merged {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})
	for _, p := range pairs {
		rec := EdgeRecord{From: p[0], To: p[1]}
		if d.Weighted {
			w := merged[p]
			rec.Weight = &w
		}
		d.Edges = append(d.Edges, rec)
	}

	return d.Graph()
}

func idOf(v any) string {
	if v == nil {
		return ""
	}

	return fmt.Sprint(v)
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	}

	return 0, errors.Wrapf(ErrSyntax, "weight %v (%T) is not numeric", v, v)
}
