package osm2paths

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BuildGraph builds graph from OSM document
func BuildGraph(doc *Document, options ...func(*Builder)) (*Graph, error) {
	return NewBuilder(options...).Build(doc)
}

// BuildFromFile reads OSM file and builds graph from it
func (builder *Builder) BuildFromFile(filename string) (*Graph, error) {
	st := time.Now()
	doc, err := OpenDocument(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	builder.logger.Info("document has been read", zap.String("file", filename), zap.Int("nodes", len(doc.Nodes)), zap.Int("ways", len(doc.Ways)), zap.Duration("elapsed", time.Since(st)))
	return builder.Build(doc)
}

// Build builds graph from OSM document.
//
// Note: panics with InvariantViolation if extraction itself is broken
func (builder *Builder) Build(doc *Document) (*Graph, error) {
	if doc == nil {
		return nil, errors.Wrap(ErrParse, "document is nil")
	}
	if doc.Bounds == nil {
		return nil, errors.Wrap(ErrData, "document has no <bounds> element")
	}

	st := time.Now()
	nodes, extent := prepareNodes(doc.Nodes)
	builder.logger.Info("nodes prepared", zap.Int("nodes", len(nodes)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	groups, useCount, err := prepareEdgeGroups(doc.Ways, nodes, builder.filter)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare ways")
	}
	builder.logger.Info("ways prepared", zap.Int("groups", len(groups)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	cleanEdges, indexed := cleanEdgeGroups(groups, useCount)
	builder.logger.Info("edges merged", zap.Int("edges", len(cleanEdges)), zap.Int("vertices", len(indexed)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	graph := newGraph(indexed, cleanEdges, builder.directed)
	graph.Bounds = *doc.Bounds
	graph.Extent = extent
	builder.logger.Info("graph assembled", zap.Bool("directed", builder.directed), zap.Duration("elapsed", time.Since(st)))
	return graph, nil
}
