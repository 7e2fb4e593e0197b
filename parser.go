package osm2paths

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Builder turns OSM documents into road graphs
type Builder struct {
	logger   *zap.Logger
	directed bool
	filter   wayFilter
}

func (builder *Builder) String() string {
	return fmt.Sprintf(`
Graph builder parameters:
	directed: %t
	`,
		builder.directed,
	)
}

// NewBuilder returns builder with given options applied.
// By default graph is undirected and nothing is logged
func NewBuilder(options ...func(*Builder)) *Builder {
	builder := &Builder{
		logger:   zap.NewNop(),
		directed: false,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// WithLogger sets logger for build phases
func WithLogger(logger *zap.Logger) func(*Builder) {
	return func(builder *Builder) {
		if logger != nil {
			builder.logger = logger
		}
	}
}

// WithDirected keeps edges in way traversal order only instead of mirroring them
func WithDirected(directed bool) func(*Builder) {
	return func(builder *Builder) {
		builder.directed = directed
	}
}

// WithHighways keeps only ways with given 'highway' tag values. No values means every way
func WithHighways(highways ...HighwayType) func(*Builder) {
	return func(builder *Builder) {
		builder.filter = newWayFilter(highways)
	}
}

func (builder *Builder) highways() []string {
	if len(builder.filter) == 0 {
		return []string{"any"}
	}
	highways := make([]string, 0, len(builder.filter))
	for highway := range builder.filter {
		highways = append(highways, highway.String())
	}
	sort.Strings(highways)
	return highways
}
