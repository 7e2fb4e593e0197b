package osm2paths

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrParse malformed or unreadable map document
	ErrParse = errors.New("malformed OSM document")
	// ErrData document is well-formed but can't be turned into graph
	ErrData = errors.New("inconsistent OSM data")
	// ErrUnknownNode query endpoint is not a vertex of the graph
	ErrUnknownNode = errors.New("node is not in graph")
	// ErrUnknownAlgorithm algorithm name is not supported
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// InvariantViolation is a panic value for graph construction bugs
type InvariantViolation struct {
	Reason string
}

func (iv InvariantViolation) Error() string {
	return fmt.Sprintf("graph invariant violated: %s", iv.Reason)
}
