// Package paths implements shortest path algorithms over weighted directed graphs.
//
// Single pair:
//
//   - Dijkstra: label-setting search over a binary heap, non-negative weights.
//   - BellmanFord: edge relaxation with negative cycle detection.
//
// All pairs:
//
//   - FloydWarshall: keeps every intermediate round so paths can be rebuilt later (Table.PathBetween).
//
// K shortest loopless paths:
//
//   - Yen: built on top of Dijkstra.
//
// Graphs are adjacency maps keyed by any ordered type, so both dense indices and sparse labels work.
// None of the functions modify the graph they are given; a graph can be shared between concurrent queries.
package paths
