// Package belts builds and solves the bounded-flow conveyor network
// problem: nodes with optional throughput caps, edges with lower and
// upper bounds. It reduces the problem to an ordinary max-flow instance
// via node-splitting and lower-bound elimination (Hu's circulation
// construction) and solves the reduction with network.FlowGraph, then
// maps the result back onto the original graph.
package belts
