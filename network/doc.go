// Package network implements the maximum-flow numeric kernel shared by
// the belts model builder: an integer-indexed capacitated graph and
// Edmonds–Karp (BFS shortest augmenting path), chosen over the faster
// Dinic or Ford–Fulkerson for its deterministic, reproducible
// augmentation order rather than for asymptotic speed.
//
// FlowGraph stores forward/reverse residual edge pairs in a single
// flat slice indexed by int, not a map-of-maps adjacency; a
// caller-owned name↔index bimap — here, the belts package's Problem —
// is the only place string vertex names appear. Edge iteration order
// is the order edges were added, which belts always derives from
// input order, so two runs over the same input pivot through the same
// augmenting paths and produce byte-identical output.
package network
