// Package matchio reads graphs from the two external file formats this
// module supports: a plain edge-list format (ReadEdgeList, participle-
// grammar based) and SuiteSparse Matrix Market files (ReadMatrixMarket,
// hand-rolled bufio.Scanner — see its doc comment for why participle
// doesn't fit that format).
package matchio
