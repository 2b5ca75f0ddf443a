// Package blossomfull computes a maximum-cardinality matching in a general
// graph following Edmonds' original blossom algorithm as implemented by
// NetworkX: nested blossom supernodes (each carrying its own childs/edges
// cycle so blossoms can contain blossoms), a single alternating tree grown
// per free vertex, and recursive lifting through however many levels of
// nesting an augmenting path passes on its way to the root.
//
// It is the least optimized general-graph engine in this module and the
// one closest to a textbook description; it exists primarily as a
// reference oracle other engines are cross-checked against.
package blossomfull
