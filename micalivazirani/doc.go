// Package micalivazirani computes a maximum-cardinality matching in a
// general graph via Micali and Vazirani's two-phase structure: a MIN phase
// that builds a Δ-leveled predecessor forest from every free vertex at
// once (even levels explore all non-matching edges, odd levels follow the
// matching edge only) and records each edge it meets between two
// even-level vertices as a "bridge" bucketed by tenacity, followed by a
// MAX phase that
// resolves those bridges in increasing tenacity order, one augmentation per
// MAX-phase call, rebuilding the MIN-phase forest before the next call; each
// resolution either finds a blossom (shrunk into the tree) or a full
// augmenting path (applied immediately).
//
// MIN phase here is a direct port of the reference MIN phase (levels,
// step_to, tenacity buckets). MAX phase reuses this module's own
// blossom-shrink/augment machinery (the same ancestor-marking LCA and
// parent-chain climb as blossomsimple) driven bridge-by-bridge instead of
// implementing the full green/red DDFS stack machine; see this package's
// DESIGN.md entry for why.
package micalivazirani
