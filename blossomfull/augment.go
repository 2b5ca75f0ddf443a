package blossomfull

import "github.com/katalvlaran/maxmatch/graph"

// augmentBlossom rotates blossom b's childs/edges so the sub-blossom
// containing v becomes the new base, recursing into any nested blossom
// along the way and pairing up the two vertices bridged by each edge it
// walks past (the mates flipped by the augmenting path passing through
// this blossom).
func (s *solver) augmentBlossom(b, v int32) {
	t := v
	for s.blossomParent[t] != b {
		t = s.blossomParent[t]
	}
	bl := s.blos[b]
	k := len(bl.childs)
	i := 0
	for i < k && bl.childs[i] != t {
		i++
	}

	if s.isBlossom(t) {
		s.augmentBlossom(t, v)
	}

	var j, step int
	if i%2 == 1 {
		j = i - k
		step = 1
	} else {
		j = i
		step = -1
	}

	for j != 0 {
		j += step
		idx1 := ((j % k) + k) % k
		var ww, xx int32
		if step == 1 {
			ww, xx = bl.edges[idx1].v, bl.edges[idx1].w
		} else {
			ei := (((j-1)%k)+k)%k
			xx, ww = bl.edges[ei].v, bl.edges[ei].w
		}
		c1 := bl.childs[idx1]
		if s.isBlossom(c1) {
			s.augmentBlossom(c1, ww)
		}

		j += step
		idx2 := ((j % k) + k) % k
		c2 := bl.childs[idx2]
		if s.isBlossom(c2) {
			s.augmentBlossom(c2, xx)
		}

		s.m.SetPair(ww, xx)
	}

	if i > 0 {
		bl.childs = append(append([]int32{}, bl.childs[i:]...), bl.childs[:i]...)
		bl.edges = append(append([]labelEdge{}, bl.edges[i:]...), bl.edges[:i]...)
	}
	s.blossomBase[b] = v
}

// augmentPath walks from v back to its tree's root and from w back to
// its, flipping mates pairwise along the way; any blossom the walk passes
// through is rotated to the correct base first via augmentBlossom so the
// mate assignment lands on the right leaf vertex.
func (s *solver) augmentPath(v, w int32) {
	sVert, j := v, w
	for {
		bs := s.inBlossom[sVert]
		if s.isBlossom(bs) {
			s.augmentBlossom(bs, sVert)
		}
		s.m.SetPair(sVert, j)

		le := s.labelEdge_[bs]
		if le.v == graph.NONE {
			break
		}
		t := le.v
		bt := s.inBlossom[t]
		le2 := s.labelEdge_[bt]
		sVert = le2.v
		j = le2.w
		if s.isBlossom(bt) {
			s.augmentBlossom(bt, j)
		}
		s.m.SetPair(j, sVert)
	}
}
