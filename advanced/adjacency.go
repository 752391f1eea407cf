package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// BuildAdjacency derives the neighbor lists of n vertices from the faces of a
// triangulation. Every pair of cyclically consecutive vertices in a face is an
// edge, recorded in both directions. Edges shared by two faces would be
// recorded twice, so each list is sorted and deduplicated at the end.
//
// Faces come from the triangulation oracle, so malformed faces are reported as
// an oracle failure.
func BuildAdjacency(n int, faces []Face) (Adjacency, error) {
	neighbors := make(Adjacency, n)
	for f, face := range faces {
		if len(face) < 3 {
			return nil, errors.Wrapf(ErrOracleFailure, "face %d has only %d vertices", f, len(face))
		}
		for k, i := range face {
			j := face[CircularIndex(k+1, len(face))]
			if i < 0 || i >= n || j < 0 || j >= n {
				return nil, errors.Wrapf(ErrOracleFailure, "face %d has edge (%d, %d) outside of %d points", f, i, j, n)
			}
			neighbors[i] = append(neighbors[i], j)
			neighbors[j] = append(neighbors[j], i)
		}
	}

	for i, list := range neighbors {
		sort.Ints(list)
		neighbors[i] = dedupSorted(list)
	}
	return neighbors, nil
}

func dedupSorted(list []int) []int {
	if len(list) == 0 {
		return list
	}
	out := list[:1]
	for _, v := range list[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Isolated returns the vertices that appear in no face. A well formed
// triangulation has none; the smoother refuses to relax such a vertex.
func (a Adjacency) Isolated() []int {
	var isolated []int
	for i, list := range a {
		if len(list) == 0 {
			isolated = append(isolated, i)
		}
	}
	return isolated
}
