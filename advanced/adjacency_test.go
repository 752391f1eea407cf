package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacency_SingleTriangle(t *testing.T) {
	expected := Adjacency{{1, 2}, {0, 2}, {0, 1}}
	for _, face := range []Face{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
		adj, err := BuildAdjacency(3, []Face{face})
		require.NoError(t, err)
		assert.Equal(t, expected, adj, "face %v", face)
		assert.Empty(t, adj.Isolated())
	}
}

func TestBuildAdjacency_SharedEdge(t *testing.T) {
	// Two triangles sharing the edge 1-2, plus a quad face
	faces := []Face{{0, 1, 2}, {2, 1, 3}, {3, 1, 4, 5}}
	adj, err := BuildAdjacency(6, faces)
	require.NoError(t, err)
	assert.Equal(t, Adjacency{
		{1, 2},
		{0, 2, 3, 4},
		{0, 1, 3},
		{1, 2, 5},
		{1, 5},
		{3, 4},
	}, adj)
}

func TestBuildAdjacency_Isolated(t *testing.T) {
	adj, err := BuildAdjacency(5, []Face{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, adj.Isolated())
}

func TestBuildAdjacency_Malformed(t *testing.T) {
	cases := map[string][]Face{
		"short face":     {{0, 1, 2}, {0, 1}},
		"index too big":  {{0, 1, 3}},
		"negative index": {{0, -1, 2}},
	}
	for name, faces := range cases {
		faces := faces
		t.Run(name, func(t *testing.T) {
			_, err := BuildAdjacency(3, faces)
			assert.ErrorIs(t, err, ErrOracleFailure)
		})
	}
}
