package advanced

// Slack allowed when comparing recomputed distances and positions.
const Tolerance = 1e-9

// Faces are cycles, so we often want to treat them as circular buffers. This
// gives the modular index given length n, but unlike the raw modulo operator,
// it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// ActiveList holds the indices of points that may still spawn candidates
// during sampling. Order is not meaningful to the algorithm, but it is stable,
// so a given random sequence always picks the same points.
type ActiveList []int

func (a *ActiveList) Push(i int) {
	*a = append(*a, i)
}

// Remove the entry at position pos (not the point index) by swapping the last
// entry into its place.
func (a *ActiveList) Remove(pos int) {
	last := len(*a) - 1
	(*a)[pos] = (*a)[last]
	*a = (*a)[:last]
}

func (a *ActiveList) Len() int {
	return len(*a)
}

func (a *ActiveList) Empty() bool {
	return len(*a) == 0
}
