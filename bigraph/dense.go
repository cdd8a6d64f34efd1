package bigraph

import "fmt"

// Dense stores a bipartite graph as a full boolean adjacency matrix.
//
// adj[i][j] holds whether an edge {i,j} exists; the matrix is kept
// symmetric by construction (adj[i][j] == adj[j][i] always). Edges are
// only ever created between partitions by the accessors below, although
// the storage itself does not forbid intra-partition entries.
//
// Memory is O(size²), which is adequate for the experiment scales this
// module targets; a sparse structure can be substituted behind the same
// query contract for larger graphs.
type Dense struct {
	sizeLeft  int
	sizeRight int
	adj       [][]bool
}

// NewDense allocates an edgeless bipartite graph with the given
// partition sizes. Negative sizes yield ErrBadPartition.
func NewDense(sizeLeft, sizeRight int) (*Dense, error) {
	if sizeLeft < 0 || sizeRight < 0 {
		return nil, fmt.Errorf("NewDense(%d, %d): %w", sizeLeft, sizeRight, ErrBadPartition)
	}
	n := sizeLeft + sizeRight
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return &Dense{sizeLeft: sizeLeft, sizeRight: sizeRight, adj: adj}, nil
}

// Size returns the total number of vertices.
func (g *Dense) Size() int { return g.sizeLeft + g.sizeRight }

// SizeLeft returns the number of left-partition vertices.
func (g *Dense) SizeLeft() int { return g.sizeLeft }

// SizeRight returns the number of right-partition vertices.
func (g *Dense) SizeRight() int { return g.sizeRight }

// IndependentSet returns the ordered global indices of one partition:
// [0, sizeLeft) for Left, [sizeLeft, size) for Right.
func (g *Dense) IndependentSet(side Side) []int {
	lo, hi := 0, g.sizeLeft
	if side == Right {
		lo, hi = g.sizeLeft, g.Size()
	}
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}

	return out
}

// List returns the global indices adjacent to v, in ascending order and
// without duplicates. Returns ErrVertexOutOfRange for an invalid v.
func (g *Dense) List(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	var out []int
	for j, ok := range g.adj[v] {
		if ok {
			out = append(out, j)
		}
	}

	return out, nil
}

// Connected reports whether vertices i and j share an edge. The relation
// is symmetric: Connected(i, j) == Connected(j, i).
func (g *Dense) Connected(i, j int) (bool, error) {
	if err := g.check(i); err != nil {
		return false, err
	}
	if err := g.check(j); err != nil {
		return false, err
	}

	return g.adj[i][j], nil
}

// Degree returns the number of edges incident to v.
func (g *Dense) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}
	var d int
	for _, ok := range g.adj[v] {
		if ok {
			d++
		}
	}

	return d, nil
}

// BulkConnect adds an edge between i and every vertex in others,
// mirroring each entry to keep the matrix symmetric. Re-adding an
// existing edge is a no-op. All indices are validated before any edge
// is written, so an out-of-range index leaves the graph unchanged.
func (g *Dense) BulkConnect(i int, others []int) error {
	if err := g.check(i); err != nil {
		return err
	}
	for _, j := range others {
		if err := g.check(j); err != nil {
			return err
		}
	}
	for _, j := range others {
		g.adj[i][j] = true
		g.adj[j][i] = true
	}

	return nil
}

// BIndependentSet returns the ordered partition-local indices of one
// side: always [0, sizeSide) regardless of side.
func (g *Dense) BIndependentSet(side Side) []int {
	n := g.sizeLeft
	if side == Right {
		n = g.sizeRight
	}
	out := make([]int, n)
	for x := range out {
		out[x] = x
	}

	return out
}

// BList returns the neighbors of local vertex x on the given side,
// expressed as local indices of the opposite side. For a left vertex
// the right-neighbor indices are shifted down by sizeLeft; for a right
// vertex the left neighbors are already 0-based.
func (g *Dense) BList(x int, side Side) ([]int, error) {
	if err := g.checkLocal(x, side); err != nil {
		return nil, err
	}
	if side == Left {
		nbrs, err := g.List(x)
		if err != nil {
			return nil, err
		}
		for k := range nbrs {
			nbrs[k] -= g.sizeLeft
		}

		return nbrs, nil
	}

	return g.List(x + g.sizeLeft)
}

// BConnected reports whether left-local vertex left is adjacent to
// right-local vertex right.
func (g *Dense) BConnected(left, right int) (bool, error) {
	if err := g.checkLocal(left, Left); err != nil {
		return false, err
	}
	if err := g.checkLocal(right, Right); err != nil {
		return false, err
	}

	return g.adj[left][right+g.sizeLeft], nil
}

// BBulkConnect adds edges from left-local vertex left to every
// right-local vertex in rights. Like BulkConnect it is idempotent and
// all-or-nothing on invalid indices.
func (g *Dense) BBulkConnect(left int, rights []int) error {
	if err := g.checkLocal(left, Left); err != nil {
		return err
	}
	for _, r := range rights {
		if err := g.checkLocal(r, Right); err != nil {
			return err
		}
	}
	globals := make([]int, len(rights))
	for k, r := range rights {
		globals[k] = r + g.sizeLeft
	}

	return g.BulkConnect(left, globals)
}

// Lookup mirrors indexed access over the adjacency relation: with one
// index it behaves as List and reports whether the vertex has any
// neighbor; with two indices it behaves as Connected and returns no
// neighbor list. Any other key shape yields ErrBadLookupKey.
func (g *Dense) Lookup(key ...int) (neighbors []int, connected bool, err error) {
	switch len(key) {
	case 1:
		neighbors, err = g.List(key[0])
		if err != nil {
			return nil, false, err
		}

		return neighbors, len(neighbors) > 0, nil
	case 2:
		connected, err = g.Connected(key[0], key[1])
		if err != nil {
			return nil, false, err
		}

		return nil, connected, nil
	default:
		return nil, false, fmt.Errorf("Lookup(%v): %w", key, ErrBadLookupKey)
	}
}

// check validates a global vertex index.
func (g *Dense) check(v int) error {
	if v < 0 || v >= g.Size() {
		return fmt.Errorf("vertex %d not in [0, %d): %w", v, g.Size(), ErrVertexOutOfRange)
	}

	return nil
}

// checkLocal validates a partition-local vertex index for the given side.
func (g *Dense) checkLocal(x int, side Side) error {
	n := g.sizeLeft
	if side == Right {
		n = g.sizeRight
	}
	if x < 0 || x >= n {
		return fmt.Errorf("%s vertex %d not in [0, %d): %w", side, x, n, ErrVertexOutOfRange)
	}

	return nil
}
