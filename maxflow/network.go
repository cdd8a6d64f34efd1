package maxflow

// network is the transient residual flow network owned by one Run call.
// Nodes 0..size-1 are the graph vertices (global indices); two synthetic
// nodes follow: source = size, sink = size+1.
//
// cap is the residual capacity matrix, mutated during augmentation.
// adj holds, per node, every node it shares an edge with in either
// direction; residual capacity alone decides traversability, so reverse
// residual edges are reachable by the search.
type network struct {
	total  int
	source int
	sink   int
	adj    [][]int
	cap    [][]int
	parent []int
}

// newNetwork allocates an empty residual network for a graph with the
// given total vertex count.
func newNetwork(size int) *network {
	total := size + 2
	adj := make([][]int, total)
	capacity := make([][]int, total)
	for i := range capacity {
		capacity[i] = make([]int, total)
	}

	return &network{
		total:  total,
		source: size,
		sink:   size + 1,
		adj:    adj,
		cap:    capacity,
		parent: make([]int, total),
	}
}

// addEdge registers a directed edge u→v with capacity c. Both endpoints
// learn about each other so augmentation can push flow back. Each
// unordered pair is registered at most once per network lifetime.
func (n *network) addEdge(u, v, c int) {
	n.cap[u][v] = c
	n.adj[u] = append(n.adj[u], v)
	n.adj[v] = append(n.adj[v], u)
}

// bfs searches for the shortest augmenting path from source to sink over
// edges with strictly positive residual capacity, recording each node's
// predecessor. Reports whether the sink was reached.
func (n *network) bfs() bool {
	visited := make([]bool, n.total)
	for i := range n.parent {
		n.parent[i] = -1
	}

	queue := make([]int, 0, n.total)
	queue = append(queue, n.source)
	visited[n.source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if visited[v] || n.cap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			n.parent[v] = u
			if v == n.sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}

// augment walks the predecessor chain left by a successful bfs, finds
// the bottleneck residual capacity, and applies the residual update:
// subtract the bottleneck forward, add it on the reverse entries.
// Returns the bottleneck value.
func (n *network) augment() int {
	// First pass: bottleneck, seeded by the first edge on the chain
	// rather than an infinite sentinel.
	bottle := -1
	for x := n.sink; x != n.source; x = n.parent[x] {
		c := n.cap[n.parent[x]][x]
		if bottle < 0 || c < bottle {
			bottle = c
		}
	}

	// Second pass: residual update along the same chain.
	for x := n.sink; x != n.source; x = n.parent[x] {
		n.cap[n.parent[x]][x] -= bottle
		n.cap[x][n.parent[x]] += bottle
	}

	return bottle
}

// maxflow runs the Edmonds–Karp loop to exhaustion and returns the total
// flow pushed. Absence of an augmenting path is the normal termination
// condition, not an error.
func (n *network) maxflow() int {
	var total int
	for n.bfs() {
		total += n.augment()
	}

	return total
}
