package reach

import "github.com/katalvlaran/cyberank/graph"

// walker encapsulates mutable BFS state over ds's outbound view,
// mirroring the teacher's bfs.walker shape adapted from string vertex
// IDs and a core.Graph neighbor lookup to dense int indices and a CSR
// outbound slice.
type walker struct {
	ds      *graph.Dataset
	queue   []int
	visited []bool
}

// From runs breadth-first search over ds's outbound edges starting at
// start, returning a boolean slice marking every node reached
// (including start itself).
func From(ds *graph.Dataset, start int) []bool {
	w := &walker{
		ds:      ds,
		queue:   make([]int, 0, ds.NumNodes()),
		visited: make([]bool, ds.NumNodes()),
	}
	w.enqueue(start)
	w.loop()
	return w.visited
}

// AllReachable reports whether every node in ds is reachable from
// start via outbound edges.
func AllReachable(ds *graph.Dataset, start int) bool {
	visited := From(ds, start)
	for _, v := range visited {
		if !v {
			return false
		}
	}
	return true
}

func (w *walker) enqueue(c int) {
	w.visited[c] = true
	w.queue = append(w.queue, c)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]

		start, count := w.ds.OutSlice(c)
		for e := start; e < start+count; e++ {
			t := int(w.ds.OutTarget(e))
			if !w.visited[t] {
				w.enqueue(t)
			}
		}
	}
}
