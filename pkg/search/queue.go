package search

import "github.com/aretw0/furrow/pkg/domain"

type item struct {
	node  *domain.SearchNode
	seq   int // insertion order, for deterministic ties
	index int
}

// frontier is a min-heap on F, implementing container/heap.Interface.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].node.F != f[j].node.F {
		return f[i].node.F < f[j].node.F
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	it := x.(*item)
	it.index = len(*f)
	*f = append(*f, it)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*f = old[:n-1]
	return it
}
