package domain

import "container/heap"

// frontierItem tracks one station during a single search: its best known
// distance from the origin and the predecessor that produced it.
type frontierItem struct {
	station     string
	distance    int
	predecessor string
	index       int // position in the heap, -1 once popped
}

// frontier is a min-heap of frontierItems ordered by tentative distance.
// It implements heap.Interface; decreaseKey keeps items in place instead of
// pushing stale duplicates.
type frontier []*frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index, f[j].index = i, j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}

func (f *frontier) decreaseKey(item *frontierItem, distance int, predecessor string) {
	item.distance = distance
	item.predecessor = predecessor
	heap.Fix(f, item.index)
}
