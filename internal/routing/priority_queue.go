package routing

import "container/heap"

// queueItem - предварительное расстояние до узла.
// Устаревшие элементы остаются в очереди и пропускаются при извлечении.
type queueItem struct {
	node  int
	dist  float64
	index int
}

// priorityQueue - min-heap по dist, при равенстве по индексу узла
type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

func (pq *priorityQueue) push(node int, dist float64) {
	heap.Push(pq, &queueItem{node: node, dist: dist})
}

func (pq *priorityQueue) pop() *queueItem {
	return heap.Pop(pq).(*queueItem)
}
