package schedulers

import (
	"container/heap"

	"os-project/internal/core"
)

// job is a process tracked by a scheduler run. seq is the admission order and
// breaks ties between jobs that compare equal.
type job struct {
	process   core.Process
	seq       int
	remaining int
	started   bool
	firstRun  int
}

type jobHeap struct {
	items []*job
	less  func(a, b *job) bool
}

func (h jobHeap) Len() int { return len(h.items) }

func (h jobHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a, b) {
		return true
	}
	if h.less(b, a) {
		return false
	}
	return a.seq < b.seq
}

func (h jobHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *jobHeap) Push(x any) { h.items = append(h.items, x.(*job)) }

func (h *jobHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}

// priorityQueue pops the job with the smallest key, falling back to
// admission order on ties.
type priorityQueue struct {
	h *jobHeap
}

func newPriorityQueue(less func(a, b *job) bool) *priorityQueue {
	h := &jobHeap{less: less}
	heap.Init(h)
	return &priorityQueue{h: h}
}

func (q *priorityQueue) Push(j *job) { heap.Push(q.h, j) }

func (q *priorityQueue) Pop() *job { return heap.Pop(q.h).(*job) }

func (q *priorityQueue) Len() int { return q.h.Len() }

// fifoQueue is the round robin ready queue.
type fifoQueue struct {
	items []*job
}

func (q *fifoQueue) Push(j *job) { q.items = append(q.items, j) }

func (q *fifoQueue) Pop() *job {
	item := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return item
}

func (q *fifoQueue) Len() int { return len(q.items) }

// arrivalOrder returns jobs for a copy of processes, stable sorted by arrival.
func arrivalOrder(processes []core.Process) []*job {
	jobs := make([]*job, len(processes))
	for i, p := range processes {
		jobs[i] = &job{process: p, remaining: p.Burst}
	}
	sortJobsByArrival(jobs)
	for i := range jobs {
		jobs[i].seq = i
	}
	return jobs
}
