package bintree

// linkedQueue is a minimal FIFO queue over a singly linked list, backing the
// breadth-first traversal. The zero value is an empty queue.
type linkedQueue[E any] struct {
	head *queueNode[E]
	tail *queueNode[E]
	size int
}

type queueNode[E any] struct {
	elem E
	next *queueNode[E]
}

func (q *linkedQueue[E]) isEmpty() bool {
	return q.size == 0
}

func (q *linkedQueue[E]) enqueue(e E) {
	node := &queueNode[E]{elem: e}

	if q.tail == nil {
		q.head = node
	} else {
		q.tail.next = node
	}
	q.tail = node
	q.size++
}

// dequeue removes and returns the head element. The queue must not be empty.
func (q *linkedQueue[E]) dequeue() E {
	node := q.head

	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	return node.elem
}
