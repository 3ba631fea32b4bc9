package physics

// ContactEvent reports that two colliders started or stopped touching.
type ContactEvent struct {
	A, B    Handle
	Started bool
}

// ProximityStatus is the relation between a tracked body and a sensor.
type ProximityStatus int

const (
	Disjoint ProximityStatus = iota
	WithinMargin
	Intersecting
)

func (s ProximityStatus) String() string {
	switch s {
	case Intersecting:
		return "intersecting"
	case WithinMargin:
		return "within-margin"
	}
	return "disjoint"
}

// ProximityEvent reports a status transition between a tracked body and a
// sensor. Status is the new status.
type ProximityEvent struct {
	Body, Sensor Handle
	Status       ProximityStatus
}

// queue is a FIFO drained with pop. The backing array is reused once empty.
type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	return v, true
}

func (q *queue[T]) len() int {
	return len(q.items) - q.head
}
