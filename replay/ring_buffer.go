package replay

// RingBuffer is a fixed-size circular buffer of per-tick snapshots.
type RingBuffer struct {
	buffer   []Snapshot
	capacity int
	head     int // Points to the next write position
	size     int // Current number of elements
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{
		buffer:   make([]Snapshot, capacity),
		capacity: capacity,
	}
}

// Add inserts a new snapshot, evicting the oldest once full.
func (rb *RingBuffer) Add(s Snapshot) {
	rb.buffer[rb.head] = s
	rb.head = (rb.head + 1) % rb.capacity
	if rb.size < rb.capacity {
		rb.size++
	}
}

// Get retrieves the snapshot recorded at exactly the given tick.
func (rb *RingBuffer) Get(tick int64) (Snapshot, bool) {
	if rb.size == 0 {
		return Snapshot{}, false
	}

	// Search backwards from most recent.
	for i := 0; i < rb.size; i++ {
		idx := (rb.head - 1 - i + rb.capacity) % rb.capacity
		if rb.buffer[idx].Tick == tick {
			return rb.buffer[idx], true
		}
		if rb.buffer[idx].Tick < tick {
			break
		}
	}
	return Snapshot{}, false
}

// GetClosest retrieves the snapshot closest to the given tick.
func (rb *RingBuffer) GetClosest(tick int64) (Snapshot, bool) {
	if rb.size == 0 {
		return Snapshot{}, false
	}

	var closest Snapshot
	var closestDist int64 = 1<<63 - 1
	found := false
	for i := 0; i < rb.size; i++ {
		idx := (rb.head - 1 - i + rb.capacity) % rb.capacity
		dist := abs64(rb.buffer[idx].Tick - tick)
		if dist < closestDist {
			closestDist = dist
			closest = rb.buffer[idx]
			found = true
		}
	}
	return closest, found
}

// Latest returns the most recently recorded snapshot.
func (rb *RingBuffer) Latest() (Snapshot, bool) {
	if rb.size == 0 {
		return Snapshot{}, false
	}
	return rb.buffer[(rb.head-1+rb.capacity)%rb.capacity], true
}

// Size returns the current number of elements in the buffer.
func (rb *RingBuffer) Size() int {
	return rb.size
}

// Capacity returns the maximum capacity of the buffer.
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
