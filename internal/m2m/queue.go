package m2m

import "fmt"

// BufferDescriptor is one kernel-allocated, mmap'd buffer slot on
// either queue.
type BufferDescriptor struct {
	Index  int
	Data   []byte
	Length uint32

	// inFlight is true from QBuf until the matching DQBuf, recorded
	// here so Submit can refuse to enqueue a buffer the kernel still
	// owns.
	inFlight bool
}

// Queue tracks the set of buffer descriptors for one direction
// (OUTPUT or CAPTURE) of a Device, and which ones are currently free
// for the caller to fill or bind.
type Queue struct {
	dev    *Device
	output bool
	bufs   []*BufferDescriptor
	free   []int // indices into bufs, available for reuse
}

// NewQueue requests count kernel buffers for the given direction, maps
// each one, and returns a Queue ready to hand out free descriptors.
func NewQueue(dev *Device, output bool, count int) (*Queue, error) {
	got, err := dev.RequestBuffers(output, count)
	if err != nil {
		return nil, err
	}

	q := &Queue{dev: dev, output: output, bufs: make([]*BufferDescriptor, got)}
	for i := 0; i < got; i++ {
		length, offset, err := dev.QueryBuffer(output, i)
		if err != nil {
			return nil, err
		}
		data, err := dev.Mmap(output, i, length, offset)
		if err != nil {
			return nil, err
		}
		q.bufs[i] = &BufferDescriptor{Index: i, Data: data, Length: length}
		q.free = append(q.free, i)
	}
	return q, nil
}

// Depth returns the number of kernel buffers backing this queue.
func (q *Queue) Depth() int { return len(q.bufs) }

// Acquire pops a free descriptor, or reports ok=false if every buffer
// is currently in flight.
func (q *Queue) Acquire() (desc *BufferDescriptor, ok bool) {
	if len(q.free) == 0 {
		return nil, false
	}
	idx := q.free[len(q.free)-1]
	q.free = q.free[:len(q.free)-1]
	return q.bufs[idx], true
}

// Submit enqueues desc to the kernel with bytesUsed valid bytes,
// marking it in-flight.
func (q *Queue) Submit(desc *BufferDescriptor, bytesUsed uint32) error {
	if desc.inFlight {
		return fmt.Errorf("m2m: buffer %d already in flight", desc.Index)
	}
	if err := q.dev.QBuf(q.output, desc.Index, bytesUsed); err != nil {
		return err
	}
	desc.inFlight = true
	return nil
}

// Collect dequeues the next completed buffer and returns its
// descriptor, still marked in-flight=false but NOT yet back on the
// free list: the caller (the session's surface-binding logic) decides
// when the buffer is safe to recycle.
func (q *Queue) Collect() (*BufferDescriptor, error) {
	res, err := q.dev.DQBuf(q.output)
	if err != nil {
		return nil, err
	}
	desc := q.bufs[res.Index]
	desc.inFlight = false
	desc.Length = res.BytesUsed
	return desc, nil
}

// Recycle returns desc to the free list. Callers must not recycle a
// buffer still bound to a surface; that check lives in the session
// layer, not here.
func (q *Queue) Recycle(desc *BufferDescriptor) {
	q.free = append(q.free, desc.Index)
}

// DescriptorAt returns the descriptor for kernel buffer index, or nil
// if index is out of range.
func (q *Queue) DescriptorAt(index int) *BufferDescriptor {
	if index < 0 || index >= len(q.bufs) {
		return nil
	}
	return q.bufs[index]
}
