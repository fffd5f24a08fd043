// Package fastqueue provides allocation-light FIFO and LIFO buffers for
// tight traversal loops (flood-fill BFS, border-list walks) where the
// standard library's container/list or channel-based queues would add
// per-operation allocation overhead.
//
// Queue is a slice-backed FIFO with a head cursor instead of a
// classic two-pointer ring buffer: Pop advances the head cursor rather
// than reslicing from the front, and the backing array is reused from
// its start once the queue drains completely or Clear is called; it is
// never compacted while elements remain. Stack is a
// plain slice-backed LIFO. Neither type deallocates its backing array
// on Clear; Clear only resets the logical length so the next burst of
// Push calls can reuse the existing capacity.
package fastqueue
