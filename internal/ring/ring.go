// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ring implements a bounded, lock-free, multi-producer queue.
//
// Ring is a port of the stamped-slot array queue design (Vyukov bounded
// MPMC queue): every slot carries an atomic stamp encoding the lap in which
// it was last written or read, and head/tail are lap-tagged indices. A
// producer only writes a slot after claiming it with a CAS on tail, and a
// consumer only reads a slot after claiming it with a CAS on head, so a
// value is never observed half-written.
//
// ForcePush never fails: when the ring is full it claims the oldest slot by
// advancing head and overwrites it in place.
package ring

import (
	"math/bits"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// slot holds one element and its stamp.
//
// For a slot at index i, stamp == lap+i means the slot is empty and may be
// written by the producer whose tail equals the stamp; stamp == lap+i+1
// means the slot is full and may be read by the consumer whose head is
// stamp-1.
type slot[T any] struct {
	stamp atomic.Uint64
	value T
}

// Ring is a fixed-capacity FIFO queue safe for any number of concurrent
// producers and consumers. The zero value is not usable; create one with New.
type Ring[T any] struct {
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad

	slots    []slot[T]
	capacity uint64

	// oneLap is the smallest power of two greater than capacity. The low bits
	// of head/tail hold the index, the high bits hold the lap.
	oneLap uint64
}

// New creates a Ring holding at most capacity elements.
// Panics if capacity is not positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	c := uint64(capacity)
	r := &Ring[T]{
		slots:    make([]slot[T], c),
		capacity: c,
		oneLap:   nextPowerOfTwo(c + 1),
	}
	for i := range r.slots {
		r.slots[i].stamp.Store(uint64(i))
	}
	return r
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// Push appends v at the tail. It reports false without modifying the ring
// when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	_, _, ok := r.push(v, false)
	return ok
}

// ForcePush appends v at the tail. When the ring is full the oldest element
// is removed to make room and returned with evicted set to true.
func (r *Ring[T]) ForcePush(v T) (old T, evicted bool) {
	old, evicted, _ = r.push(v, true)
	return old, evicted
}

func (r *Ring[T]) push(v T, force bool) (old T, evicted, ok bool) {
	var spins int
	tail := r.tail.Load()
	for {
		index := tail & (r.oneLap - 1)
		lap := tail &^ (r.oneLap - 1)
		newTail := tail + 1
		if index+1 >= r.capacity {
			newTail = lap + r.oneLap
		}

		s := &r.slots[index]
		stamp := s.stamp.Load()

		switch {
		case tail == stamp:
			// Slot is empty for this lap: claim it.
			if r.tail.CompareAndSwap(tail, newTail) {
				s.value = v
				s.stamp.Store(tail + 1)
				return old, false, true
			}
			backoff(&spins)
			tail = r.tail.Load()

		case stamp+r.oneLap == tail+1:
			// Slot still holds the element written one lap ago: the ring
			// may be full.
			if force {
				head := tail - r.oneLap
				newHead := newTail - r.oneLap
				if r.head.CompareAndSwap(head, newHead) {
					// The oldest element now belongs to us; no consumer can
					// claim it and no producer can claim tail until the
					// stamp below is published.
					r.tail.Store(newTail)
					old = s.value
					s.value = v
					s.stamp.Store(tail + 1)
					return old, true, true
				}
			} else if r.head.Load()+r.oneLap == tail {
				return old, false, false
			}
			backoff(&spins)
			tail = r.tail.Load()

		default:
			// Another producer is ahead of us; catch up.
			backoff(&spins)
			tail = r.tail.Load()
		}
	}
}

// Pop removes and returns the element at the head. It reports false when
// the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	var spins int
	head := r.head.Load()
	for {
		index := head & (r.oneLap - 1)
		lap := head &^ (r.oneLap - 1)

		s := &r.slots[index]
		stamp := s.stamp.Load()

		switch {
		case head+1 == stamp:
			newHead := head + 1
			if index+1 >= r.capacity {
				newHead = lap + r.oneLap
			}
			if r.head.CompareAndSwap(head, newHead) {
				v := s.value
				s.value = zero
				s.stamp.Store(head + r.oneLap)
				return v, true
			}
			backoff(&spins)
			head = r.head.Load()

		case stamp == head:
			// Slot is empty. Either the ring is empty or a producer has
			// claimed the slot and is still writing it.
			if r.tail.Load() == head {
				return zero, false
			}
			backoff(&spins)
			head = r.head.Load()

		default:
			backoff(&spins)
			head = r.head.Load()
		}
	}
}

// Len returns the number of elements in the ring. Under concurrent use the
// result is a snapshot that may already be stale.
func (r *Ring[T]) Len() int {
	for {
		tail := r.tail.Load()
		head := r.head.Load()
		if r.tail.Load() != tail {
			continue
		}

		hix := head & (r.oneLap - 1)
		tix := tail & (r.oneLap - 1)
		switch {
		case hix < tix:
			return int(tix - hix)
		case hix > tix:
			return int(r.capacity - hix + tix)
		case tail == head:
			return 0
		default:
			return int(r.capacity)
		}
	}
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.Len() == 0
}

// backoff yields the processor after a few failed attempts so that a
// preempted peer can finish its slot write.
func backoff(spins *int) {
	if *spins >= 4 {
		runtime.Gosched()
	}
	*spins++
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}
