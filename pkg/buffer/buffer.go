// Package buffer provides a growable sequence with explicit, fallible
// capacity requests.
//
// A Buffer doubles its capacity when it runs out of room, starting from
// a per-buffer seed. Growth either fully succeeds or returns an error
// wrapping ErrAllocation with the buffer left exactly as it was.
package buffer

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	ErrAllocation    = errors.New("buffer allocation failed")
	ErrInvalidLength = errors.New("invalid buffer length")
)

// Buffer is a growable sequence of T.
// The zero value is an empty buffer with seed capacity 1 and no limit.
type Buffer[T any] struct {
	data  []T // len(data) is the capacity
	n     int
	seed  int
	limit int
}

// New returns an empty buffer that allocates seed elements on first
// growth. A positive limit caps the capacity in elements; requests
// beyond it fail with ErrAllocation.
func New[T any](seed, limit int) Buffer[T] {
	if seed < 1 {
		seed = 1
	}
	return Buffer[T]{seed: seed, limit: limit}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the number of elements the buffer holds without growing.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	return b.data[:b.n][i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[:b.n][i] = v
}

// Ptr returns a pointer to the element at index i.
// The pointer is invalidated by any growth.
func (b *Buffer[T]) Ptr(i int) *T {
	return &b.data[:b.n][i]
}

// Slice returns the live elements. The returned slice aliases the
// buffer and must not be retained across calls that may grow it.
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.n]
}

// growTarget returns the capacity to allocate so that at least min
// elements fit.
func (b *Buffer[T]) growTarget(min int) int {
	seed := b.seed
	if seed < 1 {
		seed = 1
	}
	c := seed
	if cur := len(b.data); cur > 0 {
		c = cur * 2
	}
	if c < min {
		c = min
	}
	if b.limit > 0 && c > b.limit {
		c = b.limit
	}
	return c
}

// EnsureCapacity makes room for at least n elements. Existing values
// are preserved, but their storage may move.
func (b *Buffer[T]) EnsureCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if len(b.data) >= n {
		return nil
	}
	if b.limit > 0 && n > b.limit {
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocation, n, b.limit)
	}

	data, err := allocate[T](b.growTarget(n))
	if err != nil {
		return err
	}
	copy(data, b.data[:b.n])
	b.data = data
	return nil
}

// allocate returns a slice of length n, converting a runtime
// allocation panic into ErrAllocation.
func allocate[T any](n int) (data []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}

// Push appends v, growing the buffer if needed.
func (b *Buffer[T]) Push(v T) error {
	if err := b.EnsureCapacity(b.n + 1); err != nil {
		return err
	}
	b.data[b.n] = v
	b.n++
	return nil
}

// SetLen changes the number of live elements. Growing zeroes the new
// slots; shrinking keeps the capacity and leaves the old values in
// place, where they are no longer part of the buffer.
func (b *Buffer[T]) SetLen(n int) error {
	if err := b.EnsureCapacity(n); err != nil {
		return err
	}
	if n > b.n {
		clear(b.data[b.n:n])
	}
	b.n = n
	return nil
}

// RemoveAt removes the element at index i, shifting the following
// elements down so order is kept.
func (b *Buffer[T]) RemoveAt(i int) {
	live := b.data[:b.n]
	copy(live[i:], live[i+1:])
	var zero T
	live[b.n-1] = zero
	b.n--
}

// Index returns the index of the first element for which match
// returns true, or -1.
func (b *Buffer[T]) Index(match func(T) bool) int {
	for i, v := range b.data[:b.n] {
		if match(v) {
			return i
		}
	}
	return -1
}

// Clear sets the length to zero and keeps the capacity.
func (b *Buffer[T]) Clear() {
	b.n = 0
}

// Release drops the storage. The buffer is empty and reusable afterwards.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.n = 0
}
