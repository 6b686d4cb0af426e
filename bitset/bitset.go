/*
 * bitset.go, part of molstore.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package bitset implements a fixed-capacity bit vector, one bit per row of a
// store, with the set algebra needed for atom and bond selections.
//
// The capacity is set at construction and never changes. Binary operations
// between sets of different capacity are rejected with an
// errors.ErrCapacityMismatch error, they are never resized implicitly. A set
// built for a store becomes stale as soon as the store grows.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/rmera/molstore/errors"
)

const wordSize = 64

// Bitset is a bit per row, for n rows.
type Bitset struct {
	words []uint64
	n     int
}

// New returns an empty Bitset able to address n rows.
func New(n int) *Bitset {
	if n < 0 {
		n = 0
	}
	return &Bitset{words: make([]uint64, (n+wordSize-1)/wordSize), n: n}
}

// NewFull returns a Bitset with all n bits set.
func NewFull(n int) *Bitset {
	return New(n).SetAll(true)
}

// FromIndices returns a Bitset of capacity n with the given bits set.
func FromIndices(n int, idx ...int) (*Bitset, error) {
	b := New(n)
	if err := b.Add(idx...); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the capacity, the number of addressable bits.
func (b *Bitset) Len() int {
	return b.n
}

func (b *Bitset) check(i int) error {
	if i < 0 || i >= b.n {
		return errors.IndexOutOfRange("bitset", i, b.n)
	}
	return nil
}

// Add sets the given bits. Nothing is set if any index is out of range.
func (b *Bitset) Add(idx ...int) error {
	for _, i := range idx {
		if err := b.check(i); err != nil {
			return err
		}
	}
	for _, i := range idx {
		b.words[i/wordSize] |= 1 << uint(i%wordSize)
	}
	return nil
}

// AddUnsafe sets bit i without bounds checks. The caller guarantees 0<=i<Len().
func (b *Bitset) AddUnsafe(i int) {
	b.words[i>>6] |= 1 << uint(i&63)
}

// Remove clears the given bits.
func (b *Bitset) Remove(idx ...int) error {
	for _, i := range idx {
		if err := b.check(i); err != nil {
			return err
		}
	}
	for _, i := range idx {
		b.words[i/wordSize] &^= 1 << uint(i%wordSize)
	}
	return nil
}

// Has tells whether bit i is set. Indexes outside the capacity are never set.
func (b *Bitset) Has(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}
	return b.words[i/wordSize]&(1<<uint(i%wordSize)) != 0
}

// SetAll sets (value true) or clears all the bits, and returns the receiver.
func (b *Bitset) SetAll(value bool) *Bitset {
	var w uint64
	if value {
		w = ^uint64(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
	b.clearTail()
	return b
}

// Flip inverts every bit.
func (b *Bitset) Flip() *Bitset {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.clearTail()
	return b
}

// the bits past n in the last word must stay zero, Size and ForEach rely on it.
func (b *Bitset) clearTail() {
	if r := b.n % wordSize; r != 0 && len(b.words) > 0 {
		b.words[len(b.words)-1] &= (1 << uint(r)) - 1
	}
}

// Size returns the number of set bits.
func (b *Bitset) Size() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// IsEmpty is true if no bit is set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsAllSet is true if every addressable bit is set.
func (b *Bitset) IsAllSet() bool {
	return b.Size() == b.n
}

// ForEach calls fn for every set bit, in ascending order. ordinal counts the
// calls, starting at 0.
func (b *Bitset) ForEach(fn func(index, ordinal int)) {
	ordinal := 0
	for k, w := range b.words {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			fn(k*wordSize+t, ordinal)
			ordinal++
			w &= w - 1
		}
	}
}

// ToIndices returns the set bits in ascending order.
func (b *Bitset) ToIndices() []int {
	ret := make([]int, 0, b.Size())
	b.ForEach(func(i, _ int) { ret = append(ret, i) })
	return ret
}

// Clone returns an independent copy of the receiver.
func (b *Bitset) Clone() *Bitset {
	c := &Bitset{words: make([]uint64, len(b.words)), n: b.n}
	copy(c.words, b.words)
	return c
}

func (b *Bitset) compatible(o *Bitset) error {
	if o == nil {
		return errors.New(errors.ErrCapacityMismatch, "bitset: nil operand")
	}
	if b.n != o.n {
		return errors.Newf(errors.ErrCapacityMismatch, "bitset: capacity mismatch %d vs %d", b.n, o.n)
	}
	return nil
}

// Intersect keeps in the receiver only the bits also set in o.
func (b *Bitset) Intersect(o *Bitset) error {
	if err := b.compatible(o); err != nil {
		return err
	}
	for i := range b.words {
		b.words[i] &= o.words[i]
	}
	return nil
}

// Union adds to the receiver the bits set in o.
func (b *Bitset) Union(o *Bitset) error {
	if err := b.compatible(o); err != nil {
		return err
	}
	for i := range b.words {
		b.words[i] |= o.words[i]
	}
	return nil
}

// Difference removes from the receiver the bits set in o.
func (b *Bitset) Difference(o *Bitset) error {
	if err := b.compatible(o); err != nil {
		return err
	}
	for i := range b.words {
		b.words[i] &^= o.words[i]
	}
	return nil
}

// NewIntersection returns a new set with the bits set in both b and o.
func (b *Bitset) NewIntersection(o *Bitset) (*Bitset, error) {
	c := b.Clone()
	if err := c.Intersect(o); err != nil {
		return nil, err
	}
	return c, nil
}

// NewUnion returns a new set with the bits set in b or o.
func (b *Bitset) NewUnion(o *Bitset) (*Bitset, error) {
	c := b.Clone()
	if err := c.Union(o); err != nil {
		return nil, err
	}
	return c, nil
}

// NewDifference returns a new set with the bits of b that are not in o.
func (b *Bitset) NewDifference(o *Bitset) (*Bitset, error) {
	c := b.Clone()
	if err := c.Difference(o); err != nil {
		return nil, err
	}
	return c, nil
}

// Intersects tells whether b and o share at least one bit. Sets of different
// capacity never intersect.
func (b *Bitset) Intersects(o *Bitset) bool {
	if b.compatible(o) != nil {
		return false
	}
	for i := range b.words {
		if b.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// Equals is true if both sets have the same capacity and the same bits.
func (b *Bitset) Equals(o *Bitset) bool {
	if b.compatible(o) != nil {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Roaring returns the set bits as a compressed roaring bitmap.
func (b *Bitset) Roaring() *roaring.Bitmap {
	rb := roaring.New()
	b.ForEach(func(i, _ int) { rb.Add(uint32(i)) })
	return rb
}

// FromRoaring builds a Bitset of capacity n from a roaring bitmap. Values not
// below n are an error.
func FromRoaring(n int, rb *roaring.Bitmap) (*Bitset, error) {
	b := New(n)
	it := rb.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if err := b.check(v); err != nil {
			return nil, err
		}
		b.AddUnsafe(v)
	}
	return b, nil
}

// String lists the set bits, mostly for debugging.
func (b *Bitset) String() string {
	parts := make([]string, 0, 8)
	b.ForEach(func(i, _ int) { parts = append(parts, fmt.Sprint(i)) })
	return fmt.Sprintf("Bitset(%d)[%s]", b.n, strings.Join(parts, " "))
}
