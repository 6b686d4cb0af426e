/*
 * spatial.go, part of molstore.
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

package molstore

import (
	"sort"

	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

//atomPoint is an atom position in a k-d tree.
type atomPoint struct {
	index int
	pos   r3.Vec
}

func coord(v r3.Vec, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func (p atomPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return coord(p.pos, d) - coord(c.(atomPoint).pos, d)
}

func (p atomPoint) Dims() int { return 3 }

//Distance returns the squared distance, as kdtree expects.
func (p atomPoint) Distance(c kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(p.pos, c.(atomPoint).pos))
}

type atomPoints []atomPoint

func (p atomPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p atomPoints) Len() int                              { return len(p) }
func (p atomPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p atomPoints) Pivot(d kdtree.Dim) int {
	pl := atomPlane{Dim: d, atomPoints: p}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

//atomPlane sorts atomPoints along one dimension.
type atomPlane struct {
	kdtree.Dim
	atomPoints
}

func (p atomPlane) Less(i, j int) bool {
	return coord(p.atomPoints[i].pos, p.Dim) < coord(p.atomPoints[j].pos, p.Dim)
}
func (p atomPlane) Swap(i, j int) { p.atomPoints[i], p.atomPoints[j] = p.atomPoints[j], p.atomPoints[i] }
func (p atomPlane) Slice(start, end int) kdtree.SortSlicer {
	p.atomPoints = p.atomPoints[start:end]
	return p
}

//SpatialIndex is a k-d tree over the positions of some atoms of a structure,
//taken at the moment it was built.
type SpatialIndex struct {
	tree *kdtree.Tree
	n    int
}

//NewSpatialIndex indexes the atoms of s in set, or all of them if set is nil.
func NewSpatialIndex(s *Structure, set *bitset.Bitset) (*SpatialIndex, error) {
	n := s.atomStore.Count()
	if set != nil && set.Len() != n {
		return nil, errors.Newf(errors.ErrCapacityMismatch, "atom set of capacity %d for %d atoms", set.Len(), n)
	}
	ap := &AtomProxy{s: s}
	var pts atomPoints
	add := func(i int) {
		ap.index = i
		pts = append(pts, atomPoint{index: i, pos: ap.Position()})
	}
	if set == nil {
		pts = make(atomPoints, 0, n)
		for i := 0; i < n; i++ {
			add(i)
		}
	} else {
		pts = make(atomPoints, 0, set.Size())
		set.ForEach(func(i, _ int) { add(i) })
	}
	return &SpatialIndex{tree: kdtree.New(pts, false), n: len(pts)}, nil
}

//Len returns the number of atoms indexed.
func (I *SpatialIndex) Len() int {
	return I.n
}

//Within returns, in ascending order, the indexes of the atoms at a distance
//of at most radius from p.
func (I *SpatialIndex) Within(p r3.Vec, radius float64) []int {
	keep := kdtree.NewDistKeeper(radius * radius)
	I.tree.NearestSet(keep, atomPoint{index: -1, pos: p})
	ret := make([]int, 0, keep.Len())
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		ret = append(ret, c.Comparable.(atomPoint).index)
	}
	sort.Ints(ret)
	return ret
}

//AtomsWithin returns the set of atoms in set (all atoms if nil) at a distance
//of at most radius from p.
func (S *Structure) AtomsWithin(p r3.Vec, radius float64, set *bitset.Bitset) (*bitset.Bitset, error) {
	idx, err := NewSpatialIndex(S, set)
	if err != nil {
		return nil, err
	}
	ret := bitset.New(S.atomStore.Count())
	for _, i := range idx.Within(p, radius) {
		ret.AddUnsafe(i)
	}
	return ret, nil
}
