/*
 * extract.go, part of molstore.
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
	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"github.com/rmera/molstore/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Channel is a set of output arrays requested from AtomData or BondData.
type Channel uint8

const (
	PositionChannel Channel = 1 << iota
	ColorChannel
	PickingChannel
	RadiusChannel
	IndexChannel

	AllChannels = PositionChannel | ColorChannel | PickingChannel | RadiusChannel | IndexChannel
)

//Has tells whether c includes all of o. The zero Channel includes everything.
func (c Channel) Has(o Channel) bool {
	return c == 0 || c&o == o
}

//AtomDataParams selects what AtomData extracts.
type AtomDataParams struct {
	What Channel //0 means all
	//Set is the atoms to extract. nil means the atom set of the last Refresh.
	Set        *bitset.Bitset
	Colormaker Colormaker //nil means ElementColors
	Radiuser   Radiuser   //nil means a RadiusFactory from the config
}

//AtomData holds flat per-atom arrays, in ascending atom index. Vector
//channels have 3 values per atom. Channels not requested are nil.
type AtomData struct {
	Position []float32
	Color    []float32
	//Picking holds the global id of the atom if the structure is registered,
	//or the atom index otherwise.
	Picking []uint32
	Radius  []float32
	Index   []uint32
}

//Len returns the number of atoms extracted.
func (D *AtomData) Len() int {
	for _, n := range []int{len(D.Position) / 3, len(D.Color) / 3, len(D.Picking), len(D.Radius), len(D.Index)} {
		if n > 0 {
			return n
		}
	}
	return 0
}

func (S *Structure) checkSet(set *bitset.Bitset, n int, what string) error {
	if set.Len() != n {
		S.log.Warn("set capacity mismatch", "kind", what, "capacity", set.Len(), "rows", n)
		return errors.Newf(errors.ErrCapacityMismatch, "%s set of capacity %d for %d rows, refresh the structure or rebuild the set", what, set.Len(), n)
	}
	return nil
}

//AtomData extracts flat arrays for the atoms in p.Set.
func (S *Structure) AtomData(p AtomDataParams) (*AtomData, error) {
	if S.disposed {
		return nil, errors.New(errors.ErrDisposed, "structure disposed")
	}
	set := p.Set
	if set == nil {
		set = S.atomSet
	}
	if err := S.checkSet(set, S.atomStore.Count(), "atom"); err != nil {
		return nil, err
	}
	cm := p.Colormaker
	if cm == nil {
		cm = ElementColors{}
	}
	rad := p.Radiuser
	if rad == nil {
		rad = NewRadiusFactory(S.cfg)
	}
	n := set.Size()
	d := &AtomData{}
	w := p.What
	if w.Has(PositionChannel) {
		d.Position = make([]float32, 3*n)
	}
	if w.Has(ColorChannel) {
		d.Color = make([]float32, 3*n)
	}
	if w.Has(PickingChannel) {
		d.Picking = make([]uint32, n)
	}
	if w.Has(RadiusChannel) {
		d.Radius = make([]float32, n)
	}
	if w.Has(IndexChannel) {
		d.Index = make([]uint32, n)
	}
	st := S.atomStore
	ap := &AtomProxy{s: S}
	var err error
	set.ForEach(func(i, k int) {
		ap.index = i
		if d.Position != nil {
			d.Position[3*k] = st.X(i)
			d.Position[3*k+1] = st.Y(i)
			d.Position[3*k+2] = st.Z(i)
		}
		if d.Color != nil {
			d.Color[3*k], d.Color[3*k+1], d.Color[3*k+2] = rgb(cm.AtomColor(ap))
		}
		if d.Picking != nil {
			d.Picking[k] = uint32(i)
			if S.registry != nil && err == nil {
				d.Picking[k], err = S.registry.GID(S, i)
			}
		}
		if d.Radius != nil {
			d.Radius[k] = float32(rad.AtomRadius(ap))
		}
		if d.Index != nil {
			d.Index[k] = uint32(i)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "picking ids")
	}
	S.metrics.observeExtracted("atom", n)
	return d, nil
}

//BondKind selects one of the bond stores of a structure.
type BondKind uint8

const (
	AllBonds BondKind = iota
	BackboneBonds
	RungBonds
)

func (S *Structure) bondStoreFor(k BondKind) *BondStore {
	switch k {
	case BackboneBonds:
		return S.backboneBondStore
	case RungBonds:
		return S.rungBondStore
	}
	return S.bondStore
}

//BondDataParams selects what BondData extracts.
type BondDataParams struct {
	What Channel //0 means all. IndexChannel is ignored.
	Kind BondKind
	//Set is the bonds to extract. nil means the bond set of the last Refresh
	//for AllBonds, and every bond for the other kinds.
	Set        *bitset.Bitset
	Colormaker Colormaker
	Radiuser   Radiuser
	//Zero values take the setting from the config of the structure.
	MultipleBond string
	BondSpacing  float64
	BondScale    float64
}

//BondData holds flat per-segment arrays. There is one segment per bond,
//unless multiple bonds are expanded.
type BondData struct {
	Position1 []float32
	Position2 []float32
	Color     []float32
	Color2    []float32
	//Picking holds the index of the bond each segment comes from.
	Picking []uint32
	Radius  []float32
}

//Len returns the number of segments.
func (D *BondData) Len() int {
	for _, n := range []int{len(D.Position1) / 3, len(D.Color) / 3, len(D.Picking), len(D.Radius)} {
		if n > 0 {
			return n
		}
	}
	return 0
}

//segments returns how many segments a bond of the given order is drawn with.
func segments(order int, multiple bool) int {
	if multiple && (order == 2 || order == 3) {
		return order
	}
	return 1
}

//BondData extracts flat arrays for the bonds in p.Set. If multiple bonds are
//expanded (MultipleBondSymmetric), double and triple bonds give 2 and 3
//parallel segments, displaced along BondProxy.CalculateShiftDir by
//(radius/order)*spacing: -s,+s for double bonds and -s,0,+s for triple bonds.
//Bonds of any other order give one segment.
func (S *Structure) BondData(p BondDataParams) (*BondData, error) {
	if S.disposed {
		return nil, errors.New(errors.ErrDisposed, "structure disposed")
	}
	store := S.bondStoreFor(p.Kind)
	set := p.Set
	if set == nil {
		if p.Kind == AllBonds {
			set = S.bondSet
		} else {
			set = bitset.NewFull(store.Count())
		}
	}
	if err := S.checkSet(set, store.Count(), "bond"); err != nil {
		return nil, err
	}
	cm := p.Colormaker
	if cm == nil {
		cm = ElementColors{}
	}
	rad := p.Radiuser
	if rad == nil {
		rad = NewRadiusFactory(S.cfg)
	}
	mode, spacing, scale := p.MultipleBond, p.BondSpacing, p.BondScale
	if mode == "" {
		mode = S.cfg.MultipleBond
	}
	if spacing == 0 {
		spacing = S.cfg.BondSpacing
	}
	if scale == 0 {
		scale = S.cfg.BondScale
	}
	multiple := mode == MultipleBondSymmetric

	n := 0
	set.ForEach(func(i, _ int) { n += segments(store.BondOrder(i), multiple) })

	d := &BondData{}
	w := p.What
	if w.Has(PositionChannel) {
		d.Position1 = make([]float32, 3*n)
		d.Position2 = make([]float32, 3*n)
	}
	if w.Has(ColorChannel) {
		d.Color = make([]float32, 3*n)
		d.Color2 = make([]float32, 3*n)
	}
	if w.Has(PickingChannel) {
		d.Picking = make([]uint32, n)
	}
	if w.Has(RadiusChannel) {
		d.Radius = make([]float32, n)
	}

	bp := &BondProxy{s: S, store: store}
	a1 := &AtomProxy{s: S}
	a2 := &AtomProxy{s: S}
	k := 0
	set.ForEach(func(i, _ int) {
		bp.index = i
		a1.index = store.AtomIndex1(i)
		a2.index = store.AtomIndex2(i)
		order := store.BondOrder(i)
		nseg := segments(order, multiple)
		radius := rad.AtomRadius(a1) * scale
		offsets := []float64{0}
		var shift r3.Vec
		if nseg > 1 {
			radius /= float64(order)
			shift = r3.Scale(radius*spacing, bp.CalculateShiftDir())
			if nseg == 2 {
				offsets = []float64{-1, 1}
			} else {
				offsets = []float64{-1, 0, 1}
			}
		}
		p1, p2 := a1.Position(), a2.Position()
		var c1, c2 uint32
		if d.Color != nil {
			c1, c2 = cm.AtomColor(a1), cm.AtomColor(a2)
		}
		for _, o := range offsets {
			if d.Position1 != nil {
				off := r3.Scale(o, shift)
				putVec(d.Position1, k, r3.Add(p1, off))
				putVec(d.Position2, k, r3.Add(p2, off))
			}
			if d.Color != nil {
				d.Color[3*k], d.Color[3*k+1], d.Color[3*k+2] = rgb(c1)
				d.Color2[3*k], d.Color2[3*k+1], d.Color2[3*k+2] = rgb(c2)
			}
			if d.Picking != nil {
				d.Picking[k] = uint32(i)
			}
			if d.Radius != nil {
				d.Radius[k] = float32(radius)
			}
			k++
		}
	})
	S.metrics.observeExtracted("bond", n)
	return d, nil
}

func putVec(dst []float32, k int, v r3.Vec) {
	dst[3*k] = float32(v.X)
	dst[3*k+1] = float32(v.Y)
	dst[3*k+2] = float32(v.Z)
}

//Coords returns the coordinates of the atoms in set (all atoms if nil) as
//an Nx3 matrix, in ascending atom index.
func (S *Structure) Coords(set *bitset.Bitset) (*v3.Matrix, error) {
	n := S.atomStore.Count()
	if set == nil {
		set = bitset.NewFull(n)
	}
	if err := S.checkSet(set, n, "atom"); err != nil {
		return nil, err
	}
	m := v3.Zeros(set.Size())
	ap := &AtomProxy{s: S}
	set.ForEach(func(i, k int) {
		ap.index = i
		m.SetVec(k, ap.Position())
	})
	return m, nil
}

//SetCoords copies the rows of m into the positions of the atoms in set (all
//atoms if nil), in ascending atom index.
func (S *Structure) SetCoords(m *v3.Matrix, set *bitset.Bitset) error {
	n := S.atomStore.Count()
	if set == nil {
		set = bitset.NewFull(n)
	}
	if err := S.checkSet(set, n, "atom"); err != nil {
		return err
	}
	if m.NVecs() != set.Size() {
		return errors.Newf(errors.ErrCapacityMismatch, "%d coordinates for %d atoms", m.NVecs(), set.Size())
	}
	st := S.atomStore
	set.ForEach(func(i, k int) {
		v := m.Vec(k)
		st.SetX(i, float32(v.X))
		st.SetY(i, float32(v.Y))
		st.SetZ(i, float32(v.Z))
	})
	S.touch()
	return nil
}
