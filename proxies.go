/*
 * proxies.go, part of molstore.
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
	"fmt"

	"github.com/rmera/molstore/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

/*****ResidueProxy***/

//ResidueProxy is a view of one row of the residue store. See AtomProxy.
type ResidueProxy struct {
	_     noCopy
	s     *Structure
	index int
}

func (R *ResidueProxy) Index() int { return R.index }

func (R *ResidueProxy) SetIndex(i int) error {
	if n := R.s.residueStore.Count(); i < 0 || i >= n {
		return errors.IndexOutOfRange("residue", i, n)
	}
	R.index = i
	return nil
}

func (R *ResidueProxy) Structure() *Structure { return R.s }

func (R *ResidueProxy) Clone() *ResidueProxy { return &ResidueProxy{s: R.s, index: R.index} }

func (R *ResidueProxy) Resno() int      { return int(R.s.residueStore.Resno(R.index)) }
func (R *ResidueProxy) SetResno(v int)  { R.s.residueStore.SetResno(R.index, int32(v)); R.s.touch() }
func (R *ResidueProxy) Inscode() string { return DecodeChar(R.s.residueStore.Inscode(R.index)) }
func (R *ResidueProxy) Sstruc() string  { return DecodeChar(R.s.residueStore.Sstruc(R.index)) }
func (R *ResidueProxy) SetSstruc(r rune) {
	R.s.residueStore.SetSstruc(R.index, EncodeChar(r))
	R.s.touch()
}
func (R *ResidueProxy) AtomOffset() int   { return R.s.residueStore.AtomOffset(R.index) }
func (R *ResidueProxy) AtomCount() int    { return R.s.residueStore.AtomCount(R.index) }
func (R *ResidueProxy) ChainIndex() int   { return R.s.residueStore.ChainIndex(R.index) }
func (R *ResidueProxy) ModelIndex() int   { return R.s.chainStore.ModelIndex(R.ChainIndex()) }
func (R *ResidueProxy) Chainname() string { return R.s.chainStore.Chainname(R.ChainIndex()) }

func (R *ResidueProxy) ResidueTypeID() uint32 { return R.s.residueStore.ResidueTypeID(R.index) }

func (R *ResidueProxy) ResidueType() *ResidueType { return R.s.residueMap.Get(R.ResidueTypeID()) }

func (R *ResidueProxy) Resname() string    { return R.ResidueType().Resname }
func (R *ResidueProxy) IsHetero() bool     { return R.ResidueType().Hetero }
func (R *ResidueProxy) IsPolymer() bool    { return R.ResidueType().IsPolymer() }
func (R *ResidueProxy) IsProtein() bool    { return R.ResidueType().IsProtein() }
func (R *ResidueProxy) IsNucleic() bool    { return R.ResidueType().IsNucleic() }
func (R *ResidueProxy) IsWater() bool      { return R.ResidueType().IsWater() }
func (R *ResidueProxy) IsIon() bool        { return R.ResidueType().IsIon() }
func (R *ResidueProxy) IsSaccharide() bool { return R.ResidueType().IsSaccharide() }
func (R *ResidueProxy) IsCg() bool         { return R.ResidueType().IsCg() }

func (R *ResidueProxy) MoleculeType() MoleculeType { return R.ResidueType().MoleculeType }
func (R *ResidueProxy) BackboneType() BackboneType { return R.ResidueType().BackboneType }

//TraceAtomIndex returns the atom index of the trace atom, or -1.
func (R *ResidueProxy) TraceAtomIndex() int {
	t := R.ResidueType().TraceAtomOffset
	if t < 0 {
		return -1
	}
	return R.AtomOffset() + t
}

//EachAtom calls fn for each atom of the residue, reusing a single proxy.
func (R *ResidueProxy) EachAtom(fn func(*AtomProxy)) {
	ap := &AtomProxy{s: R.s}
	start := R.AtomOffset()
	end := start + R.AtomCount()
	for i := start; i < end; i++ {
		ap.index = i
		fn(ap)
	}
}

//QualifiedName returns something like "[ALA]12:A".
func (R *ResidueProxy) QualifiedName() string {
	return fmt.Sprintf("[%s]%d%s:%s", R.Resname(), R.Resno(), R.Inscode(), R.Chainname())
}

func (R *ResidueProxy) String() string {
	return fmt.Sprintf("ResidueProxy(%d %s)", R.index, R.QualifiedName())
}

/*****ChainProxy***/

//ChainProxy is a view of one row of the chain store. See AtomProxy.
type ChainProxy struct {
	_     noCopy
	s     *Structure
	index int
}

func (C *ChainProxy) Index() int { return C.index }

func (C *ChainProxy) SetIndex(i int) error {
	if n := C.s.chainStore.Count(); i < 0 || i >= n {
		return errors.IndexOutOfRange("chain", i, n)
	}
	C.index = i
	return nil
}

func (C *ChainProxy) Structure() *Structure { return C.s }

func (C *ChainProxy) Clone() *ChainProxy { return &ChainProxy{s: C.s, index: C.index} }

func (C *ChainProxy) Chainname() string  { return C.s.chainStore.Chainname(C.index) }
func (C *ChainProxy) Chainid() string    { return C.s.chainStore.Chainid(C.index) }
func (C *ChainProxy) ModelIndex() int    { return C.s.chainStore.ModelIndex(C.index) }
func (C *ChainProxy) ResidueOffset() int { return C.s.chainStore.ResidueOffset(C.index) }
func (C *ChainProxy) ResidueCount() int  { return C.s.chainStore.ResidueCount(C.index) }

//AtomOffset returns the index of the first atom of the chain.
func (C *ChainProxy) AtomOffset() int {
	if C.ResidueCount() == 0 {
		return 0
	}
	return C.s.residueStore.AtomOffset(C.ResidueOffset())
}

//AtomCount returns the number of atoms in the chain.
func (C *ChainProxy) AtomCount() int {
	n := C.ResidueCount()
	if n == 0 {
		return 0
	}
	rs := C.s.residueStore
	last := C.ResidueOffset() + n - 1
	return rs.AtomOffset(last) + rs.AtomCount(last) - C.AtomOffset()
}

func (C *ChainProxy) EachResidue(fn func(*ResidueProxy)) {
	rp := &ResidueProxy{s: C.s}
	start := C.ResidueOffset()
	end := start + C.ResidueCount()
	for i := start; i < end; i++ {
		rp.index = i
		fn(rp)
	}
}

func (C *ChainProxy) EachAtom(fn func(*AtomProxy)) {
	ap := &AtomProxy{s: C.s}
	start := C.AtomOffset()
	end := start + C.AtomCount()
	for i := start; i < end; i++ {
		ap.index = i
		fn(ap)
	}
}

func (C *ChainProxy) String() string {
	return fmt.Sprintf("ChainProxy(%d :%s/%d)", C.index, C.Chainname(), C.ModelIndex())
}

/*****ModelProxy***/

//ModelProxy is a view of one row of the model store. See AtomProxy.
type ModelProxy struct {
	_     noCopy
	s     *Structure
	index int
}

func (M *ModelProxy) Index() int { return M.index }

func (M *ModelProxy) SetIndex(i int) error {
	if n := M.s.modelStore.Count(); i < 0 || i >= n {
		return errors.IndexOutOfRange("model", i, n)
	}
	M.index = i
	return nil
}

func (M *ModelProxy) Structure() *Structure { return M.s }

func (M *ModelProxy) Clone() *ModelProxy { return &ModelProxy{s: M.s, index: M.index} }

func (M *ModelProxy) ChainOffset() int { return M.s.modelStore.ChainOffset(M.index) }
func (M *ModelProxy) ChainCount() int  { return M.s.modelStore.ChainCount(M.index) }

//ResidueOffset returns the index of the first residue of the model.
func (M *ModelProxy) ResidueOffset() int {
	if M.ChainCount() == 0 {
		return 0
	}
	return M.s.chainStore.ResidueOffset(M.ChainOffset())
}

func (M *ModelProxy) ResidueCount() int {
	n := M.ChainCount()
	if n == 0 {
		return 0
	}
	cs := M.s.chainStore
	last := M.ChainOffset() + n - 1
	return cs.ResidueOffset(last) + cs.ResidueCount(last) - M.ResidueOffset()
}

func (M *ModelProxy) AtomOffset() int {
	if M.ResidueCount() == 0 {
		return 0
	}
	return M.s.residueStore.AtomOffset(M.ResidueOffset())
}

func (M *ModelProxy) AtomCount() int {
	n := M.ResidueCount()
	if n == 0 {
		return 0
	}
	rs := M.s.residueStore
	last := M.ResidueOffset() + n - 1
	return rs.AtomOffset(last) + rs.AtomCount(last) - M.AtomOffset()
}

func (M *ModelProxy) EachChain(fn func(*ChainProxy)) {
	cp := &ChainProxy{s: M.s}
	start := M.ChainOffset()
	end := start + M.ChainCount()
	for i := start; i < end; i++ {
		cp.index = i
		fn(cp)
	}
}

func (M *ModelProxy) EachResidue(fn func(*ResidueProxy)) {
	rp := &ResidueProxy{s: M.s}
	start := M.ResidueOffset()
	end := start + M.ResidueCount()
	for i := start; i < end; i++ {
		rp.index = i
		fn(rp)
	}
}

func (M *ModelProxy) EachAtom(fn func(*AtomProxy)) {
	ap := &AtomProxy{s: M.s}
	start := M.AtomOffset()
	end := start + M.AtomCount()
	for i := start; i < end; i++ {
		ap.index = i
		fn(ap)
	}
}

func (M *ModelProxy) String() string {
	return fmt.Sprintf("ModelProxy(%d)", M.index)
}

/*****BondProxy***/

//BondProxy is a view of one row of a bond store. See AtomProxy.
type BondProxy struct {
	_     noCopy
	s     *Structure
	store *BondStore
	index int
}

func (B *BondProxy) Index() int { return B.index }

func (B *BondProxy) SetIndex(i int) error {
	if n := B.store.Count(); i < 0 || i >= n {
		return errors.IndexOutOfRange("bond", i, n)
	}
	B.index = i
	return nil
}

func (B *BondProxy) Structure() *Structure { return B.s }

func (B *BondProxy) Clone() *BondProxy { return &BondProxy{s: B.s, store: B.store, index: B.index} }

func (B *BondProxy) AtomIndex1() int { return B.store.AtomIndex1(B.index) }
func (B *BondProxy) AtomIndex2() int { return B.store.AtomIndex2(B.index) }
func (B *BondProxy) BondOrder() int  { return B.store.BondOrder(B.index) }

func (B *BondProxy) SetBondOrder(o int) { B.store.SetBondOrder(B.index, o); B.s.touch() }

//Atom1 returns a new proxy for the first atom of the bond.
func (B *BondProxy) Atom1() *AtomProxy { return &AtomProxy{s: B.s, index: B.AtomIndex1()} }

//Atom2 returns a new proxy for the second atom of the bond.
func (B *BondProxy) Atom2() *AtomProxy { return &AtomProxy{s: B.s, index: B.AtomIndex2()} }

//referenceAtom returns the position of an atom bonded to one of the bond atoms
//(but not to the bond itself), preferring neighbours of the first atom.
func (B *BondProxy) referenceAtom() (r3.Vec, bool) {
	a1, a2 := B.AtomIndex1(), B.AtomIndex2()
	bh := B.s.BondHash()
	bs := B.s.bondStore
	ap := &AtomProxy{s: B.s}
	for _, from := range [2][2]int{{a1, a2}, {a2, a1}} {
		for _, b := range bh.Bonds(from[0]) {
			n := bs.AtomIndex1(b)
			if n == from[0] {
				n = bs.AtomIndex2(b)
			}
			if n == from[1] {
				continue
			}
			ap.index = n
			return ap.Position(), true
		}
	}
	return r3.Vec{}, false
}

//CalculateShiftDir returns a unit vector perpendicular to the bond, used to
//draw multiple bonds as parallel segments. When one of the atoms has another
//neighbour, the vector lies in the plane of the three atoms.
func (B *BondProxy) CalculateShiftDir() r3.Vec {
	p1 := B.Atom1().Position()
	axis := r3.Sub(B.Atom2().Position(), p1)
	a2 := r3.Norm2(axis)
	if a2 == 0 {
		return r3.Vec{}
	}
	perp := func(d r3.Vec) r3.Vec {
		return r3.Sub(d, r3.Scale(r3.Dot(d, axis)/a2, axis))
	}
	if ref, ok := B.referenceAtom(); ok {
		if p := perp(r3.Sub(ref, p1)); r3.Norm(p) > 1e-6 {
			return r3.Unit(p)
		}
	}
	for _, d := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		if p := perp(d); r3.Norm(p) > 1e-6 {
			return r3.Unit(p)
		}
	}
	return r3.Vec{}
}

func (B *BondProxy) String() string {
	return fmt.Sprintf("BondProxy(%d %d-%d order %d)", B.index, B.AtomIndex1(), B.AtomIndex2(), B.BondOrder())
}
