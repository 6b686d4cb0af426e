/*
 * atomproxy.go, part of molstore.
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
	"math"

	"github.com/rmera/molstore/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

//Constants for the bonding criterion in ConnectedTo. The window around the sum of
//covalent radii is wider on the long side. Coarse-grained beads have no covalent
//radii, so a fixed cutoff is used instead.
const (
	bondShortTol = 0.5
	bondLongTol  = 0.3
	cgCutoff2    = 64.0 //8 A squared
)

//noCopy makes go vet complain when a proxy is copied by value. A copy would
//keep pointing at the same stores, but with its own index.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

//AtomProxy is a view of one row of the atom store of a Structure. It holds no
//data, only the structure and the current index, so every accessor reads the
//stores as they are at the moment of the call. The parent residue, chain and model
//are looked up again on each call.
//
//Accessors panic with an errors.ErrIndexOutOfRange error if the index is not
//below the current atom count.
type AtomProxy struct {
	_     noCopy
	s     *Structure
	index int
}

//Index returns the atom index the proxy points to.
func (A *AtomProxy) Index() int {
	return A.index
}

//SetIndex moves the proxy to atom i.
func (A *AtomProxy) SetIndex(i int) error {
	if n := A.s.atomStore.Count(); i < 0 || i >= n {
		return errors.IndexOutOfRange("atom", i, n)
	}
	A.index = i
	return nil
}

//Structure returns the structure the proxy reads from.
func (A *AtomProxy) Structure() *Structure {
	return A.s
}

//Clone returns a new proxy pointing at the same atom.
func (A *AtomProxy) Clone() *AtomProxy {
	return &AtomProxy{s: A.s, index: A.index}
}

func (A *AtomProxy) X() float64 { return float64(A.s.atomStore.X(A.index)) }
func (A *AtomProxy) Y() float64 { return float64(A.s.atomStore.Y(A.index)) }
func (A *AtomProxy) Z() float64 { return float64(A.s.atomStore.Z(A.index)) }

//Position returns the coordinates of the atom.
func (A *AtomProxy) Position() r3.Vec {
	st := A.s.atomStore
	return r3.Vec{X: float64(st.X(A.index)), Y: float64(st.Y(A.index)), Z: float64(st.Z(A.index))}
}

//SetPosition changes the coordinates of the atom. Cached selections and the
//bounding box are not updated until the structure is refreshed.
func (A *AtomProxy) SetPosition(p r3.Vec) {
	st := A.s.atomStore
	st.SetX(A.index, float32(p.X))
	st.SetY(A.index, float32(p.Y))
	st.SetZ(A.index, float32(p.Z))
	A.s.touch()
}

func (A *AtomProxy) SetX(v float64) { A.s.atomStore.SetX(A.index, float32(v)); A.s.touch() }
func (A *AtomProxy) SetY(v float64) { A.s.atomStore.SetY(A.index, float32(v)); A.s.touch() }
func (A *AtomProxy) SetZ(v float64) { A.s.atomStore.SetZ(A.index, float32(v)); A.s.touch() }

func (A *AtomProxy) Serial() int          { return int(A.s.atomStore.Serial(A.index)) }
func (A *AtomProxy) SetSerial(v int)      { A.s.atomStore.SetSerial(A.index, int32(v)); A.s.touch() }
func (A *AtomProxy) Bfactor() float64     { return float64(A.s.atomStore.Bfactor(A.index)) }
func (A *AtomProxy) SetBfactor(v float64) { A.s.atomStore.SetBfactor(A.index, float32(v)); A.s.touch() }
func (A *AtomProxy) Occupancy() float64   { return float64(A.s.atomStore.Occupancy(A.index)) }
func (A *AtomProxy) SetOccupancy(v float64) {
	A.s.atomStore.SetOccupancy(A.index, float32(v))
	A.s.touch()
}

//Altloc returns the alternate location code, "" if there is none.
func (A *AtomProxy) Altloc() string { return A.s.atomStore.AltlocString(A.index) }

//SetAltloc sets the alternate location code. 0 means none.
func (A *AtomProxy) SetAltloc(r rune) { A.s.atomStore.SetAltloc(A.index, EncodeChar(r)); A.s.touch() }

func (A *AtomProxy) AtomTypeID() uint32 { return A.s.atomStore.AtomTypeID(A.index) }

//AtomType returns the interned type of the atom.
func (A *AtomProxy) AtomType() *AtomType { return A.s.atomMap.Get(A.AtomTypeID()) }

func (A *AtomProxy) Element() string   { return A.AtomType().Element }
func (A *AtomProxy) Atomname() string  { return A.AtomType().Atomname }
func (A *AtomProxy) Number() int       { return A.AtomType().Number }
func (A *AtomProxy) Vdw() float64      { return A.AtomType().Vdw }
func (A *AtomProxy) Covalent() float64 { return A.AtomType().Covalent }

func (A *AtomProxy) ResidueIndex() int { return A.s.atomStore.ResidueIndex(A.index) }
func (A *AtomProxy) ChainIndex() int   { return A.s.residueStore.ChainIndex(A.ResidueIndex()) }
func (A *AtomProxy) ModelIndex() int   { return A.s.chainStore.ModelIndex(A.ChainIndex()) }

func (A *AtomProxy) ResidueTypeID() uint32 { return A.s.residueStore.ResidueTypeID(A.ResidueIndex()) }

//ResidueType returns the interned type of the residue the atom belongs to.
func (A *AtomProxy) ResidueType() *ResidueType { return A.s.residueMap.Get(A.ResidueTypeID()) }

func (A *AtomProxy) Resname() string   { return A.ResidueType().Resname }
func (A *AtomProxy) Resno() int        { return int(A.s.residueStore.Resno(A.ResidueIndex())) }
func (A *AtomProxy) Inscode() string   { return DecodeChar(A.s.residueStore.Inscode(A.ResidueIndex())) }
func (A *AtomProxy) Sstruc() string    { return DecodeChar(A.s.residueStore.Sstruc(A.ResidueIndex())) }
func (A *AtomProxy) Chainname() string { return A.s.chainStore.Chainname(A.ChainIndex()) }
func (A *AtomProxy) Chainid() string   { return A.s.chainStore.Chainid(A.ChainIndex()) }

//Residue returns a new proxy for the residue of the atom.
func (A *AtomProxy) Residue() *ResidueProxy {
	return &ResidueProxy{s: A.s, index: A.ResidueIndex()}
}

//Chain returns a new proxy for the chain of the atom.
func (A *AtomProxy) Chain() *ChainProxy {
	return &ChainProxy{s: A.s, index: A.ChainIndex()}
}

//Model returns a new proxy for the model of the atom.
func (A *AtomProxy) Model() *ModelProxy {
	return &ModelProxy{s: A.s, index: A.ModelIndex()}
}

func (A *AtomProxy) IsPolymer() bool    { return A.ResidueType().IsPolymer() }
func (A *AtomProxy) IsNucleic() bool    { return A.ResidueType().IsNucleic() }
func (A *AtomProxy) IsProtein() bool    { return A.ResidueType().IsProtein() }
func (A *AtomProxy) IsRNA() bool        { return A.ResidueType().IsRNA() }
func (A *AtomProxy) IsDNA() bool        { return A.ResidueType().IsDNA() }
func (A *AtomProxy) IsWater() bool      { return A.ResidueType().IsWater() }
func (A *AtomProxy) IsIon() bool        { return A.ResidueType().IsIon() }
func (A *AtomProxy) IsSaccharide() bool { return A.ResidueType().IsSaccharide() }
func (A *AtomProxy) IsHetero() bool     { return A.ResidueType().Hetero }
func (A *AtomProxy) IsCg() bool         { return A.ResidueType().IsCg() }

//offset returns the position of the atom within its residue.
func (A *AtomProxy) offset() int {
	return A.index - A.s.residueStore.AtomOffset(A.ResidueIndex())
}

//IsBackbone tells whether the atom is in the backbone list of its residue type.
func (A *AtomProxy) IsBackbone() bool {
	rt := A.ResidueType()
	if len(rt.BackboneIndices) == 0 {
		return false
	}
	return rt.IsBackboneOffset(A.offset())
}

//IsTrace tells whether the atom is the trace atom (CA, C4', P...) of its residue.
func (A *AtomProxy) IsTrace() bool {
	rt := A.ResidueType()
	return rt.TraceAtomOffset >= 0 && rt.TraceAtomOffset == A.offset()
}

//DistanceTo returns the Euclidean distance between the receiver and B. They
//don't need to belong to the same structure.
func (A *AtomProxy) DistanceTo(B *AtomProxy) float64 {
	return r3.Norm(r3.Sub(A.Position(), B.Position()))
}

//blocksBond is true if both altloc codes are set (not null, not blank) and differ.
func blocksBond(a1, a2 uint8) bool {
	set := func(c uint8) bool { return c != 0 && c != ' ' }
	return set(a1) && set(a2) && a1 != a2
}

//ConnectedTo tells whether A and B are covalently bonded, judging only by their
//distance, their covalent radii and their alternate locations.
func (A *AtomProxy) ConnectedTo(B *AtomProxy) bool {
	if blocksBond(A.s.atomStore.Altloc(A.index), B.s.atomStore.Altloc(B.index)) {
		return false
	}
	d2 := r3.Norm2(r3.Sub(A.Position(), B.Position()))
	if (A.IsCg() || B.IsCg()) && d2 < cgCutoff2 {
		return true
	}
	if math.IsNaN(d2) {
		return false
	}
	r := A.Covalent() + B.Covalent()
	lo := r - bondShortTol
	hi := r + bondLongTol
	return lo*lo < d2 && d2 < hi*hi
}

//EachBondedAtom calls fn with a proxy for each atom bonded to the receiver,
//according to the bond hash of the structure.
func (A *AtomProxy) EachBondedAtom(fn func(*AtomProxy)) {
	bh := A.s.BondHash()
	bs := A.s.bondStore
	other := &AtomProxy{s: A.s}
	for _, b := range bh.Bonds(A.index) {
		other.index = bs.AtomIndex1(b)
		if other.index == A.index {
			other.index = bs.AtomIndex2(b)
		}
		fn(other)
	}
}

//BondCount returns the number of bonds of the atom.
func (A *AtomProxy) BondCount() int {
	return len(A.s.BondHash().Bonds(A.index))
}

//QualifiedName returns something like "[ALA]12:A.CA".
func (A *AtomProxy) QualifiedName() string {
	name := fmt.Sprintf("[%s]%d%s:%s.%s", A.Resname(), A.Resno(), A.Inscode(), A.Chainname(), A.Atomname())
	if al := A.Altloc(); al != "" && al != " " {
		name += "%" + al
	}
	return name
}

func (A *AtomProxy) String() string {
	return fmt.Sprintf("AtomProxy(%d %s)", A.index, A.QualifiedName())
}
