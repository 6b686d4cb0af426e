/*
 * store.go, part of molstore.
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

import "github.com/rmera/molstore/errors"

/**Note: The per-field accessors of the stores panic instead of returning errors, like the
 * "fundamental" functions in the rest of the library. An index at or beyond Count() is a
 * programming error. The panic value is an errors.ErrIndexOutOfRange coded error, so it can be
 * recovered and checked with errors.Is. Reading a row between Count() and Capacity() would
 * otherwise silently return zeroes**/

//table holds what every columnar store has in common: the number of
//valid rows and the size of the backing arrays.
type table struct {
	name     string
	count    int
	capacity int
}

//Count returns the number of valid rows.
func (t *table) Count() int {
	return t.count
}

//Capacity returns the size of the backing arrays.
func (t *table) Capacity() int {
	return t.capacity
}

func (t *table) check(i int) {
	if i < 0 || i >= t.count {
		panic(errors.IndexOutOfRange(t.name, i, t.count))
	}
}

//Clear sets the count to zero. The backing arrays are kept.
func (t *table) Clear() {
	t.count = 0
}

//checkCapacity panics if n can't be the size of the backing arrays.
func (t *table) checkCapacity(n int) {
	if n < 0 {
		panic(errors.Newf(errors.ErrIndexOutOfRange, "%s capacity %d is negative", t.name, n))
	}
}

//resized sets the capacity to n, and trims the count if needed.
func (t *table) resized(n int) {
	t.capacity = n
	if t.count > n {
		t.count = n
	}
}

//AtomRow is one row of the AtomStore.
type AtomRow struct {
	X, Y, Z      float32
	Serial       int32
	Bfactor      float32
	Occupancy    float32
	Altloc       uint8
	ResidueIndex uint32
	AtomTypeID   uint32
}

//AtomStore keeps the per-atom data in one array per field.
type AtomStore struct {
	table
	x, y, z      []float32
	serial       []int32
	bfactor      []float32
	occupancy    []float32
	altloc       []uint8
	residueIndex []uint32
	atomTypeID   []uint32
}

//NewAtomStore returns an empty store with room for capacity atoms.
func NewAtomStore(capacity int) *AtomStore {
	s := &AtomStore{table: table{name: "atom"}}
	s.Resize(capacity)
	return s
}

//Resize reallocates the backing arrays to hold n rows, keeping the existing data.
func (s *AtomStore) Resize(n int) {
	s.checkCapacity(n)
	s.x = grow(s.x, n)
	s.y = grow(s.y, n)
	s.z = grow(s.z, n)
	s.serial = grow(s.serial, n)
	s.bfactor = grow(s.bfactor, n)
	s.occupancy = grow(s.occupancy, n)
	s.altloc = grow(s.altloc, n)
	s.residueIndex = grow(s.residueIndex, n)
	s.atomTypeID = grow(s.atomTypeID, n)
	s.resized(n)
}

//GrowIfFull doubles the capacity when there is no room for another row.
func (s *AtomStore) GrowIfFull() {
	if s.count >= s.capacity {
		s.Resize(nextCapacity(s.capacity, s.count+1))
	}
}

//Dispose releases the backing arrays.
func (s *AtomStore) Dispose() {
	*s = AtomStore{table: table{name: s.name}}
}

//AppendAtom adds a row at the end of the store and returns its index.
func (s *AtomStore) AppendAtom(r AtomRow) int {
	s.GrowIfFull()
	i := s.count
	s.count++
	s.SetRow(i, r)
	return i
}

//Row returns a copy of the ith row.
func (s *AtomStore) Row(i int) AtomRow {
	s.check(i)
	return AtomRow{
		X:            s.x[i],
		Y:            s.y[i],
		Z:            s.z[i],
		Serial:       s.serial[i],
		Bfactor:      s.bfactor[i],
		Occupancy:    s.occupancy[i],
		Altloc:       s.altloc[i],
		ResidueIndex: s.residueIndex[i],
		AtomTypeID:   s.atomTypeID[i],
	}
}

//SetRow overwrites the ith row.
func (s *AtomStore) SetRow(i int, r AtomRow) {
	s.check(i)
	s.x[i], s.y[i], s.z[i] = r.X, r.Y, r.Z
	s.serial[i] = r.Serial
	s.bfactor[i] = r.Bfactor
	s.occupancy[i] = r.Occupancy
	s.altloc[i] = r.Altloc
	s.residueIndex[i] = r.ResidueIndex
	s.atomTypeID[i] = r.AtomTypeID
}

func (s *AtomStore) X(i int) float32               { s.check(i); return s.x[i] }
func (s *AtomStore) Y(i int) float32               { s.check(i); return s.y[i] }
func (s *AtomStore) Z(i int) float32               { s.check(i); return s.z[i] }
func (s *AtomStore) SetX(i int, v float32)         { s.check(i); s.x[i] = v }
func (s *AtomStore) SetY(i int, v float32)         { s.check(i); s.y[i] = v }
func (s *AtomStore) SetZ(i int, v float32)         { s.check(i); s.z[i] = v }
func (s *AtomStore) Serial(i int) int32            { s.check(i); return s.serial[i] }
func (s *AtomStore) SetSerial(i int, v int32)      { s.check(i); s.serial[i] = v }
func (s *AtomStore) Bfactor(i int) float32         { s.check(i); return s.bfactor[i] }
func (s *AtomStore) SetBfactor(i int, v float32)   { s.check(i); s.bfactor[i] = v }
func (s *AtomStore) Occupancy(i int) float32       { s.check(i); return s.occupancy[i] }
func (s *AtomStore) SetOccupancy(i int, v float32) { s.check(i); s.occupancy[i] = v }
func (s *AtomStore) Altloc(i int) uint8            { s.check(i); return s.altloc[i] }
func (s *AtomStore) SetAltloc(i int, v uint8)      { s.check(i); s.altloc[i] = v }
func (s *AtomStore) ResidueIndex(i int) int        { s.check(i); return int(s.residueIndex[i]) }
func (s *AtomStore) SetResidueIndex(i int, v int)  { s.check(i); s.residueIndex[i] = uint32(v) }
func (s *AtomStore) AtomTypeID(i int) uint32       { s.check(i); return s.atomTypeID[i] }
func (s *AtomStore) SetAtomTypeID(i int, v uint32) { s.check(i); s.atomTypeID[i] = v }

//AltlocString decodes the alternate location code of atom i.
func (s *AtomStore) AltlocString(i int) string {
	return DecodeChar(s.Altloc(i))
}

//ResidueRow is one row of the ResidueStore.
type ResidueRow struct {
	Resno         int32
	Inscode       uint8
	Sstruc        uint8
	ChainIndex    uint32
	ResidueTypeID uint32
	AtomOffset    uint32
	AtomCount     uint32
}

//ResidueStore keeps the per-residue data. The atoms of residue i are
//[AtomOffset(i), AtomOffset(i)+AtomCount(i)).
type ResidueStore struct {
	table
	resno         []int32
	inscode       []uint8
	sstruc        []uint8
	chainIndex    []uint32
	residueTypeID []uint32
	atomOffset    []uint32
	atomCount     []uint32
}

func NewResidueStore(capacity int) *ResidueStore {
	s := &ResidueStore{table: table{name: "residue"}}
	s.Resize(capacity)
	return s
}

func (s *ResidueStore) Resize(n int) {
	s.checkCapacity(n)
	s.resno = grow(s.resno, n)
	s.inscode = grow(s.inscode, n)
	s.sstruc = grow(s.sstruc, n)
	s.chainIndex = grow(s.chainIndex, n)
	s.residueTypeID = grow(s.residueTypeID, n)
	s.atomOffset = grow(s.atomOffset, n)
	s.atomCount = grow(s.atomCount, n)
	s.resized(n)
}

func (s *ResidueStore) GrowIfFull() {
	if s.count >= s.capacity {
		s.Resize(nextCapacity(s.capacity, s.count+1))
	}
}

func (s *ResidueStore) Dispose() {
	*s = ResidueStore{table: table{name: s.name}}
}

func (s *ResidueStore) AppendResidue(r ResidueRow) int {
	s.GrowIfFull()
	i := s.count
	s.count++
	s.SetRow(i, r)
	return i
}

func (s *ResidueStore) Row(i int) ResidueRow {
	s.check(i)
	return ResidueRow{
		Resno:         s.resno[i],
		Inscode:       s.inscode[i],
		Sstruc:        s.sstruc[i],
		ChainIndex:    s.chainIndex[i],
		ResidueTypeID: s.residueTypeID[i],
		AtomOffset:    s.atomOffset[i],
		AtomCount:     s.atomCount[i],
	}
}

func (s *ResidueStore) SetRow(i int, r ResidueRow) {
	s.check(i)
	s.resno[i] = r.Resno
	s.inscode[i] = r.Inscode
	s.sstruc[i] = r.Sstruc
	s.chainIndex[i] = r.ChainIndex
	s.residueTypeID[i] = r.ResidueTypeID
	s.atomOffset[i] = r.AtomOffset
	s.atomCount[i] = r.AtomCount
}

func (s *ResidueStore) Resno(i int) int32                { s.check(i); return s.resno[i] }
func (s *ResidueStore) SetResno(i int, v int32)          { s.check(i); s.resno[i] = v }
func (s *ResidueStore) Inscode(i int) uint8              { s.check(i); return s.inscode[i] }
func (s *ResidueStore) SetInscode(i int, v uint8)        { s.check(i); s.inscode[i] = v }
func (s *ResidueStore) Sstruc(i int) uint8               { s.check(i); return s.sstruc[i] }
func (s *ResidueStore) SetSstruc(i int, v uint8)         { s.check(i); s.sstruc[i] = v }
func (s *ResidueStore) ChainIndex(i int) int             { s.check(i); return int(s.chainIndex[i]) }
func (s *ResidueStore) SetChainIndex(i int, v int)       { s.check(i); s.chainIndex[i] = uint32(v) }
func (s *ResidueStore) ResidueTypeID(i int) uint32       { s.check(i); return s.residueTypeID[i] }
func (s *ResidueStore) SetResidueTypeID(i int, v uint32) { s.check(i); s.residueTypeID[i] = v }
func (s *ResidueStore) AtomOffset(i int) int             { s.check(i); return int(s.atomOffset[i]) }
func (s *ResidueStore) SetAtomOffset(i int, v int)       { s.check(i); s.atomOffset[i] = uint32(v) }
func (s *ResidueStore) AtomCount(i int) int              { s.check(i); return int(s.atomCount[i]) }
func (s *ResidueStore) SetAtomCount(i int, v int)        { s.check(i); s.atomCount[i] = uint32(v) }

//ChainRow is one row of the ChainStore. Chainname and Chainid are
//packed in 4 bytes each.
type ChainRow struct {
	Chainname     string
	Chainid       string
	ModelIndex    uint32
	ResidueOffset uint32
	ResidueCount  uint32
}

//ChainStore keeps the per-chain data. The residues of a chain are contiguous.
type ChainStore struct {
	table
	chainname     []uint32
	chainid       []uint32
	modelIndex    []uint32
	residueOffset []uint32
	residueCount  []uint32
}

func NewChainStore(capacity int) *ChainStore {
	s := &ChainStore{table: table{name: "chain"}}
	s.Resize(capacity)
	return s
}

func (s *ChainStore) Resize(n int) {
	s.checkCapacity(n)
	s.chainname = grow(s.chainname, n)
	s.chainid = grow(s.chainid, n)
	s.modelIndex = grow(s.modelIndex, n)
	s.residueOffset = grow(s.residueOffset, n)
	s.residueCount = grow(s.residueCount, n)
	s.resized(n)
}

func (s *ChainStore) GrowIfFull() {
	if s.count >= s.capacity {
		s.Resize(nextCapacity(s.capacity, s.count+1))
	}
}

func (s *ChainStore) Dispose() {
	*s = ChainStore{table: table{name: s.name}}
}

func (s *ChainStore) AppendChain(r ChainRow) int {
	s.GrowIfFull()
	i := s.count
	s.count++
	s.SetRow(i, r)
	return i
}

func (s *ChainStore) Row(i int) ChainRow {
	s.check(i)
	return ChainRow{
		Chainname:     unpackString4(s.chainname[i]),
		Chainid:       unpackString4(s.chainid[i]),
		ModelIndex:    s.modelIndex[i],
		ResidueOffset: s.residueOffset[i],
		ResidueCount:  s.residueCount[i],
	}
}

func (s *ChainStore) SetRow(i int, r ChainRow) {
	s.check(i)
	s.chainname[i] = packString4(r.Chainname)
	s.chainid[i] = packString4(r.Chainid)
	s.modelIndex[i] = r.ModelIndex
	s.residueOffset[i] = r.ResidueOffset
	s.residueCount[i] = r.ResidueCount
}

func (s *ChainStore) Chainname(i int) string        { s.check(i); return unpackString4(s.chainname[i]) }
func (s *ChainStore) SetChainname(i int, v string)  { s.check(i); s.chainname[i] = packString4(v) }
func (s *ChainStore) Chainid(i int) string          { s.check(i); return unpackString4(s.chainid[i]) }
func (s *ChainStore) SetChainid(i int, v string)    { s.check(i); s.chainid[i] = packString4(v) }
func (s *ChainStore) ModelIndex(i int) int          { s.check(i); return int(s.modelIndex[i]) }
func (s *ChainStore) SetModelIndex(i int, v int)    { s.check(i); s.modelIndex[i] = uint32(v) }
func (s *ChainStore) ResidueOffset(i int) int       { s.check(i); return int(s.residueOffset[i]) }
func (s *ChainStore) SetResidueOffset(i int, v int) { s.check(i); s.residueOffset[i] = uint32(v) }
func (s *ChainStore) ResidueCount(i int) int        { s.check(i); return int(s.residueCount[i]) }
func (s *ChainStore) SetResidueCount(i int, v int)  { s.check(i); s.residueCount[i] = uint32(v) }

//ModelRow is one row of the ModelStore.
type ModelRow struct {
	ChainOffset uint32
	ChainCount  uint32
}

//ModelStore keeps the per-model data. The chains of a model are contiguous.
type ModelStore struct {
	table
	chainOffset []uint32
	chainCount  []uint32
}

func NewModelStore(capacity int) *ModelStore {
	s := &ModelStore{table: table{name: "model"}}
	s.Resize(capacity)
	return s
}

func (s *ModelStore) Resize(n int) {
	s.checkCapacity(n)
	s.chainOffset = grow(s.chainOffset, n)
	s.chainCount = grow(s.chainCount, n)
	s.resized(n)
}

func (s *ModelStore) GrowIfFull() {
	if s.count >= s.capacity {
		s.Resize(nextCapacity(s.capacity, s.count+1))
	}
}

func (s *ModelStore) Dispose() {
	*s = ModelStore{table: table{name: s.name}}
}

func (s *ModelStore) AppendModel(r ModelRow) int {
	s.GrowIfFull()
	i := s.count
	s.count++
	s.chainOffset[i] = r.ChainOffset
	s.chainCount[i] = r.ChainCount
	return i
}

func (s *ModelStore) Row(i int) ModelRow {
	s.check(i)
	return ModelRow{ChainOffset: s.chainOffset[i], ChainCount: s.chainCount[i]}
}

func (s *ModelStore) ChainOffset(i int) int       { s.check(i); return int(s.chainOffset[i]) }
func (s *ModelStore) SetChainOffset(i int, v int) { s.check(i); s.chainOffset[i] = uint32(v) }
func (s *ModelStore) ChainCount(i int) int        { s.check(i); return int(s.chainCount[i]) }
func (s *ModelStore) SetChainCount(i int, v int)  { s.check(i); s.chainCount[i] = uint32(v) }

//BondStore keeps pairs of atom indexes and the bond order. A Structure
//has three of them: all bonds, backbone bonds and rung bonds.
type BondStore struct {
	table
	atomIndex1 []uint32
	atomIndex2 []uint32
	bondOrder  []int8
}

func NewBondStore(capacity int) *BondStore {
	s := &BondStore{table: table{name: "bond"}}
	s.Resize(capacity)
	return s
}

func (s *BondStore) Resize(n int) {
	s.checkCapacity(n)
	s.atomIndex1 = grow(s.atomIndex1, n)
	s.atomIndex2 = grow(s.atomIndex2, n)
	s.bondOrder = grow(s.bondOrder, n)
	s.resized(n)
}

func (s *BondStore) GrowIfFull() {
	if s.count >= s.capacity {
		s.Resize(nextCapacity(s.capacity, s.count+1))
	}
}

func (s *BondStore) Dispose() {
	*s = BondStore{table: table{name: s.name}}
}

//AddBond appends a bond between atoms a1 and a2 and returns its index.
func (s *BondStore) AddBond(a1, a2 int, order int) int {
	s.GrowIfFull()
	i := s.count
	s.count++
	s.atomIndex1[i] = uint32(a1)
	s.atomIndex2[i] = uint32(a2)
	s.bondOrder[i] = int8(order)
	return i
}

//HasBond tells whether a bond between a1 and a2 exists, in any direction.
//It is a linear scan.
func (s *BondStore) HasBond(a1, a2 int) bool {
	u1, u2 := uint32(a1), uint32(a2)
	for i := 0; i < s.count; i++ {
		if (s.atomIndex1[i] == u1 && s.atomIndex2[i] == u2) || (s.atomIndex1[i] == u2 && s.atomIndex2[i] == u1) {
			return true
		}
	}
	return false
}

func (s *BondStore) AtomIndex1(i int) int       { s.check(i); return int(s.atomIndex1[i]) }
func (s *BondStore) SetAtomIndex1(i int, v int) { s.check(i); s.atomIndex1[i] = uint32(v) }
func (s *BondStore) AtomIndex2(i int) int       { s.check(i); return int(s.atomIndex2[i]) }
func (s *BondStore) SetAtomIndex2(i int, v int) { s.check(i); s.atomIndex2[i] = uint32(v) }
func (s *BondStore) BondOrder(i int) int        { s.check(i); return int(s.bondOrder[i]) }
func (s *BondStore) SetBondOrder(i int, v int)  { s.check(i); s.bondOrder[i] = int8(v) }
