/*
 * builder.go, part of molstore.
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
	"github.com/rmera/molstore/errors"
)

//AtomRecord is everything a parser knows about one atom. Records are given
//to a Builder in file order.
type AtomRecord struct {
	Model        int
	Chainname    string
	Chainid      string //defaults to Chainname
	Resname      string
	Resno        int
	Inscode      rune
	Hetero       bool
	ChemCompType string
	Sstruc       rune
	Atomname     string
	Element      string //guessed from Atomname if empty
	X, Y, Z      float64
	Serial       int
	Bfactor      float64
	Occupancy    float64
	Altloc       rune
}

//Builder fills a Structure from a stream of AtomRecords. A new model starts when
//the model number changes, a new chain when the chain name or id changes, and a
//new residue when the residue number, insertion code or name changes.
type Builder struct {
	s *Structure
	//If true (the default) Finalize calls CalculateBonds.
	CalculateBonds bool

	started   bool
	last      AtomRecord
	model     int
	chain     int
	residue   int
	resTypes  []uint32
	finalized bool

	//keys of the first bondsSeen bonds of the bond store.
	bonds     bondSet
	bondsSeen int
}

//NewBuilder returns a builder that appends to s.
func NewBuilder(s *Structure) *Builder {
	return &Builder{s: s, CalculateBonds: true, model: -1, chain: -1, residue: -1}
}

//Structure returns the structure being built.
func (B *Builder) Structure() *Structure {
	return B.s
}

func (B *Builder) chainid(r AtomRecord) string {
	if r.Chainid == "" {
		return r.Chainname
	}
	return r.Chainid
}

//AddAtom appends one atom, and the model, chain and residue rows it starts,
//if any. It returns the index of the new atom.
func (B *Builder) AddAtom(r AtomRecord) int {
	s := B.s
	newModel := !B.started || r.Model != B.last.Model
	newChain := newModel || r.Chainname != B.last.Chainname || B.chainid(r) != B.chainid(B.last)
	newResidue := newChain || r.Resno != B.last.Resno || r.Inscode != B.last.Inscode || r.Resname != B.last.Resname
	if newResidue {
		B.closeResidue()
	}
	if newModel {
		B.model = s.modelStore.AppendModel(ModelRow{ChainOffset: uint32(s.chainStore.Count())})
	}
	if newChain {
		B.chain = s.chainStore.AppendChain(ChainRow{
			Chainname:     r.Chainname,
			Chainid:       B.chainid(r),
			ModelIndex:    uint32(B.model),
			ResidueOffset: uint32(s.residueStore.Count()),
		})
		s.modelStore.SetChainCount(B.model, s.modelStore.ChainCount(B.model)+1)
	}
	if newResidue {
		B.residue = s.residueStore.AppendResidue(ResidueRow{
			Resno:      int32(r.Resno),
			Inscode:    EncodeChar(r.Inscode),
			Sstruc:     EncodeChar(r.Sstruc),
			ChainIndex: uint32(B.chain),
			AtomOffset: uint32(s.atomStore.Count()),
		})
		s.chainStore.SetResidueCount(B.chain, s.chainStore.ResidueCount(B.chain)+1)
	}
	element := r.Element
	if element == "" {
		element = GuessElement(r.Atomname, r.Resname)
	}
	if _, ok := symbolCovrad[NormalizeElement(element)]; !ok {
		s.log.Warn("unknown element", "atomname", r.Atomname, "resname", r.Resname, "element", element)
	}
	typeID := s.atomMap.Add(element, r.Atomname)
	B.resTypes = append(B.resTypes, typeID)
	i := s.atomStore.AppendAtom(AtomRow{
		X:            float32(r.X),
		Y:            float32(r.Y),
		Z:            float32(r.Z),
		Serial:       int32(r.Serial),
		Bfactor:      float32(r.Bfactor),
		Occupancy:    float32(r.Occupancy),
		Altloc:       EncodeChar(r.Altloc),
		ResidueIndex: uint32(B.residue),
		AtomTypeID:   typeID,
	})
	s.residueStore.SetAtomCount(B.residue, s.residueStore.AtomCount(B.residue)+1)
	B.started = true
	B.last = r
	s.touch()
	return i
}

//closeResidue interns the type of the residue being built.
func (B *Builder) closeResidue() {
	if B.residue < 0 || len(B.resTypes) == 0 {
		return
	}
	r := B.last
	id := B.s.residueMap.Add(r.Resname, B.resTypes, r.Hetero, r.ChemCompType)
	B.s.residueStore.SetResidueTypeID(B.residue, id)
	B.resTypes = B.resTypes[:0]
}

//AddBond adds a bond given explicitly, e.g. by a CONECT record.
func (B *Builder) AddBond(a1, a2, order int) error {
	n := B.s.atomStore.Count()
	for _, a := range []int{a1, a2} {
		if a < 0 || a >= n {
			return errors.IndexOutOfRange("atom", a, n)
		}
	}
	bs := B.s.bondStore
	if B.bonds == nil || bs.Count() < B.bondsSeen {
		B.bonds = make(bondSet, bs.Count())
		B.bondsSeen = 0
	}
	for ; B.bondsSeen < bs.Count(); B.bondsSeen++ {
		B.bonds[bondKey(bs.AtomIndex1(B.bondsSeen), bs.AtomIndex2(B.bondsSeen))] = struct{}{}
	}
	if B.bonds.add(bs, a1, a2, order) {
		B.bondsSeen++
		B.s.touch()
	}
	return nil
}

//Finalize closes the last residue, perceives bonds if CalculateBonds is set,
//and refreshes the structure. The builder can't be used afterwards.
func (B *Builder) Finalize() (*Structure, error) {
	if B.finalized {
		return B.s, errors.New(errors.ErrDisposed, "builder already finalized")
	}
	B.closeResidue()
	B.finalized = true
	if B.CalculateBonds {
		B.s.CalculateBonds()
	}
	B.s.Refresh()
	B.s.log.Debug("structure built", "counts", B.s.Counts().String())
	return B.s, nil
}
