/*
 * bonds.go, part of molstore.
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
)

//bondKey identifies a bond regardless of the order of its atoms.
func bondKey(a1, a2 int) uint64 {
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	return uint64(a1)<<32 | uint64(a2)
}

type bondSet map[uint64]struct{}

func (b bondSet) add(store *BondStore, a1, a2, order int) bool {
	k := bondKey(a1, a2)
	if _, ok := b[k]; ok {
		return false
	}
	b[k] = struct{}{}
	store.AddBond(a1, a2, order)
	return true
}

//residueTemplate returns the intra-residue bonds of the type of the residue,
//computing them from this residue if no residue of the type was seen before.
//Atoms with more bonds than their element allows lose their longest ones.
func (S *Structure) residueTemplate(rp *ResidueProxy) []TemplateBond {
	rt := rp.ResidueType()
	if b, ok := rt.Bonds(); ok {
		return b
	}
	type candidate struct {
		TemplateBond
		dist float64
	}
	n := rp.AtomCount()
	off := rp.AtomOffset()
	a1 := &AtomProxy{s: S}
	a2 := &AtomProxy{s: S}
	var cands []candidate
	perAtom := make([]int, n)
	for i := 0; i < n; i++ {
		a1.index = off + i
		for j := i + 1; j < n; j++ {
			a2.index = off + j
			if a1.ConnectedTo(a2) {
				cands = append(cands, candidate{TemplateBond{i, j, 1}, a1.DistanceTo(a2)})
				perAtom[i]++
				perAtom[j]++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist > cands[j].dist })
	removed := make([]bool, len(cands))
	for i := 0; i < n; i++ {
		a1.index = off + i
		max := symbolMaxBonds[a1.Element()]
		if max == 0 || a1.IsCg() { //no limit for this atom.
			continue
		}
		//cands is sorted from longest to shortest.
		for c := 0; c < len(cands) && perAtom[i] > max; c++ {
			b := cands[c]
			if removed[c] || (b.Offset1 != i && b.Offset2 != i) {
				continue
			}
			removed[c] = true
			perAtom[b.Offset1]--
			perAtom[b.Offset2]--
		}
	}
	var bonds []TemplateBond
	for c, b := range cands {
		if !removed[c] {
			bonds = append(bonds, b.TemplateBond)
		}
	}
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].Offset1 != bonds[j].Offset1 {
			return bonds[i].Offset1 < bonds[j].Offset1
		}
		return bonds[i].Offset2 < bonds[j].Offset2
	})
	rt.SetBonds(bonds)
	return bonds
}

//maxCovalent returns the largest covalent radius among the atom types.
func (S *Structure) maxCovalent() float64 {
	var max float64
	for i := 0; i < S.atomMap.Len(); i++ {
		if c := S.atomMap.Get(uint32(i)).Covalent; c > max {
			max = c
		}
	}
	return max
}

//CalculateBonds perceives covalent bonds from the coordinates. Bonds already
//in the bond store (e.g. given explicitly to a Builder) are kept. It adds:
//bonds within residues, from a template computed once per residue type;
//bonds linking consecutive residues of a polymer (C-N, O3'-P); and bonds
//between atoms of non-polymer residues and any other residue of the same model.
//The backbone bonds (between trace atoms of linked residues) and rung bonds
//(from the nucleic trace atom to the base) are rebuilt from scratch.
//It returns the number of bonds added to the bond store.
func (S *Structure) CalculateBonds() int {
	bs := S.bondStore
	existing := make(bondSet, bs.Count())
	for i := 0; i < bs.Count(); i++ {
		existing[bondKey(bs.AtomIndex1(i), bs.AtomIndex2(i))] = struct{}{}
	}
	before := bs.Count()
	S.backboneBondStore.Clear()
	S.rungBondStore.Clear()

	nres := S.residueStore.Count()
	rp := &ResidueProxy{s: S}
	//intra-residue
	for r := 0; r < nres; r++ {
		rp.index = r
		off := rp.AtomOffset()
		for _, b := range S.residueTemplate(rp) {
			existing.add(bs, off+b.Offset1, off+b.Offset2, b.Order)
		}
	}

	//polymer links and backbone bonds
	prev := &ResidueProxy{s: S}
	a1 := &AtomProxy{s: S}
	a2 := &AtomProxy{s: S}
	backbone := make(bondSet)
	for r := 1; r < nres; r++ {
		prev.index = r - 1
		rp.index = r
		if prev.ChainIndex() != rp.ChainIndex() {
			continue
		}
		pt, ct := prev.ResidueType(), rp.ResidueType()
		linked := false
		if pt.LinkFromOffset >= 0 && ct.LinkToOffset >= 0 {
			a1.index = prev.AtomOffset() + pt.LinkFromOffset
			a2.index = rp.AtomOffset() + ct.LinkToOffset
			if a1.ConnectedTo(a2) {
				existing.add(bs, a1.index, a2.index, 1)
				linked = true
			}
		}
		t1, t2 := prev.TraceAtomIndex(), rp.TraceAtomIndex()
		if t1 < 0 || t2 < 0 || pt.IsProtein() != ct.IsProtein() || pt.IsNucleic() != ct.IsNucleic() {
			continue
		}
		if !linked && (pt.IsCg() || ct.IsCg()) {
			a1.index, a2.index = t1, t2
			linked = a1.ConnectedTo(a2)
		}
		if linked {
			backbone.add(S.backboneBondStore, t1, t2, 1)
		}
	}

	//rungs
	rungs := make(bondSet)
	for r := 0; r < nres; r++ {
		rp.index = r
		rt := rp.ResidueType()
		if !rt.IsNucleic() || rt.TraceAtomOffset < 0 || rt.RungEndOffset < 0 {
			continue
		}
		rungs.add(S.rungBondStore, rp.AtomOffset()+rt.TraceAtomOffset, rp.AtomOffset()+rt.RungEndOffset, 1)
	}

	S.heteroBonds(existing)
	added := bs.Count() - before
	S.touch()
	S.log.Debug("bonds calculated", "added", added, "bonds", bs.Count(),
		"backbone", S.backboneBondStore.Count(), "rung", S.rungBondStore.Count())
	return added
}

//heteroBonds looks for bonds between atoms of non-polymer residues
//(ligands, modified residues...) and atoms of other residues.
func (S *Structure) heteroBonds(existing bondSet) {
	n := S.atomStore.Count()
	if n == 0 {
		return
	}
	idx, err := NewSpatialIndex(S, nil)
	if err != nil {
		//can't happen with a nil set.
		panic(err)
	}
	maxCov := S.maxCovalent()
	a1 := &AtomProxy{s: S}
	a2 := &AtomProxy{s: S}
	for i := 0; i < n; i++ {
		a1.index = i
		rt := a1.ResidueType()
		if rt.IsPolymer() || rt.IsWater() {
			continue
		}
		res := a1.ResidueIndex()
		model := a1.ModelIndex()
		for _, j := range idx.Within(a1.Position(), a1.Covalent()+maxCov+bondLongTol) {
			if j == i {
				continue
			}
			a2.index = j
			if a2.ResidueIndex() == res || a2.ModelIndex() != model || a2.IsWater() {
				continue
			}
			if a1.ConnectedTo(a2) {
				existing.add(S.bondStore, i, j, 1)
			}
		}
	}
}
