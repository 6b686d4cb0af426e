/*
 * residuetype.go, part of molstore.
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
	"strconv"
	"strings"

	"github.com/rmera/molstore/errors"
)

//MoleculeType classifies a residue type by the kind of molecule it belongs to.
type MoleculeType uint8

const (
	UnknownMolecule MoleculeType = iota
	WaterMolecule
	IonMolecule
	ProteinMolecule
	RNAMolecule
	DNAMolecule
	SaccharideMolecule
)

var moleculeTypeNames = [...]string{"unknown", "water", "ion", "protein", "rna", "dna", "saccharide"}

func (m MoleculeType) String() string {
	if int(m) < len(moleculeTypeNames) {
		return moleculeTypeNames[m]
	}
	return "invalid"
}

//BackboneType classifies a residue type by the backbone atoms it has.
type BackboneType uint8

const (
	UnknownBackbone BackboneType = iota
	ProteinBackbone
	RNABackbone
	DNABackbone
	CgProteinBackbone
	CgRNABackbone
	CgDNABackbone
)

var backboneTypeNames = [...]string{"unknown", "protein", "rna", "dna", "cg-protein", "cg-rna", "cg-dna"}

func (b BackboneType) String() string {
	if int(b) < len(backboneTypeNames) {
		return backboneTypeNames[b]
	}
	return "invalid"
}

//IsCg is true for the coarse-grained backbone types.
func (b BackboneType) IsCg() bool {
	return b == CgProteinBackbone || b == CgRNABackbone || b == CgDNABackbone
}

//TemplateBond is a bond between two atoms of a residue, given as offsets
//from the first atom of the residue.
type TemplateBond struct {
	Offset1, Offset2 int
	Order            int
}

//ResidueType is the data shared by all residues with the same name, hetero flag
//and sequence of atom types. As with AtomType, there is a single *ResidueType per id.
type ResidueType struct {
	Resname      string
	Hetero       bool
	ChemCompType string
	AtomTypeIDs  []uint32
	MoleculeType MoleculeType
	BackboneType BackboneType
	//offsets, from the first atom of the residue, of the backbone atoms.
	BackboneIndices []int
	//offset of the trace atom (CA, C4', P...), -1 if there is none.
	TraceAtomOffset int
	//offsets of the atom bonded to the next residue of a polymer (C, O3')
	//and of the one bonded to the previous residue (N, P), -1 if absent.
	LinkFromOffset int
	LinkToOffset   int
	//offset of the base atom where a rung (base-pair) bond ends, -1 if absent.
	RungEndOffset int

	bonds         []TemplateBond
	bondsComputed bool
}

func (T *ResidueType) IsWater() bool      { return T.MoleculeType == WaterMolecule }
func (T *ResidueType) IsIon() bool        { return T.MoleculeType == IonMolecule }
func (T *ResidueType) IsProtein() bool    { return T.MoleculeType == ProteinMolecule }
func (T *ResidueType) IsRNA() bool        { return T.MoleculeType == RNAMolecule }
func (T *ResidueType) IsDNA() bool        { return T.MoleculeType == DNAMolecule }
func (T *ResidueType) IsSaccharide() bool { return T.MoleculeType == SaccharideMolecule }
func (T *ResidueType) IsNucleic() bool    { return T.IsRNA() || T.IsDNA() }
func (T *ResidueType) IsPolymer() bool    { return T.IsProtein() || T.IsNucleic() }
func (T *ResidueType) IsCg() bool         { return T.BackboneType.IsCg() }

//IsBackboneOffset tells whether the atom at offset (from the first atom of the residue)
//is a backbone atom.
func (T *ResidueType) IsBackboneOffset(offset int) bool {
	return isInInt(T.BackboneIndices, offset)
}

//Bonds returns the intra-residue bonds of the type, and whether they have been
//computed yet.
func (T *ResidueType) Bonds() ([]TemplateBond, bool) {
	return T.bonds, T.bondsComputed
}

//SetBonds sets the intra-residue bond template of the type.
func (T *ResidueType) SetBonds(b []TemplateBond) {
	T.bonds = b
	T.bondsComputed = true
}

//ResidueTypeMap interns ResidueTypes. It needs the AtomTypeMap of the structure
//to classify residues by their atom names.
type ResidueTypeMap struct {
	atomTypes *AtomTypeMap
	types     []*ResidueType
	index     map[string]uint32
}

func NewResidueTypeMap(atomTypes *AtomTypeMap) *ResidueTypeMap {
	return &ResidueTypeMap{atomTypes: atomTypes, index: make(map[string]uint32)}
}

func residueTypeKey(resname string, atomTypeIDs []uint32, hetero bool, chemCompType string) string {
	var b strings.Builder
	b.WriteString(resname)
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(hetero))
	b.WriteByte('|')
	b.WriteString(chemCompType)
	for _, id := range atomTypeIDs {
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

//Add returns the id of the residue type for the given composite key, creating
//and classifying it if needed. atomTypeIDs are the atom types of the residue atoms,
//in order.
func (M *ResidueTypeMap) Add(resname string, atomTypeIDs []uint32, hetero bool, chemCompType string) uint32 {
	key := residueTypeKey(resname, atomTypeIDs, hetero, chemCompType)
	if id, ok := M.index[key]; ok {
		return id
	}
	ids := make([]uint32, len(atomTypeIDs))
	copy(ids, atomTypeIDs)
	t := &ResidueType{
		Resname:      resname,
		Hetero:       hetero,
		ChemCompType: strings.ToUpper(chemCompType),
		AtomTypeIDs:  ids,
	}
	M.classify(t)
	id := uint32(len(M.types))
	M.types = append(M.types, t)
	M.index[key] = id
	return id
}

//Get returns the canonical ResidueType for id.
func (M *ResidueTypeMap) Get(id uint32) *ResidueType {
	if int(id) >= len(M.types) {
		panic(errors.IndexOutOfRange("residue type", int(id), len(M.types)))
	}
	return M.types[id]
}

func (M *ResidueTypeMap) Len() int {
	return len(M.types)
}

//atomOffset returns the offset of the first atom of t with one of the given names, or -1.
func (M *ResidueTypeMap) atomOffset(t *ResidueType, names []string) int {
	for i, id := range t.AtomTypeIDs {
		if isInString(names, M.atomTypes.Get(id).Atomname) {
			return i
		}
	}
	return -1
}

//hasAtoms is true if, for each group, t has an atom named like one of the group members.
func (M *ResidueTypeMap) hasAtoms(t *ResidueType, groups ...[]string) bool {
	for _, g := range groups {
		if M.atomOffset(t, g) < 0 {
			return false
		}
	}
	return true
}

func (M *ResidueTypeMap) classify(t *ResidueType) {
	t.MoleculeType = M.moleculeType(t)
	t.BackboneType = M.backboneType(t)
	t.TraceAtomOffset = -1
	t.LinkFromOffset = -1
	t.LinkToOffset = -1
	t.RungEndOffset = -1
	var bbnames []string
	switch t.BackboneType {
	case ProteinBackbone:
		bbnames = proteinBackboneAtoms
		t.TraceAtomOffset = M.atomOffset(t, proteinTrace)
		t.LinkFromOffset = M.atomOffset(t, proteinLinkFrom)
		t.LinkToOffset = M.atomOffset(t, proteinLinkTo)
	case CgProteinBackbone:
		bbnames = proteinBackboneAtoms
		t.TraceAtomOffset = M.atomOffset(t, proteinTrace)
	case RNABackbone, DNABackbone:
		bbnames = nucleicBackboneAtoms
		t.TraceAtomOffset = M.atomOffset(t, nucleicTrace)
		t.LinkFromOffset = M.atomOffset(t, nucleicLinkFrom)
		t.LinkToOffset = M.atomOffset(t, nucleicLinkTo)
		rung := pyrimidineRung
		if isInString([]string{"A", "G", "I", "DA", "DG", "DI"}, t.Resname) {
			rung = purineRungEnd
		}
		t.RungEndOffset = M.atomOffset(t, rung)
	case CgRNABackbone, CgDNABackbone:
		bbnames = nucleicBackboneAtoms
		t.TraceAtomOffset = M.atomOffset(t, cgNucleicTrace)
	}
	if bbnames == nil {
		return
	}
	for i, id := range t.AtomTypeIDs {
		if isInString(bbnames, M.atomTypes.Get(id).Atomname) {
			t.BackboneIndices = append(t.BackboneIndices, i)
		}
	}
}

func (M *ResidueTypeMap) moleculeType(t *ResidueType) MoleculeType {
	name := strings.ToUpper(t.Resname)
	switch {
	case isInString(waterNames, name):
		return WaterMolecule
	case isInString(ionNames, name):
		return IonMolecule
	case M.isProtein(t, name):
		return ProteinMolecule
	case M.isRNA(t, name):
		return RNAMolecule
	case M.isDNA(t, name):
		return DNAMolecule
	case isInString(saccharideNames, name):
		return SaccharideMolecule
	}
	return UnknownMolecule
}

func (M *ResidueTypeMap) isProtein(t *ResidueType, name string) bool {
	if t.ChemCompType != "" {
		return isInString(chemCompProtein, t.ChemCompType)
	}
	return isInString(aminoAcids3, name) || M.hasAtoms(t, proteinTrace, []string{"N"}, []string{"C"})
}

var o2Prime = []string{"O2'", "O2*", "F2'", "F2*"}

func (M *ResidueTypeMap) isRNA(t *ResidueType, name string) bool {
	if t.ChemCompType != "" {
		return isInString(chemCompRNA, t.ChemCompType)
	}
	if isInString(rnaBases, name) {
		//a base name is RNA unless it has a sugar without the 2' oxygen.
		return !M.hasAtoms(t, []string{"C3'", "C3*"}) || M.hasAtoms(t, o2Prime)
	}
	return M.hasAtoms(t, []string{"P", "O3'", "O3*"}, nucleicTrace, o2Prime)
}

func (M *ResidueTypeMap) isDNA(t *ResidueType, name string) bool {
	if t.ChemCompType != "" {
		return isInString(chemCompDNA, t.ChemCompType)
	}
	return isInString(dnaBases, name) ||
		(M.hasAtoms(t, []string{"P", "O3'", "O3*"}, []string{"C3'", "C3*"}) && !M.hasAtoms(t, o2Prime))
}

func (M *ResidueTypeMap) backboneType(t *ResidueType) BackboneType {
	switch t.MoleculeType {
	case ProteinMolecule:
		if M.hasAtoms(t, []string{"CA"}, []string{"C"}, []string{"N"}) {
			return ProteinBackbone
		}
		if M.hasAtoms(t, proteinTrace) {
			return CgProteinBackbone
		}
	case RNAMolecule, DNAMolecule:
		full, cg := RNABackbone, CgRNABackbone
		if t.MoleculeType == DNAMolecule {
			full, cg = DNABackbone, CgDNABackbone
		}
		if M.hasAtoms(t, nucleicTrace, []string{"C3'", "C3*"}, []string{"O3'", "O3*"}) {
			return full
		}
		if M.hasAtoms(t, cgNucleicTrace) {
			return cg
		}
	}
	return UnknownBackbone
}
