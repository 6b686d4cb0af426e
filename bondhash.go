/*
 * bondhash.go, part of molstore.
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

//BondHash maps each atom to the bonds it takes part in. Bonds of atom i are
//bonds[offsets[i]:offsets[i+1]], in ascending bond index.
type BondHash struct {
	offsets []int
	bonds   []int
}

//NewBondHash indexes the bonds of bs, for a structure with natoms atoms.
func NewBondHash(bs *BondStore, natoms int) *BondHash {
	h := &BondHash{offsets: make([]int, natoms+1)}
	nb := bs.Count()
	for i := 0; i < nb; i++ {
		h.offsets[bs.AtomIndex1(i)+1]++
		h.offsets[bs.AtomIndex2(i)+1]++
	}
	for i := 1; i <= natoms; i++ {
		h.offsets[i] += h.offsets[i-1]
	}
	h.bonds = make([]int, h.offsets[natoms])
	fill := make([]int, natoms)
	for i := 0; i < nb; i++ {
		for _, a := range [2]int{bs.AtomIndex1(i), bs.AtomIndex2(i)} {
			h.bonds[h.offsets[a]+fill[a]] = i
			fill[a]++
		}
	}
	return h
}

//Bonds returns the indexes of the bonds of atom. The slice must not be modified.
//Atoms the hash doesn't know have no bonds.
func (h *BondHash) Bonds(atom int) []int {
	if atom < 0 || atom+1 >= len(h.offsets) {
		return nil
	}
	return h.bonds[h.offsets[atom]:h.offsets[atom+1]]
}

//Atoms returns the number of atoms indexed.
func (h *BondHash) Atoms() int {
	if len(h.offsets) == 0 {
		return 0
	}
	return len(h.offsets) - 1
}
