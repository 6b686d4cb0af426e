/*
 * atomtype.go, part of molstore.
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
)

//AtomType is the data shared by all atoms with the same element and name.
//There is only one *AtomType per id, so two atoms have the same type iff
//their *AtomType pointers are equal.
type AtomType struct {
	Element  string
	Atomname string
	Number   int
	Vdw      float64
	Covalent float64
	Color    uint32
}

func (T *AtomType) String() string {
	return fmt.Sprintf("%s(%s)", T.Atomname, T.Element)
}

type atomTypeKey struct {
	element  string
	atomname string
}

//AtomTypeMap interns AtomTypes.
type AtomTypeMap struct {
	types []*AtomType
	index map[atomTypeKey]uint32
}

func NewAtomTypeMap() *AtomTypeMap {
	return &AtomTypeMap{index: make(map[atomTypeKey]uint32)}
}

//Add returns the id of the type with the given element and atom name,
//creating it if needed. An empty element is guessed from the atom name.
func (M *AtomTypeMap) Add(element, atomname string) uint32 {
	element = NormalizeElement(element)
	if element == "" {
		element = GuessElement(atomname, "")
	}
	key := atomTypeKey{element: element, atomname: atomname}
	if id, ok := M.index[key]; ok {
		return id
	}
	t := &AtomType{
		Element:  element,
		Atomname: atomname,
		Number:   symbolNumber[element],
		Vdw:      vdwRadius(element),
		Covalent: covalentRadius(element),
		Color:    elementColor(element),
	}
	id := uint32(len(M.types))
	M.types = append(M.types, t)
	M.index[key] = id
	return id
}

//Get returns the canonical AtomType for id. It panics if id was never returned by Add.
func (M *AtomTypeMap) Get(id uint32) *AtomType {
	if int(id) >= len(M.types) {
		panic(errors.IndexOutOfRange("atom type", int(id), len(M.types)))
	}
	return M.types[id]
}

//Len returns the number of distinct atom types.
func (M *AtomTypeMap) Len() int {
	return len(M.types)
}
