/*
 * interfaces.go, part of molstore.
 *
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

//Selection is an atom predicate, usually compiled from a selection string
//by some other package. molstore never parses selection strings.
type Selection interface {
	//String identifies the selection, e.g. the string it was compiled from.
	String() string

	//Test tells whether the atom the proxy points to is selected.
	//Panics raised here are not recovered by molstore.
	Test(a *AtomProxy) bool
}

//ModelOnlyTester is implemented by selections that can reject a whole model
//cheaply. If ModelOnlyTest returns false, no atom of the model is selected,
//and iterations skip the model without testing its atoms.
type ModelOnlyTester interface {
	ModelOnlyTest(m *ModelProxy) bool
}

//Colormaker gives a color, as 0xRRGGBB, for an atom.
type Colormaker interface {
	AtomColor(a *AtomProxy) uint32
}

//Radiuser gives a display radius for an atom.
type Radiuser interface {
	AtomRadius(a *AtomProxy) float64
}
