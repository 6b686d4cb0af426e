/*
 * helpers_test.go, part of molstore.
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

package molstore_test

import (
	"testing"

	"github.com/rmera/molstore"
	"github.com/stretchr/testify/require"
)

type testAtom struct {
	name    string
	x, y, z float64
}

type testResidue struct {
	chain   string
	resname string
	resno   int
	hetero  bool
	atoms   []testAtom
}

//dipeptide is ALA-GLY in chain A, plus a water and a sodium ion in chain B.
//Model 0 has atoms 0-12: ALA 0-4 (N CA C O CB), GLY 5-8 (N CA C O),
//HOH 9-11 (O H1 H2), NA 12.
var dipeptide = []testResidue{
	{"A", "ALA", 1, false, []testAtom{
		{"N", 0, 1, 0}, {"CA", 1.2, 1.8, 0}, {"C", 2.4, 1.0, 0}, {"O", 2.4, -0.23, 0}, {"CB", 1.2, 2.6, 1.25},
	}},
	{"A", "GLY", 2, false, []testAtom{
		{"N", 3.6, 1.7, 0}, {"CA", 4.8, 1.0, 0}, {"C", 6.0, 1.7, 0}, {"O", 6.0, 2.93, 0},
	}},
	{"B", "HOH", 3, true, []testAtom{
		{"O", 10, 10, 10}, {"H1", 10.96, 10, 10}, {"H2", 9.76, 10.93, 10},
	}},
	{"B", "NA", 4, true, []testAtom{
		{"NA", 20, 0, 0},
	}},
}

const atomsPerModel = 13

//addResidues feeds residues to b as model model, displaced by shift along x.
func addResidues(b *molstore.Builder, model int, shift float64, residues []testResidue) {
	serial := 1
	for _, r := range residues {
		for _, a := range r.atoms {
			b.AddAtom(molstore.AtomRecord{
				Model:     model,
				Chainname: r.chain,
				Resname:   r.resname,
				Resno:     r.resno,
				Hetero:    r.hetero,
				Atomname:  a.name,
				X:         a.x + shift,
				Y:         a.y,
				Z:         a.z,
				Serial:    serial,
				Bfactor:   float64(serial),
				Occupancy: 1,
			})
			serial++
		}
	}
}

//newDipeptide returns a structure with two models of the dipeptide, the
//second one displaced 50 A along x. Bonds are calculated.
func newDipeptide(Te *testing.T, opts ...molstore.Option) *molstore.Structure {
	Te.Helper()
	s := molstore.New("dipeptide", opts...)
	b := molstore.NewBuilder(s)
	addResidues(b, 1, 0, dipeptide)
	addResidues(b, 2, 50, dipeptide)
	s, err := b.Finalize()
	require.NoError(Te, err)
	return s
}

//atomIndex returns the index of the first atom of model 0 with the given
//residue and atom names.
func atomIndex(Te *testing.T, s *molstore.Structure, resname, atomname string) int {
	Te.Helper()
	found := -1
	s.EachAtom(func(a *molstore.AtomProxy) {
		if found < 0 && a.ModelIndex() == 0 && a.Resname() == resname && a.Atomname() == atomname {
			found = a.Index()
		}
	}, nil)
	require.GreaterOrEqual(Te, found, 0, "no atom %s %s", resname, atomname)
	return found
}

//bondIndex returns the index of the bond between a1 and a2.
func bondIndex(Te *testing.T, s *molstore.Structure, a1, a2 int) int {
	Te.Helper()
	found := -1
	s.EachBond(func(b *molstore.BondProxy) {
		i1, i2 := b.AtomIndex1(), b.AtomIndex2()
		if (i1 == a1 && i2 == a2) || (i1 == a2 && i2 == a1) {
			found = b.Index()
		}
	}, nil)
	require.GreaterOrEqual(Te, found, 0, "no bond %d-%d", a1, a2)
	return found
}
