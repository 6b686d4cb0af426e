/*
 * extract_test.go, part of molstore.
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
	"fmt"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/rmera/molstore"
	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"github.com/rmera/molstore/sele"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAtomData(Te *testing.T) {
	s := newDipeptide(Te)
	d, err := s.AtomData(molstore.AtomDataParams{})
	require.NoError(Te, err)
	n := 2 * atomsPerModel
	require.Equal(Te, n, d.Len())
	require.Len(Te, d.Position, 3*n)
	require.Len(Te, d.Color, 3*n)
	require.Len(Te, d.Radius, n)
	s.EachAtom(func(a *molstore.AtomProxy) {
		i := a.Index()
		assert.InDelta(Te, a.X(), d.Position[3*i], 1e-6)
		assert.InDelta(Te, a.Y(), d.Position[3*i+1], 1e-6)
		assert.InDelta(Te, a.Z(), d.Position[3*i+2], 1e-6)
		assert.InDelta(Te, a.Vdw(), d.Radius[i], 1e-6)
		assert.Equal(Te, uint32(i), d.Picking[i])
		assert.Equal(Te, uint32(i), d.Index[i])
		for _, c := range d.Color[3*i : 3*i+3] {
			assert.True(Te, c >= 0 && c <= 1)
		}
	}, nil)

	water := s.AtomSet(sele.Water())
	d, err = s.AtomData(molstore.AtomDataParams{
		What:       molstore.PositionChannel | molstore.ColorChannel,
		Set:        water,
		Colormaker: molstore.UniformColor(0xff0000),
	})
	require.NoError(Te, err)
	assert.Nil(Te, d.Radius)
	assert.Nil(Te, d.Picking)
	require.Equal(Te, 6, d.Len())
	assert.InDelta(Te, 10.96, d.Position[3], 1e-5)
	assert.Equal(Te, []float32{1, 0, 0}, d.Color[:3])

	_, err = s.AtomData(molstore.AtomDataParams{Set: bitset.New(5)})
	assert.True(Te, errors.Is(err, errors.ErrCapacityMismatch))
}

func TestAtomDataRadii(Te *testing.T) {
	cfg := molstore.DefaultConfig()
	cfg.RadiusType = molstore.RadiusBfactor
	cfg.RadiusScale = 0.5
	s := newDipeptide(Te, molstore.WithConfig(cfg))
	d, err := s.AtomData(molstore.AtomDataParams{What: molstore.RadiusChannel})
	require.NoError(Te, err)
	//bfactors are the serial numbers.
	assert.InDelta(Te, 0.5, d.Radius[0], 1e-6)
	assert.InDelta(Te, 6.5, d.Radius[12], 1e-6)

	rf := molstore.RadiusFactory{Type: molstore.RadiusSize, Scale: 2, Size: 1.5}
	a, _ := s.Atom(0)
	assert.InDelta(Te, 3.0, rf.AtomRadius(a), 1e-9)
	rf = molstore.RadiusFactory{Type: molstore.RadiusCovalent, Scale: 1}
	assert.InDelta(Te, a.Covalent(), rf.AtomRadius(a), 1e-9)
}

//segmentsOf returns the BondData for bond i alone, drawn with multiple bonds
//expanded.
func segmentsOf(Te *testing.T, s *molstore.Structure, i int) *molstore.BondData {
	Te.Helper()
	set, err := bitset.FromIndices(s.BondStore().Count(), i)
	require.NoError(Te, err)
	d, err := s.BondData(molstore.BondDataParams{Set: set, MultipleBond: molstore.MultipleBondSymmetric})
	require.NoError(Te, err)
	return d
}

func vec(f []float32, k int) r3.Vec {
	return r3.Vec{X: float64(f[3*k]), Y: float64(f[3*k+1]), Z: float64(f[3*k+2])}
}

func TestBondDataMultiple(Te *testing.T) {
	s := newDipeptide(Te)
	co := bondIndex(Te, s, 2, 3)
	b, err := s.Bond(co)
	require.NoError(Te, err)

	d := segmentsOf(Te, s, co)
	require.Equal(Te, 1, d.Len(), "single bond")
	//vdw of carbon times the bond scale.
	assert.InDelta(Te, 1.7*0.4, d.Radius[0], 1e-5)

	b.SetBondOrder(2)
	d = segmentsOf(Te, s, co)
	require.Equal(Te, 2, d.Len())
	axis := r3.Sub(vec(d.Position2, 0), vec(d.Position1, 0))
	gap := r3.Sub(vec(d.Position1, 1), vec(d.Position1, 0))
	fmt.Println("double bond gap", gap)
	assert.InDelta(Te, 2*float64(d.Radius[0])*0.85, r3.Norm(gap), 1e-4)
	assert.InDelta(Te, 0, r3.Dot(gap, axis), 1e-4)
	assert.InDelta(Te, 1.7*0.4/2, d.Radius[0], 1e-5)
	assert.Equal(Te, []uint32{uint32(co), uint32(co)}, d.Picking)
	//the segments are symmetric around the bond.
	mid := r3.Scale(0.5, r3.Add(vec(d.Position1, 0), vec(d.Position1, 1)))
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(mid, b.Atom1().Position())), 1e-4)

	b.SetBondOrder(3)
	d = segmentsOf(Te, s, co)
	require.Equal(Te, 3, d.Len())
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(vec(d.Position1, 1), b.Atom1().Position())), 1e-5)
	assert.InDelta(Te, 1.7*0.4/3, d.Radius[1], 1e-5)

	b.SetBondOrder(4)
	d = segmentsOf(Te, s, co)
	assert.Equal(Te, 1, d.Len())

	//off, the default, never expands.
	b.SetBondOrder(2)
	d, err = s.BondData(molstore.BondDataParams{})
	require.NoError(Te, err)
	assert.Equal(Te, 20, d.Len())
}

func TestBondDataKinds(Te *testing.T) {
	s := newDipeptide(Te)
	d, err := s.BondData(molstore.BondDataParams{Kind: molstore.BackboneBonds, What: molstore.PositionChannel})
	require.NoError(Te, err)
	require.Equal(Te, 2, d.Len())
	assert.InDelta(Te, 1.2, d.Position1[0], 1e-5)
	assert.InDelta(Te, 4.8, d.Position2[0], 1e-5)
	assert.Nil(Te, d.Radius)

	d, err = s.BondData(molstore.BondDataParams{Kind: molstore.RungBonds})
	require.NoError(Te, err)
	assert.Equal(Te, 0, d.Len())

	_, err = s.BondData(molstore.BondDataParams{Set: bitset.New(3)})
	assert.True(Te, errors.Is(err, errors.ErrCapacityMismatch))

	d, err = s.BondData(molstore.BondDataParams{Set: s.BondSet(sele.Water()), Colormaker: molstore.UniformColor(0x0000ff)})
	require.NoError(Te, err)
	require.Equal(Te, 4, d.Len())
	assert.Equal(Te, []float32{0, 0, 1}, d.Color2[:3])
}

func TestCoords(Te *testing.T) {
	s := newDipeptide(Te)
	water := s.AtomSet(sele.Water())
	m, err := s.Coords(water)
	require.NoError(Te, err)
	require.Equal(Te, 6, m.NVecs())
	assert.InDelta(Te, 10.0, m.Vec(0).X, 1e-6)
	assert.InDelta(Te, 60.96, m.Vec(4).X, 1e-4)

	for i := 0; i < m.NVecs(); i++ {
		m.SetVec(i, r3.Add(m.Vec(i), r3.Vec{X: 0, Y: 0, Z: 1}))
	}
	gen := s.Generation()
	require.NoError(Te, s.SetCoords(m, water))
	assert.Greater(Te, s.Generation(), gen)
	o, _ := s.Atom(atomIndex(Te, s, "HOH", "O"))
	assert.InDelta(Te, 11.0, o.Z(), 1e-6)
	ca, _ := s.Atom(1)
	assert.InDelta(Te, 0.0, ca.Z(), 1e-6)

	err = s.SetCoords(m, nil)
	assert.True(Te, errors.Is(err, errors.ErrCapacityMismatch))
}

func TestAtomsWithin(Te *testing.T) {
	s := newDipeptide(Te)
	set, err := s.AtomsWithin(r3.Vec{X: 10, Y: 10, Z: 10}, 1.0, nil)
	require.NoError(Te, err)
	assert.Equal(Te, []int{9, 10, 11}, set.ToIndices())

	set, err = s.AtomsWithin(r3.Vec{X: 10, Y: 10, Z: 10}, 1.0, s.AtomSet(sele.Element("H")))
	require.NoError(Te, err)
	assert.Equal(Te, []int{10, 11}, set.ToIndices())

	idx, err := molstore.NewSpatialIndex(s, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 2*atomsPerModel, idx.Len())
	assert.Equal(Te, []int{25}, idx.Within(r3.Vec{X: 70, Y: 0, Z: 0}, 0.1))
	assert.Empty(Te, idx.Within(r3.Vec{X: -30, Y: 0, Z: 0}, 5))

	_, err = s.AtomsWithin(r3.Vec{}, 1, bitset.New(2))
	assert.True(Te, errors.Is(err, errors.ErrCapacityMismatch))
}

func TestArrowRecord(Te *testing.T) {
	s := newDipeptide(Te)
	d, err := s.AtomData(molstore.AtomDataParams{})
	require.NoError(Te, err)
	rec, err := s.ArrowRecord(d, nil)
	require.NoError(Te, err)
	defer rec.Release()
	assert.Equal(Te, int64(2*atomsPerModel), rec.NumRows())
	require.Equal(Te, int64(11), rec.NumCols())
	names := make([]string, rec.NumCols())
	for i := range names {
		names[i] = rec.ColumnName(i)
	}
	assert.Equal(Te, []string{"x", "y", "z", "r", "g", "b", "radius", "picking", "index", "element", "atomname"}, names)
	x := rec.Column(0).(*array.Float32)
	assert.InDelta(Te, 1.2, x.Value(1), 1e-6)
	elements := rec.Column(9).(*array.String)
	assert.Equal(Te, "N", elements.Value(0))
	assert.Equal(Te, "Na", elements.Value(12))
	atomnames := rec.Column(10).(*array.String)
	assert.Equal(Te, "CB", atomnames.Value(4))

	d, err = s.AtomData(molstore.AtomDataParams{What: molstore.PositionChannel})
	require.NoError(Te, err)
	rec2, err := s.ArrowRecord(d, nil)
	require.NoError(Te, err)
	defer rec2.Release()
	assert.Equal(Te, int64(3), rec2.NumCols())

	d.Position = d.Position[:5]
	_, err = s.ArrowRecord(d, nil)
	assert.Error(Te, err)
}
