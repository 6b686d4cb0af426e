/*
 * structure_test.go, part of molstore.
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

	"github.com/rmera/molstore"
	"github.com/rmera/molstore/errors"
	"github.com/rmera/molstore/sele"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBuilderCounts(Te *testing.T) {
	s := newDipeptide(Te)
	c := s.Counts()
	fmt.Println(c)
	assert.Equal(Te, 2*atomsPerModel, c.Atoms)
	assert.Equal(Te, 8, c.Residues)
	assert.Equal(Te, 4, c.Chains)
	assert.Equal(Te, 2, c.Models)
	assert.Equal(Te, 20, c.Bonds)
	assert.Equal(Te, 2, c.BackboneBonds)
	assert.Equal(Te, 0, c.RungBonds)
	//both models share their types.
	assert.Equal(Te, 4, c.ResidueTypes)
	assert.Equal(Te, 8, c.AtomTypes)
	assert.False(Te, s.Stale())

	m, err := s.Model(1)
	require.NoError(Te, err)
	assert.Equal(Te, 2, m.ChainOffset())
	assert.Equal(Te, 4, m.ResidueOffset())
	assert.Equal(Te, atomsPerModel, m.AtomOffset())
	assert.Equal(Te, atomsPerModel, m.AtomCount())
}

func TestProxyParents(Te *testing.T) {
	s := newDipeptide(Te)
	a, err := s.Atom(atomsPerModel + 6)
	require.NoError(Te, err)
	assert.Equal(Te, "CA", a.Atomname())
	assert.Equal(Te, "C", a.Element())
	assert.Equal(Te, "GLY", a.Resname())
	assert.Equal(Te, 2, a.Resno())
	assert.Equal(Te, "A", a.Chainname())
	assert.Equal(Te, 1, a.ModelIndex())
	assert.True(Te, a.IsProtein())
	assert.True(Te, a.IsPolymer())
	assert.True(Te, a.IsBackbone())
	assert.True(Te, a.IsTrace())
	assert.False(Te, a.IsHetero())
	assert.Equal(Te, "[GLY]2:A.CA", a.QualifiedName())

	cb, err := s.Atom(atomIndex(Te, s, "ALA", "CB"))
	require.NoError(Te, err)
	assert.False(Te, cb.IsBackbone())
	assert.Equal(Te, 1, cb.BondCount())

	w, err := s.Atom(atomIndex(Te, s, "HOH", "O"))
	require.NoError(Te, err)
	assert.True(Te, w.IsWater())
	assert.True(Te, w.IsHetero())
	assert.False(Te, w.IsPolymer())
	var bonded []string
	w.EachBondedAtom(func(o *molstore.AtomProxy) { bonded = append(bonded, o.Atomname()) })
	assert.ElementsMatch(Te, []string{"H1", "H2"}, bonded)

	na, err := s.Atom(atomIndex(Te, s, "NA", "NA"))
	require.NoError(Te, err)
	assert.Equal(Te, "Na", na.Element())
	assert.True(Te, na.IsIon())

	r := a.Residue()
	assert.Equal(Te, atomsPerModel+5, r.AtomOffset())
	assert.Equal(Te, 4, r.AtomCount())
	assert.Equal(Te, a.Index(), r.TraceAtomIndex())
	assert.Equal(Te, molstore.ProteinBackbone, r.BackboneType())
	ch := a.Chain()
	assert.Equal(Te, 2, ch.ResidueCount())
	assert.Equal(Te, 9, ch.AtomCount())
}

func TestProxyBounds(Te *testing.T) {
	s := newDipeptide(Te)
	_, err := s.Atom(2 * atomsPerModel)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))
	_, err = s.Residue(-1)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))
	_, err = s.Chain(4)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))
	_, err = s.Model(2)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))
	_, err = s.Bond(20)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))

	a, err := s.Atom(0)
	require.NoError(Te, err)
	require.Error(Te, a.SetIndex(100))
	assert.Equal(Te, 0, a.Index())

	//reading past the count is a defined failure, not a zero.
	defer func() {
		r := recover()
		require.NotNil(Te, r)
		err, ok := r.(error)
		require.True(Te, ok)
		assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))
	}()
	s.AtomStore().X(s.AtomStore().Count())
}

func TestScratchProxies(Te *testing.T) {
	s := newDipeptide(Te)
	a, err := s.ScratchAtom(1)
	require.NoError(Te, err)
	b, err := s.ScratchAtom(2)
	require.NoError(Te, err)
	//the same proxy, moved.
	assert.Same(Te, a, b)
	assert.Equal(Te, 2, a.Index())
	f1, _ := s.Atom(1)
	f2, _ := s.Atom(2)
	assert.NotSame(Te, f1, f2)
	r, err := s.ScratchResidue(1)
	require.NoError(Te, err)
	assert.Equal(Te, "GLY", r.Resname())
}

func TestEachAtomOrder(Te *testing.T) {
	s := newDipeptide(Te)
	var got []int
	s.EachAtom(func(a *molstore.AtomProxy) { got = append(got, a.Index()) }, nil)
	require.Len(Te, got, 2*atomsPerModel)
	for i, v := range got {
		assert.Equal(Te, i, v)
	}
}

func TestEachAtomMatchesAtomSet(Te *testing.T) {
	s := newDipeptide(Te)
	sels := []molstore.Selection{
		sele.All(),
		sele.Resname("ALA", "HOH"),
		sele.Element("O"),
		sele.Backbone(),
		sele.And(sele.Model(1), sele.Protein()),
		sele.Or(sele.Water(), sele.Ion()),
		sele.Not(sele.Chain("A")),
		sele.Index(3, 7, 20),
	}
	for _, sel := range sels {
		var got []int
		s.EachAtom(func(a *molstore.AtomProxy) { got = append(got, a.Index()) }, sel)
		want := s.AtomSet(sel).ToIndices()
		assert.Equal(Te, want, got, sel.String())
	}
	assert.Equal(Te, 6, s.AtomSet(sele.Element("O")).Size())
	assert.Equal(Te, []int{3, 7, 20}, s.AtomSet(sele.Index(20, 3, 7)).ToIndices())
}

//modelCounter selects one model and counts the atoms it tests.
type modelCounter struct {
	model int
	tests int
}

func (M *modelCounter) String() string { return fmt.Sprint("model ", M.model) }

func (M *modelCounter) Test(a *molstore.AtomProxy) bool {
	M.tests++
	return a.ModelIndex() == M.model
}

func (M *modelCounter) ModelOnlyTest(m *molstore.ModelProxy) bool {
	return m.Index() == M.model
}

func TestModelPruning(Te *testing.T) {
	s := newDipeptide(Te)
	mc := &modelCounter{model: 1}
	n := 0
	s.EachAtom(func(a *molstore.AtomProxy) {
		assert.Equal(Te, 1, a.ModelIndex())
		n++
	}, mc)
	assert.Equal(Te, atomsPerModel, n)
	assert.Equal(Te, atomsPerModel, mc.tests, "atoms of rejected models must not be tested")

	var residues []int
	s.EachResidue(func(r *molstore.ResidueProxy) { residues = append(residues, r.Index()) }, sele.Model(0))
	assert.Equal(Te, []int{0, 1, 2, 3}, residues)
	var models []int
	s.EachModel(func(m *molstore.ModelProxy) { models = append(models, m.Index()) }, sele.Model(1))
	assert.Equal(Te, []int{1}, models)
	var chains []string
	s.EachChain(func(c *molstore.ChainProxy) { chains = append(chains, c.Chainname()) }, sele.Water())
	assert.Equal(Te, []string{"B", "B"}, chains)
	assert.Equal(Te, []int{2, 6}, s.ResidueSet(sele.Water()).ToIndices())
}

func TestEachBond(Te *testing.T) {
	s := newDipeptide(Te)
	n := 0
	s.EachBond(func(b *molstore.BondProxy) { n++ }, nil)
	assert.Equal(Te, 20, n)
	n = 0
	s.EachBond(func(b *molstore.BondProxy) {
		assert.True(Te, b.Atom1().IsWater() && b.Atom2().IsWater())
		n++
	}, sele.Water())
	assert.Equal(Te, 4, n)
	assert.Equal(Te, 4, s.BondSet(sele.Water()).Size())
	var bb [][2]string
	s.EachBackboneBond(func(b *molstore.BondProxy) {
		bb = append(bb, [2]string{b.Atom1().QualifiedName(), b.Atom2().QualifiedName()})
	}, sele.Model(0))
	assert.Equal(Te, [][2]string{{"[ALA]1:A.CA", "[GLY]2:A.CA"}}, bb)
}

func TestEachResidueN(Te *testing.T) {
	s := newDipeptide(Te)
	var first []*molstore.ResidueProxy
	var starts []int
	s.EachResidueN(3, func(w []*molstore.ResidueProxy) {
		require.Len(Te, w, 3)
		if first == nil {
			first = append(first, w...)
		}
		for j := range w {
			assert.Same(Te, first[j], w[j])
			assert.Equal(Te, w[0].Index()+j, w[j].Index())
		}
		starts = append(starts, w[0].Index())
	})
	assert.Equal(Te, []int{0, 1, 2, 3, 4, 5}, starts)

	called := false
	s.EachResidueN(9, func([]*molstore.ResidueProxy) { called = true })
	assert.False(Te, called)
}

func TestNamedSelections(Te *testing.T) {
	s := newDipeptide(Te)
	require.NoError(Te, s.AddNamedSelection("ala", sele.Resname("ALA")))
	set, err := s.NamedAtomSet("ala")
	require.NoError(Te, err)
	assert.Equal(Te, 10, set.Size())

	_, err = s.NamedAtomSet("nope")
	assert.True(Te, errors.Is(err, errors.ErrUnknownSelection))

	a, _ := s.Atom(0)
	a.SetPosition(r3.Vec{X: 1, Y: 1, Z: 1})
	assert.True(Te, s.Stale())
	_, err = s.NamedAtomSet("ala")
	assert.True(Te, errors.Is(err, errors.ErrStaleSelection))

	s.Refresh()
	set, err = s.NamedAtomSet("ala")
	require.NoError(Te, err)
	assert.Equal(Te, 10, set.Size())

	assert.True(Te, s.RemoveNamedSelection("ala"))
	_, err = s.NamedAtomSet("ala")
	assert.True(Te, errors.Is(err, errors.ErrUnknownSelection))
}

func TestBoundingBoxStaleUntilRefresh(Te *testing.T) {
	s := newDipeptide(Te)
	box := s.BoundingBox()
	assert.InDelta(Te, 70.0, box.Max.X, 1e-5)
	assert.InDelta(Te, 0.0, box.Min.X, 1e-5)
	center := s.Center()
	assert.InDelta(Te, 35.0, center.X, 1e-5)

	a, _ := s.Atom(0)
	a.SetPosition(r3.Vec{X: 100, Y: 100, Z: 100})
	assert.Equal(Te, box, s.BoundingBox())
	assert.Equal(Te, center, s.Center())

	refreshed := 0
	unsub := s.Subscribe(func() { refreshed++ })
	s.Refresh()
	assert.Equal(Te, 1, refreshed)
	assert.InDelta(Te, 100.0, s.BoundingBox().Max.X, 1e-5)
	assert.InDelta(Te, 100.0, s.BoundingBox().Max.Y, 1e-5)
	assert.InDelta(Te, 100.0, s.BoundingBox().Max.Z, 1e-5)
	assert.InDelta(Te, -0.23, s.BoundingBox().Min.Y, 1e-5)
	unsub()
	s.Refresh()
	assert.Equal(Te, 1, refreshed)
}

func TestSubscribeOrder(Te *testing.T) {
	s := newDipeptide(Te)
	var calls []int
	var unsubs []func()
	for i := 0; i < 6; i++ {
		i := i
		unsubs = append(unsubs, s.Subscribe(func() { calls = append(calls, i) }))
	}
	unsubs[2]()
	s.Refresh()
	assert.Equal(Te, []int{0, 1, 3, 4, 5}, calls)
	unsubs[0]()
	unsubs[0]()
	calls = nil
	s.Refresh()
	assert.Equal(Te, []int{1, 3, 4, 5}, calls)
}

//rowsOnly returns a structure with one water, written straight to the
//chain, residue and atom stores, without a model row.
func rowsOnly() *molstore.Structure {
	s := molstore.New("rows")
	o := s.AtomTypeMap().Add("O", "O")
	hoh := s.ResidueTypeMap().Add("HOH", []uint32{o}, true, "")
	s.ChainStore().AppendChain(molstore.ChainRow{Chainname: "W", Chainid: "W", ResidueCount: 1})
	s.ResidueStore().AppendResidue(molstore.ResidueRow{Resno: 1, ResidueTypeID: hoh, AtomCount: 1})
	s.AtomStore().AppendAtom(molstore.AtomRow{X: 1, AtomTypeID: o})
	s.Touch()
	s.Refresh()
	return s
}

func TestStoresWithoutModels(Te *testing.T) {
	s := rowsOnly()
	assert.Equal(Te, 0, s.Counts().Models)
	assert.Equal(Te, []int{0}, s.AtomSet(sele.Water()).ToIndices())
	assert.Equal(Te, []int{0}, s.ResidueSet(sele.Water()).ToIndices())
	assert.Equal(Te, []int{0}, s.ResidueSet(nil).ToIndices())
	assert.True(Te, s.ResidueSet(sele.Ion()).IsEmpty())
	var chains []string
	s.EachChain(func(c *molstore.ChainProxy) { chains = append(chains, c.Chainname()) }, sele.Water())
	assert.Equal(Te, []string{"W"}, chains)
	chains = nil
	s.EachChain(func(c *molstore.ChainProxy) { chains = append(chains, c.Chainname()) }, sele.Ion())
	assert.Empty(Te, chains)
	n := 0
	s.EachModel(func(*molstore.ModelProxy) { n++ }, sele.Water())
	assert.Equal(Te, 0, n)
}

func TestFilter(Te *testing.T) {
	s := newDipeptide(Te, molstore.WithFilter(sele.Not(sele.Water())))
	assert.Equal(Te, 2*(atomsPerModel-3), s.FullAtomSet().Size())
	assert.Equal(Te, 16, s.FullBondSet().Size())
	assert.True(Te, s.AtomSet(sele.Water()).IsEmpty())
	require.NoError(Te, s.AddNamedSelection("b", sele.Chain("B")))
	set, err := s.NamedAtomSet("b")
	require.NoError(Te, err)
	//only the ions.
	assert.Equal(Te, []int{12, 25}, set.ToIndices())
}

func TestDispose(Te *testing.T) {
	s := newDipeptide(Te)
	s.Dispose()
	assert.True(Te, s.Disposed())
	assert.Equal(Te, 0, s.Counts().Atoms)
	_, err := s.AtomData(molstore.AtomDataParams{})
	assert.True(Te, errors.Is(err, errors.ErrDisposed))
	assert.True(Te, errors.Is(s.AddNamedSelection("x", nil), errors.ErrDisposed))
}
