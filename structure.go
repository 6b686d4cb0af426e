/*
 * structure.go, part of molstore.
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
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

//namedSelection is a cached atom set, tagged with the generation of the
//structure at the moment it was computed.
type namedSelection struct {
	sel        Selection
	set        *bitset.Bitset
	generation uint64
}

//Structure holds one or more models of a molecular system in columnar stores,
//together with the type interners, cached selections and derived geometry.
//A Structure has a single owner and is not safe for concurrent use.
//
//Every mutation done through the Structure or its proxies increases the
//generation counter. Cached named selections remember the generation they
//were computed at, and reading a stale one is an error. The atom and bond sets,
//the bounding box and the center are only updated by Refresh.
type Structure struct {
	Name string

	id      uuid.UUID
	cfg     Config
	log     *slog.Logger
	logOut  io.Writer
	metrics *Metrics
	filter  Selection

	atomStore         *AtomStore
	residueStore      *ResidueStore
	chainStore        *ChainStore
	modelStore        *ModelStore
	bondStore         *BondStore
	backboneBondStore *BondStore
	rungBondStore     *BondStore
	atomMap           *AtomTypeMap
	residueMap        *ResidueTypeMap

	atomSet *bitset.Bitset
	bondSet *bitset.Bitset
	named   map[string]*namedSelection

	bondHash      *BondHash
	bondHashBonds int

	box    r3.Box
	center r3.Vec

	generation  uint64
	refreshedAt uint64

	//in subscription order, nil once unsubscribed.
	observers []func()

	registry *Registry

	scratchAtom    *AtomProxy
	scratchResidue *ResidueProxy
	scratchChain   *ChainProxy
	scratchModel   *ModelProxy
	scratchBond    *BondProxy

	disposed bool
}

//Option changes the way New builds a Structure.
type Option func(*Structure)

//WithConfig sets the configuration. The config is not validated here.
func WithConfig(c Config) Option {
	return func(S *Structure) { S.cfg = c }
}

//WithLogger sets the logger. Without one, New logs as text to stderr, at the
//level given by Config.LogLevel.
func WithLogger(l *slog.Logger) Option {
	return func(S *Structure) { S.log = l }
}

//WithLogOutput sends the text log built by New to w instead of stderr.
//It has no effect together with WithLogger.
func WithLogOutput(w io.Writer) Option {
	return func(S *Structure) { S.logOut = w }
}

//WithMetrics makes the structure report to m.
func WithMetrics(m *Metrics) Option {
	return func(S *Structure) { S.metrics = m }
}

//WithFilter restricts the atom set of the structure, and every selection
//and iteration on it, to the atoms selected by f.
func WithFilter(f Selection) Option {
	return func(S *Structure) { S.filter = f }
}

//WithRegistry registers the structure in r once it is created.
func WithRegistry(r *Registry) Option {
	return func(S *Structure) { S.registry = r }
}

//New returns an empty structure.
func New(name string, opts ...Option) *Structure {
	S := &Structure{
		Name:  name,
		id:    uuid.New(),
		cfg:   DefaultConfig(),
		named: make(map[string]*namedSelection),
	}
	for _, o := range opts {
		o(S)
	}
	if S.log == nil {
		if S.logOut == nil {
			S.logOut = os.Stderr
		}
		S.log = slog.New(slog.NewTextHandler(S.logOut, &slog.HandlerOptions{Level: S.cfg.Level()}))
	}
	S.log = S.log.With("structure", name)
	c := S.cfg
	S.atomStore = NewAtomStore(c.AtomCapacity)
	S.residueStore = NewResidueStore(c.ResidueCapacity)
	S.chainStore = NewChainStore(c.ChainCapacity)
	S.modelStore = NewModelStore(c.ModelCapacity)
	S.bondStore = NewBondStore(c.BondCapacity)
	S.backboneBondStore = NewBondStore(c.BondCapacity)
	S.rungBondStore = NewBondStore(c.BondCapacity)
	S.atomMap = NewAtomTypeMap()
	S.residueMap = NewResidueTypeMap(S.atomMap)
	S.atomSet = bitset.New(0)
	S.bondSet = bitset.New(0)
	if r := S.registry; r != nil {
		S.registry = nil
		r.Register(S)
	}
	return S
}

//ID returns the unique id of the structure.
func (S *Structure) ID() uuid.UUID { return S.id }

func (S *Structure) Config() Config       { return S.cfg }
func (S *Structure) Logger() *slog.Logger { return S.log }
func (S *Structure) Filter() Selection    { return S.filter }

func (S *Structure) AtomStore() *AtomStore           { return S.atomStore }
func (S *Structure) ResidueStore() *ResidueStore     { return S.residueStore }
func (S *Structure) ChainStore() *ChainStore         { return S.chainStore }
func (S *Structure) ModelStore() *ModelStore         { return S.modelStore }
func (S *Structure) BondStore() *BondStore           { return S.bondStore }
func (S *Structure) BackboneBondStore() *BondStore   { return S.backboneBondStore }
func (S *Structure) RungBondStore() *BondStore       { return S.rungBondStore }
func (S *Structure) AtomTypeMap() *AtomTypeMap       { return S.atomMap }
func (S *Structure) ResidueTypeMap() *ResidueTypeMap { return S.residueMap }

//touch records a mutation.
func (S *Structure) touch() {
	S.generation++
}

//Touch records a mutation done directly on the stores.
func (S *Structure) Touch() {
	S.touch()
}

//Generation returns the mutation counter of the structure.
func (S *Structure) Generation() uint64 {
	return S.generation
}

//Stale is true if the structure was mutated after the last Refresh.
func (S *Structure) Stale() bool {
	return S.generation != S.refreshedAt
}

/*****Refresh and selections***/

//Refresh recomputes everything derived from the stores: the atom and bond sets,
//the named selections, the bond hash, the bounding box and the center. Then it
//notifies the observers.
func (S *Structure) Refresh() {
	start := time.Now()
	//a
	old := S.named
	S.named = make(map[string]*namedSelection, len(old))
	//b
	S.atomSet = S.computeAtomSet(S.filter)
	S.bondSet = S.bondSetFor(S.atomSet)
	S.rebuildBondHash()
	//c
	for name, ns := range old {
		set := S.computeAtomSet(ns.sel)
		if err := set.Intersect(S.atomSet); err != nil {
			//both sets come from the same atom count.
			panic(err)
		}
		S.named[name] = &namedSelection{sel: ns.sel, set: set, generation: S.generation}
	}
	//d
	S.box, S.center = S.boundingBox(S.atomSet)
	S.refreshedAt = S.generation
	if S.registry != nil {
		if err := S.registry.Update(S); err != nil {
			S.log.Warn("registry update failed", "err", err)
		}
	}
	S.metrics.observeRefresh(start, S.atomSet.Size(), S.bondSet.Size())
	S.log.Debug("refreshed", "atoms", S.atomSet.Size(), "bonds", S.bondSet.Size(),
		"named", len(S.named), "generation", S.generation)
	//e
	for _, fn := range S.observers {
		if fn != nil {
			fn()
		}
	}
}

//Subscribe registers fn to be called after each Refresh. Observers are called
//in the order they subscribed. The returned function removes fn.
func (S *Structure) Subscribe(fn func()) func() {
	id := len(S.observers)
	S.observers = append(S.observers, fn)
	return func() {
		if id < len(S.observers) {
			S.observers[id] = nil
		}
	}
}

//effective combines sel with the filter of the structure. nil means every atom.
func (S *Structure) effective(sel Selection) Selection {
	switch {
	case S.filter == nil:
		return sel
	case sel == nil:
		return S.filter
	}
	return and2{S.filter, sel}
}

//computeAtomSet tests sel on every atom, without the filter.
func (S *Structure) computeAtomSet(sel Selection) *bitset.Bitset {
	n := S.atomStore.Count()
	if sel == nil {
		return bitset.NewFull(n)
	}
	set := bitset.New(n)
	S.eachAtomIn(sel, func(ap *AtomProxy) { set.AddUnsafe(ap.index) })
	return set
}

//bondSetFor returns the bonds with both atoms in atoms.
func (S *Structure) bondSetFor(atoms *bitset.Bitset) *bitset.Bitset {
	bs := S.bondStore
	n := bs.Count()
	set := bitset.New(n)
	for i := 0; i < n; i++ {
		if atoms.Has(bs.AtomIndex1(i)) && atoms.Has(bs.AtomIndex2(i)) {
			set.AddUnsafe(i)
		}
	}
	return set
}

//AtomSet returns a new set with the atoms selected by sel (all if nil) that
//pass the filter of the structure. It is computed from the current data.
func (S *Structure) AtomSet(sel Selection) *bitset.Bitset {
	return S.computeAtomSet(S.effective(sel))
}

//BondSet returns a new set with the bonds that have both atoms in AtomSet(sel).
func (S *Structure) BondSet(sel Selection) *bitset.Bitset {
	return S.bondSetFor(S.AtomSet(sel))
}

//ResidueSet returns a new set with the residues with at least one atom in AtomSet(sel).
func (S *Structure) ResidueSet(sel Selection) *bitset.Bitset {
	set := bitset.New(S.residueStore.Count())
	S.EachResidue(func(rp *ResidueProxy) { set.AddUnsafe(rp.index) }, sel)
	return set
}

//FullAtomSet returns the atom set computed at the last Refresh. It must not be modified.
func (S *Structure) FullAtomSet() *bitset.Bitset { return S.atomSet }

//FullBondSet returns the bond set computed at the last Refresh. It must not be modified.
func (S *Structure) FullBondSet() *bitset.Bitset { return S.bondSet }

//AddNamedSelection computes sel and caches the result under name,
//replacing any previous selection with that name.
func (S *Structure) AddNamedSelection(name string, sel Selection) error {
	if S.disposed {
		return errors.New(errors.ErrDisposed, "structure disposed")
	}
	set := S.computeAtomSet(sel)
	if err := set.Intersect(S.computeAtomSet(S.filter)); err != nil {
		return errors.Wrapf(err, "selection %q", name)
	}
	S.named[name] = &namedSelection{sel: sel, set: set, generation: S.generation}
	return nil
}

//RemoveNamedSelection drops a cached selection. It reports whether it existed.
func (S *Structure) RemoveNamedSelection(name string) bool {
	_, ok := S.named[name]
	delete(S.named, name)
	return ok
}

//NamedAtomSet returns a copy of the cached set for name. It fails with
//errors.ErrStaleSelection if the structure changed since the set was computed,
//and with errors.ErrUnknownSelection if there is no such selection.
func (S *Structure) NamedAtomSet(name string) (*bitset.Bitset, error) {
	ns, ok := S.named[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownSelection, "no selection named %q", name)
	}
	if ns.generation != S.generation {
		return nil, errors.Newf(errors.ErrStaleSelection, "selection %q computed at generation %d, structure is at %d", name, ns.generation, S.generation)
	}
	return ns.set.Clone(), nil
}

//NamedSelections returns the names of the cached selections.
func (S *Structure) NamedSelections() []string {
	ret := make([]string, 0, len(S.named))
	for k := range S.named {
		ret = append(ret, k)
	}
	return ret
}

/*****Geometry***/

func (S *Structure) boundingBox(set *bitset.Bitset) (r3.Box, r3.Vec) {
	if set.IsEmpty() {
		return r3.Box{}, r3.Vec{}
	}
	inf := math.Inf(1)
	box := r3.Box{Min: r3.Vec{X: inf, Y: inf, Z: inf}, Max: r3.Vec{X: -inf, Y: -inf, Z: -inf}}
	st := S.atomStore
	set.ForEach(func(i, _ int) {
		x, y, z := float64(st.X(i)), float64(st.Y(i)), float64(st.Z(i))
		box.Min.X = math.Min(box.Min.X, x)
		box.Min.Y = math.Min(box.Min.Y, y)
		box.Min.Z = math.Min(box.Min.Z, z)
		box.Max.X = math.Max(box.Max.X, x)
		box.Max.Y = math.Max(box.Max.Y, y)
		box.Max.Z = math.Max(box.Max.Z, z)
	})
	return box, r3.Scale(0.5, r3.Add(box.Min, box.Max))
}

//BoundingBox returns the box computed at the last Refresh.
func (S *Structure) BoundingBox() r3.Box { return S.box }

//Center returns the center of the box computed at the last Refresh.
func (S *Structure) Center() r3.Vec { return S.center }

//BondHash returns the atom to bond index of the structure, rebuilding it if
//atoms or bonds were added since it was built.
func (S *Structure) BondHash() *BondHash {
	if S.bondHash == nil || S.bondHash.Atoms() != S.atomStore.Count() || S.bondHashBonds != S.bondStore.Count() {
		S.rebuildBondHash()
	}
	return S.bondHash
}

func (S *Structure) rebuildBondHash() {
	S.bondHash = NewBondHash(S.bondStore, S.atomStore.Count())
	S.bondHashBonds = S.bondStore.Count()
}

/*****Proxies***/

//Atom returns a new proxy for atom i.
func (S *Structure) Atom(i int) (*AtomProxy, error) {
	ap := &AtomProxy{s: S}
	return ap, ap.SetIndex(i)
}

func (S *Structure) Residue(i int) (*ResidueProxy, error) {
	rp := &ResidueProxy{s: S}
	return rp, rp.SetIndex(i)
}

func (S *Structure) Chain(i int) (*ChainProxy, error) {
	cp := &ChainProxy{s: S}
	return cp, cp.SetIndex(i)
}

func (S *Structure) Model(i int) (*ModelProxy, error) {
	mp := &ModelProxy{s: S}
	return mp, mp.SetIndex(i)
}

//Bond returns a new proxy for bond i of the main bond store.
func (S *Structure) Bond(i int) (*BondProxy, error) {
	bp := &BondProxy{s: S, store: S.bondStore}
	return bp, bp.SetIndex(i)
}

/**Scratch proxies: The Scratch* methods return a proxy owned by the structure,
 * moved to the requested index. There is one per kind, so the proxy returned by one
 * call is moved by the next call for the same kind. They are meant for short lookups
 * and must not be kept. Use the fresh versions when in doubt**/

func (S *Structure) ScratchAtom(i int) (*AtomProxy, error) {
	if S.scratchAtom == nil {
		S.scratchAtom = &AtomProxy{s: S}
	}
	return S.scratchAtom, S.scratchAtom.SetIndex(i)
}

func (S *Structure) ScratchResidue(i int) (*ResidueProxy, error) {
	if S.scratchResidue == nil {
		S.scratchResidue = &ResidueProxy{s: S}
	}
	return S.scratchResidue, S.scratchResidue.SetIndex(i)
}

func (S *Structure) ScratchChain(i int) (*ChainProxy, error) {
	if S.scratchChain == nil {
		S.scratchChain = &ChainProxy{s: S}
	}
	return S.scratchChain, S.scratchChain.SetIndex(i)
}

func (S *Structure) ScratchModel(i int) (*ModelProxy, error) {
	if S.scratchModel == nil {
		S.scratchModel = &ModelProxy{s: S}
	}
	return S.scratchModel, S.scratchModel.SetIndex(i)
}

func (S *Structure) ScratchBond(i int) (*BondProxy, error) {
	if S.scratchBond == nil {
		S.scratchBond = &BondProxy{s: S, store: S.bondStore}
	}
	return S.scratchBond, S.scratchBond.SetIndex(i)
}

/*****Iteration***/

//eachAtomIn calls fn for each atom passing sel, which must not be nil.
//Models are skipped when sel implements ModelOnlyTester and rejects them.
func (S *Structure) eachAtomIn(sel Selection, fn func(*AtomProxy)) {
	ap := &AtomProxy{s: S}
	mt, ok := sel.(ModelOnlyTester)
	if !ok || S.modelStore.Count() == 0 {
		for i := 0; i < S.atomStore.Count(); i++ {
			ap.index = i
			if sel.Test(ap) {
				fn(ap)
			}
		}
		return
	}
	mp := &ModelProxy{s: S}
	for m := 0; m < S.modelStore.Count(); m++ {
		mp.index = m
		if !mt.ModelOnlyTest(mp) {
			continue
		}
		start := mp.AtomOffset()
		end := start + mp.AtomCount()
		for i := start; i < end; i++ {
			ap.index = i
			if sel.Test(ap) {
				fn(ap)
			}
		}
	}
}

//anyAtom is true if some atom in [start,end) passes sel.
func (S *Structure) anyAtom(sel Selection, ap *AtomProxy, start, end int) bool {
	for i := start; i < end; i++ {
		ap.index = i
		if sel.Test(ap) {
			return true
		}
	}
	return false
}

//modelPasses is false only if sel can reject the whole model.
func modelPasses(sel Selection, mp *ModelProxy) bool {
	if mt, ok := sel.(ModelOnlyTester); ok {
		return mt.ModelOnlyTest(mp)
	}
	return true
}

//EachAtom calls fn for each atom selected by sel (nil selects all) and the
//filter, in ascending index order. The proxy is reused between calls, so it
//is only valid during the call. Use Clone to keep it.
func (S *Structure) EachAtom(fn func(*AtomProxy), sel Selection) {
	sel = S.effective(sel)
	if sel == nil {
		ap := &AtomProxy{s: S}
		for i := 0; i < S.atomStore.Count(); i++ {
			ap.index = i
			fn(ap)
		}
		return
	}
	S.eachAtomIn(sel, fn)
}

//EachResidue calls fn for each residue with at least one atom selected by sel.
func (S *Structure) EachResidue(fn func(*ResidueProxy), sel Selection) {
	sel = S.effective(sel)
	rp := &ResidueProxy{s: S}
	if sel == nil {
		for i := 0; i < S.residueStore.Count(); i++ {
			rp.index = i
			fn(rp)
		}
		return
	}
	ap := &AtomProxy{s: S}
	visit := func(start, end int) {
		for i := start; i < end; i++ {
			rp.index = i
			o := rp.AtomOffset()
			if S.anyAtom(sel, ap, o, o+rp.AtomCount()) {
				fn(rp)
			}
		}
	}
	//rows appended straight to the stores may have no model.
	if S.modelStore.Count() == 0 {
		visit(0, S.residueStore.Count())
		return
	}
	S.EachModel(func(mp *ModelProxy) {
		start := mp.ResidueOffset()
		visit(start, start+mp.ResidueCount())
	}, prefilterOnly{sel})
}

//EachChain calls fn for each chain with at least one atom selected by sel.
func (S *Structure) EachChain(fn func(*ChainProxy), sel Selection) {
	sel = S.effective(sel)
	cp := &ChainProxy{s: S}
	if sel == nil {
		for i := 0; i < S.chainStore.Count(); i++ {
			cp.index = i
			fn(cp)
		}
		return
	}
	ap := &AtomProxy{s: S}
	visit := func(start, end int) {
		for i := start; i < end; i++ {
			cp.index = i
			o := cp.AtomOffset()
			if S.anyAtom(sel, ap, o, o+cp.AtomCount()) {
				fn(cp)
			}
		}
	}
	if S.modelStore.Count() == 0 {
		visit(0, S.chainStore.Count())
		return
	}
	S.EachModel(func(mp *ModelProxy) {
		start := mp.ChainOffset()
		visit(start, start+mp.ChainCount())
	}, prefilterOnly{sel})
}

//EachModel calls fn for each model with at least one atom selected by sel.
//If sel implements ModelOnlyTester, models it rejects are not looked into.
func (S *Structure) EachModel(fn func(*ModelProxy), sel Selection) {
	mp := &ModelProxy{s: S}
	if p, ok := sel.(prefilterOnly); ok {
		for i := 0; i < S.modelStore.Count(); i++ {
			mp.index = i
			if modelPasses(p.sel, mp) {
				fn(mp)
			}
		}
		return
	}
	sel = S.effective(sel)
	ap := &AtomProxy{s: S}
	for i := 0; i < S.modelStore.Count(); i++ {
		mp.index = i
		if sel == nil {
			fn(mp)
			continue
		}
		if !modelPasses(sel, mp) {
			continue
		}
		o := mp.AtomOffset()
		if S.anyAtom(sel, ap, o, o+mp.AtomCount()) {
			fn(mp)
		}
	}
}

//EachBond calls fn for each bond with both atoms selected by sel.
func (S *Structure) EachBond(fn func(*BondProxy), sel Selection) {
	S.eachBondIn(S.bondStore, fn, sel)
}

//EachBackboneBond is EachBond on the backbone bonds.
func (S *Structure) EachBackboneBond(fn func(*BondProxy), sel Selection) {
	S.eachBondIn(S.backboneBondStore, fn, sel)
}

//EachRungBond is EachBond on the rung (base pair) bonds.
func (S *Structure) EachRungBond(fn func(*BondProxy), sel Selection) {
	S.eachBondIn(S.rungBondStore, fn, sel)
}

func (S *Structure) eachBondIn(store *BondStore, fn func(*BondProxy), sel Selection) {
	bp := &BondProxy{s: S, store: store}
	var atoms *bitset.Bitset
	if e := S.effective(sel); e != nil {
		atoms = S.computeAtomSet(e)
	}
	for i := 0; i < store.Count(); i++ {
		bp.index = i
		if atoms == nil || (atoms.Has(store.AtomIndex1(i)) && atoms.Has(store.AtomIndex2(i))) {
			fn(bp)
		}
	}
}

//EachResidueN calls fn with each window of n consecutive residues. The same
//n proxies are passed in every call, moved one residue forward each time.
//fn is never called if there are fewer than n residues.
func (S *Structure) EachResidueN(n int, fn func([]*ResidueProxy)) {
	count := S.residueStore.Count()
	if n <= 0 || count < n {
		return
	}
	window := make([]*ResidueProxy, n)
	for j := range window {
		window[j] = &ResidueProxy{s: S, index: j}
	}
	fn(window)
	for i := n; i < count; i++ {
		for _, rp := range window {
			rp.index++
		}
		fn(window)
	}
}

/*****Misc***/

//Counts summarizes the sizes of the stores.
type Counts struct {
	Atoms, Residues, Chains, Models int
	Bonds, BackboneBonds, RungBonds int
	AtomTypes, ResidueTypes         int
}

func (c Counts) String() string {
	return fmt.Sprintf("%d models, %d chains, %d residues, %d atoms, %d bonds (%d atom types, %d residue types)",
		c.Models, c.Chains, c.Residues, c.Atoms, c.Bonds, c.AtomTypes, c.ResidueTypes)
}

func (S *Structure) Counts() Counts {
	return Counts{
		Atoms:         S.atomStore.Count(),
		Residues:      S.residueStore.Count(),
		Chains:        S.chainStore.Count(),
		Models:        S.modelStore.Count(),
		Bonds:         S.bondStore.Count(),
		BackboneBonds: S.backboneBondStore.Count(),
		RungBonds:     S.rungBondStore.Count(),
		AtomTypes:     S.atomMap.Len(),
		ResidueTypes:  S.residueMap.Len(),
	}
}

//Disposed is true after Dispose.
func (S *Structure) Disposed() bool { return S.disposed }

//Dispose releases the stores and removes the structure from its registry.
//The structure is empty afterwards.
func (S *Structure) Dispose() {
	if S.disposed {
		return
	}
	if S.registry != nil {
		if err := S.registry.Unregister(S); err != nil {
			S.log.Warn("unregister failed", "err", err)
		}
	}
	S.atomStore.Dispose()
	S.residueStore.Dispose()
	S.chainStore.Dispose()
	S.modelStore.Dispose()
	S.bondStore.Dispose()
	S.backboneBondStore.Dispose()
	S.rungBondStore.Dispose()
	S.named = make(map[string]*namedSelection)
	S.atomSet = bitset.New(0)
	S.bondSet = bitset.New(0)
	S.bondHash = nil
	S.observers = nil
	S.disposed = true
	S.touch()
	S.log.Debug("disposed")
}

func (S *Structure) String() string {
	return fmt.Sprintf("Structure(%s: %s)", S.Name, S.Counts())
}

/*****Selection helpers***/

//and2 selects the atoms selected by both members.
type and2 [2]Selection

func (a and2) String() string { return "(" + a[0].String() + ") and (" + a[1].String() + ")" }

func (a and2) Test(ap *AtomProxy) bool { return a[0].Test(ap) && a[1].Test(ap) }

func (a and2) ModelOnlyTest(mp *ModelProxy) bool {
	return modelPasses(a[0], mp) && modelPasses(a[1], mp)
}

//prefilterOnly tells EachModel to apply only the model-level test of sel.
type prefilterOnly struct{ sel Selection }

func (p prefilterOnly) String() string       { return p.sel.String() }
func (p prefilterOnly) Test(*AtomProxy) bool { return true }
