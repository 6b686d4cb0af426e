/*
 * bondgraph.go, part of molstore.
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

	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//BondGraph returns an undirected graph with a node for each atom in set
//(all atoms if nil) and an edge for each bond between two of them. Node ids
//are atom indexes.
func (S *Structure) BondGraph(set *bitset.Bitset) (*simple.UndirectedGraph, error) {
	n := S.atomStore.Count()
	if set == nil {
		set = bitset.NewFull(n)
	}
	if set.Len() != n {
		return nil, errors.Newf(errors.ErrCapacityMismatch, "atom set of capacity %d for %d atoms", set.Len(), n)
	}
	g := simple.NewUndirectedGraph()
	set.ForEach(func(i, _ int) { g.AddNode(simple.Node(i)) })
	bs := S.bondStore
	for i := 0; i < bs.Count(); i++ {
		a1, a2 := bs.AtomIndex1(i), bs.AtomIndex2(i)
		if a1 == a2 || !set.Has(a1) || !set.Has(a2) {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(a1), T: simple.Node(a2)})
	}
	return g, nil
}

//Molecules returns the connected components of the bond graph of the atoms in
//set (all atoms if nil). Each component is a sorted list of atom indexes, and
//components are sorted by their first atom.
func (S *Structure) Molecules(set *bitset.Bitset) ([][]int, error) {
	g, err := S.BondGraph(set)
	if err != nil {
		return nil, errors.Wrap(err, "Molecules")
	}
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		mol := make([]int, len(c))
		for i, node := range c {
			mol[i] = int(node.ID())
		}
		sort.Ints(mol)
		ret = append(ret, mol)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	S.log.Debug("molecules", "count", len(ret))
	return ret, nil
}
