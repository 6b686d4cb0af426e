/*
 * sele.go, part of molstore.
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

//Package sele contains simple atom selections, to be combined with And, Or
//and Not. They are plain predicates; there is no selection language here.
package sele

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmera/molstore"
)

//Func turns an atom predicate into a molstore.Selection.
type Func struct {
	Name string
	F    func(a *molstore.AtomProxy) bool
}

func (F Func) String() string                  { return F.Name }
func (F Func) Test(a *molstore.AtomProxy) bool { return F.F(a) }

//All selects every atom.
func All() molstore.Selection {
	return Func{"all", func(*molstore.AtomProxy) bool { return true }}
}

func set(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func name(prefix string, vals []string) string {
	return prefix + " " + strings.Join(vals, ",")
}

//Resname selects atoms in residues with any of the given names.
func Resname(names ...string) molstore.Selection {
	m := set(names)
	return Func{name("resname", names), func(a *molstore.AtomProxy) bool { return m[a.Resname()] }}
}

//Chain selects atoms in chains with any of the given names.
func Chain(names ...string) molstore.Selection {
	m := set(names)
	return Func{name("chain", names), func(a *molstore.AtomProxy) bool { return m[a.Chainname()] }}
}

//Element selects atoms of any of the given elements.
func Element(elements ...string) molstore.Selection {
	m := set(elements)
	return Func{name("element", elements), func(a *molstore.AtomProxy) bool { return m[a.Element()] }}
}

//Atomname selects atoms with any of the given names.
func Atomname(names ...string) molstore.Selection {
	m := set(names)
	return Func{name("atomname", names), func(a *molstore.AtomProxy) bool { return m[a.Atomname()] }}
}

//Resno selects atoms in residues with numbers in [from, to].
func Resno(from, to int) molstore.Selection {
	return Func{fmt.Sprintf("resno %d-%d", from, to), func(a *molstore.AtomProxy) bool {
		r := a.Resno()
		return r >= from && r <= to
	}}
}

func Backbone() molstore.Selection {
	return Func{"backbone", (*molstore.AtomProxy).IsBackbone}
}

func Trace() molstore.Selection {
	return Func{"trace", (*molstore.AtomProxy).IsTrace}
}

func Protein() molstore.Selection {
	return Func{"protein", (*molstore.AtomProxy).IsProtein}
}

func Nucleic() molstore.Selection {
	return Func{"nucleic", (*molstore.AtomProxy).IsNucleic}
}

func Water() molstore.Selection {
	return Func{"water", (*molstore.AtomProxy).IsWater}
}

func Ion() molstore.Selection {
	return Func{"ion", (*molstore.AtomProxy).IsIon}
}

func Hetero() molstore.Selection {
	return Func{"hetero", (*molstore.AtomProxy).IsHetero}
}

//model selects whole models, and can reject them without looking at their atoms.
type model struct {
	indexes map[int]bool
	str     string
}

//Model selects the atoms of the models with the given indexes.
func Model(indexes ...int) molstore.Selection {
	m := make(map[int]bool, len(indexes))
	strs := make([]string, len(indexes))
	for i, v := range indexes {
		m[v] = true
		strs[i] = fmt.Sprint(v)
	}
	return model{m, name("model", strs)}
}

func (M model) String() string                            { return M.str }
func (M model) Test(a *molstore.AtomProxy) bool           { return M.indexes[a.ModelIndex()] }
func (M model) ModelOnlyTest(m *molstore.ModelProxy) bool { return M.indexes[m.Index()] }

//Index selects the atoms with the given indexes.
func Index(indexes ...int) molstore.Selection {
	s := append([]int(nil), indexes...)
	sort.Ints(s)
	m := make(map[int]bool, len(s))
	for _, v := range s {
		m[v] = true
	}
	return Func{fmt.Sprintf("index %v", s), func(a *molstore.AtomProxy) bool { return m[a.Index()] }}
}

//combined is the result of And and Or. It can reject models if its members can.
type combined struct {
	op      string
	members []molstore.Selection
}

func (C combined) String() string {
	strs := make([]string, len(C.members))
	for i, m := range C.members {
		strs[i] = "(" + m.String() + ")"
	}
	return strings.Join(strs, " "+C.op+" ")
}

func (C combined) Test(a *molstore.AtomProxy) bool {
	for _, m := range C.members {
		if m.Test(a) == (C.op == "or") {
			return C.op == "or"
		}
	}
	return C.op == "and"
}

func modelTest(s molstore.Selection, m *molstore.ModelProxy) bool {
	if mt, ok := s.(molstore.ModelOnlyTester); ok {
		return mt.ModelOnlyTest(m)
	}
	return true
}

func (C combined) ModelOnlyTest(m *molstore.ModelProxy) bool {
	for _, s := range C.members {
		if modelTest(s, m) == (C.op == "or") {
			return C.op == "or"
		}
	}
	return C.op == "and"
}

//And selects the atoms selected by all of sels.
func And(sels ...molstore.Selection) molstore.Selection {
	return combined{"and", sels}
}

//Or selects the atoms selected by any of sels.
func Or(sels ...molstore.Selection) molstore.Selection {
	return combined{"or", sels}
}

//Not selects the atoms not selected by s.
func Not(s molstore.Selection) molstore.Selection {
	return Func{"not (" + s.String() + ")", func(a *molstore.AtomProxy) bool { return !s.Test(a) }}
}
