/*
 * registry.go, part of molstore.
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
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/rmera/molstore/errors"
)

type registryEntry struct {
	s      *Structure
	offset int
	count  int
}

//Registry keeps track of a set of structures and gives each atom of each of
//them a global id (gid), used e.g. to identify a picked atom. Gids of a
//structure are the range [offset, offset+atoms). A Registry is not safe for
//concurrent use, and nothing in molstore needs one to work.
type Registry struct {
	log     *slog.Logger
	entries []registryEntry
	byID    map[uuid.UUID]int
	next    int
}

//NewRegistry returns an empty registry. A nil logger means slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{log: logger, byID: make(map[uuid.UUID]int)}
}

//Register adds s to the registry, with a gid range sized to its current atom count.
//Registering a structure twice is the same as calling Update.
func (R *Registry) Register(s *Structure) {
	if _, ok := R.byID[s.ID()]; ok {
		R.Update(s)
		return
	}
	n := s.atomStore.Count()
	R.entries = append(R.entries, registryEntry{s: s, offset: R.next, count: n})
	R.byID[s.ID()] = len(R.entries) - 1
	R.next += n
	s.registry = R
	R.log.Debug("structure registered", "name", s.Name, "id", s.ID(), "gidOffset", R.next-n, "atoms", n)
}

//Unregister removes s. Its gid range is not reused by later registrations.
func (R *Registry) Unregister(s *Structure) error {
	i, ok := R.byID[s.ID()]
	if !ok {
		return errors.Newf(errors.ErrNotRegistered, "structure %s (%s) is not registered", s.Name, s.ID())
	}
	R.entries = append(R.entries[:i], R.entries[i+1:]...)
	delete(R.byID, s.ID())
	for j := i; j < len(R.entries); j++ {
		R.byID[R.entries[j].s.ID()] = j
	}
	if s.registry == R {
		s.registry = nil
	}
	R.log.Debug("structure unregistered", "name", s.Name, "id", s.ID())
	return nil
}

//Update makes the gid range of s match its current atom count. If the
//structure grew, it gets a new range at the end.
func (R *Registry) Update(s *Structure) error {
	i, ok := R.byID[s.ID()]
	if !ok {
		return errors.Newf(errors.ErrNotRegistered, "structure %s (%s) is not registered", s.Name, s.ID())
	}
	n := s.atomStore.Count()
	e := &R.entries[i]
	if n > e.count {
		e.offset = R.next
		R.next += n
		sort.SliceStable(R.entries, func(a, b int) bool { return R.entries[a].offset < R.entries[b].offset })
		for j, en := range R.entries {
			R.byID[en.s.ID()] = j
		}
		e = &R.entries[R.byID[s.ID()]]
	}
	e.count = n
	return nil
}

//GID returns the global id of atom index of s.
func (R *Registry) GID(s *Structure, index int) (uint32, error) {
	i, ok := R.byID[s.ID()]
	if !ok {
		return 0, errors.Newf(errors.ErrNotRegistered, "structure %s (%s) is not registered", s.Name, s.ID())
	}
	e := R.entries[i]
	if index < 0 || index >= e.count {
		return 0, errors.IndexOutOfRange("atom", index, e.count)
	}
	return uint32(e.offset + index), nil
}

//Lookup returns the structure and atom index for a gid.
func (R *Registry) Lookup(gid uint32) (*Structure, int, bool) {
	g := int(gid)
	//entries are sorted by offset
	i := sort.Search(len(R.entries), func(i int) bool { return R.entries[i].offset+R.entries[i].count > g })
	if i == len(R.entries) {
		return nil, 0, false
	}
	e := R.entries[i]
	if g < e.offset {
		return nil, 0, false
	}
	return e.s, g - e.offset, true
}

//Len returns the number of registered structures.
func (R *Registry) Len() int {
	return len(R.entries)
}
