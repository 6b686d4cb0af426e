/*
 * registry_test.go, part of molstore.
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
	"github.com/rmera/molstore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(Te *testing.T) {
	r := molstore.NewRegistry(nil)
	s1 := newDipeptide(Te, molstore.WithRegistry(r))
	s2 := newDipeptide(Te, molstore.WithRegistry(r))
	require.Equal(Te, 2, r.Len())
	assert.NotEqual(Te, s1.ID(), s2.ID())

	g, err := r.GID(s1, 5)
	require.NoError(Te, err)
	assert.Equal(Te, uint32(5), g)
	g, err = r.GID(s2, 0)
	require.NoError(Te, err)
	assert.Equal(Te, uint32(2*atomsPerModel), g)
	_, err = r.GID(s2, 2*atomsPerModel)
	assert.True(Te, errors.Is(err, errors.ErrIndexOutOfRange))

	s, i, ok := r.Lookup(2*atomsPerModel + 3)
	require.True(Te, ok)
	assert.Same(Te, s2, s)
	assert.Equal(Te, 3, i)
	_, _, ok = r.Lookup(4 * atomsPerModel)
	assert.False(Te, ok)

	//picking ids are global ids.
	d, err := s2.AtomData(molstore.AtomDataParams{What: molstore.PickingChannel})
	require.NoError(Te, err)
	assert.Equal(Te, uint32(2*atomsPerModel), d.Picking[0])
	assert.Equal(Te, uint32(4*atomsPerModel-1), d.Picking[2*atomsPerModel-1])

	s1.Dispose()
	assert.Equal(Te, 1, r.Len())
	_, _, ok = r.Lookup(3)
	assert.False(Te, ok)
	_, err = r.GID(s1, 0)
	assert.True(Te, errors.Is(err, errors.ErrNotRegistered))
	//the range of s1 is not reused.
	s3 := newDipeptide(Te, molstore.WithRegistry(r))
	g, err = r.GID(s3, 0)
	require.NoError(Te, err)
	assert.Equal(Te, uint32(4*atomsPerModel), g)

	require.NoError(Te, r.Unregister(s2))
	assert.True(Te, errors.Is(r.Unregister(s2), errors.ErrNotRegistered))
	d, err = s2.AtomData(molstore.AtomDataParams{What: molstore.PickingChannel})
	require.NoError(Te, err)
	assert.Equal(Te, uint32(0), d.Picking[0])
}

func TestRegistryGrowth(Te *testing.T) {
	r := molstore.NewRegistry(nil)
	s := molstore.New("growing", molstore.WithRegistry(r))
	b := molstore.NewBuilder(s)
	addResidues(b, 1, 0, dipeptide[:1])
	s.Refresh()
	other := newDipeptide(Te, molstore.WithRegistry(r))
	g, _ := r.GID(other, 0)
	assert.Equal(Te, uint32(5), g)

	addResidues(b, 1, 0, dipeptide[1:2])
	_, err := b.Finalize()
	require.NoError(Te, err)
	//s grew, so it was moved after other.
	g, err = r.GID(s, 0)
	require.NoError(Te, err)
	assert.Equal(Te, uint32(5+2*atomsPerModel), g)
	found, i, ok := r.Lookup(5 + 2*atomsPerModel + 8)
	require.True(Te, ok)
	assert.Same(Te, s, found)
	assert.Equal(Te, 8, i)
	found, _, ok = r.Lookup(5)
	require.True(Te, ok)
	assert.Same(Te, other, found)
}
