/*
 * arrow.go, part of molstore.
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
	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/rmera/molstore/errors"
)

//ArrowRecord puts the arrays of d in an Arrow record, one column per value:
//x, y, z, r, g, b, radius, picking and index, for the channels present in d.
//If d has the index channel, element and atomname columns are added too.
//A nil mem means a Go allocator. The caller must Release the record.
func (S *Structure) ArrowRecord(d *AtomData, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	n := d.Len()
	var fields []arrow.Field
	var fill []func(b array.Builder)
	f32 := func(name string, vals []float32) {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float32})
		fill = append(fill, func(b array.Builder) { b.(*array.Float32Builder).AppendValues(vals, nil) })
	}
	u32 := func(name string, vals []uint32) {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Uint32})
		fill = append(fill, func(b array.Builder) { b.(*array.Uint32Builder).AppendValues(vals, nil) })
	}
	str := func(name string, vals []string) {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.BinaryTypes.String})
		fill = append(fill, func(b array.Builder) { b.(*array.StringBuilder).AppendValues(vals, nil) })
	}
	//splits a vector channel in its 3 components.
	split := func(v []float32) (a, b, c []float32) {
		a, b, c = make([]float32, n), make([]float32, n), make([]float32, n)
		for k := 0; k < n; k++ {
			a[k], b[k], c[k] = v[3*k], v[3*k+1], v[3*k+2]
		}
		return
	}
	for _, ch := range [][]float32{d.Position, d.Color} {
		if ch != nil && len(ch) != 3*n {
			return nil, errors.Newf(errors.ErrCapacityMismatch, "vector channel of length %d for %d atoms", len(ch), n)
		}
	}
	if d.Position != nil {
		x, y, z := split(d.Position)
		f32("x", x)
		f32("y", y)
		f32("z", z)
	}
	if d.Color != nil {
		r, g, b := split(d.Color)
		f32("r", r)
		f32("g", g)
		f32("b", b)
	}
	if d.Radius != nil {
		f32("radius", d.Radius)
	}
	if d.Picking != nil {
		u32("picking", d.Picking)
	}
	if d.Index != nil {
		u32("index", d.Index)
		elements := make([]string, len(d.Index))
		names := make([]string, len(d.Index))
		ap := &AtomProxy{s: S}
		for k, i := range d.Index {
			if err := ap.SetIndex(int(i)); err != nil {
				return nil, errors.Wrap(err, "ArrowRecord")
			}
			elements[k] = ap.Element()
			names[k] = ap.Atomname()
		}
		str("element", elements)
		str("atomname", names)
	}
	schema := arrow.NewSchema(fields, nil)
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	for i, f := range fill {
		f(b.Field(i))
	}
	return b.NewRecord(), nil
}
