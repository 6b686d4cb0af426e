/*
 * matrix.go, part of molstore.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood that a "vector"
//is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("molstore/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("molstore/v3: Dimension mismatch")
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		//gonum doesn't allow empty Dense matrices.
		return &Matrix{&mat.Dense{}}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, fmt.Errorf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols)
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the given vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns the ith vector as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//SetVec puts v in the ith vector of F.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

//SomeVecs puts in the receiver the vectors of A with index in clist,
//in the same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetVec(key, A.Vec(val))
	}
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	n := F.NVecs()
	if n == 0 {
		return r3.Vec{}
	}
	var c r3.Vec
	for i := 0; i < n; i++ {
		c = r3.Add(c, F.Vec(i))
	}
	return r3.Scale(1/float64(n), c)
}

//Extent returns the smallest axis-aligned box containing all the vectors in F.
func (F *Matrix) Extent() r3.Box {
	n := F.NVecs()
	if n == 0 {
		return r3.Box{}
	}
	col := make([]float64, n)
	var min, max [3]float64
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F.Dense)
		min[j] = floats.Min(col)
		max[j] = floats.Max(col)
	}
	return r3.Box{
		Min: r3.Vec{X: min[0], Y: min[1], Z: min[2]},
		Max: r3.Vec{X: max[0], Y: max[1], Z: max[2]},
	}
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "[")
	for i := 0; i < r; i++ {
		p := F.Vec(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", p.X, p.Y, p.Z))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}
