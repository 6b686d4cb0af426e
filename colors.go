/*
 * colors.go, part of molstore.
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

//ElementColors colors atoms by element (CPK-like colors).
type ElementColors struct{}

func (ElementColors) AtomColor(a *AtomProxy) uint32 {
	return a.AtomType().Color
}

//UniformColor gives the same color, 0xRRGGBB, to every atom.
type UniformColor uint32

func (U UniformColor) AtomColor(*AtomProxy) uint32 {
	return uint32(U)
}

//rgb splits a 0xRRGGBB color in its components, scaled to [0,1].
func rgb(c uint32) (r, g, b float32) {
	return float32((c>>16)&0xff) / 255, float32((c>>8)&0xff) / 255, float32(c&0xff) / 255
}

//RadiusFactory gives atom radii according to Type (see the Radius* constants),
//multiplied by Scale.
type RadiusFactory struct {
	Type  string
	Scale float64
	//Size is the radius for the size type.
	Size float64
}

//NewRadiusFactory returns the radius factory described by c.
func NewRadiusFactory(c Config) RadiusFactory {
	return RadiusFactory{Type: c.RadiusType, Scale: c.RadiusScale, Size: c.RadiusSize}
}

func (R RadiusFactory) AtomRadius(a *AtomProxy) float64 {
	var r float64
	switch R.Type {
	case RadiusCovalent:
		r = a.Covalent()
	case RadiusBfactor:
		r = a.Bfactor()
		if r == 0 {
			r = 1.0
		}
	case RadiusSize:
		r = R.Size
	default:
		r = a.Vdw()
	}
	return r * R.Scale
}
