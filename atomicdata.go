/*
 * atomicdata.go, part of molstore.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"strings"
	"unicode"
)

const (
	defaultCovalent = 1.0
	defaultVdw      = 2.0
	defaultColor    = 0xFF1493
)

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius, the extra bonds will get eliminated later.
	"D":  0.4,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
	"B":  0.84,
	"Ni": 1.24,
	"Li": 1.28,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"D":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
	"B":  1.92,
	"Ni": 1.63,
	"Li": 1.82,
}

var symbolNumber = map[string]int{
	"H": 1, "D": 1, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9,
	"Na": 11, "Mg": 12, "Si": 14, "P": 15, "S": 16, "Cl": 17, "K": 19,
	"Ca": 20, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29,
	"Zn": 30, "Se": 34, "Br": 35, "I": 53,
}

//Jmol CPK colors.
var symbolColor = map[string]uint32{
	"H":  0xFFFFFF,
	"D":  0xFFFFC0,
	"C":  0x909090,
	"N":  0x3050F8,
	"O":  0xFF0D0D,
	"F":  0x90E050,
	"P":  0xFF8000,
	"S":  0xFFFF30,
	"Cl": 0x1FF01F,
	"Br": 0xA62929,
	"I":  0x940094,
	"Se": 0xFFA100,
	"Na": 0xAB5CF2,
	"K":  0x8F40D4,
	"Mg": 0x8AFF00,
	"Ca": 0x3DFF00,
	"Fe": 0xE06633,
	"Zn": 0x7D80B0,
	"Cu": 0xC88033,
	"Mn": 0x9C7AC7,
	"Co": 0xF090A0,
	"Ni": 0x50D050,
	"Cr": 0x8A99C7,
	"Si": 0xF0C8A0,
	"B":  0xFFB5B5,
	"Be": 0xC2FF00,
	"Li": 0xCC80FF,
}

//A map for checking that atoms don't
//have too many bonds. A value of 0 means
//undefined, i.e. that this atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"D":  1,
	"C":  4,
	"O":  2,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//two-letter elements that are taken from an atom name without any residue context.
//CA and NA are not here, they are carbon alpha and a nitrogen far more often than ions.
var twoLetterNames = []string{"FE", "ZN", "MG", "MN", "CU", "CO", "SE", "BR", "CL", "NI", "LI", "CR", "SI", "BE"}

//NormalizeElement returns the element symbol with the first letter in upper
//case and the rest in lower case ("SE" -> "Se").
func NormalizeElement(e string) string {
	e = strings.TrimSpace(e)
	if e == "" {
		return ""
	}
	return strings.ToUpper(e[:1]) + strings.ToLower(e[1:])
}

//GuessElement returns an element symbol for an atom name, as found
//in PDB files. resname is used to detect single-atom ions like CA or NA.
//It returns an empty string if nothing sensible can be guessed.
func GuessElement(atomname, resname string) string {
	name := strings.ToUpper(strings.TrimSpace(atomname))
	letters := strings.TrimLeftFunc(name, unicode.IsDigit)
	end := strings.IndexFunc(letters, func(r rune) bool { return !unicode.IsLetter(r) })
	if end >= 0 {
		letters = letters[:end]
	}
	if letters == "" {
		return ""
	}
	if len(letters) >= 2 {
		two := letters[:2]
		if name == strings.ToUpper(strings.TrimSpace(resname)) && len(name) == 2 {
			if _, ok := symbolCovrad[NormalizeElement(two)]; ok {
				return NormalizeElement(two)
			}
		}
		if name == two && isInString(twoLetterNames, two) {
			return NormalizeElement(two)
		}
	}
	one := letters[:1]
	if _, ok := symbolCovrad[one]; ok {
		return one
	}
	return ""
}

func covalentRadius(element string) float64 {
	if r, ok := symbolCovrad[element]; ok {
		return r
	}
	return defaultCovalent
}

func vdwRadius(element string) float64 {
	if r, ok := symbolVdwrad[element]; ok {
		return r
	}
	return defaultVdw
}

func elementColor(element string) uint32 {
	if c, ok := symbolColor[element]; ok {
		return c
	}
	return defaultColor
}
