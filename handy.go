/*
 * handy.go, part of molstore.
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

//Some internal convenience functions.

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//isInInt is the same as isInString, but with ints.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//grow returns a slice of length n with the first elements of s copied in.
func grow[T any](s []T, n int) []T {
	ns := make([]T, n)
	copy(ns, s)
	return ns
}

//nextCapacity is the doubling policy used by every store.
func nextCapacity(current, needed int) int {
	c := current
	if c < 16 {
		c = 16
	}
	for c < needed {
		c *= 2
	}
	return c
}

//packString4 packs up to 4 bytes of s into an uint32, the first byte
//in the lowest position. Longer strings are truncated.
func packString4(s string) uint32 {
	var p uint32
	for i := 0; i < len(s) && i < 4; i++ {
		p |= uint32(s[i]) << (8 * uint(i))
	}
	return p
}

func unpackString4(p uint32) string {
	b := make([]byte, 0, 4)
	for i := 0; i < 4; i++ {
		c := byte(p >> (8 * uint(i)))
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

//EncodeChar stores a single character as a small integer code.
//The empty string/zero rune is the null code 0.
func EncodeChar(r rune) uint8 {
	if r < 0 || r > 255 {
		return '?'
	}
	return uint8(r)
}

//DecodeChar returns the character for a code, or "" for the null code.
func DecodeChar(c uint8) string {
	if c == 0 {
		return ""
	}
	return string(rune(c))
}
