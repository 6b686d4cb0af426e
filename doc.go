/*
 * doc.go, part of molstore.
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

/*Package molstore is an in-memory, columnar store for molecular structures.
It keeps models, chains, residues, atoms and bonds in struct-of-arrays tables,
and gives access to them through lightweight proxies.



	**molstore Capabilities**


    Columnar stores for atoms, residues, chains, models and bonds, which
	grow as rows are appended.

    Interning of atom types (element and name) and residue types (name,
	hetero flag and atom composition), so data shared by many atoms or
	residues is kept only once, and classified only once.

    Proxies (AtomProxy, ResidueProxy...) that read and write the stores
	through an index, and resolve the parent residue, chain and model on
	every call.

    Selections as bitsets, with set algebra, named selections cached per
	structure and checked for staleness.

    Iteration over atoms, residues, chains, models and bonds, with whole
	models skipped when the selection allows it.

    Bond perception from coordinates, per residue type, with polymer
	links, backbone and base-pair (rung) bonds.

    Extraction of flat float32 arrays (positions, colors, radii, picking
	ids) for atoms and bonds, with double and triple bonds drawn as
	parallel segments. The arrays can be exported as Arrow records.

    Spatial queries (k-d tree), connected components of the bond graph and
	coordinate matrices for analysis code.

molstore does not parse files or selection strings. Parsers feed a Builder,
and selection compilers provide values implementing Selection.

A Structure is not safe for concurrent use. Mutations done through the
Structure and its proxies are counted, but derived data (the atom and bond
sets, the bounding box) is only updated by Refresh.

*/
package molstore
