/*
 * residueconstants.go, part of molstore.
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

//Residue and atom names used to classify residue types.

var aminoAcids3 = []string{
	"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL",
	"SEC", "PYL", "ASX", "GLX", "UNK", "HID", "HIE", "HIP", "HSD", "HSE",
	"HSP", "CYX", "CYM", "ASH", "GLH", "LYN", "MSE",
}

var rnaBases = []string{"A", "C", "T", "G", "U", "I"}

var dnaBases = []string{"DA", "DC", "DT", "DG", "DU", "DI"}

var waterNames = []string{"SOL", "WAT", "HOH", "H2O", "W", "DOD", "D3O", "TIP", "TIP3", "TIP4", "SPC"}

var ionNames = []string{
	"118", "119", "1AL", "1CU", "2FK", "2HP", "2OF", "3CO", "3MT", "3NI",
	"3OF", "4MO", "543", "6MO", "ACT", "AG", "AL", "ALF", "ATH", "AU",
	"AU3", "AUC", "AZI", "BA", "BCT", "BEF", "BF4", "BO4", "BR", "BS3",
	"BSY", "CA", "CAC", "CD", "CD1", "CD3", "CD5", "CE", "CHT", "CL",
	"CO", "CO3", "CO5", "CON", "CR", "CS", "CSB", "CU", "CU1", "CU3",
	"CUA", "CUZ", "CYN", "DME", "DMI", "DSC", "DTI", "DY", "E4N", "EDR",
	"EMC", "ER3", "EU", "EU3", "F", "FE", "FE2", "FPO", "GA", "GD3",
	"GEP", "HAI", "HG", "HGC", "IN", "IOD", "IR", "IR3", "IRI", "IUM",
	"K", "KO4", "LA", "LCO", "LCP", "LI", "LU", "MAC", "MG", "MH2",
	"MH3", "MLI", "MMC", "MN", "MN3", "MN5", "MN6", "MO1", "MO2", "MO3",
	"MO4", "MO5", "MO6", "MOO", "MOS", "MOW", "MW1", "MW2", "MW3", "NA",
	"NA2", "NA5", "NA6", "NAO", "NAW", "NET", "NH4", "NI", "NI1", "NI2",
	"NI3", "NO2", "NO3", "NRU", "O4M", "OAA", "OC1", "OC2", "OC3", "OC4",
	"OC5", "OC6", "OC7", "OC8", "OCL", "OCM", "OCN", "OCO", "OF1", "OF2",
	"OF3", "OH", "OS", "OS4", "OXL", "PB", "PBM", "PD", "PDV", "PER",
	"PI", "PO3", "PO4", "PR", "PT", "PT4", "PTN", "RB", "RH3", "RHD",
	"RU", "SB", "SCN", "SE4", "SEK", "SM", "SMO", "SO3", "SO4", "SR",
	"T1A", "TB", "TBA", "TCN", "TEA", "TH", "THE", "TL", "TMA", "TRA",
	"UNX", "V", "VN3", "VO4", "W", "WO5", "Y1", "YB", "YB2", "YH",
	"YT3", "ZCM", "ZN", "ZN2", "ZN3", "ZNO", "ZO3",
}

var saccharideNames = []string{
	"045", "0AT", "0BD", "0MK", "0NZ", "0TS", "0V4", "0XY", "0YT", "10M",
	"147", "149", "14T", "15L", "16G", "18T", "18Y", "1AR", "1BW", "1GL",
	"AGC", "AGL", "BGC", "BMA", "FUC", "GAL", "GCS", "GLA", "GLC", "GXL",
	"MAN", "NAG", "NDG", "SIA", "XYP", "XYS", "FRU", "RIB", "LAT", "MAL",
	"SUC", "TRE", "GLO", "BDP", "NGA", "A2G",
}

//chemical component types (mmCIF _chem_comp.type) for peptides and nucleotides.
var chemCompProtein = []string{
	"D-BETA-PEPTIDE, C-GAMMA LINKING", "D-GAMMA-PEPTIDE, C-DELTA LINKING",
	"D-PEPTIDE COOH CARBOXY TERMINUS", "D-PEPTIDE NH3 AMINO TERMINUS", "D-PEPTIDE LINKING",
	"L-BETA-PEPTIDE, C-GAMMA LINKING", "L-GAMMA-PEPTIDE, C-DELTA LINKING",
	"L-PEPTIDE COOH CARBOXY TERMINUS", "L-PEPTIDE NH3 AMINO TERMINUS", "L-PEPTIDE LINKING",
	"PEPTIDE LINKING", "PEPTIDE-LIKE",
}

var chemCompRNA = []string{
	"RNA OH 3 PRIME TERMINUS", "RNA OH 5 PRIME TERMINUS", "RNA LINKING",
}

var chemCompDNA = []string{
	"DNA OH 3 PRIME TERMINUS", "DNA OH 5 PRIME TERMINUS", "DNA LINKING",
	"L-DNA LINKING", "L-RNA LINKING",
}

var proteinBackboneAtoms = []string{
	"CA", "C", "N", "O", "O1", "O2", "OC1", "OC2", "OX1", "OXT", "OT1", "OT2",
	"H", "H1", "H2", "H3", "HA", "HN", "BB",
}

var nucleicBackboneAtoms = []string{
	"P", "OP1", "OP2", "HOP2", "HOP3", "O2'", "O3'", "O4'", "O5'", "C1'", "C2'", "C3'",
	"C4'", "C5'", "H1'", "H2'", "H2''", "HO2'", "H3'", "H4'", "H5'", "H5''", "HO3'", "HO5'",
	"O2*", "O3*", "O4*", "O5*", "C1*", "C2*", "C3*", "C4*", "C5*",
}

//the atoms linking consecutive polymer residues, and the trace atoms.
var (
	proteinLinkFrom = []string{"C"}
	proteinLinkTo   = []string{"N"}
	nucleicLinkFrom = []string{"O3'", "O3*"}
	nucleicLinkTo   = []string{"P"}
	proteinTrace    = []string{"CA", "BB"}
	nucleicTrace    = []string{"C4'", "C4*"}
	cgNucleicTrace  = []string{"P", "C4'", "C4*"}
	purineRungEnd   = []string{"N1"}
	pyrimidineRung  = []string{"N3"}
)
