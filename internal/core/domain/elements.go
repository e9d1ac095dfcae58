package domain

// elementSymbols maps atomic number to the standard element symbol.
// Index 0 is the bare neutron, which the reactant grammar treats as an
// element with no protons.
var elementSymbols = [...]string{
	"n", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = make(map[string]int, len(elementSymbols))

func init() {
	for z, symbol := range elementSymbols {
		atomicNumbers[symbol] = z
	}
}

// ElementSymbol returns the symbol for an atomic number.
func ElementSymbol(z int) (string, bool) {
	if z < 0 || z >= len(elementSymbols) {
		return "", false
	}
	return elementSymbols[z], true
}

// AtomicNumberOf resolves an element symbol to its atomic number.
func AtomicNumberOf(symbol string) (int, bool) {
	z, ok := atomicNumbers[symbol]
	return z, ok
}
