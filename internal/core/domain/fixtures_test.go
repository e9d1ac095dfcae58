package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testNuclide builds a table row for tests. A listed natural abundance
// marks the row stable, matching the table convention.
func testNuclide(label, level string, a, z int, massExcessKev, abundance float64, notes ...string) *Nuclide {
	return &Nuclide{
		Label:             label,
		ExcitationLevel:   level,
		MassNumber:        a,
		AtomicNumber:      z,
		MassExcessKev:     massExcessKev,
		IsotopicAbundance: abundance,
		Stable:            abundance > 0,
		Notes:             notes,
	}
}

// lightNuclides returns the hydrogen and lithium region rows used by
// the registry and reaction tests.
func lightNuclides() []*Nuclide {
	return []*Nuclide{
		testNuclide("n", GroundState, 1, 0, 8071.3171, 0, "→β-"),
		testNuclide("p", GroundState, 1, 1, 7288.97061, 99.9885),
		testNuclide("d", GroundState, 2, 1, 13135.72176, 0.0115),
		testNuclide("t", GroundState, 3, 1, 14949.80993, 0, "→β-"),
		testNuclide("3He", GroundState, 3, 2, 14931.21793, 0.000134),
		testNuclide("3Li", GroundState, 3, 3, 28670.0, 0),
		testNuclide("4H", GroundState, 4, 1, 24620.0, 0),
		testNuclide("4He", GroundState, 4, 2, 2424.91561, 99.999866),
		testNuclide("4Li", GroundState, 4, 3, 25320.0, 0),
		testNuclide("5H", GroundState, 5, 1, 32890.0, 0),
		testNuclide("5He", GroundState, 5, 2, 11231.0, 0),
		testNuclide("5Li", GroundState, 5, 3, 11680.0, 0),
		testNuclide("6He", GroundState, 6, 2, 17592.10, 0, "→β-"),
		testNuclide("6Li", GroundState, 6, 3, 14086.8789, 7.59),
		testNuclide("6Li", "i", 6, 3, 17649.7589, 0),
		testNuclide("6Be", GroundState, 6, 4, 18375.0, 0),
		testNuclide("7Li", GroundState, 7, 3, 14907.105, 92.41),
		testNuclide("7Li", "i", 7, 3, 26150.105, 0),
		testNuclide("7Be", GroundState, 7, 4, 15768.6, 0),
		testNuclide("7Be", "i", 7, 4, 26749.8, 0),
		testNuclide("8Be", GroundState, 8, 4, 4941.67, 0),
		testNuclide("8Be", "i", 8, 4, 21567.77, 0),
		testNuclide("8Be", "j", 8, 4, 32435.77, 0),
	}
}

// heavierNuclides returns the nickel, copper and lead region rows used
// by the transfer and decay tests.
func heavierNuclides() []*Nuclide {
	return []*Nuclide{
		testNuclide("58Ni", GroundState, 58, 28, -60227.7, 68.0769),
		testNuclide("60Ni", GroundState, 60, 28, -64472.5, 26.2231),
		testNuclide("61Ni", GroundState, 61, 28, -64220.89, 1.1399),
		testNuclide("62Ni", GroundState, 62, 28, -66746.0, 3.6346),
		testNuclide("63Ni", GroundState, 63, 28, -65511.9, 0, "→β-"),
		testNuclide("64Ni", GroundState, 64, 28, -67099.3, 0.9256),
		testNuclide("63Cu", GroundState, 63, 29, -65579.0, 69.15),
		testNuclide("65Cu", GroundState, 65, 29, -67263.7, 30.85),
		testNuclide("208Pb", GroundState, 208, 82, -21748.5, 52.4),
		testNuclide("212Po", GroundState, 212, 84, -10381.1, 0),
		testNuclide("e-", GroundState, 0, 0, 0, 0),
		testNuclide("ν", GroundState, 0, 0, 0, 0),
	}
}

// testRegistry indexes both fixture regions.
func testRegistry() *Registry {
	return NewRegistry(append(lightNuclides(), heavierNuclides()...))
}

// mustGet fails the test when a fixture nuclide is missing.
func mustGet(t *testing.T, r *Registry, label, level string) *Nuclide {
	t.Helper()
	n, ok := r.Get(Signature{Label: label, Level: level})
	require.True(t, ok, "fixture nuclide %s/%s not indexed", label, level)
	return n
}
