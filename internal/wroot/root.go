package wroot

// Root closes the top of a wave digital filter tree. A tree has exactly
// one root, consuming the ascending wave vector produced by the up-sweep
// over its k subtrees and returning the descending wave vector of
// identical length (spec.md §4.1 "Root step").
type Root interface {
	// SetSampleRate stores fs for use by SetPortResistances (only Simple
	// roots wrapping a reactive unadapted element need it; other variants
	// ignore it).
	SetSampleRate(fs float64)
	// SetPortResistances receives the settled up-port resistance of each
	// subtree entry (in declaration order) and refreshes whatever
	// internal state depends on it (an unadapted element's ρ, or a
	// matrix callback's Smat/Emat/Fmat/Mmat/Nmat). An error here leaves
	// prior matrix/state data in place (spec.md §4.2 "Failure").
	SetPortResistances(rp []float64) error
	// Scatter maps the ascending wave vector to the descending wave
	// vector for one sample.
	Scatter(ascending []float64) (descending []float64, err error)
}
