package bloch

/*
State is one possible measurement outcome of a qubit, with the amplitude
that produces it and the resulting probability.
*/
type State struct {
	Value       int
	Label       string
	Amplitude   ComplexNumber
	Probability float64
}
