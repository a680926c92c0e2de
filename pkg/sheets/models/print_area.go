package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Union returns the smallest area covering a and b.
func (a PrintArea) Union(b PrintArea) PrintArea {
	return PrintArea{
		R1: min(a.R1, b.R1),
		C1: min(a.C1, b.C1),
		R2: max(a.R2, b.R2),
		C2: max(a.C2, b.C2),
	}
}
