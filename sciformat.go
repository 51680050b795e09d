package orbits

import (
	"fmt"
	"math"
	"strconv"
)

// SciNum pretty prints in scientific notation with utf-8 superscript
// exponents, e.g. 1.23x10⁻⁵. It honors width as a magnitude limit (numbers
// whose order of magnitude is smaller are printed plainly), precision as the
// number of digits after the decimal point, and the '0' flag as a fill to
// precision:
//
//	fmt.Sprintf("%v", SciNum(12345))       // 1.2345x10⁴
//	fmt.Sprintf("%.2v", SciNum(12345))     // 1.23x10⁴
//	fmt.Sprintf("%0.6v", SciNum(12345))    // 1.234500x10⁴
//	fmt.Sprintf("%.0v", SciNum(12345))     // 1x10⁴
//	fmt.Sprintf("%3.2v", SciNum(123.456))  // 123.46
//	fmt.Sprintf("%2.2v", SciNum(123.456))  // 1.23x10²
//	fmt.Sprintf("%v", SciNum(0.00012345))  // 1.2345x10⁻⁴
//	fmt.Sprintf("%5.5v", SciNum(0.00012345)) // 0.00012
type SciNum float64

var superscripts = map[rune]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹", '-': "⁻",
}

// Format implements fmt.Formatter for the 'v' and 's' verbs.
func (n SciNum) Format(f fmt.State, verb rune) {
	x := float64(n)
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		// Only positive finite readouts occur here; anything else is dumped
		// plainly.
		fmt.Fprint(f, strconv.FormatFloat(x, 'g', -1, 64))
		return
	}
	// Width()'s value is only meaningful when the width was actually set;
	// fmt reuses printer state, so the value is stale garbage otherwise.
	magLim, hasWidth := f.Width()
	if !hasWidth {
		magLim = 0
	}
	prec, hasPrec := f.Precision()
	fill := f.Flag('0')
	mag := int(math.Floor(math.Log10(x)))
	if abs(mag) < magLim {
		fmt.Fprint(f, formatPlain(x, prec, hasPrec, fill))
		return
	}
	base := x / math.Pow(10, float64(mag))
	fmt.Fprintf(f, "%sx10%s", formatPlain(base, prec, hasPrec, fill), superscript(mag))
}

func formatPlain(x float64, prec int, hasPrec, fill bool) string {
	if !hasPrec {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if fill {
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
	p10 := math.Pow(10, float64(prec))
	rounded := math.Round(x*p10) / p10
	if prec == 0 {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func superscript(mag int) string {
	s := ""
	for _, r := range strconv.Itoa(mag) {
		s += superscripts[r]
	}
	return s
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
