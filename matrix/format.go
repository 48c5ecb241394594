// SPDX-License-Identifier: MIT
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Format renders m as column-aligned text, one row per line, right-aligned
// within each column. Values within the configured epsilon of zero print as 0.
// Pure formatting; nothing downstream parses this output.
//
//	Format(A, WithPrecision(2))
//	 2.00  1.00
//	-1.00  3.50
func Format(m Matrix, opts ...Option) string {
	if ValidateNotNil(m) != nil {
		return "<nil>"
	}
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return "<" + err.Error() + ">"
	}

	cells := make([]string, len(d.data))
	width := make([]int, d.c)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v := d.data[i*d.c+j]
			if math.Abs(v) <= o.eps {
				v = 0
			}
			s := strconv.FormatFloat(v, 'f', o.precision, 64)
			cells[i*d.c+j] = s
			if len(s) > width[j] {
				width[j] = len(s)
			}
		}
	}

	var b strings.Builder
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			s := cells[i*d.c+j]
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", width[j]-len(s)))
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
