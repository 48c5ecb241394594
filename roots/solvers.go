// SPDX-License-Identifier: MIT
package roots

import "math"

// LinearRoots solves a·x + b = 0 for c = [a, b].
func LinearRoots(c []float64) (Roots, error) {
	if err := checkCoefs("Linear", c, 2); err != nil {
		return Roots{}, err
	}

	return Roots{
		Values:       []Complex{Real(round(-c[1]/c[0], rootPlaces))},
		Discriminant: math.NaN(),
		Kind:         Linear,
	}, nil
}

// QuadraticRoots solves a·x² + b·x + c = 0 for c = [a, b, c].
//
//	D > 0: (−b+√D)/2a, (−b−√D)/2a
//	D = 0: −b/2a
//	D < 0: a conjugate pair, positive imaginary part first
func QuadraticRoots(c []float64) (Roots, error) {
	if err := checkCoefs("Quadratic", c, 3); err != nil {
		return Roots{}, err
	}
	a, b, k := c[0], c[1], c[2]
	d := round(b*b-4*a*k, discPlaces)
	out := Roots{Discriminant: d, Kind: Quadratic}

	switch {
	case d > 0:
		sq := math.Sqrt(d)
		out.Values = []Complex{
			Real(round((-b+sq)/(2*a), rootPlaces)),
			Real(round((-b-sq)/(2*a), rootPlaces)),
		}
	case d == 0:
		out.Values = []Complex{Real(round(-b/(2*a), rootPlaces))}
	default:
		re := round(-b/(2*a), rootPlaces)
		im := round(math.Abs(math.Sqrt(-d)/(2*a)), rootPlaces)
		out.Values = []Complex{{Re: re, Im: im}, {Re: re, Im: -im}}
	}

	return out, nil
}

// CubicRoots solves a·x³ + b·x² + c·x + d = 0 for c = [a, b, c, d].
//
// The equation is made monic and depressed to t³ + p·t + q with
// x = t − b/3, Δ = q²/4 + p³/27:
//
//	Δ > 0: one real root and a conjugate pair (Cardano)
//	Δ = 0: repeated real roots
//	Δ < 0: three distinct real roots (trigonometric method)
func CubicRoots(c []float64) (Roots, error) {
	if err := checkCoefs("Cubic", c, 4); err != nil {
		return Roots{}, err
	}
	b, k, d := c[1]/c[0], c[2]/c[0], c[3]/c[0]
	p := k - b*b/3
	q := 2*b*b*b/27 - b*k/3 + d
	shift := -b / 3
	delta := round(q*q/4+p*p*p/27, discPlaces)
	out := Roots{Discriminant: delta, Kind: Cubic}

	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		re := round(-(u+v)/2+shift, rootPlaces)
		im := round(math.Abs((u-v)*math.Sqrt(3)/2), rootPlaces)
		out.Values = []Complex{
			Real(round(u+v+shift, rootPlaces)),
			{Re: re, Im: im},
			{Re: re, Im: -im},
		}
	case delta == 0:
		if round(q, discPlaces) == 0 {
			out.Values = []Complex{Real(round(shift, rootPlaces))}
			break
		}
		u := math.Cbrt(-q / 2)
		out.Values = []Complex{
			Real(round(2*u+shift, rootPlaces)),
			Real(round(-u+shift, rootPlaces)),
		}
	default:
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(math.Max(-1, math.Min(1, -q/(2*r))))
		m := 2 * math.Sqrt(-p/3)
		out.Values = make([]Complex, 3)
		for i := range out.Values {
			t := m * math.Cos(phi/3+2*math.Pi*float64(i)/3)
			out.Values[i] = Real(round(t+shift, rootPlaces))
		}
	}

	return out, nil
}

// QuarticRoots solves a·x⁴ + b·x³ + c·x² + d·x + e = 0 for c = [a, b, c, d, e]
// with Ferrari's method and returns the distinct real roots.
//
// The monic equation is depressed to y⁴ + p·y² + q·y + r with x = y − b/4.
// m, the largest real root of the resolvent
// 8m³ + 8p·m² + (2p² − 8r)·m − q² = 0, splits it into two quadratics with
// s = √(2m):
//
//	y² − s·y + (p/2 + m + q/2s)
//	y² + s·y + (p/2 + m − q/2s)
//
// When q or s vanishes it is solved as a quadratic in y² instead. m is kept
// unrounded: q/2s amplifies any error in it.
func QuarticRoots(c []float64) (Roots, error) {
	if err := checkCoefs("Quartic", c, 5); err != nil {
		return Roots{}, err
	}
	b, k, d, e := c[1]/c[0], c[2]/c[0], c[3]/c[0], c[4]/c[0]
	p := k - 3*b*b/8
	q := d - b*k/2 + b*b*b/8
	r := e - b*d/4 + b*b*k/16 - 3*b*b*b*b/256
	shift := -b / 4

	out := Roots{Kind: Quartic}
	var ys []float64
	ferrari := false

	if math.Abs(q) > Epsilon {
		m, delta := resolventRoot(p, q, r)
		if s := math.Sqrt(2 * m); s > Epsilon {
			ferrari = true
			out.Discriminant = round(delta, discPlaces)
			for _, f := range [][2]float64{
				{-s, p/2 + m + q/(2*s)},
				{s, p/2 + m - q/(2*s)},
			} {
				ys = append(ys, realQuadratic(f[0], f[1])...)
			}
		}
	}
	if !ferrari {
		z, err := QuadraticRoots([]float64{1, p, r})
		if err != nil {
			return Roots{}, err
		}
		out.Discriminant = z.Discriminant
		for _, zv := range z.Reals() {
			switch {
			case zv > 0:
				ys = append(ys, math.Sqrt(zv), -math.Sqrt(zv))
			case zv == 0:
				ys = append(ys, 0)
			}
		}
	}

	for _, y := range ys {
		x := round(y+shift, rootPlaces)
		if !containsReal(out.Values, x) {
			out.Values = append(out.Values, Real(x))
		}
	}

	return out, nil
}

// resolventRoot returns the largest real root of Ferrari's resolvent, in its
// monic form m³ + p·m² + (p²/4 − r)·m − q²/8, together with the discriminant
// of the depressed cubic. The closed-form root is polished with Newton steps
// for as long as they reduce the residual.
func resolventRoot(p, q, r float64) (m, delta float64) {
	a2, a1, a0 := p, p*p/4-r, -q*q/8
	eval := func(m float64) float64 { return ((m+a2)*m+a1)*m + a0 }

	m, delta = largestCubicRoot(a2, a1, a0)
	for i := 0; i < newtonSteps; i++ {
		f := eval(m)
		df := (3*m+2*a2)*m + a1
		if f == 0 || df == 0 {
			break
		}
		next := m - f/df
		if math.Abs(eval(next)) >= math.Abs(f) {
			break
		}
		m = next
	}

	return m, delta
}

// largestCubicRoot returns the largest real root of t³ + a·t² + b·t + c and
// the discriminant Δ = q²/4 + p³/27 of its depressed form, without rounding.
func largestCubicRoot(a, b, c float64) (root, delta float64) {
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c
	shift := -a / 3
	delta = q*q/4 + p*p*p/27
	if delta > 0 || p >= 0 {
		sq := math.Sqrt(math.Max(delta, 0))
		return math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq) + shift, delta
	}
	r := math.Sqrt(-p * p * p / 27)
	phi := math.Acos(math.Max(-1, math.Min(1, -q/(2*r))))

	return 2*math.Sqrt(-p/3)*math.Cos(phi/3) + shift, delta
}

// realQuadratic returns the real roots of y² + b·y + c; a negative
// discriminant yields none.
func realQuadratic(b, c float64) []float64 {
	d := round(b*b-4*c, discPlaces)
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / 2, (-b - sq) / 2}
	case d == 0:
		return []float64{-b / 2}
	}

	return nil
}

func containsReal(vs []Complex, x float64) bool {
	for _, v := range vs {
		if v.IsReal() && v.Re == x {
			return true
		}
	}

	return false
}
