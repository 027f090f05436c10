// SPDX-License-Identifier: MIT

package norm

import "math"

// goldenSection is (3 − √5)/2.
var (
	goldenSection = 0.5 * (3 - math.Sqrt(5))
	sqrtEps       = math.Sqrt(2.220446049250313e-16)
)

// minimizeBounded finds a local minimizer of f on [a, b] with Brent's method:
// golden-section steps safeguarded by successive parabolic interpolation.
// It stops once the bracket around the best point shrinks below
// 2·(√ε·|x| + xtol/3). converged is false when maxIter evaluations pass
// first; x and fx still hold the best point seen.
func minimizeBounded(f func(float64) float64, a, b, xtol float64, maxIter int) (x, fx float64, iters int, converged bool) {
	xf := a + goldenSection*(b-a)
	nfc, fulc := xf, xf
	fx = f(xf)
	fnfc, ffulc := fx, fx
	var rat, e float64

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + xtol/3
	tol2 := 2 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		if iters >= maxIter {
			return xf, fx, iters, false
		}
		golden := true
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r, e = e, rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				u := xf + rat
				if u-a < tol2 || b-u < tol2 {
					rat = tol1 * signOrOne(xm-xf)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenSection * e
		}

		u := xf + signOrOne(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(u)
		iters++

		if fu <= fx {
			if u >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = u, fu
		} else {
			if u < xf {
				a = u
			} else {
				b = u
			}
			switch {
			case fu <= fnfc || nfc == xf:
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = u, fu
			case fu <= ffulc || fulc == xf || fulc == nfc:
				fulc, ffulc = u, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xtol/3
		tol2 = 2 * tol1
	}

	return xf, fx, iters, true
}

// signOrOne is sign(v), with 0 mapped to +1.
func signOrOne(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
