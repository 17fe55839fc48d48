package dimvar_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/units"
)

var (
	meter    = units.Vector{1, 0, 0, 0, 0, 0, 0}
	second   = units.Vector{0, 0, 1, 0, 0, 0, 0}
	velocity = units.Vector{1, 0, -1, 0, 0, 0, 0}
	watt     = units.Vector{2, 1, -3, 0, 0, 0, 0}
)

func mustNew(value float64, unit string) dimvar.Variable {
	GinkgoHelper()
	v, err := dimvar.New(value, unit)
	Expect(err).NotTo(HaveOccurred())
	return v
}

var _ = Describe("Variable", func() {
	Describe("construction", func() {
		It("stores the value in base units", func() {
			v := mustNew(1.0, "mi/h")
			Expect(v.Value()).To(BeNumerically("~", 0.44704, 1e-12))
			Expect(v.Unit()).To(Equal(velocity))
		})

		It("converts compound units", func() {
			v := mustNew(1.0, "BTU-in/h-ft^2-F")
			Expect(v.Value()).To(BeNumerically("~", 0.1442278885061242, 1e-15))
			Expect(v.Unit()).To(Equal(units.Vector{1, 1, -3, -1, 0, 0, 0}))
		})

		It("keeps SI values untouched", func() {
			v := mustNew(4.6483, "m/s")
			Expect(v.Value()).To(Equal(4.6483))
			Expect(v.Unit()).To(Equal(velocity))
		})

		It("treats the empty unit as unitless", func() {
			v := mustNew(42, "")
			Expect(v.IsUnitless()).To(BeTrue())
			Expect(v.Value()).To(Equal(42.0))
		})

		It("treats angles as dimensionless", func() {
			Expect(mustNew(math.Pi/4, "rad").IsUnitless()).To(BeTrue())
			Expect(mustNew(45, "deg").Value()).To(BeNumerically("~", math.Pi/4, 1e-12))
		})

		It("returns the parse error for bad unit strings", func() {
			_, err := dimvar.New(1.0, "unknown_unit")
			Expect(err).To(MatchError(units.ErrUnknownUnit))
			Expect(err.Error()).To(ContainSubstring("unknown_unit"))

			var perr *units.ParseError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Token).To(Equal("unknown_unit"))

			_, err = dimvar.New(1.0, "m^")
			Expect(err).To(MatchError(units.ErrMissingExponent))
			_, err = dimvar.New(1.0, "^2")
			Expect(err).To(MatchError(units.ErrMissingSymbol))
		})

		It("panics from MustNew on bad units", func() {
			Expect(func() { dimvar.MustNew(1, "m/s/s") }).To(Panic())
			Expect(dimvar.MustNew(2, "m").Value()).To(Equal(2.0))
		})
	})

	Describe("ValueIn", func() {
		It("converts between compatible units", func() {
			Expect(mustNew(1.0, "m").ValueIn("cm")).To(BeNumerically("~", 100.0, 1e-12))
			Expect(mustNew(1.0, "m/s").ValueIn("mi/hr")).To(BeNumerically("~", 2.2369362920544025, 1e-12))
			Expect(mustNew(math.Pi, "rad").ValueIn("deg")).To(BeNumerically("~", 180.0, 1e-10))
			Expect(mustNew(60, "arcmin").ValueIn("deg")).To(BeNumerically("~", 1.0, 1e-10))
		})

		It("round-trips through the construction unit", func() {
			for _, unit := range []string{"m", "mi/hr", "BTU-in/hr-ft^2-F", "kg-m/s^2", "cm^3", "lbf", "F", "kWh", ""} {
				for _, value := range []float64{0, 1, -3.25, 1e-9, 6.02e23} {
					got, err := mustNew(value, unit).ValueIn(unit)
					Expect(err).NotTo(HaveOccurred())
					Expect(got).To(BeNumerically("~", value, 1e-12*math.Max(1, math.Abs(value))), unit)
				}
			}
		})

		It("rejects incompatible units", func() {
			_, err := mustNew(1.0, "m").ValueIn("hr")
			Expect(err).To(MatchError(dimvar.ErrDimensionMismatch))

			var opErr *dimvar.OpError
			Expect(errors.As(err, &opErr)).To(BeTrue())
			Expect(opErr.Op).To(Equal("convert"))
		})

		It("reports parse errors in the target unit", func() {
			_, err := mustNew(1.0, "m/s").ValueIn("btu")
			Expect(err).To(MatchError(units.ErrUnknownUnit))
		})
	})

	Describe("addition and subtraction", func() {
		a := dimvar.MustNew(3.5, "m")
		b := dimvar.MustNew(1.5, "m")
		s := dimvar.MustNew(1.0, "s")

		It("adds and subtracts matching units", func() {
			Expect(a.Add(b).Value()).To(Equal(5.0))
			Expect(a.Sub(b).Value()).To(Equal(2.0))
			Expect(a.Add(b).Unit()).To(Equal(meter))

			sum, err := a.TryAdd(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Value()).To(Equal(5.0))

			diff, err := a.TrySub(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Value()).To(Equal(2.0))
		})

		It("adds across different units of the same dimension", func() {
			sum, err := mustNew(1, "ft").TryAdd(mustNew(12, "in"))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.ValueIn("ft")).To(BeNumerically("~", 2.0, 1e-12))
		})

		It("fails the checked form on mismatch", func() {
			_, err := a.TryAdd(s)
			Expect(err).To(MatchError(dimvar.ErrDimensionMismatch))
			_, err = a.TrySub(s)
			Expect(err).To(MatchError(dimvar.ErrDimensionMismatch))
		})

		It("panics in the unchecked form on mismatch", func() {
			Expect(func() { a.Add(s) }).To(PanicWith(ContainSubstring("incompatible units for addition")))
			Expect(func() { a.Sub(s) }).To(Panic())
		})

		It("leaves operands untouched", func() {
			_ = a.Add(b)
			Expect(a.Value()).To(Equal(3.5))
			Expect(b.Value()).To(Equal(1.5))
		})
	})

	Describe("multiplication and division", func() {
		It("combines exponents", func() {
			d := mustNew(3, "m/s").Mul(mustNew(2, "s"))
			Expect(d.Value()).To(Equal(6.0))
			Expect(d.Unit()).To(Equal(meter))

			w := mustNew(5, "N").Mul(mustNew(2, "m"))
			Expect(w.Value()).To(Equal(10.0))
			Expect(w.Unit()).To(Equal(units.Vector{2, 1, -2, 0, 0, 0, 0}))

			r := mustNew(8, "m^2/s").Div(mustNew(2, "m"))
			Expect(r.Value()).To(Equal(4.0))
			Expect(r.Unit()).To(Equal(velocity))
		})

		It("computes the conduction example in watts", func() {
			k := mustNew(4.0, "BTU-in/hr-ft^2-F")
			a := mustNew(10.0, "cm^2")
			dt := mustNew(200.0, "K")
			l := mustNew(5.0, "mm")

			q := k.Mul(a).Mul(dt).Div(l)
			Expect(q.Value()).To(BeNumerically("~", 23.076462160979872, 1e-12))
			Expect(q.Unit()).To(Equal(watt))
		})

		It("recovers x from (x*y)/y", func() {
			x := mustNew(7.5, "kg-m/s^2")
			y := mustNew(-0.3, "mi/hr")
			r := x.Mul(y).Div(y)
			Expect(r.Unit()).To(Equal(x.Unit()))
			Expect(r.Value()).To(BeNumerically("~", x.Value(), 1e-12))
		})

		It("yields a unitless ratio of like units", func() {
			r := mustNew(10, "m").Div(mustNew(2, "m"))
			Expect(r.IsUnitless()).To(BeTrue())
			Expect(r.Value()).To(Equal(5.0))
		})

		It("follows IEEE division by zero", func() {
			r := mustNew(1, "m").Div(mustNew(0, "s"))
			Expect(math.IsInf(r.Value(), 1)).To(BeTrue())
			Expect(r.Unit()).To(Equal(velocity))

			n := mustNew(0, "m").Div(mustNew(0, "s"))
			Expect(math.IsNaN(n.Value())).To(BeTrue())
		})
	})

	Describe("scalar operations", func() {
		m := dimvar.MustNew(5, "m")

		It("scales without touching the unit", func() {
			Expect(m.Scale(2).Value()).To(Equal(10.0))
			Expect(m.Scale(2).Unit()).To(Equal(meter))
			Expect(m.DivScalar(2).Value()).To(Equal(2.5))
			Expect(m.DivScalar(2).Unit()).To(Equal(meter))
		})

		It("inverts the unit for scalar / variable", func() {
			d := dimvar.ScalarDiv(2.0, mustNew(2, "s^-1"))
			Expect(d.Value()).To(Equal(1.0))
			Expect(d.Unit()).To(Equal(second))
		})

		It("wraps plain numbers as unitless", func() {
			Expect(dimvar.Scalar(3).IsUnitless()).To(BeTrue())
			Expect(dimvar.Scalar(3).Value()).To(Equal(3.0))
		})
	})

	Describe("compound assignment", func() {
		It("mutates only the receiver", func() {
			a := mustNew(3, "m")
			b := mustNew(2, "m")

			a.AddAssign(b)
			Expect(a.Value()).To(Equal(5.0))
			a.SubAssign(b)
			Expect(a.Value()).To(Equal(3.0))

			a.MulAssign(mustNew(2, "s^-1"))
			Expect(a.Value()).To(Equal(6.0))
			Expect(a.Unit()).To(Equal(velocity))

			a.DivAssign(mustNew(3, "s^-1"))
			Expect(a.Value()).To(Equal(2.0))
			Expect(a.Unit()).To(Equal(meter))

			a.ScaleAssign(5)
			Expect(a.Value()).To(Equal(10.0))
			a.DivScalarAssign(4)
			Expect(a.Value()).To(Equal(2.5))

			Expect(b.Value()).To(Equal(2.0))
		})

		It("panics on mismatched add/sub assignment", func() {
			a := mustNew(3, "m")
			Expect(func() { a.AddAssign(mustNew(1, "s")) }).To(Panic())
			Expect(func() { a.SubAssign(mustNew(1, "s")) }).To(Panic())
			Expect(a.Value()).To(Equal(3.0))
		})
	})

	Describe("powers and roots", func() {
		It("multiplies exponents for integer powers", func() {
			p := mustNew(2, "m/s^2").Powi(3)
			Expect(p.Value()).To(BeNumerically("~", 8.0, 1e-12))
			Expect(p.Unit()).To(Equal(units.Vector{3, 0, -6, 0, 0, 0, 0}))

			inv := mustNew(4, "m").Powi(-2)
			Expect(inv.Value()).To(BeNumerically("~", 1.0/16, 1e-15))
			Expect(inv.Unit()).To(Equal(units.Vector{-2, 0, 0, 0, 0, 0, 0}))
		})

		It("returns unitless one for a zero power", func() {
			p := mustNew(7, "kg-m/s^2").Powi(0)
			Expect(p.Value()).To(Equal(1.0))
			Expect(p.IsUnitless()).To(BeTrue())
		})

		It("allows real powers only on unitless values", func() {
			u := mustNew(10, "m").Div(mustNew(2, "m"))
			p, err := u.Powf(2.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Value()).To(BeNumerically("~", math.Pow(5, 2.5), 1e-12))
			Expect(p.IsUnitless()).To(BeTrue())

			_, err = mustNew(2, "m").Powf(2)
			Expect(err).To(MatchError(dimvar.ErrDomain))
		})

		It("halves exponents on sqrt", func() {
			r, err := mustNew(9, "m^2/s^2").Sqrt()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value()).To(Equal(3.0))
			Expect(r.Unit()).To(Equal(velocity))
		})

		It("produces half-integer exponents for odd powers", func() {
			r, err := mustNew(4, "m^3").Sqrt()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value()).To(BeNumerically("~", 2.0, 1e-12))
			Expect(r.Unit()).To(Equal(units.Vector{1.5, 0, 0, 0, 0, 0, 0}))
			Expect(r.Powi(2).Unit()).To(Equal(units.Vector{3, 0, 0, 0, 0, 0, 0}))
		})

		It("rejects sqrt of negative values", func() {
			_, err := mustNew(-1, "m^2").Sqrt()
			Expect(err).To(MatchError(dimvar.ErrDomain))
			Expect(err.Error()).To(ContainSubstring("sqrt of negative value"))
		})
	})

	Describe("logarithms and trigonometry", func() {
		u := dimvar.MustNew(10, "m").Div(dimvar.MustNew(2, "m"))

		It("evaluates on unitless values", func() {
			Expect(u.Ln()).To(BeNumerically("~", math.Log(5), 1e-12))
			Expect(u.Log2()).To(BeNumerically("~", math.Log2(5), 1e-12))
			Expect(u.Log10()).To(BeNumerically("~", math.Log10(5), 1e-12))

			angle := mustNew(math.Pi/4, "rad")
			Expect(angle.Sin()).To(BeNumerically("~", math.Sin(math.Pi/4), 1e-12))
			Expect(angle.Cos()).To(BeNumerically("~", math.Cos(math.Pi/4), 1e-12))
			Expect(angle.Tan()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(mustNew(90, "deg").Sin()).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("rejects dimensional operands", func() {
			m := mustNew(2, "m")
			for _, fn := range []func() (float64, error){m.Ln, m.Log2, m.Log10, m.Sin, m.Cos, m.Tan} {
				_, err := fn()
				Expect(err).To(MatchError(dimvar.ErrDomain))
				Expect(err.Error()).To(ContainSubstring("unitless"))
			}
		})

		It("rejects non-positive logarithm arguments", func() {
			for _, value := range []float64{0, -1} {
				x := dimvar.Scalar(value)
				for _, fn := range []func() (float64, error){x.Ln, x.Log2, x.Log10} {
					_, err := fn()
					Expect(err).To(MatchError(dimvar.ErrDomain))
				}
			}
		})
	})

	Describe("sign", func() {
		It("negates and takes absolute values", func() {
			n := mustNew(5, "m").Neg()
			Expect(n.Value()).To(Equal(-5.0))
			Expect(n.Unit()).To(Equal(meter))

			a := mustNew(-5, "m").Abs()
			Expect(a.Value()).To(Equal(5.0))
			Expect(a.Unit()).To(Equal(meter))
		})
	})

	Describe("comparison", func() {
		It("compares equal units", func() {
			Expect(mustNew(2, "m").Equal(mustNew(2, "m"))).To(BeTrue())
			Expect(mustNew(2, "m").Equal(mustNew(200, "cm"))).To(BeTrue())

			b1, b2 := mustNew(2, "m"), mustNew(3, "m")
			Expect(b1.Less(b2)).To(BeTrue())
			Expect(b1.LessOrEqual(b2)).To(BeTrue())
			Expect(b2.Greater(b1)).To(BeTrue())
			Expect(b2.GreaterOrEqual(b1)).To(BeTrue())
			Expect(b1.GreaterOrEqual(b1)).To(BeTrue())

			c, ok := b1.Compare(b2)
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal(-1))
		})

		It("reports mismatched units as not comparable", func() {
			m, s := mustNew(1, "m"), mustNew(1, "s")
			Expect(m.Equal(s)).To(BeFalse())

			_, ok := m.Compare(s)
			Expect(ok).To(BeFalse())
			Expect(m.Less(s)).To(BeFalse())
			Expect(m.LessOrEqual(s)).To(BeFalse())
			Expect(m.Greater(s)).To(BeFalse())
			Expect(m.GreaterOrEqual(s)).To(BeFalse())
		})

		It("reports NaN as not comparable", func() {
			nan := dimvar.FromBase(math.NaN(), meter)
			Expect(nan.Equal(nan)).To(BeFalse())
			_, ok := nan.Compare(mustNew(1, "m"))
			Expect(ok).To(BeFalse())
		})

		It("checks Ohm's law exactly", func() {
			v := mustNew(10, "V")
			i := mustNew(2, "A")
			r := mustNew(5, "Ohm")
			Expect(v.Equal(i.Mul(r))).To(BeTrue())
			Expect(mustNew(20, "W").Equal(v.Mul(i))).To(BeTrue())
		})
	})
})
