package sampler

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"bizstats/adapters/rng"
	"bizstats/domain/core"
	"bizstats/domain/stats"
	"bizstats/internal"
	"bizstats/ports"
)

// LegacySampler reproduces numpy's legacy RandomState samplers (polar
// Box-Muller normals, PTRS Poisson, inversion/BTPE binomial) on top of the
// RNG port's stream. Fed an MT19937 stream it returns the same values as
// np.random.poisson, np.random.binomial and np.random.normal after
// np.random.seed(seed).
type LegacySampler struct {
	rng    ports.RNGPort
	logger *internal.Logger
}

// NewLegacySampler creates a sampler backed by the given RNG port
func NewLegacySampler(rng ports.RNGPort, logger *internal.Logger) *LegacySampler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &LegacySampler{rng: rng, logger: logger}
}

// Draw produces exactly size observations from the family
func (s *LegacySampler) Draw(ctx context.Context, family stats.Family, params stats.Params, size int, seed int64) (stats.Sample, error) {
	if err := params.Validate(family); err != nil {
		return stats.Sample{}, err
	}
	if size < 1 {
		return stats.Sample{}, core.NewParameterError("size", float64(size), "must be at least 1")
	}

	src, err := s.rng.SeededStream(ctx, string(family), seed)
	if err != nil {
		return stats.Sample{}, fmt.Errorf("seeding %s stream: %w", family, err)
	}
	stream := &legacyStream{src: src}

	values := make([]float64, size)
	for i := range values {
		switch family {
		case stats.FamilyPoisson:
			values[i] = float64(stream.poisson(params.Lambda))
		case stats.FamilyBinomial:
			values[i] = float64(stream.binomial(int64(params.Trials), params.P))
		case stats.FamilyNormal:
			values[i] = params.Mu + params.Sigma*stream.gauss()
		}
	}

	sample := stats.NewSample(family, seed, values)
	s.logger.Debug("drew %d %s observations with legacy samplers (seed=%d, hash=%s)",
		size, family, seed, sample.Hash().Short())
	return sample, nil
}

// legacyStream carries the spare normal deviate between calls like
// RandomState does
type legacyStream struct {
	src      rand.Source
	hasGauss bool
	gauss0   float64
}

func (l *legacyStream) double() float64 {
	return rng.Float64From(l.src.Uint64())
}

// gauss is the polar method; each accepted pair yields two deviates
func (l *legacyStream) gauss() float64 {
	if l.hasGauss {
		l.hasGauss = false
		return l.gauss0
	}

	var x1, x2, r2 float64
	for {
		x1 = 2.0*l.double() - 1.0
		x2 = 2.0*l.double() - 1.0
		r2 = x1*x1 + x2*x2
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}
	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	l.gauss0 = f * x1
	l.hasGauss = true
	return f * x2
}

func (l *legacyStream) poisson(lam float64) int64 {
	switch {
	case lam >= 10:
		return l.poissonPTRS(lam)
	case lam == 0:
		return 0
	default:
		return l.poissonMult(lam)
	}
}

// poissonMult multiplies uniforms until the product drops below e^-lam
func (l *legacyStream) poissonMult(lam float64) int64 {
	enlam := math.Exp(-lam)
	var x int64
	prod := 1.0
	for {
		prod *= l.double()
		if prod <= enlam {
			return x
		}
		x++
	}
}

// poissonPTRS is Hörmann's transformed rejection with squeeze
func (l *legacyStream) poissonPTRS(lam float64) int64 {
	slam := math.Sqrt(lam)
	loglam := math.Log(lam)
	b := 0.931 + 2.53*slam
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)

	for {
		u := l.double() - 0.5
		v := l.double()
		us := 0.5 - math.Abs(u)
		k := int64(math.Floor((2*a/us+b)*u + lam + 0.43))
		if us >= 0.07 && v <= vr {
			return k
		}
		if k < 0 || (us < 0.013 && v > us) {
			continue
		}
		if math.Log(v)+math.Log(invalpha)-math.Log(a/(us*us)+b) <=
			-lam+float64(k)*loglam-logGamma(float64(k+1)) {
			return k
		}
	}
}

var logGammaCoeffs = [10]float64{
	8.333333333333333e-02, -2.777777777777778e-03,
	7.936507936507937e-04, -5.952380952380952e-04,
	8.417508417508418e-04, -1.917526917526918e-03,
	6.410256410256410e-03, -2.955065359477124e-02,
	1.796443723688307e-01, -1.39243221690590e+00,
}

// logGamma is the Stirling series numpy uses inside PTRS. It differs from
// math.Lgamma in the last bits, which changes accept/reject decisions.
func logGamma(x float64) float64 {
	if x == 1.0 || x == 2.0 {
		return 0.0
	}
	var n int
	if x < 7.0 {
		n = int(7 - x)
	}
	x0 := x + float64(n)
	x2 := (1.0 / x0) * (1.0 / x0)
	const lg2pi = 1.8378770664093453e+00

	gl0 := logGammaCoeffs[9]
	for k := 8; k >= 0; k-- {
		gl0 *= x2
		gl0 += logGammaCoeffs[k]
	}
	gl := gl0/x0 + 0.5*lg2pi + (x0-0.5)*math.Log(x0) - x0
	if x < 7.0 {
		for k := 1; k <= n; k++ {
			gl -= math.Log(x0 - 1.0)
			x0 -= 1.0
		}
	}
	return gl
}

func (l *legacyStream) binomial(n int64, p float64) int64 {
	if n == 0 || p == 0 {
		return 0
	}
	if p <= 0.5 {
		if p*float64(n) <= 30.0 {
			return l.binomialInversion(n, p)
		}
		return l.binomialBTPE(n, p)
	}
	q := 1.0 - p
	if q*float64(n) <= 30.0 {
		return n - l.binomialInversion(n, q)
	}
	return n - l.binomialBTPE(n, q)
}

// binomialInversion walks the CDF from 0, restarting past a 10-sigma bound
func (l *legacyStream) binomialInversion(n int64, p float64) int64 {
	q := 1.0 - p
	qn := math.Exp(float64(n) * math.Log(q))
	np := float64(n) * p
	bound := int64(math.Min(float64(n), np+10.0*math.Sqrt(np*q+1)))

	var x int64
	px := qn
	u := l.double()
	for u > px {
		x++
		if x > bound {
			x = 0
			px = qn
			u = l.double()
		} else {
			u -= px
			px = (float64(n-x+1) * p * px) / (float64(x) * q)
		}
	}
	return x
}

// binomialBTPE is Kachitvichyanukul and Schmeiser's triangle, parallelogram,
// exponential algorithm for n*p > 30. p must be at most 0.5.
func (l *legacyStream) binomialBTPE(n int64, p float64) int64 {
	nf := float64(n)
	r := math.Min(p, 1.0-p)
	q := 1.0 - r
	fm := nf*r + r
	m := int64(math.Floor(fm))
	mf := float64(m)
	p1 := math.Floor(2.195*math.Sqrt(nf*r*q)-4.6*q) + 0.5
	xm := mf + 0.5
	xl := xm - p1
	xr := xm + p1
	c := 0.134 + 20.5/(15.3+mf)
	a := (fm - xl) / (fm - xl*r)
	laml := a * (1.0 + a/2.0)
	a = (xr - fm) / (xr * q)
	lamr := a * (1.0 + a/2.0)
	p2 := p1 * (1.0 + 2.0*c)
	p3 := p2 + c/laml
	p4 := p3 + c/lamr
	nrq := nf * r * q

	for {
		u := l.double() * p4
		v := l.double()
		var y int64

		switch {
		case u <= p1:
			// triangular region, accepted outright
			y = int64(math.Floor(xm - p1*v + u))
			return l.btpeFinish(n, p, y)
		case u <= p2:
			x := xl + (u-p1)/c
			v = v*c + 1.0 - math.Abs(mf-x+0.5)/p1
			if v > 1.0 {
				continue
			}
			y = int64(math.Floor(x))
		case u <= p3:
			y = int64(math.Floor(xl + math.Log(v)/laml))
			if y < 0 || v == 0.0 {
				continue
			}
			v = v * (u - p2) * laml
		default:
			y = int64(math.Floor(xr - math.Log(v)/lamr))
			if y > n || v == 0.0 {
				continue
			}
			v = v * (u - p3) * lamr
		}

		k := y - m
		if k < 0 {
			k = -k
		}
		kf := float64(k)

		if k <= 20 || kf >= nrq/2.0-1 {
			// explicit evaluation of the density ratio
			s := r / q
			aa := s * (nf + 1)
			f := 1.0
			if m < y {
				for i := m + 1; i <= y; i++ {
					f *= aa/float64(i) - s
				}
			} else if m > y {
				for i := y + 1; i <= m; i++ {
					f /= aa/float64(i) - s
				}
			}
			if v > f {
				continue
			}
			return l.btpeFinish(n, p, y)
		}

		// squeeze on log(v), then the Stirling bound
		rho := (kf / nrq) * ((kf*(kf/3.0+0.625)+0.16666666666666666)/nrq + 0.5)
		t := -kf * kf / (2 * nrq)
		logV := math.Log(v)
		if logV < t-rho {
			return l.btpeFinish(n, p, y)
		}
		if logV > t+rho {
			continue
		}

		yf := float64(y)
		x1 := yf + 1
		f1 := mf + 1
		z := nf + 1 - mf
		w := nf - yf + 1
		if logV > xm*math.Log(f1/x1)+(nf-mf+0.5)*math.Log(z/w)+(yf-mf)*math.Log(w*r/(x1*q))+
			stirlingTail(f1)+stirlingTail(z)+stirlingTail(x1)+stirlingTail(w) {
			continue
		}
		return l.btpeFinish(n, p, y)
	}
}

func (l *legacyStream) btpeFinish(n int64, p float64, y int64) int64 {
	if p > 0.5 {
		return n - y
	}
	return y
}

// stirlingTail is the correction term of the Stirling approximation used in
// the final BTPE acceptance test
func stirlingTail(x float64) float64 {
	x2 := x * x
	return (13680. - (462.-(132.-(99.-140./x2)/x2)/x2)/x2) / x / 166320.
}
