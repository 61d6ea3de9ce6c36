package waver

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrNoPoints        = errors.New("waver: no control points")
	ErrUnorderedPoints = errors.New("waver: control points out of order")
)

// SineLFO returns a multiplier oscillating around 1 by ±depth at rate Hz.
// As a frequency modulation it is a vibrato, as an amplitude modulation a
// tremolo.
func SineLFO(rate, depth float64) Modulation {
	return func(t float64) float64 {
		return 1 + depth*math.Sin(2*math.Pi*rate*t)
	}
}

// SawLFO is like SineLFO with a rising sawtooth that starts at 1.
func SawLFO(rate, depth float64) Modulation {
	return func(t float64) float64 {
		_, x := math.Modf(rate*t + .5)
		return 1 + depth*(2*x-1)
	}
}

// PhaseLFO returns a phase offset of ±deviation radians oscillating at rate Hz.
func PhaseLFO(rate, deviation float64) Modulation {
	return func(t float64) float64 {
		return deviation * math.Sin(2*math.Pi*rate*t)
	}
}

type ControlPoint struct {
	Time, Value float64
}

// Breakpoints returns the piecewise linear curve through points. Before the
// first point the curve holds the first value, after the last point the last
// value. Two points at the same time mark a jump.
func Breakpoints(points []ControlPoint) (Modulation, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for i := 1; i < len(points); i++ {
		if points[i].Time < points[i-1].Time {
			return nil, ErrUnorderedPoints
		}
	}
	points = append([]ControlPoint(nil), points...)
	return func(t float64) float64 {
		i := sort.Search(len(points), func(i int) bool { return points[i].Time > t })
		if i == 0 {
			return points[0].Value
		}
		if i == len(points) {
			return points[i-1].Value
		}
		p, q := points[i-1], points[i]
		return p.Value + (q.Value-p.Value)*(t-p.Time)/(q.Time-p.Time)
	}, nil
}

// AttackRelease returns an exponential envelope that rises to 99% of full
// amplitude in attack seconds, and from hold seconds on decays by 99% every
// release seconds.
func AttackRelease(attack, hold, release float64) Modulation {
	rise := func(t float64) float64 {
		if attack <= 0 {
			return 1
		}
		return 1 - math.Pow(.01, t/attack)
	}
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		if t < hold {
			return rise(t)
		}
		if release <= 0 {
			return 0
		}
		return rise(hold) * math.Pow(.01, (t-hold)/release)
	}
}
