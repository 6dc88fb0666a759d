package core

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// ErrUnknownMetric is returned by LookupDistance for names missing from Distances.
var ErrUnknownMetric = errors.New("core: unknown distance metric")

// Distances is a map of human–readable names to distance functions.
// You can use it to choose a distance metric by name.
var Distances = map[string]DistanceFunc{
	"euclidean":         Euclidean,
	"squared_euclidean": SquaredEuclidean,
	"manhattan":         Manhattan,
	"chebyshev":         Chebyshev,
	"cosine":            CosineDistance,
	"angular":           AngularDistance,
	"hellinger":         Hellinger,
}

// LookupDistance returns the distance function registered under name.
func LookupDistance(name string) (DistanceFunc, error) {
	f, ok := Distances[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return f, nil
}

// DistanceNames returns the registered metric names in sorted order.
func DistanceNames() []string {
	names := make([]string, 0, len(Distances))
	for name := range Distances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkPair panics on vectors no distance is defined for.
func checkPair(a, b []float32) {
	if len(a) == 0 || len(b) == 0 {
		panic("vectors must not be empty")
	}
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}
}

// Euclidean computes the Euclidean (L2) distance between two vectors.
func Euclidean(a, b []float32) float64 {
	checkPair(a, b)
	return float64(vek32.Distance(a, b))
}

// SquaredEuclidean computes the squared Euclidean distance between two vectors.
func SquaredEuclidean(a, b []float32) float64 {
	checkPair(a, b)
	diff := vek32.Sub(a, b)
	return float64(vek32.Dot(diff, diff))
}

// Manhattan computes the Manhattan (L1) distance between two vectors.
func Manhattan(a, b []float32) float64 {
	checkPair(a, b)
	return float64(vek32.ManhattanDistance(a, b))
}

// Chebyshev computes the Chebyshev (L-infinity) distance between two vectors.
func Chebyshev(a, b []float32) float64 {
	checkPair(a, b)
	return float64(vek32.Max(vek32.Abs(vek32.Sub(a, b))))
}

// CosineDistance computes the cosine distance between two vectors.
// Two zero vectors are at distance 0; a zero vector and a non-zero one at 1.
func CosineDistance(a, b []float32) float64 {
	checkPair(a, b)
	na, nb := vek32.Norm(a), vek32.Norm(b)
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return 1
	}
	return float64(1 - vek32.Dot(a, b)/(na*nb))
}

// AngularDistance computes the angle in radians between two vectors.
// Accumulates in float64 so that parallel vectors land on 0.
func AngularDistance(a, b []float32) float64 {
	checkPair(a, b)
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		if na == nb {
			return 0
		}
		return math.Pi / 2
	}
	sim := dot / math.Sqrt(na*nb)
	sim = math.Max(-1, math.Min(1, sim))
	return math.Acos(sim)
}

// Hellinger computes the Hellinger distance between two non-negative vectors,
// treating each as an unnormalized distribution:
//
//	sqrt(1 - sum(sqrt(a_i*b_i)) / sqrt(sum(a)*sum(b)))
//
// Two all-zero vectors are at distance 0; one all-zero vector is at distance 1.
func Hellinger(a, b []float32) float64 {
	checkPair(a, b)
	l1a, l1b := vek32.Sum(a), vek32.Sum(b)
	switch {
	case l1a == 0 && l1b == 0:
		return 0
	case l1a == 0 || l1b == 0:
		return 1
	}
	overlap := vek32.Sum(vek32.Sqrt(vek32.Mul(a, b)))
	// Rounding can push proportional vectors slightly below zero.
	inner := max(0, 1-overlap/math32.Sqrt(l1a*l1b))
	return float64(math32.Sqrt(inner))
}
