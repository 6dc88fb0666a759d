package core

// Metric computes a non-negative dissimilarity between two vectors of equal
// length.
//
// Implementations used for self-distance matrices must be commutative,
// Distance(u, v) == Distance(v, u), and must return 0 for Distance(u, u).
// Neither property is checked at runtime.
type Metric interface {
	Distance(a, b []float32) (float64, error)
}

// DistanceFunc computes the distance between two vectors.
// a: the first vector.
// b: the second vector.
// Returns the computed distance as a float64.
type DistanceFunc func(a, b []float32) float64

// Distance calls f. It lets any DistanceFunc serve as a Metric that never fails.
func (f DistanceFunc) Distance(a, b []float32) (float64, error) {
	return f(a, b), nil
}

// MetricFunc adapts a fallible function to the Metric interface.
type MetricFunc func(a, b []float32) (float64, error)

// Distance calls f.
func (f MetricFunc) Distance(a, b []float32) (float64, error) {
	return f(a, b)
}
