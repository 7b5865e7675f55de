package analysis

import "math"

// EmbedDim is the dimensionality of the deterministic token embedding.
const EmbedDim = 3

// EmbedToken derives the deterministic embedding for a single token. The
// token's character code points are summed and folded through three coprime
// moduli, giving a stable pseudo-semantic position in [0,1)^3.
func EmbedToken(token string) []float64 {
	var sum int
	for _, r := range token {
		sum += int(r)
	}

	return []float64{
		float64(sum%97+1) / 100,
		float64(sum*3%89) / 100,
		float64(sum*7%83) / 100,
	}
}

// EmbedTokens averages the per-token embeddings and L2-normalizes the result.
// A zero-magnitude average is returned unnormalized, i.e. as the zero vector.
// Returns the zero vector for an empty token list.
func EmbedTokens(tokens []string) []float64 {
	avg := make([]float64, EmbedDim)
	if len(tokens) == 0 {
		return avg
	}

	for _, token := range tokens {
		v := EmbedToken(token)
		for i := range avg {
			avg[i] += v[i]
		}
	}
	for i := range avg {
		avg[i] /= float64(len(tokens))
	}

	return Normalize(avg)
}

// Normalize scales v to unit length. Zero-magnitude vectors pass through
// untouched.
func Normalize(v []float64) []float64 {
	mag := Magnitude(v)
	if mag == 0 {
		return v
	}

	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] / mag
	}
	return out
}

// Magnitude returns the L2 norm of v.
func Magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of a and b, or 0 when either vector
// has zero magnitude. Vectors of unequal length are compared over the
// shorter prefix.
func Cosine(a, b []float64) float64 {
	magA := Magnitude(a)
	magB := Magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot / (magA * magB)
}
