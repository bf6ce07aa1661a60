package bitsource

import "math/rand/v2"

// PCG is a deterministic non-cryptographic bit stream over math/rand/v2's
// PCG generator. Cheaper than Blake2 per bit; meant for benchmarks and
// reproducible bulk generation where crypto-grade dispersion is not needed.
type PCG struct {
	feed
}

// NewPCG returns a deterministic Source for the given seed. The two PCG
// state words derive from the seed via SplitMix64 so nearby seeds do not
// produce correlated streams.
func NewPCG(seed uint64) *PCG {
	hi := splitmix64(seed)
	lo := splitmix64(hi)
	rng := rand.New(rand.NewPCG(hi, lo))

	var word uint64
	rem := 0
	p := &PCG{}
	p.next = func() (byte, error) {
		if rem == 0 {
			word = rng.Uint64()
			rem = 8
		}
		b := byte(word >> 56)
		word <<= 8
		rem--
		return b, nil
	}
	return p
}

// splitmix64 is the SplitMix64 finalizer; one step spreads the seed's
// entropy across all 64 bits.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
