package term

// Xu's algorithm for the number of LS terms of ℓᴺ.
//
// A(N, ℓ, ℓb, MS, ML) counts Slater determinants of N electrons with total
// 2·ms = MS and total mℓ = ML, where every spin-up electron has mℓ <= ℓb.
// MS is carried doubled so that every argument is an integer.
//
// Recursion:
//  1. N = 1, MS = 1:            1 if -ℓ <= ML <= ℓb.
//  2. MS = N (all spins up):    pick the largest mℓ = m of the N electrons and
//     recurse on the remaining N-1 with ℓb = m-1; m runs from
//     ⌈ML/N + (N-1)/2⌉ to min(ℓb, ML + f(N-2)).
//  3. |MS| < N, MS ≡ N (mod 2): spin-up and spin-down electrons are
//     independent; convolve the all-up counts of (N+MS)/2 and (N-MS)/2
//     electrons over the split of ML.
//  4. otherwise 0.
//
// f(n) = Σ_{m=0..n} (ℓ-m) is the largest ML reachable by n+1 electrons of
// one spin.
//
// The number of terms with given (S, L) follows by inclusion-exclusion:
//
//	X = A(2S, L) - A(2S, L+1) + A(2S+2, L+1) - A(2S+2, L)

// Engine computes term multiplicities and memoizes A. The zero value is not
// usable; construct with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	cache memo
}

// NewEngine returns an Engine with its own memo cache.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{}
	if o.CacheSize > 0 {
		e.cache = newLRUMemo(o.CacheSize)
	} else {
		e.cache = newMapMemo()
	}
	return e
}

// CacheLen reports the number of memoized counts.
func (e *Engine) CacheLen() int { return e.cache.len() }

// A returns the number of Slater determinants of N equivalent ℓ electrons
// with doubled spin projection ms and orbital projection ml, spin-up mℓ
// bounded above by lb. See the recursion above.
func (e *Engine) A(n, l, lb, ms, ml int) int {
	k := slaterKey{n: n, l: l, lb: lb, ms: ms, ml: ml}
	if v, ok := e.cache.get(k); ok {
		return v
	}
	v := e.slater(n, l, lb, ms, ml)
	e.cache.put(k, v)
	return v
}

func (e *Engine) slater(n, l, lb, ms, ml int) int {
	switch {
	case n < 0:
		return 0
	case n == 0:
		if ms == 0 && ml == 0 {
			return 1
		}
		return 0
	case n == 1 && ms == 1:
		if -l <= ml && ml <= lb {
			return 1
		}
		return 0
	case ms == n:
		top := xuF(n-1, l)
		if ml < -top || ml > top {
			return 0
		}
		lo := ceilDiv(ml+n*(n-1)/2, n)
		hi := min(lb, ml+xuF(n-2, l))
		sum := 0
		for m := lo; m <= hi; m++ {
			sum += e.A(n-1, l, m-1, n-1, ml-m)
		}
		return sum
	case ms > -n && ms < n && (n-ms)%2 == 0:
		down, up := (n-ms)/2, (n+ms)/2
		fd, fu := xuF(down-1, l), xuF(up-1, l)
		if abs(ml) > fd+fu {
			return 0
		}
		sum := 0
		for m1 := -fd; m1 <= fd; m1++ {
			if a := e.A(down, l, l, down, m1); a != 0 {
				sum += a * e.A(up, l, l, up, ml-m1)
			}
		}
		return sum
	}
	return 0
}

// X returns the number of times the term with doubled spin twoS and orbital
// angular momentum L occurs in ℓᴺ.
func (e *Engine) X(n, l, twoS, L int) int {
	return e.A(n, l, l, twoS, L) - e.A(n, l, l, twoS, L+1) +
		e.A(n, l, l, twoS+2, L+1) - e.A(n, l, l, twoS+2, L)
}

// xuF returns Σ_{m=0..n} (ℓ-m), or 0 for n < 0.
func xuF(n, l int) int {
	if n < 0 {
		return 0
	}
	return (n + 1) * (2*l - n) / 2
}

// ceilDiv returns ⌈a/b⌉ for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
