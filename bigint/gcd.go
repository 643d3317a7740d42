package bigint

import (
	"fmt"
	"math/big"
)

// ErrNotDivisible indicates ExactDiv was asked to divide a by b where b
// does not evenly divide a. Callers of ExactDiv in this repository only
// ever call it where divisibility is guaranteed by construction; seeing
// this sentinel means that guarantee was violated.
var ErrNotDivisible = fmt.Errorf("bigint: dividend is not an exact multiple of divisor")

// ExtendedGCD computes (g, x, y) such that g = gcd(|a|, |b|) >= 0 and
// x*a + y*b = g, via the Euclidean algorithm.
//
// Contract:
//   - g >= 0.
//   - x*a + y*b == g exactly.
//   - Either argument may be zero: ExtendedGCD(0, b) = (|b|, 0, sign(b)),
//     symmetrically for ExtendedGCD(a, 0).
//   - If a != 0 divides b, the result is (|a|, sign(a), 0), so a Bezout
//     update with a divisible partner leaves a's row or column unchanged.
//
// ExtendedGCD never mutates a or b.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	g, x, y = new(big.Int), new(big.Int), new(big.Int)
	if a.Sign() != 0 && new(big.Int).Rem(b, a).Sign() == 0 {
		g.Abs(a)
		x.SetInt64(int64(a.Sign()))
		return g, x, y
	}
	g.GCD(x, y, a, b) // big.Int.GCD supports negative/zero operands since Go 1.14
	return g, x, y
}

// ExactDiv returns a/b, requiring b to divide a evenly.
// Returns ErrNotDivisible if a%b != 0 (including b == 0).
func ExactDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrNotDivisible
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 {
		return nil, ErrNotDivisible
	}
	return q, nil
}

// LCM returns the least common multiple of a and b using lcm = |a*b|/gcd(a,b).
// Returns zero if either input is zero, matching the mathematical convention
// used by snf's divisibility-chain enforcement, which skips a pair entirely
// once their gcd is zero.
func LCM(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	if g.Sign() == 0 {
		return new(big.Int)
	}
	prod := new(big.Int).Mul(a, b)
	prod.Abs(prod)
	l, _ := ExactDiv(prod, g)
	return l
}
