package recon

import (
	"math/rand"

	"sss/bigint"
)

// polynomial 测试用的整系数多项式，Coefficients[0] 为常数项
type polynomial struct {
	Coefficients []bigint.Int
}

// randomPolynomial 生成 t-1 阶多项式，系数取 [-2^bits, 2^bits)
func randomPolynomial(rng *rand.Rand, t int, secret bigint.Int, bits int) *polynomial {
	coeffs := make([]bigint.Int, t)
	coeffs[0] = secret
	bound := bigint.One
	for i := 0; i < bits; i++ {
		bound = bound.Mul(bigint.New(2))
	}
	for i := 1; i < t; i++ {
		c := bigint.Zero
		for j := 0; j < bits/31+1; j++ {
			c = c.Mul(bigint.New(1 << 31)).Add(bigint.New(rng.Int63n(1 << 31)))
		}
		c, _ = c.Mod(bound.Mul(bigint.New(2)))
		coeffs[i] = c.Sub(bound)
	}
	return &polynomial{Coefficients: coeffs}
}

// Evaluate 用 Horner 规则在 x 处求值
func (p *polynomial) Evaluate(x bigint.Int) bigint.Int {
	result := bigint.Zero
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

func (p *polynomial) sample(xs ...int64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		bx := bigint.New(x)
		pts[i] = Point{X: bx, Y: p.Evaluate(bx)}
	}
	return pts
}

func ints(vs ...int64) []bigint.Int {
	out := make([]bigint.Int, len(vs))
	for i, v := range vs {
		out[i] = bigint.New(v)
	}
	return out
}

// combinations 枚举 n 选 k 的全部下标组合
func combinations(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < n; i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}
