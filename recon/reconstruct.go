package recon

import (
	"sort"

	"github.com/shopspring/decimal"

	"sss/bigint"
)

// Point 解码后的求值点 (x, y)
type Point struct {
	X bigint.Int
	Y bigint.Int
}

// Term 单个拉格朗日项的追踪记录，不影响计算结果
type Term struct {
	Index        int
	X            bigint.Int
	Y            bigint.Int
	Coefficient  string          // L_j(0)，约分后的有理数
	Contribution string          // y_j * L_j(0)
	Approx       decimal.Decimal // L_j(0) 的十进制近似
}

type options struct {
	tracer func(Term)
}

type Option func(*options)

// WithTracer 每算完一项回调一次
func WithTracer(fn func(Term)) Option {
	return func(o *options) { o.tracer = fn }
}

// selectPoints 校验前置条件，取前 k 个点并按 x 升序排列
// 重复 x 的检查覆盖调用方给出的全部点，并且发生在任何运算之前
func selectPoints(points []Point, k int) ([]Point, error) {
	if k < 1 {
		return nil, &Error{Kind: ErrInvalidThreshold, Need: k}
	}
	if len(points) < k {
		return nil, &Error{Kind: ErrInsufficientPoints, Need: k, Got: len(points)}
	}
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		key := p.X.String()
		if _, dup := seen[key]; dup {
			return nil, &Error{Kind: ErrDuplicateX, X: p.X}
		}
		seen[key] = struct{}{}
	}

	selected := make([]Point, k)
	copy(selected, points[:k])
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].X.Cmp(selected[j].X) < 0
	})
	return selected, nil
}

// coefficient 计算 L_j(0) = Π(-x_m) / Π(x_j - x_m)，m != j，不约分
// k == 1 时两个乘积都为空，结果为 1/1
func coefficient(pts []Point, j int) (rational, error) {
	num := bigint.One
	den := bigint.One
	xj := pts[j].X
	for m := range pts {
		if m == j {
			continue
		}
		xm := pts[m].X
		num = num.Mul(xm.Neg())
		den = den.Mul(xj.Sub(xm))
	}
	if den.IsZero() {
		return rational{}, &Error{Kind: ErrZeroDenominator, X: xj}
	}
	return rational{num: num, den: den}, nil
}

// Reconstruct 用精确的拉格朗日插值求 f(0)
// 每一项都以有理数累加，最后约分一次；分母不是 ±1 说明输入与整系数多项式不符
func Reconstruct(points []Point, k int, opts ...Option) (bigint.Int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pts, err := selectPoints(points, k)
	if err != nil {
		return bigint.Int{}, err
	}

	sum := rational{num: bigint.Zero, den: bigint.One}
	for j := range pts {
		coef, err := coefficient(pts, j)
		if err != nil {
			return bigint.Int{}, err
		}
		term := rational{num: pts[j].Y.Mul(coef.num), den: coef.den}
		sum = sum.add(term)

		if o.tracer != nil {
			o.tracer(Term{
				Index:        j,
				X:            pts[j].X,
				Y:            pts[j].Y,
				Coefficient:  coef.String(),
				Contribution: term.String(),
				Approx:       coef.approx(),
			})
		}
	}

	final, err := sum.reduce()
	if err != nil {
		return bigint.Int{}, &Error{Kind: ErrZeroDenominator, Detail: err.Error()}
	}
	if !final.den.Equal(bigint.One) {
		return bigint.Int{}, &Error{Kind: ErrNonIntegerSecret, Detail: "f(0) = " + final.String()}
	}
	return final.num, nil
}
