package recon

import (
	"github.com/shopspring/decimal"

	"sss/bigint"
)

// approxPlaces 日志里系数的小数位数
const approxPlaces = 12

// rational 精确有理数 num/den，den != 0
// 累加过程中不约分，只在最后 reduce 一次
type rational struct {
	num bigint.Int
	den bigint.Int
}

func (r rational) add(o rational) rational {
	return rational{
		num: r.num.Mul(o.den).Add(r.den.Mul(o.num)),
		den: r.den.Mul(o.den),
	}
}

// reduce 约分并把符号放到分子上
func (r rational) reduce() (rational, error) {
	g := bigint.GCD(r.num, r.den)
	num, err := r.num.DivExact(g)
	if err != nil {
		return rational{}, err
	}
	den, err := r.den.DivExact(g)
	if err != nil {
		return rational{}, err
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return rational{num: num, den: den}, nil
}

// String 约分后输出，整数不带分母
func (r rational) String() string {
	red, err := r.reduce()
	if err != nil {
		return r.num.String() + "/" + r.den.String()
	}
	if red.den.Equal(bigint.One) {
		return red.num.String()
	}
	return red.num.String() + "/" + red.den.String()
}

func (r rational) approx() decimal.Decimal {
	return decimal.NewFromBigInt(r.num.Big(), 0).
		DivRound(decimal.NewFromBigInt(r.den.Big(), 0), approxPlaces)
}
