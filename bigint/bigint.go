package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInexactDivision = errors.New("inexact division")
	ErrBadDecimal      = errors.New("invalid decimal literal")
	ErrBadRadix        = errors.New("radix out of range [2,36]")
)

// Int 不可变的任意精度有符号整数
// 零值即为 0；所有运算都返回新值，不修改接收者或参数
type Int struct {
	v *big.Int
}

var bigZero = new(big.Int)

func (a Int) ref() *big.Int {
	if a.v == nil {
		return bigZero
	}
	return a.v
}

func wrap(v *big.Int) Int { return Int{v: v} }

// New 由机器整数构造
func New(x int64) Int { return wrap(big.NewInt(x)) }

var (
	Zero = New(0)
	One  = New(1)
)

// FromBig 拷贝一份 *big.Int，之后外部修改 x 不会影响返回值
func FromBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	return wrap(new(big.Int).Set(x))
}

// Parse 解析十进制字面量，允许一个前导 '-'，其余只能是 0-9
func Parse(s string) (Int, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrBadDecimal, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, fmt.Errorf("%w: %q at offset %d", ErrBadDecimal, s, i)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("%w: %q", ErrBadDecimal, s)
	}
	return wrap(v), nil
}

func (a Int) Add(b Int) Int { return wrap(new(big.Int).Add(a.ref(), b.ref())) }
func (a Int) Sub(b Int) Int { return wrap(new(big.Int).Sub(a.ref(), b.ref())) }
func (a Int) Mul(b Int) Int { return wrap(new(big.Int).Mul(a.ref(), b.ref())) }
func (a Int) Neg() Int { return wrap(new(big.Int).Neg(a.ref())) }
func (a Int) Abs() Int { return wrap(new(big.Int).Abs(a.ref())) }

// DivExact 精确除法：除数为 0 或余数不为 0 时返回错误，绝不截断
func (a Int) DivExact(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, a)
	}
	q, r := a.quoRem(b)
	if !r.IsZero() {
		return Int{}, fmt.Errorf("%w: %s / %s leaves remainder %s", ErrInexactDivision, a, b, r)
	}
	return q, nil
}

// quoRem 截断除法（商向零取整），仅供包内使用
func (a Int) quoRem(b Int) (Int, Int) {
	q, r := new(big.Int).QuoRem(a.ref(), b.ref(), new(big.Int))
	return wrap(q), wrap(r)
}

// Mod 返回 a mod m，结果落在 [0, |m|)，m 不能为 0
func (a Int) Mod(m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, fmt.Errorf("%w: %s mod 0", ErrDivisionByZero, a)
	}
	return wrap(new(big.Int).Mod(a.ref(), new(big.Int).Abs(m.ref()))), nil
}

// ModInverse 求 a 在模 m 下的逆元，不存在时 ok=false
func (a Int) ModInverse(m Int) (Int, bool) {
	if m.Sign() <= 0 {
		return Int{}, false
	}
	inv := new(big.Int).ModInverse(a.ref(), m.ref())
	if inv == nil {
		return Int{}, false
	}
	return wrap(inv), true
}

// GCD 返回 |a| 与 |b| 的最大公约数（非负）；GCD(0,0)=0
func GCD(a, b Int) Int {
	return wrap(new(big.Int).GCD(nil, nil, a.Abs().ref(), b.Abs().ref()))
}

func (a Int) Cmp(b Int) int { return a.ref().Cmp(b.ref()) }
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }
func (a Int) Sign() int { return a.ref().Sign() }
func (a Int) IsZero() bool { return a.Sign() == 0 }
func (a Int) IsInt64() bool { return a.ref().IsInt64() }
func (a Int) Int64() int64 { return a.ref().Int64() }
func (a Int) BitLen() int { return a.ref().BitLen() }
func (a Int) String() string { return a.ref().String() }
func (a Int) Big() *big.Int { return new(big.Int).Set(a.ref()) }
func (a Int) Bytes() []byte { return a.ref().Bytes() }

// Text 按 radix(2..36) 输出，字母为小写
func (a Int) Text(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", fmt.Errorf("%w: %d", ErrBadRadix, radix)
	}
	return a.ref().Text(radix), nil
}

// MarshalText / UnmarshalText 以十进制文本编码，便于 JSON 存取
func (a Int) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Int) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
