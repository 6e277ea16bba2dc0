package codec

import (
	"errors"
	"fmt"

	"sss/bigint"
)

const (
	MinBase = 2
	MaxBase = 36
)

var (
	ErrInvalidBase      = errors.New("invalid base")
	ErrInvalidDigitChar = errors.New("invalid digit character")
	ErrDigitOutOfRange  = errors.New("digit out of range for base")
	ErrEmptyValue       = errors.New("empty value")
)

// DecodeError 携带出错的输入、位置和字符，Unwrap 返回上面的哨兵错误
type DecodeError struct {
	Kind   error
	Digits string
	Base   int
	Index  int // 出错字符的字节偏移，与字符无关的错误为 -1
	Char   rune
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrInvalidBase:
		return fmt.Sprintf("%v: %d (must be %d-%d)", e.Kind, e.Base, MinBase, MaxBase)
	case ErrEmptyValue:
		return fmt.Sprintf("%v in base %d", e.Kind, e.Base)
	default:
		return fmt.Sprintf("%v: %q at offset %d of %q (base %d)", e.Kind, e.Char, e.Index, e.Digits, e.Base)
	}
}

func (e *DecodeError) Unwrap() error { return e.Kind }

// digitValue 大小写不敏感地把字符映射为 0..35，非字母数字返回 -1
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Decode 把 base 进制的数字串解码为非负整数
// 从最高位开始按 Horner 规则累加：acc = acc*base + d
func Decode(digits string, base int) (bigint.Int, error) {
	if base < MinBase || base > MaxBase {
		return bigint.Int{}, &DecodeError{Kind: ErrInvalidBase, Digits: digits, Base: base, Index: -1}
	}
	if digits == "" {
		return bigint.Int{}, &DecodeError{Kind: ErrEmptyValue, Base: base, Index: -1}
	}

	b := bigint.New(int64(base))
	acc := bigint.Zero
	for i, c := range digits {
		d := digitValue(c)
		if d < 0 {
			return bigint.Int{}, &DecodeError{Kind: ErrInvalidDigitChar, Digits: digits, Base: base, Index: i, Char: c}
		}
		if d >= base {
			return bigint.Int{}, &DecodeError{Kind: ErrDigitOutOfRange, Digits: digits, Base: base, Index: i, Char: c}
		}
		acc = acc.Mul(b).Add(bigint.New(int64(d)))
	}
	return acc, nil
}

// Encode 是 Decode 的逆运算，只接受非负数
func Encode(v bigint.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", &DecodeError{Kind: ErrInvalidBase, Base: base, Index: -1}
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("cannot encode negative value %s", v)
	}
	return v.Text(base)
}
