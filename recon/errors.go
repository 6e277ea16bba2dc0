package recon

import (
	"errors"
	"fmt"

	"sss/bigint"
)

var (
	ErrInvalidThreshold   = errors.New("threshold must be at least 1")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrDuplicateX         = errors.New("duplicate x coordinate")
	ErrZeroDenominator    = errors.New("zero denominator in lagrange coefficient")
	ErrNonIntegerSecret   = errors.New("reconstructed secret is not an integer")
	ErrInvalidModulus     = errors.New("modulus must be at least 2")
)

// Error 重建失败的具体原因，Kind 为上面的哨兵错误之一
type Error struct {
	Kind   error
	X      bigint.Int // 出问题的点的 x（DuplicateX / ZeroDenominator）
	Need   int
	Got    int
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInsufficientPoints:
		return fmt.Sprintf("%v: need %d, got %d", e.Kind, e.Need, e.Got)
	case ErrInvalidThreshold:
		return fmt.Sprintf("%v: got %d", e.Kind, e.Need)
	case ErrDuplicateX, ErrZeroDenominator:
		if e.Detail != "" {
			return fmt.Sprintf("%v: x=%s (%s)", e.Kind, e.X, e.Detail)
		}
		return fmt.Sprintf("%v: x=%s", e.Kind, e.X)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
		}
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() error { return e.Kind }
