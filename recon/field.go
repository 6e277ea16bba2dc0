package recon

import (
	"sss/bigint"
)

// CoefficientsMod 为给定的一组 x 计算模 p 下的拉格朗日系数 L_i(0)
func CoefficientsMod(xs []bigint.Int, p bigint.Int) ([]bigint.Int, error) {
	if p.Cmp(bigint.New(2)) < 0 {
		return nil, &Error{Kind: ErrInvalidModulus, Detail: p.String()}
	}
	coeffs := make([]bigint.Int, len(xs))
	for i := range xs {
		xi := xs[i]
		num := bigint.One
		den := bigint.One
		for j := range xs {
			if i == j {
				continue
			}
			xj := xs[j]
			tmp, err := xj.Neg().Mod(p)
			if err != nil {
				return nil, err
			}
			if num, err = num.Mul(tmp).Mod(p); err != nil {
				return nil, err
			}

			diff, err := xi.Sub(xj).Mod(p)
			if err != nil {
				return nil, err
			}
			if den, err = den.Mul(diff).Mod(p); err != nil {
				return nil, err
			}
		}

		denInv, ok := den.ModInverse(p)
		if !ok {
			return nil, &Error{Kind: ErrZeroDenominator, X: xi, Detail: "not invertible mod p"}
		}
		li, err := num.Mul(denInv).Mod(p)
		if err != nil {
			return nil, err
		}
		coeffs[i] = li
	}
	return coeffs, nil
}

// ReconstructMod 在素数域 GF(p) 上根据 k 个份额恢复 f(0)
// 前置条件的校验与 Reconstruct 一致；x 模 p 相同的两点会得到 ErrZeroDenominator
func ReconstructMod(points []Point, k int, p bigint.Int) (bigint.Int, error) {
	if p.Cmp(bigint.New(2)) < 0 {
		return bigint.Int{}, &Error{Kind: ErrInvalidModulus, Detail: p.String()}
	}
	pts, err := selectPoints(points, k)
	if err != nil {
		return bigint.Int{}, err
	}

	xs := make([]bigint.Int, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
	}
	coeffs, err := CoefficientsMod(xs, p)
	if err != nil {
		return bigint.Int{}, err
	}

	f0 := bigint.Zero
	for i, pt := range pts {
		term, err := pt.Y.Mul(coeffs[i]).Mod(p)
		if err != nil {
			return bigint.Int{}, err
		}
		if f0, err = f0.Add(term).Mod(p); err != nil {
			return bigint.Int{}, err
		}
	}
	return f0, nil
}
