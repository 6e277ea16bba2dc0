package field

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/edwards25519"

	"sss/bigint"
)

var ErrUnknownField = errors.New("unknown field")

const (
	Integers  = ""
	Secp256k1 = "secp256k1"
	BN256     = "bn256"
	Ed25519   = "ed25519"
)

// 各曲线的群阶，用作份额所在素数域的模数
var orders = map[string]func() (*big.Int, error){
	Secp256k1: func() (*big.Int, error) { return new(big.Int).Set(btcec.S256().Params().N), nil },
	BN256:     func() (*big.Int, error) { return new(big.Int).Set(bn256.Order), nil },
	Ed25519:   func() (*big.Int, error) { return kyberOrder(edwards25519.NewBlakeSHA256Ed25519()) },
}

// kyberOrder 从 kyber 群取阶：标量 -1 编码后加一
// edwards25519 的标量按小端序列化
func kyberOrder(g kyber.Group) (*big.Int, error) {
	b, err := g.Scalar().SetInt64(-1).MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scalar: %w", err)
	}
	n := new(big.Int).SetBytes(reverse(b))
	return n.Add(n, big.NewInt(1)), nil
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// Normalize 去掉首尾空白并转小写，Lookup 与账本指纹都用这个形式
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup 按名称返回模数；名称为空表示精确整数模式，ok=false
func Lookup(name string) (p bigint.Int, ok bool, err error) {
	name = Normalize(name)
	if name == Integers {
		return bigint.Int{}, false, nil
	}
	f, found := orders[name]
	if !found {
		return bigint.Int{}, false, fmt.Errorf("%w: %q (known: %s)", ErrUnknownField, name, strings.Join(Names(), ", "))
	}
	n, err := f()
	if err != nil {
		return bigint.Int{}, false, err
	}
	return bigint.FromBig(n), true, nil
}

// Names 已知域名称，按字母序
func Names() []string {
	names := make([]string, 0, len(orders))
	for n := range orders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
