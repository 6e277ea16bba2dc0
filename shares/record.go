package shares

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"sss/bigint"
	"sss/logs"
)

const keysField = "keys"

var (
	ErrMissingKeys = errors.New("missing \"keys\" object")
	ErrBadIndex    = errors.New("share index must be a positive decimal integer")
	ErrBadBase     = errors.New("invalid base field")
	ErrBadShare    = errors.New("malformed share entry")
	ErrDuplicateX  = errors.New("duplicate share index")
)

// Keys 对应输入里的 "keys"，N 仅作参考，K 为门限
type Keys struct {
	N int `json:"n"`
	K int `json:"k"`
}

// Share 解码前的份额：x 来自对象键，y 是 Base 进制的数字串
type Share struct {
	Key    string
	X      bigint.Int
	Base   int
	Digits string
}

// Record 一份完整输入，Shares 按 x 升序排列
type Record struct {
	Keys   Keys
	Shares []Share
}

type rawShare struct {
	Base  json.RawMessage `json:"base"`
	Value *string         `json:"value"`
}

// parseBase base 既可以是字符串 "16" 也可以是数字 16
func parseBase(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: missing", ErrBadBase)
	}
	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadBase, err)
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrBadBase, raw)
		}
		s = n.String()
	}
	base, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadBase, s)
	}
	return base, nil
}

// Parse 解析 JSON 输入。base 的取值范围与数字串本身留给解码器检查
func Parse(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse share record: %w", err)
	}

	keysRaw, ok := raw[keysField]
	if !ok {
		return nil, ErrMissingKeys
	}
	var keys Keys
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingKeys, err)
	}

	rec := &Record{Keys: keys, Shares: make([]Share, 0, len(raw)-1)}
	for key, val := range raw {
		if key == keysField {
			continue
		}
		x, err := bigint.Parse(key)
		if err != nil || x.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadIndex, key)
		}

		var rs rawShare
		if err := json.Unmarshal(val, &rs); err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrBadShare, key, err)
		}
		base, err := parseBase(rs.Base)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		if rs.Value == nil {
			return nil, fmt.Errorf("%w: key %q has no value", ErrBadShare, key)
		}
		rec.Shares = append(rec.Shares, Share{Key: key, X: x, Base: base, Digits: *rs.Value})
	}

	// 整数键按数值升序即为输入的稳定顺序
	sort.SliceStable(rec.Shares, func(i, j int) bool {
		return rec.Shares[i].X.Cmp(rec.Shares[j].X) < 0
	})
	// "2" 与 "02" 指向同一个 x，排序后相邻
	for i := 1; i < len(rec.Shares); i++ {
		prev, cur := rec.Shares[i-1], rec.Shares[i]
		if prev.X.Equal(cur.X) {
			a, b := prev.Key, cur.Key
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: keys %q and %q both give x=%s", ErrDuplicateX, a, b, cur.X)
		}
	}

	if keys.N != len(rec.Shares) {
		logs.Warn("keys.n=%d but %d shares present", keys.N, len(rec.Shares))
	}
	return rec, nil
}

// Load 读取并解析文件，文件不存在时错误满足 errors.Is(err, os.ErrNotExist)
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Select 取按顺序的前 K 个份额；份额不足时原样返回全部，由重建阶段报错
func (r *Record) Select() []Share {
	if r.Keys.K <= 0 || r.Keys.K >= len(r.Shares) {
		return r.Shares
	}
	return r.Shares[:r.Keys.K]
}

// Degree 多项式次数 k-1
func (r *Record) Degree() int { return r.Keys.K - 1 }
