package codec

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"sss/bigint"
)

// CachedDecoder 在 Decode 前面加一层 LRU
// bigint.Int 不可变，缓存里的值可以直接交给多个调用方
type CachedDecoder struct {
	cache *lru.Cache
}

// NewCachedDecoder size<=0 时退化为不缓存
func NewCachedDecoder(size int) (*CachedDecoder, error) {
	if size <= 0 {
		return &CachedDecoder{}, nil
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create decode cache: %w", err)
	}
	return &CachedDecoder{cache: c}, nil
}

func cacheKey(digits string, base int) string {
	return strconv.Itoa(base) + ":" + strings.ToLower(digits)
}

// Decode 语义与包级 Decode 相同，错误不进缓存
func (d *CachedDecoder) Decode(digits string, base int) (bigint.Int, error) {
	if d.cache == nil {
		return Decode(digits, base)
	}
	key := cacheKey(digits, base)
	if v, ok := d.cache.Get(key); ok {
		return v.(bigint.Int), nil
	}
	v, err := Decode(digits, base)
	if err != nil {
		return bigint.Int{}, err
	}
	d.cache.Add(key, v)
	return v, nil
}

// Len 当前缓存条目数
func (d *CachedDecoder) Len() int {
	if d.cache == nil {
		return 0
	}
	return d.cache.Len()
}
