// app/app.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sss/bigint"
	"sss/codec"
	"sss/config"
	"sss/field"
	"sss/logs"
	"sss/recon"
	"sss/shares"
	"sss/store"
)

// App 把解码器、重建器和结果账本串起来
// 不持有可变的计算状态，Solve 可以并发调用
type App struct {
	cfg     *config.Config
	decoder *codec.CachedDecoder
	ledger  *store.Store // 未启用时为 nil

	fieldName string
	modulus   bigint.Int
	inField   bool
}

// Result 一次重建的完整结果
type Result struct {
	Keys   shares.Keys
	Shares []shares.Share // 实际使用的前 k 个份额
	Points []recon.Point
	Field  string
	Secret bigint.Int
	Terms  []recon.Term // 仅在整数模式开启 trace 时填充，账本命中也会重算
	Cached bool
}

// NewApp 按配置创建应用实例
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if lv, err := logs.ParseLevel(cfg.Log.Level); err == nil {
		logs.SetLevel(lv)
	}

	dec, err := codec.NewCachedDecoder(cfg.Decoder.CacheSize)
	if err != nil {
		return nil, err
	}
	mod, inField, err := field.Lookup(cfg.Reconstruct.Field)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		decoder:   dec,
		fieldName: field.Normalize(cfg.Reconstruct.Field),
		modulus:   mod,
		inField:   inField,
	}
	if cfg.Store.Enabled {
		if a.ledger, err = store.Open(cfg.Store); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Close 关闭账本
func (a *App) Close() error {
	if a.ledger == nil {
		return nil
	}
	return a.ledger.Close()
}

// Decode 把份额解码为点，错误里带上份额的键
func (a *App) Decode(list []shares.Share) ([]recon.Point, error) {
	points := make([]recon.Point, 0, len(list))
	for _, s := range list {
		y, err := a.decoder.Decode(s.Digits, s.Base)
		if err != nil {
			return nil, fmt.Errorf("share %s: %w", s.Key, err)
		}
		logs.Verbose("root %s: base=%d value=%q -> %s", s.Key, s.Base, s.Digits, y)
		points = append(points, recon.Point{X: s.X, Y: y})
	}
	return points, nil
}

// Solve 取记录的前 k 个份额，解码并恢复 f(0)
func (a *App) Solve(rec *shares.Record) (*Result, error) {
	selected := rec.Select()
	points, err := a.Decode(selected)
	if err != nil {
		return nil, err
	}
	res := &Result{Keys: rec.Keys, Shares: selected, Points: points, Field: a.fieldName}

	// 整数模式下 trace 需要逐项结果，账本命中也要重算一遍
	wantTerms := a.cfg.Reconstruct.Trace && !a.inField

	var (
		fp  []byte
		hit *store.Entry
	)
	if a.ledger != nil {
		fp = store.Fingerprint(rec.Keys.K, a.fieldName, points)
		e, ok, err := a.ledger.Get(fp)
		if err != nil {
			return nil, err
		}
		if ok {
			logs.Info("ledger hit %x", fp[:8])
			res.Secret = e.Secret
			res.Cached = true
			if !wantTerms {
				return res, nil
			}
			hit = &e
		}
	}

	var secret bigint.Int
	if a.inField {
		secret, err = recon.ReconstructMod(points, rec.Keys.K, a.modulus)
	} else {
		var opts []recon.Option
		if wantTerms {
			opts = append(opts, recon.WithTracer(func(t recon.Term) {
				logs.Verbose("L_%d(0) at x=%s: %s (~%s), contribution %s", t.Index, t.X, t.Coefficient, t.Approx, t.Contribution)
				res.Terms = append(res.Terms, t)
			}))
		}
		secret, err = recon.Reconstruct(points, rec.Keys.K, opts...)
	}
	if err != nil {
		return nil, err
	}
	if hit != nil && !secret.Equal(hit.Secret) {
		logs.Warn("ledger entry %x disagrees with recomputed secret %s", fp[:8], secret)
	}
	res.Secret = secret
	if hit != nil {
		return res, nil
	}

	if a.ledger != nil {
		xs := make([]string, len(points))
		for i, p := range points {
			xs[i] = p.X.String()
		}
		entry := store.Entry{Secret: res.Secret, K: rec.Keys.K, Field: a.fieldName, Xs: xs, Created: time.Now().UTC()}
		if err := a.ledger.Put(fp, entry); err != nil {
			// 账本写失败不影响结果
			logs.Warn("failed to record result: %v", err)
		}
	}
	return res, nil
}

// FileResult 单个文件的处理结果
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// SolveFiles 并发处理多个输入文件，结果顺序与 paths 一致
// ctx 取消后尚未开始的文件直接返回 ctx.Err()
func (a *App) SolveFiles(ctx context.Context, paths []string) []FileResult {
	out := make([]FileResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		out[i].Path = path
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return
			}
			rec, err := shares.Load(path)
			if err != nil {
				out[i].Err = err
				return
			}
			out[i].Result, out[i].Err = a.Solve(rec)
		}(i, path)
	}
	wg.Wait()
	return out
}
