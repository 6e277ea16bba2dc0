// config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"sss/field"
	"sss/logs"
)

// Config 主配置结构
type Config struct {
	Log         LogConfig         `json:"log"`
	Decoder     DecoderConfig     `json:"decoder"`
	Reconstruct ReconstructConfig `json:"reconstruct"`
	Store       StoreConfig       `json:"store"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `json:"level"` // trace|debug|verbose|info|warn|error
}

// DecoderConfig 解码配置
type DecoderConfig struct {
	CacheSize int `json:"cacheSize"` // LRU 条目数，0 表示不缓存
}

// ReconstructConfig 重建配置
type ReconstructConfig struct {
	Field string `json:"field"` // 空为精确整数模式；secp256k1|bn256|ed25519 为素数域模式
	Trace bool   `json:"trace"` // 逐项输出拉格朗日系数
}

// StoreConfig 结果账本配置
type StoreConfig struct {
	Enabled  bool   `json:"enabled"`
	Path     string `json:"path"`
	InMemory bool   `json:"inMemory"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Decoder: DecoderConfig{
			CacheSize: 1024,
		},
		Reconstruct: ReconstructConfig{
			Field: field.Integers,
			Trace: false,
		},
		Store: StoreConfig{
			Enabled:  false,
			Path:     "./data/results",
			InMemory: false,
		},
	}
}

// LoadFromFile 从 JSON 文件加载配置，文件里没写的字段保留默认值
// 文件不存在时返回默认配置
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logs.Warn("config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置合法性
func (c *Config) Validate() error {
	if _, err := logs.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Decoder.CacheSize < 0 {
		return fmt.Errorf("decoder.cacheSize must not be negative")
	}
	if _, _, err := field.Lookup(c.Reconstruct.Field); err != nil {
		return err
	}
	if c.Store.Enabled && !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required when the store is enabled")
	}
	return nil
}
