package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v2"
	"golang.org/x/crypto/sha3"

	"sss/bigint"
	"sss/config"
	"sss/logs"
	"sss/recon"
)

const resultPrefix = "result:"

// Entry 一次重建的记录
type Entry struct {
	Secret  bigint.Int `json:"secret"`
	K       int        `json:"k"`
	Field   string     `json:"field,omitempty"`
	Xs      []string   `json:"xs"`
	Created time.Time  `json:"created"`
}

// Store 基于 BadgerDB 的结果账本
// key = "result:" + hex(sha3-256(份额集合))，value = Entry 的 JSON
type Store struct {
	db *badger.DB
}

// Open 打开账本；InMemory 时不落盘
func Open(cfg config.StoreConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// badger v2 不自动创建父目录，需要手动创建
		if err := os.MkdirAll(cfg.Path, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	logs.Debug("result store opened (inMemory=%v path=%s)", cfg.InMemory, cfg.Path)
	return &Store{db: db}, nil
}

// Fingerprint 对 (k, field, 已选的点) 做 sha3-256
// 点按给定顺序参与哈希，调用方应传入已排序的选择结果
func Fingerprint(k int, fieldName string, points []recon.Point) []byte {
	h := sha3.New256()
	fmt.Fprintf(h, "k=%d;field=%s;", k, fieldName)
	for _, p := range points {
		fmt.Fprintf(h, "%s:%s;", p.X, p.Y)
	}
	return h.Sum(nil)
}

func resultKey(fp []byte) []byte {
	return []byte(resultPrefix + hex.EncodeToString(fp))
}

// Get 查询账本，不存在时 ok=false
func (s *Store) Get(fp []byte) (Entry, bool, error) {
	var (
		e     Entry
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(resultKey(fp))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read result %x: %w", fp, err)
	}
	return e, found, nil
}

// Put 写入（覆盖）一条记录
func (s *Store) Put(fp []byte, e Entry) error {
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(resultKey(fp), val)
	}); err != nil {
		return fmt.Errorf("failed to write result %x: %w", fp, err)
	}
	return nil
}

// Count 账本里的记录数
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(resultPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
