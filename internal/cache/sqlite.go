package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"DaxBoard/internal/model"
)

// SQLiteCache persists provider responses to a SQLite database with a
// fixed TTL per entry.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// NewSQLiteCache opens (or creates) the cache database and runs
// migrations.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads during a render cycle never block a store.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db, ttl: ttl}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite cache opened: %s (ttl %s)", dbPath, ttl)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_series (
			symbol     TEXT    NOT NULL,
			start_ts   INTEGER NOT NULL,
			end_ts     INTEGER NOT NULL,
			interval   TEXT    NOT NULL,
			fetched_at INTEGER NOT NULL,
			expires_at INTEGER NOT NULL,
			bars       BLOB    NOT NULL,
			PRIMARY KEY (symbol, start_ts, end_ts, interval)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_series_expiry ON price_series(expires_at)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Get returns the stored series for the key if present and unexpired.
func (c *SQLiteCache) Get(key Key) (*model.PriceSeries, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	var blob []byte
	err := c.db.QueryRow(
		`SELECT fetched_at, bars FROM price_series
		 WHERE symbol=? AND start_ts=? AND end_ts=? AND interval=? AND expires_at>?`,
		key.Symbol, key.Start.Unix(), key.End.Unix(), string(key.Interval), time.Now().Unix(),
	).Scan(&fetchedAt, &blob)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("[WARN] cache lookup %s: %v", key.Symbol, err)
		return nil, false
	}

	var bars []model.Bar
	if err := json.Unmarshal(blob, &bars); err != nil {
		log.Printf("[WARN] cache decode %s: %v", key.Symbol, err)
		return nil, false
	}
	return &model.PriceSeries{
		Symbol:    key.Symbol,
		Bars:      bars,
		FetchedAt: time.Unix(fetchedAt, 0).UTC(),
	}, true
}

// Put stores the full series under the key, replacing any prior entry.
func (c *SQLiteCache) Put(key Key, series *model.PriceSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob, err := json.Marshal(series.Bars)
	if err != nil {
		return fmt.Errorf("encode bars: %w", err)
	}
	now := time.Now()
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO price_series
		 (symbol, start_ts, end_ts, interval, fetched_at, expires_at, bars)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		key.Symbol, key.Start.Unix(), key.End.Unix(), string(key.Interval),
		series.FetchedAt.Unix(), now.Add(c.ttl).Unix(), blob,
	)
	if err != nil {
		return fmt.Errorf("store series: %w", err)
	}
	return nil
}

// Purge deletes expired entries.
func (c *SQLiteCache) Purge() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.db.Exec(`DELETE FROM price_series WHERE expires_at<=?`, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("[INFO] cache purged %d expired entries", n)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
