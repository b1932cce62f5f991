// Package store keeps the active dataset in an in-memory SQLite table.
//
// At most one dataset exists at a time. Fetch refuses to run while a table is
// present, Clear drops it. Mutations are serialized: the presence check and
// the in-flight flag are taken under one lock, and rows are inserted only
// after the whole payload was retrieved and decoded.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
	"github.com/ytget/dataset-viewer/internal/source"
)

// MemoryDSN is the SQLite data source name of the private in-memory database
const MemoryDSN = ":memory:"

// Config holds configuration for New.
type Config struct {
	// SourceURL overrides the profile default source
	SourceURL string
	Fetcher   source.Fetcher
	Logger    zerolog.Logger
}

// Store implements DataStore on top of SQLite.
type Store struct {
	db        *sqlx.DB
	profile   *profile.Profile
	fetcher   source.Fetcher
	sourceURL string
	log       zerolog.Logger

	mu       sync.Mutex
	fetching bool
	onClear  func()
}

// New opens a private in-memory database for the given profile.
func New(p *profile.Profile, cfg Config) (*Store, error) {
	if p == nil {
		return nil, errors.New("profile is required")
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = source.NewHTTPFetcher(source.DefaultTimeout)
	}
	if cfg.SourceURL == "" {
		cfg.SourceURL = p.SourceURL
	}

	db, err := sqlx.Open("sqlite", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{
		db:        db,
		profile:   p,
		fetcher:   cfg.Fetcher,
		sourceURL: cfg.SourceURL,
		log:       logger.For(cfg.Logger, "store"),
	}, nil
}

// SetClearCallback sets the function called after a successful Clear
func (s *Store) SetClearCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = callback
}

// Profile returns the dataset profile
func (s *Store) Profile() *profile.Profile {
	return s.profile
}

// SourceURL returns the URL datasets are fetched from
func (s *Store) SourceURL() string {
	return s.sourceURL
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Loaded reports whether the dataset table exists
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.tableExists(context.Background())
	if err != nil {
		s.log.Error().Err(err).Msg("checking table")
		return false
	}
	return exists
}

// Fetch downloads the dataset and loads it into a fresh table.
func (s *Store) Fetch(ctx context.Context) (model.DatasetSummary, error) {
	start := time.Now()
	if err := s.beginFetch(ctx); err != nil {
		return model.DatasetSummary{}, err
	}
	defer s.endFetch()

	fetchID := uuid.NewString()
	log := s.log.With().Str("fetch_id", fetchID).Str("url", s.sourceURL).Logger()
	log.Debug().Msg("fetching dataset")

	body, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if err != nil {
		log.Warn().Err(err).Msg("fetch failed")
		return model.DatasetSummary{}, fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}

	records, err := s.decode(body)
	if err != nil {
		log.Warn().Err(err).Msg("decode failed")
		return model.DatasetSummary{}, err
	}

	if err := s.insert(ctx, records); err != nil {
		log.Error().Err(err).Msg("insert failed")
		return model.DatasetSummary{}, err
	}

	summary := model.DatasetSummary{
		ID:      fetchID,
		Records: len(records),
		Source:  source.Label(s.sourceURL),
		Elapsed: time.Since(start),
	}
	log.Info().Int("records", summary.Records).Dur("elapsed", summary.Elapsed).Msg("dataset loaded")
	return summary, nil
}

// beginFetch atomically checks that no dataset exists and marks a fetch in flight
func (s *Store) beginFetch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetching {
		return model.ErrBusy
	}
	exists, err := s.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("checking table: %w", err)
	}
	if exists {
		return model.ErrAlreadyExists
	}
	s.fetching = true
	return nil
}

func (s *Store) endFetch() {
	s.mu.Lock()
	s.fetching = false
	s.mu.Unlock()
}

// decode parses the payload into records. A payload that is not a JSON array
// counts as a transfer failure; bad elements are schema errors.
func (s *Store) decode(body []byte) ([]model.Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON array: %v", model.ErrNetwork, err)
	}

	records := make([]model.Record, 0, len(items))
	for i, raw := range items {
		rec, err := s.profile.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// insert creates the table and inserts all rows in one transaction
func (s *Store) insert(ctx context.Context, records []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.profile.CreateTableSQL()); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, s.profile.InsertSQL())
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Clear drops the dataset table and notifies the clear callback.
func (s *Store) Clear() (model.ClearSummary, error) {
	start := time.Now()

	s.mu.Lock()
	if s.fetching {
		s.mu.Unlock()
		return model.ClearSummary{}, model.ErrBusy
	}
	exists, err := s.tableExists(context.Background())
	if err != nil {
		s.mu.Unlock()
		return model.ClearSummary{}, fmt.Errorf("checking table: %w", err)
	}
	if !exists {
		s.mu.Unlock()
		return model.ClearSummary{}, model.ErrNothingToClear
	}
	if _, err := s.db.Exec("DROP TABLE " + s.profile.Table); err != nil {
		s.mu.Unlock()
		return model.ClearSummary{}, fmt.Errorf("dropping table: %w", err)
	}
	callback := s.onClear
	s.mu.Unlock()

	if callback != nil {
		callback()
	}

	summary := model.ClearSummary{Elapsed: time.Since(start)}
	s.log.Info().Dur("elapsed", summary.Elapsed).Msg("dataset cleared")
	return summary, nil
}

// Records returns all rows in insertion order
func (s *Store) Records(ctx context.Context) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTable(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryxContext(ctx, s.profile.SelectSQL())
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		rec := s.profile.NewRecord()
		if err := rows.StructScan(rec); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

type averageRow struct {
	Count int             `db:"row_count"`
	Avg   sql.NullFloat64 `db:"avg_value"`
}

// AverageOf returns the mean of a numeric column
func (s *Store) AverageOf(ctx context.Context, column string) (float64, error) {
	if err := s.numericColumn(column); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTable(ctx); err != nil {
		return 0, err
	}

	var row averageRow
	query := fmt.Sprintf("SELECT COUNT(*) AS row_count, AVG(%s) AS avg_value FROM %s", column, s.profile.Table)
	if err := s.db.GetContext(ctx, &row, query); err != nil {
		return 0, fmt.Errorf("averaging %s: %w", column, err)
	}
	if row.Count == 0 || !row.Avg.Valid {
		return 0, model.ErrEmptyDataset
	}
	return row.Avg.Float64, nil
}

type groupRow struct {
	Key float64 `db:"grp_key"`
	Avg float64 `db:"avg_value"`
	Max float64 `db:"max_value"`
	Min float64 `db:"min_value"`
}

// GroupStats returns avg/max/min of valueColumn per groupColumn, ordered by key
func (s *Store) GroupStats(ctx context.Context, groupColumn, valueColumn string) ([]model.GroupStat, error) {
	if err := s.numericColumn(groupColumn); err != nil {
		return nil, err
	}
	if err := s.numericColumn(valueColumn); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTable(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %[1]s AS grp_key, AVG(%[2]s) AS avg_value, MAX(%[2]s) AS max_value, MIN(%[2]s) AS min_value
		FROM %[3]s GROUP BY %[1]s ORDER BY %[1]s`, groupColumn, valueColumn, s.profile.Table)

	var rows []groupRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("grouping %s by %s: %w", valueColumn, groupColumn, err)
	}
	if len(rows) == 0 {
		return nil, model.ErrEmptyDataset
	}

	stats := make([]model.GroupStat, len(rows))
	for i, r := range rows {
		stats[i] = model.GroupStat{Key: r.Key, Avg: r.Avg, Max: r.Max, Min: r.Min}
	}
	return stats, nil
}

// numericColumn validates that column is a numeric profile column. Column
// names are interpolated into SQL, so only profile names are accepted.
func (s *Store) numericColumn(column string) error {
	c, ok := s.profile.Column(column)
	if !ok || !c.Numeric {
		return fmt.Errorf("%q: %w", column, model.ErrUnknownColumn)
	}
	return nil
}

func (s *Store) requireTable(ctx context.Context) error {
	exists, err := s.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("checking table: %w", err)
	}
	if !exists {
		return model.ErrNoData
	}
	return nil
}

// tableExists must be called with mu held
func (s *Store) tableExists(ctx context.Context) (bool, error) {
	var name string
	err := s.db.GetContext(ctx, &name,
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", s.profile.Table)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
