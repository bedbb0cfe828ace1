package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswatch/pkg/domain"
)

// SourceRepository handles monitored source database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source row for SQL operations
type sourceSQL struct {
	ID            int64      `db:"id"`
	URL           string     `db:"url"`
	Category      string     `db:"category"`
	Active        bool       `db:"active"`
	Paused        bool       `db:"paused"`
	StartDate     *time.Time `db:"start_date"`
	EndDate       *time.Time `db:"end_date"`
	LastCollected *time.Time `db:"last_collected"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new source. Returns ErrAlreadyExists when the URL
// is already monitored.
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	sqlSrc := &sourceSQL{
		URL:       src.URL,
		Category:  src.Category,
		Active:    src.Active,
		Paused:    src.Paused,
		StartDate: src.StartDate,
		EndDate:   src.EndDate,
	}

	query := `
		INSERT INTO sources (url, category, active, paused, start_date, end_date)
		VALUES (:url, :category, :active, :paused, :start_date, :end_date)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlSrc)
	if err != nil {
		if isUniqueError(err) {
			return fmt.Errorf("create source %s: %w", src.URL, ErrAlreadyExists)
		}
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	src.ID = id

	created, err := r.GetSource(ctx, id)
	if err == nil {
		src.CreatedAt = created.CreatedAt
	}
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var sqlSrc sourceSQL
	err := r.db.GetContext(ctx, &sqlSrc, "SELECT * FROM sources WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return r.toDomainSource(&sqlSrc), nil
}

// GetSourceByURL retrieves a source by its listing URL
func (r *SourceRepository) GetSourceByURL(ctx context.Context, url string) (*domain.Source, error) {
	var sqlSrc sourceSQL
	err := r.db.GetContext(ctx, &sqlSrc, "SELECT * FROM sources WHERE url = ?", url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source %s: %w", url, ErrNotFound)
		}
		return nil, fmt.Errorf("get source by url: %w", err)
	}
	return r.toDomainSource(&sqlSrc), nil
}

// GetSources retrieves all sources, newest first
func (r *SourceRepository) GetSources(ctx context.Context) ([]domain.Source, error) {
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, "SELECT * FROM sources ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = *r.toDomainSource(&s)
	}
	return sources, nil
}

// SetSourcePaused persists the paused flag
func (r *SourceRepository) SetSourcePaused(ctx context.Context, id int64, paused bool) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE sources SET paused = ? WHERE id = ?", paused, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set source paused: %w", err)}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: fmt.Errorf("source %d: %w", id, ErrNotFound)}
		}
		return nil
	})
}

// UpdateSourceCollected updates the last completed collection timestamp
func (r *SourceRepository) UpdateSourceCollected(ctx context.Context, id int64, ts time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET last_collected = ? WHERE id = ?", ts.UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update source collected: %w", err)}
		}
		return nil
	})
}

// DeleteSource removes a source. Stored articles keep their source_url
// back-reference, deletion never cascades.
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("source %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountSources returns the total number of sources and how many are
// active and not paused
func (r *SourceRepository) CountSources(ctx context.Context) (total, active int, err error) {
	err = r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sources")
	if err != nil {
		return 0, 0, fmt.Errorf("count sources: %w", err)
	}
	err = r.db.GetContext(ctx, &active, "SELECT COUNT(*) FROM sources WHERE active = 1 AND paused = 0")
	if err != nil {
		return 0, 0, fmt.Errorf("count active sources: %w", err)
	}
	return total, active, nil
}

func (r *SourceRepository) toDomainSource(s *sourceSQL) *domain.Source {
	return &domain.Source{
		ID:            s.ID,
		URL:           s.URL,
		Category:      s.Category,
		Active:        s.Active,
		Paused:        s.Paused,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		LastCollected: s.LastCollected,
		CreatedAt:     s.CreatedAt,
	}
}
