package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswatch/pkg/domain"
)

// ArticleRepository handles article database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article row for SQL operations
type articleSQL struct {
	ID            int64     `db:"id"`
	URL           string    `db:"url"`
	Title         string    `db:"title"`
	Published     time.Time `db:"published"`
	Category      string    `db:"category"`
	Content       string    `db:"content"`
	ImageURL      string    `db:"image_url"`
	Summary       string    `db:"summary"`
	CollectedAt   time.Time `db:"collected_at"`
	Selected      bool      `db:"selected"`
	Rewritten     bool      `db:"rewritten"`
	RewrittenText string    `db:"rewritten_text"`
	SourceURL     string    `db:"source_url"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article. The unique index on url is the
// dedup backstop, a duplicate insert returns ErrAlreadyExists.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	sqlArticle := &articleSQL{
		URL:       article.URL,
		Title:     article.Title,
		Published: article.Published.UTC(),
		Category:  article.Category,
		Content:   article.Content,
		ImageURL:  article.ImageURL,
		Summary:   article.Summary,
		SourceURL: article.SourceURL,
	}

	query := `
		INSERT INTO articles (url, title, published, category, content, image_url, summary, source_url)
		VALUES (:url, :title, :published, :category, :content, :image_url, :summary, :source_url)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			if isUniqueError(err) {
				return &criticalError{err: fmt.Errorf("article %s: %w", article.URL, ErrAlreadyExists)}
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}

		article.ID = id
		return nil
	})
}

// ArticleExists checks whether an article with the given URL is stored
func (r *ArticleRepository) ArticleExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)", url)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetArticles retrieves articles matching the filter, newest first
func (r *ArticleRepository) GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	builder := applyFilter(sq.Select("*").From("articles"), filter).OrderBy("published DESC, id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)) //nolint:gosec // limit checked positive
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset)) //nolint:gosec // offset checked positive
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build articles query: %w", err)
	}

	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = *r.toDomainArticle(&a)
	}
	return articles, nil
}

// CountArticles counts articles matching the filter
func (r *ArticleRepository) CountArticles(ctx context.Context, filter domain.ArticleFilter) (int, error) {
	query, args, err := applyFilter(sq.Select("COUNT(*)").From("articles"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// CountBySource counts articles collected from the given source URL
func (r *ArticleRepository) CountBySource(ctx context.Context, sourceURL string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE source_url = ?", sourceURL)
	if err != nil {
		return 0, fmt.Errorf("count articles by source: %w", err)
	}
	return count, nil
}

// SetSelected updates the manual selection flag
func (r *ArticleRepository) SetSelected(ctx context.Context, id int64, selected bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET selected = ? WHERE id = ?", selected, id)
	if err != nil {
		return fmt.Errorf("set article selected: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateRewritten stores a successful rewrite result
func (r *ArticleRepository) UpdateRewritten(ctx context.Context, id int64, text string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE articles SET rewritten = 1, rewritten_text = ? WHERE id = ?", text, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update rewritten: %w", err)}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: fmt.Errorf("article %d: %w", id, ErrNotFound)}
		}
		return nil
	})
}

// DeleteArticle removes an article by ID
func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetPublished retrieves rewritten articles as the published projection
func (r *ArticleRepository) GetPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.PublishedArticle, error) {
	rewritten := true
	filter.Rewritten = &rewritten

	articles, err := r.GetArticles(ctx, filter)
	if err != nil {
		return nil, err
	}

	published := make([]domain.PublishedArticle, len(articles))
	for i, a := range articles {
		published[i] = domain.PublishedArticle{
			ID:            a.ID,
			Title:         a.Title,
			URL:           a.URL,
			Published:     a.Published,
			Category:      a.Category,
			RewrittenText: a.RewrittenText,
			ImageURL:      a.ImageURL,
		}
	}
	return published, nil
}

// CategoryCounts groups articles by category with rewritten totals
func (r *ArticleRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	query := `
		SELECT category,
		       COUNT(*) AS total,
		       SUM(CASE WHEN rewritten = 1 THEN 1 ELSE 0 END) AS rewritten
		FROM articles
		GROUP BY category
		ORDER BY total DESC
	`
	var counts []domain.CategoryCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	return counts, nil
}

// DailyCounts groups articles collected in the last given days by day
func (r *ArticleRepository) DailyCounts(ctx context.Context, days int) ([]domain.DayCount, error) {
	query := `
		SELECT strftime('%Y-%m-%d', collected_at) AS day, COUNT(*) AS total
		FROM articles
		WHERE collected_at >= datetime('now', ?)
		GROUP BY day
		ORDER BY day
	`
	var counts []domain.DayCount
	if err := r.db.SelectContext(ctx, &counts, query, fmt.Sprintf("-%d days", days)); err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	return counts, nil
}

// TopSources returns the most productive source URLs
func (r *ArticleRepository) TopSources(ctx context.Context, limit int) ([]domain.SourceCount, error) {
	query := `
		SELECT source_url, COUNT(*) AS total
		FROM articles
		GROUP BY source_url
		ORDER BY total DESC
		LIMIT ?
	`
	var counts []domain.SourceCount
	if err := r.db.SelectContext(ctx, &counts, query, limit); err != nil {
		return nil, fmt.Errorf("top sources: %w", err)
	}
	return counts, nil
}

// RecentArticles returns the most recently collected articles
func (r *ArticleRepository) RecentArticles(ctx context.Context, limit int) ([]domain.RecentArticle, error) {
	query := `
		SELECT title, category, collected_at
		FROM articles
		ORDER BY collected_at DESC, id DESC
		LIMIT ?
	`
	var recent []domain.RecentArticle
	if err := r.db.SelectContext(ctx, &recent, query, limit); err != nil {
		return nil, fmt.Errorf("recent articles: %w", err)
	}
	return recent, nil
}

// applyFilter translates the typed filter into WHERE clauses. Zero values
// and nil pointers add no constraint.
func applyFilter(builder sq.SelectBuilder, filter domain.ArticleFilter) sq.SelectBuilder {
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"title": like},
			sq.Like{"summary": like},
			sq.Like{"content": like},
		})
	}
	if filter.Rewritten != nil {
		builder = builder.Where(sq.Eq{"rewritten": *filter.Rewritten})
	}
	if filter.Selected != nil {
		builder = builder.Where(sq.Eq{"selected": *filter.Selected})
	}
	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"published": filter.Since.UTC()})
	}
	if filter.Until != nil {
		builder = builder.Where(sq.LtOrEq{"published": filter.Until.UTC()})
	}
	return builder
}

func (r *ArticleRepository) toDomainArticle(a *articleSQL) *domain.Article {
	return &domain.Article{
		ID:            a.ID,
		URL:           a.URL,
		Title:         a.Title,
		Published:     a.Published,
		Category:      a.Category,
		Content:       a.Content,
		ImageURL:      a.ImageURL,
		Summary:       a.Summary,
		CollectedAt:   a.CollectedAt,
		Selected:      a.Selected,
		Rewritten:     a.Rewritten,
		RewrittenText: a.RewrittenText,
		SourceURL:     a.SourceURL,
	}
}
