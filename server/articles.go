package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/repository"
)

// listArticlesHandler returns collected articles filtered by query params
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := filterFromQuery(r)

	articles, err := s.articles.GetArticles(ctx, filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	total, err := s.articles.CountArticles(ctx, filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"total":    total,
	})
}

// getArticleHandler returns one article by id
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// deleteArticleHandler removes an article
func (s *Server) deleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.articles.DeleteArticle(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to delete article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// selectArticleHandler flags or unflags an article for the editorial queue
func (s *Server) selectArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Selected bool `json:"selected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.articles.SetSelected(r.Context(), id, req.Selected); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to update article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "selected": req.Selected})
}

// rewriteResult reports the outcome of one article rewrite
type rewriteResult struct {
	ID    int64  `json:"id"`
	Title string `json:"title,omitempty"`
	Error string `json:"error,omitempty"`
}

// rewriteHandler rewrites a batch of articles through the LLM. Each article
// fails or succeeds on its own, one bad id does not abort the batch.
func (s *Server) rewriteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.rewriter == nil {
		renderError(w, r, fmt.Errorf("rewriter is not configured"), http.StatusServiceUnavailable)
		return
	}

	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		renderError(w, r, fmt.Errorf("ids list is required"), http.StatusBadRequest)
		return
	}

	results := make([]rewriteResult, 0, len(req.IDs))
	succeeded := 0
	for _, id := range req.IDs {
		res := rewriteResult{ID: id}
		if err := s.rewriteOne(ctx, id, &res); err != nil {
			lgr.Printf("[WARN] rewrite failed for article %d: %v", id, err)
			res.Error = err.Error()
		} else {
			succeeded++
		}
		results = append(results, res)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"rewritten": succeeded,
		"results":   results,
	})
}

func (s *Server) rewriteOne(ctx context.Context, id int64, res *rewriteResult) error {
	article, err := s.articles.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("article not found")
		}
		return fmt.Errorf("load article: %w", err)
	}
	res.Title = article.Title

	text, err := s.rewriter.Rewrite(ctx, article.Title, article.Content)
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}

	if err := s.articles.UpdateRewritten(ctx, id, text); err != nil {
		return fmt.Errorf("store rewritten text: %w", err)
	}
	return nil
}

// publishedHandler returns the rewritten articles projection
func (s *Server) publishedHandler(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	published, err := s.articles.GetPublished(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list published articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, published)
}

// statsHandler assembles the dashboard statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := s.articles.CountArticles(ctx, domain.ArticleFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	rewritten := true
	rewrittenCount, err := s.articles.CountArticles(ctx, domain.ArticleFilter{Rewritten: &rewritten})
	if err != nil {
		lgr.Printf("[ERROR] failed to count rewritten articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	totalSources, activeSources, err := s.sources.CountSources(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	byCategory, err := s.articles.CategoryCounts(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get category counts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	byDay, err := s.articles.DailyCounts(ctx, 7)
	if err != nil {
		lgr.Printf("[ERROR] failed to get daily counts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	topSources, err := s.articles.TopSources(ctx, 5)
	if err != nil {
		lgr.Printf("[ERROR] failed to get top sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	recent, err := s.articles.RecentArticles(ctx, 5)
	if err != nil {
		lgr.Printf("[ERROR] failed to get recent articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	stats := domain.Stats{
		TotalArticles:  total,
		RewrittenCount: rewrittenCount,
		TotalSources:   totalSources,
		ActiveSources:  activeSources,
		ByCategory:     byCategory,
		ByDay:          byDay,
		TopSources:     topSources,
		Recent:         recent,
	}
	if total > 0 {
		stats.RewrittenPercent = float64(rewrittenCount) / float64(total) * 100
	}

	renderJSON(w, r, http.StatusOK, stats)
}

// filterFromQuery builds an article filter from request query params.
// Limit defaults to 50, capped at 200.
func filterFromQuery(r *http.Request) domain.ArticleFilter {
	q := r.URL.Query()

	filter := domain.ArticleFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Limit:    50,
	}

	if v := q.Get("rewritten"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Rewritten = &b
		}
	}
	if v := q.Get("selected"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Selected = &b
		}
	}
	if v := q.Get("since"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.Since = &t
		}
	}
	if v := q.Get("until"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.Until = &t
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = min(n, 200)
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	return filter
}
