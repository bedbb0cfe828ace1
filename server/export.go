package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswatch/pkg/domain"
)

// exportHandler dumps articles matching the filter in csv, json or txt.
// Format comes from the "format" query param, csv by default. Export is not
// paginated, the limit param caps the dump instead.
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	filter := filterFromQuery(r)
	filter.Offset = 0
	if r.URL.Query().Get("limit") == "" {
		filter.Limit = 1000
	}

	articles, err := s.articles.GetArticles(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to export articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	filename := "articles-" + time.Now().UTC().Format("2006-01-02")

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
		if err := writeCSV(w, articles); err != nil {
			lgr.Printf("[WARN] csv export failed: %v", err)
		}
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.json"`)
		renderJSON(w, r, http.StatusOK, articles)
	case "txt":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.txt"`)
		writeTXT(w, articles)
	default:
		renderError(w, r, fmt.Errorf("unsupported format %q", format), http.StatusBadRequest)
	}
}

func writeCSV(w http.ResponseWriter, articles []domain.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "url", "category", "published", "summary", "rewritten", "source_url"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range articles {
		rec := []string{
			strconv.FormatInt(a.ID, 10),
			a.Title,
			a.URL,
			a.Category,
			a.Published.UTC().Format(time.RFC3339),
			a.Summary,
			strconv.FormatBool(a.Rewritten),
			a.SourceURL,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTXT(w http.ResponseWriter, articles []domain.Article) {
	var b strings.Builder
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("-", 72) + "\n\n")
		}
		b.WriteString(a.Title + "\n")
		b.WriteString(a.URL + "\n")
		b.WriteString(a.Category + " | " + a.Published.UTC().Format("2006-01-02 15:04") + "\n")
		if a.Summary != "" {
			b.WriteString("\n" + a.Summary + "\n")
		}
		text := a.Content
		if a.Rewritten && a.RewrittenText != "" {
			text = a.RewrittenText
		}
		if text != "" {
			b.WriteString("\n" + text + "\n")
		}
	}
	w.Write([]byte(b.String())) //nolint:errcheck // nothing to do about a failed dump write
}
