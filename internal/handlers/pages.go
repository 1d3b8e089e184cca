package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gradewatch/gradewatch/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// NewPageHandler returns an HTTP handler that renders one of the embedded
// HTML pages. The pages are static shells; all data flows through the JSON
// API with the bearer token kept in browser storage.
func NewPageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplates.ExecuteTemplate(w, name, nil); err != nil {
			logger.Log.Errorw("failed to render page", "page", name, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}
