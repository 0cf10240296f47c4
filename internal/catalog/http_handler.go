package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"catalogapi/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// HTTPHandler serves the read-only catalog endpoints from the store's
// current snapshot.
type HTTPHandler struct {
	store           *Store
	defaultPageSize int
	maxPageSize     int
}

func NewHTTPHandler(store *Store, defaultPageSize, maxPageSize int) *HTTPHandler {
	return &HTTPHandler{
		store:           store,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Health handles GET /health.
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	c := h.store.Snapshot()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"items":  len(c.Entries),
		"errors": c.Errors,
	})
}

// Filters handles GET /catalog/filters.
func (h *HTTPHandler) Filters(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Snapshot().Facets)
}

// List handles GET /catalog. Facet parameters take comma-separated token
// lists; page must be >= 1 and pageSize within [1, max] or the request is
// rejected, never clamped.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, ok := h.intParam(w, query.Get("page"), "page", 1)
	if !ok {
		return
	}
	pageSize, ok := h.intParam(w, query.Get("pageSize"), "pageSize", h.defaultPageSize)
	if !ok {
		return
	}
	if err := validate.Var(page, "min=1"); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "page must be at least 1", nil)
		return
	}
	if err := validate.Var(pageSize, fmt.Sprintf("min=1,max=%d", h.maxPageSize)); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST",
			fmt.Sprintf("pageSize must be between 1 and %d", h.maxPageSize), nil)
		return
	}

	criteria := ParseCriteria(
		query.Get("q"),
		query.Get("category"),
		query.Get("platform"),
		query.Get("license"),
		query.Get("status"),
		query.Get("type"),
		query.Get("language"),
	)

	matched := Evaluate(h.store.Snapshot().Entries, criteria)
	summaries := make([]Summary, 0, len(matched))
	for _, e := range matched {
		summaries = append(summaries, e.Summary())
	}

	httpx.JSON(w, http.StatusOK, Paginate(summaries, page, pageSize))
}

// Get handles GET /catalog/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "entry id is required", nil)
		return
	}
	entry, ok := h.store.Snapshot().Index[id]
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Catalog entry not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *HTTPHandler) intParam(w http.ResponseWriter, raw, name string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", name+" must be an integer", nil)
		return 0, false
	}
	return v, true
}
