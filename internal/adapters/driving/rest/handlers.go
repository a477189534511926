package rest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// Search query parameters. An empty value means "not supplied".
const (
	paramTerm   = "term"
	paramDomain = "domain"
	paramTag    = "tag"
	paramYear   = "year"
	paramRegion = "region"
)

// search answers GET /api/search with every match as a JSON array.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := domain.SearchQuery{
		Query:  params.Get(paramTerm),
		Domain: domain.Optional(params.Get(paramDomain)),
		Tag:    domain.Optional(params.Get(paramTag)),
		Year:   domain.Optional(params.Get(paramYear)),
		Region: domain.Optional(params.Get(paramRegion)),
	}

	results, err := s.ports.Search.Search(r.Context(), query)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	sendJSON(w, r, http.StatusOK, results)
}

type catalogResponse struct {
	Documents int                  `json:"documents"`
	Domains   []domain.DomainStats `json:"domains"`
}

// catalog answers GET /api/catalog.
func (s *Server) catalog(w http.ResponseWriter, r *http.Request) {
	if s.ports.Catalog == nil {
		sendError(w, r, domain.ErrCatalogUnavailable)
		return
	}

	stats, err := s.ports.Catalog.Stats(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}

	resp := catalogResponse{Domains: stats}
	if resp.Domains == nil {
		resp.Domains = []domain.DomainStats{}
	}
	for _, d := range resp.Domains {
		resp.Documents += d.Documents
	}

	sendJSON(w, r, http.StatusOK, resp)
}

// document answers GET /api/documents/{domain}/{key}.
func (s *Server) document(w http.ResponseWriter, r *http.Request) {
	if s.ports.Catalog == nil {
		sendError(w, r, domain.ErrCatalogUnavailable)
		return
	}

	vars := mux.Vars(r)
	doc, err := s.ports.Catalog.Document(r.Context(), vars["domain"], vars["key"])
	if err != nil {
		sendError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusOK, doc)
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Documents *int   `json:"documents,omitempty"`
}

// health answers GET /health.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Version: s.opts.Version}

	if s.ports.Catalog != nil {
		n, err := s.ports.Catalog.Count(r.Context())
		if err != nil {
			resp.Status = "degraded"
		} else {
			resp.Documents = &n
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	sendJSON(w, r, status, resp)
}

var (
	errNoRoute  = errors.New("no route matches the request path")
	errNoMethod = errors.New("method not allowed for this path")
)

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	sendStatus(w, r, http.StatusNotFound, "not_found", errNoRoute)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	sendStatus(w, r, http.StatusMethodNotAllowed, "method_not_allowed", errNoMethod)
}
