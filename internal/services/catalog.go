package services

import (
	"context"
	"strings"
	"sync"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// CatalogMode selects which backend query the catalog view issues.
type CatalogMode int

const (
	ModeAll CatalogMode = iota
	ModeSearch
	ModeDepartment
)

// CatalogState is a snapshot of the catalog view for rendering.
type CatalogState struct {
	Mode       CatalogMode
	Query      string
	Department string
	Results    models.ResultSet[models.PublishedPaper]
	// Loaded is true once a fetch completed successfully, so an empty
	// result set renders as "no results" rather than the initial state.
	Loaded bool
}

// CatalogService drives the public catalog: paginated listing, free-text
// search, and department-scoped search. Mode switches reset pagination;
// switching department clears any free-text query. Only the most recently
// issued request may update the displayed results.
type CatalogService struct {
	api      api.Client
	log      logging.Logger
	pageSize int

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc

	mode       CatalogMode
	query      string
	department string
	page       int
	results    models.ResultSet[models.PublishedPaper]
	loaded     bool
}

func NewCatalogService(c api.Client, pageSize int, log logging.Logger) *CatalogService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &CatalogService{api: c, pageSize: pageSize, log: log}
}

// ShowAll switches to the unfiltered paginated listing.
func (s *CatalogService) ShowAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeAll
	s.query = ""
	s.department = ""
	s.page = 0
}

// Search switches to free-text search. An empty query falls back to the
// unfiltered listing.
func (s *CatalogService) Search(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.ShowAll()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeSearch
	s.query = query
	s.page = 0
}

// FilterDepartment switches to department-scoped search. Any active
// free-text query is cleared and pagination resets to the first page.
func (s *CatalogService) FilterDepartment(department string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeDepartment
	s.department = strings.TrimSpace(department)
	s.query = ""
	s.page = 0
}

// Load fetches the current mode's results. A newer Load supersedes an
// in-flight one: the older request is cancelled and its late response is
// reported as ErrSuperseded without touching displayed state.
func (s *CatalogService) Load(ctx context.Context) (CatalogState, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	mode, query, department, page := s.mode, s.query, s.department, s.page
	s.mu.Unlock()

	var (
		rs  models.ResultSet[models.PublishedPaper]
		err error
	)
	// Search modes carry page and size too; a backend that answers with a
	// bare array leaves the result unpaged and the pager suppressed.
	switch mode {
	case ModeSearch:
		rs, err = s.api.SearchPapers(ctx, query, page, s.pageSize)
	case ModeDepartment:
		rs, err = s.api.SearchByDepartment(ctx, department, page, s.pageSize)
	default:
		rs, err = s.api.ListPapers(ctx, page, s.pageSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return s.stateLocked(), ErrSuperseded
	}
	if err != nil {
		return s.stateLocked(), err
	}
	s.results = rs
	s.loaded = true
	if rs.Page != nil {
		s.page = rs.Page.Number
	}
	return s.stateLocked(), nil
}

// NextPage advances one page when pagination is available and the current
// page is not the last, then reloads.
func (s *CatalogService) NextPage(ctx context.Context) (CatalogState, error) {
	s.mu.Lock()
	if s.results.Page == nil || s.results.Page.Last() {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, nil
	}
	s.page++
	s.mu.Unlock()
	return s.Load(ctx)
}

// PrevPage goes back one page when pagination is available and the current
// page is not the first, then reloads.
func (s *CatalogService) PrevPage(ctx context.Context) (CatalogState, error) {
	s.mu.Lock()
	if s.results.Page == nil || s.results.Page.First() {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, nil
	}
	s.page--
	s.mu.Unlock()
	return s.Load(ctx)
}

// State returns the current snapshot.
func (s *CatalogService) State() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *CatalogService) stateLocked() CatalogState {
	return CatalogState{
		Mode:       s.mode,
		Query:      s.query,
		Department: s.department,
		Results:    s.results,
		Loaded:     s.loaded,
	}
}
