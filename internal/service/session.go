package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"propertyfinder/internal/model"
	"propertyfinder/internal/repository"

	"golang.org/x/sync/errgroup"
)

// User-facing notices
const (
	NoticeAIApplied  = "AI filters applied!"
	NoticeAIFallback = "AI search failed. Using basic search."
	NoticeLoadFailed = "Error: Could not load property data."
)

var (
	// ErrNotReady is returned by catalog operations before Load has finished
	ErrNotReady = errors.New("catalog is still loading")
	// ErrListingNotFound is returned for an id that is not in the catalog
	ErrListingNotFound = errors.New("listing not found")
)

// SessionOptions configures a Session
type SessionOptions struct {
	Rules      FilterRules
	PageSize   int
	MaxCompare int

	// SearchLogTimeout bounds each background search log write
	SearchLogTimeout time.Duration
}

// Session owns the browsing state: catalog, active filters, page index,
// comparison set and the last notice. Every read re-derives the visible
// page from that state.
type Session struct {
	source    repository.CatalogSource
	parser    *IntentParser
	favorites *FavoriteBridge
	searchLog repository.SearchLogger
	opts      SessionOptions

	loadOnce sync.Once

	mu       sync.Mutex
	catalog  model.Catalog
	filters  model.FilterSet
	page     int
	compare  ComparisonSet
	about    string
	ready    bool
	loadErr  error
	notice   string
	lastSeq  uint64
	inflight int
}

// NewSession creates a session. searchLog may be nil.
func NewSession(
	source repository.CatalogSource,
	parser *IntentParser,
	favorites *FavoriteBridge,
	searchLog repository.SearchLogger,
	opts SessionOptions,
) *Session {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.MaxCompare <= 0 {
		opts.MaxCompare = DefaultMaxCompare
	}
	if opts.Rules.PriceDomainMax <= 0 {
		opts.Rules = DefaultFilterRules
	}
	if opts.SearchLogTimeout <= 0 {
		opts.SearchLogTimeout = 5 * time.Second
	}
	if parser == nil {
		parser = NewIntentParser(nil, opts.Rules)
	}
	if favorites == nil {
		favorites = NewFavoriteBridge(nil, 0)
	}

	empty, _ := model.NewCatalog(nil)
	return &Session{
		source:    source,
		parser:    parser,
		favorites: favorites,
		searchLog: searchLog,
		opts:      opts,
		catalog:   empty,
		filters:   opts.Rules.Default(),
		page:      1,
		compare:   NewComparisonSet(opts.MaxCompare),
	}
}

// Load fetches the catalog and about text concurrently and hydrates the
// saved favorites. On failure the catalog stays empty and the error is kept
// for View; the session is still marked ready. Load runs at most once;
// concurrent callers wait for the first one and share its result.
func (s *Session) Load(ctx context.Context) error {
	s.loadOnce.Do(func() { s.load(ctx) })

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Session) load(ctx context.Context) {
	start := time.Now()
	var (
		listings    []model.Listing
		about       string
		favoriteIDs []int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listings, err = s.source.FetchCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		about, err = s.source.FetchAboutText(gctx)
		return err
	})
	g.Go(func() error {
		favoriteIDs = s.favorites.Load(gctx)
		return nil
	})
	err := g.Wait()

	var catalog model.Catalog
	if err == nil {
		catalog, err = HydrateFavorites(listings, favoriteIDs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
	if err != nil {
		log.Printf("❌ Failed to load initial data: %v", err)
		s.catalog, _ = model.NewCatalog(nil)
		s.loadErr = fmt.Errorf("failed to load catalog: %w", err)
		s.notice = NoticeLoadFailed
		return
	}

	s.catalog = catalog
	s.about = about
	log.Printf("✅ Loaded %d listings (%d favorites) in %v", catalog.Len(), len(FavoriteIDs(catalog)), time.Since(start))
}

// Rules returns the filter rules in use
func (s *Session) Rules() FilterRules {
	return s.opts.Rules
}

// View returns the current filters and the derived page
func (s *Session) View() model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() model.SessionView {
	results := DeriveResultSet(s.catalog.Listings, s.filters)
	page := Paginate(results, s.opts.PageSize, s.page)
	s.page = page.Page

	view := model.SessionView{
		Filters:        s.filters.Clone(),
		Results:        page,
		CompareIDs:     s.compare.IDs(),
		SearchBusy:     s.inflight > 0,
		Ready:          s.ready,
		Notice:         s.notice,
		CatalogVersion: s.catalog.Version,
	}
	if s.loadErr != nil {
		view.LoadError = s.loadErr.Error()
	}
	return view
}

// PatchFilters merges a structured filter change and returns to page 1
func (s *Session) PatchFilters(patch model.FilterPatch) model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.opts.Rules.ApplyPatch(s.filters, patch)
	s.page = 1
	return s.viewLocked()
}

// ResetFilters restores the default filter set
func (s *Session) ResetFilters() model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.opts.Rules.Default()
	s.page = 1
	return s.viewLocked()
}

// ClearSearch drops the search text together with every other filter
func (s *Session) ClearSearch() model.SessionView {
	return s.ResetFilters()
}

// SetPage requests a page; the stored index is clamped on the next derive
func (s *Session) SetPage(page int) model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
	return s.viewLocked()
}

// DismissNotice clears the current notice
func (s *Session) DismissNotice() {
	s.mu.Lock()
	s.notice = ""
	s.mu.Unlock()
}

// About returns the platform description
func (s *Session) About() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", ErrNotReady
	}
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.about, nil
}

// Listing returns a single listing with its current favorite flag
func (s *Session) Listing(id int) (model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return model.Listing{}, ErrNotReady
	}
	l, ok := s.catalog.Find(id)
	if !ok {
		return model.Listing{}, ErrListingNotFound
	}
	return l, nil
}

// ToggleFavorite flips the favorite flag of a listing and schedules the
// new favorite set to be saved
func (s *Session) ToggleFavorite(id int) (*model.FavoriteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, ErrNotReady
	}
	if _, ok := s.catalog.Find(id); !ok {
		return nil, ErrListingNotFound
	}

	s.catalog = ToggleFavorite(s.catalog, id)
	ids := FavoriteIDs(s.catalog)
	s.favorites.Persist(ids)

	l, _ := s.catalog.Find(id)
	return &model.FavoriteResponse{Listing: l, FavoriteIDs: ids}, nil
}

// ToggleCompare adds or removes a listing from the comparison set
func (s *Session) ToggleCompare(id int) (*model.CompareResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, ErrNotReady
	}
	l, ok := s.catalog.Find(id)
	if !ok {
		return nil, ErrListingNotFound
	}

	next, outcome, notice := s.compare.Toggle(l)
	s.compare = next
	s.notice = notice
	return &model.CompareResponse{
		Outcome: string(outcome),
		Notice:  notice,
		Summary: Summarize(s.compare.Members(s.catalog)),
	}, nil
}

// RemoveCompare removes a member; removing a non-member changes nothing
func (s *Session) RemoveCompare(id int) *model.CompareResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, notice := s.compare.RemoveByID(id, s.catalog)
	resp := &model.CompareResponse{}
	if removed {
		s.compare = next
		s.notice = notice
		resp.Outcome = string(CompareRemoved)
		resp.Notice = notice
	}
	resp.Summary = Summarize(s.compare.Members(s.catalog))
	return resp
}

// ClearCompare empties the comparison set
func (s *Session) ClearCompare() *model.CompareResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare = s.compare.Clear()
	return &model.CompareResponse{Summary: Summarize(nil)}
}

// CompareSummary returns the annotated comparison members
func (s *Session) CompareSummary() model.ComparisonSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.compare.Members(s.catalog))
}

// Search applies a natural language query. An empty query only clears the
// search text. Otherwise the oracle is asked for filters; if it fails the
// query becomes a plain substring search. A completion is applied only if
// no newer search was started in the meantime.
func (s *Session) Search(ctx context.Context, query string) *model.SearchResponse {
	return s.search(ctx, query, nil)
}

// SearchStream is Search with partial oracle output relayed to callback
func (s *Session) SearchStream(ctx context.Context, query string, callback func(thinking, content string) error) *model.SearchResponse {
	return s.search(ctx, query, callback)
}

func (s *Session) search(ctx context.Context, query string, callback func(thinking, content string) error) *model.SearchResponse {
	start := time.Now()
	query = strings.TrimSpace(query)

	if query == "" {
		empty := ""
		view := s.PatchFilters(model.FilterPatch{SearchQuery: &empty})
		return &model.SearchResponse{
			Intent:  &model.IntentResult{Source: model.IntentSourceEmpty},
			Applied: true,
			View:    view,
			Took:    time.Since(start).Milliseconds(),
		}
	}

	s.mu.Lock()
	s.lastSeq++
	seq := s.lastSeq
	s.inflight++
	s.mu.Unlock()

	var (
		intent *model.IntentResult
		err    error
	)
	if callback != nil {
		intent, err = s.parser.TranslateStream(ctx, query, callback)
	} else {
		intent, err = s.parser.Translate(ctx, query)
	}
	if err != nil {
		log.Printf("AI search failed for %q: %v", query, err)
		intent = &model.IntentResult{Query: query, Source: model.IntentSourceFallback}
	}

	s.mu.Lock()
	s.inflight--
	applied := seq == s.lastSeq
	if applied {
		if err != nil {
			s.filters = s.opts.Rules.Fallback(s.filters, query)
			s.notice = NoticeAIFallback
		} else {
			s.filters = s.opts.Rules.ApplyNaturalLanguageResult(s.filters, query, intent.Patch)
			s.notice = NoticeAIApplied
		}
		s.page = 1
	} else {
		log.Printf("Ignoring stale search result for %q (seq %d, latest %d)", query, seq, s.lastSeq)
	}
	view := s.viewLocked()
	s.mu.Unlock()

	took := time.Since(start).Milliseconds()
	if applied {
		s.logSearch(model.SearchLogEntry{
			Query:          query,
			Source:         intent.Source,
			AppliedFilters: view.Filters,
			ResultCount:    view.Results.Total,
			ResponseTimeMs: took,
		})
	}

	return &model.SearchResponse{
		Intent:  intent,
		Applied: applied,
		View:    view,
		Took:    took,
	}
}

// logSearch writes the search log in the background
func (s *Session) logSearch(entry model.SearchLogEntry) {
	if s.searchLog == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.SearchLogTimeout)
		defer cancel()
		if err := s.searchLog.LogSearch(ctx, entry); err != nil {
			log.Printf("Failed to log search: %v", err)
		}
	}()
}
