package services

import (
	"context"
	"strings"
	"sync"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// ReviewState classifies a pending thesis relative to the current identity.
// Exactly one state applies to each item.
type ReviewState int

const (
	// StateOwnUpload: the current identity uploaded this thesis; approve and
	// reject must not be offered.
	StateOwnUpload ReviewState = iota
	// StateAlreadyApproved: the current identity already approved; only the
	// remaining-approvals count is shown.
	StateAlreadyApproved
	// StateAwaitingDecision: approve and reject are offered.
	StateAwaitingDecision
)

// ReviewService drives the multi-admin approval workflow.
//
// Refresh is safe to call while an earlier refresh is still in flight: each
// call supersedes the previous one, the previous request's context is
// cancelled, and a late response from a superseded request never overwrites
// newer list state.
type ReviewService struct {
	api api.Client
	log logging.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	items  []models.PendingThesis
}

func NewReviewService(c api.Client, log logging.Logger) *ReviewService {
	return &ReviewService{api: c, log: log}
}

// Refresh fetches the pending list. Returns ErrSuperseded when a newer
// refresh was issued while this one was in flight; the caller drops the
// result. On any error the previously displayed items stay untouched.
func (s *ReviewService) Refresh(ctx context.Context) ([]models.PendingThesis, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	items, err := s.api.PendingTheses(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	s.items = items
	return s.snapshotLocked(), nil
}

// Items returns the last successfully fetched list.
func (s *ReviewService) Items() []models.PendingThesis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ReviewService) snapshotLocked() []models.PendingThesis {
	out := make([]models.PendingThesis, len(s.items))
	copy(out, s.items)
	return out
}

// StateFor derives the display state of one item for the given identity.
func (s *ReviewService) StateFor(t models.PendingThesis, identity string) ReviewState {
	switch {
	case t.IsUploader(identity):
		return StateOwnUpload
	case t.ApprovedBy(identity):
		return StateAlreadyApproved
	default:
		return StateAwaitingDecision
	}
}

// Find returns the cached item with the given id.
func (s *ReviewService) Find(id int64) (models.PendingThesis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return models.PendingThesis{}, false
}

// Approve records one approval. The caller must have confirmed the intent,
// and must refresh both the pending list and the ledger records when the
// outcome reports quorum completion. Failures leave local state untouched.
func (s *ReviewService) Approve(ctx context.Context, id int64) (models.ApprovalOutcome, error) {
	out, err := s.api.ApproveThesis(ctx, id)
	if err != nil {
		return models.ApprovalOutcome{}, err
	}
	s.log.Info(ctx, "thesis approved", "id", id, "moved_to_ledger", out.MovedToLedger)
	return out, nil
}

// Reject rejects a pending thesis. The reason must be non-empty; it is
// collected before the call is issued, never defaulted.
func (s *ReviewService) Reject(ctx context.Context, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if err := s.api.RejectThesis(ctx, id, reason); err != nil {
		return err
	}
	s.log.Info(ctx, "thesis rejected", "id", id)
	return nil
}
