package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"thesisledger/internal/api"
	"thesisledger/internal/services"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[#--] 1/3", progressBar(1, 3))
	assert.Equal(t, "[###] 3/3", progressBar(3, 3))
	assert.Equal(t, "[---] 0/3", progressBar(0, 3))
	// Overshoot clamps to the quorum.
	assert.Equal(t, "[###] 3/3", progressBar(5, 3))
	assert.Empty(t, progressBar(1, 0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-02", formatDate("2026-01-02T10:30:00Z"))
	assert.Equal(t, "2026-01-02", formatDate("2026-01-02T10:30:00"))
	assert.Equal(t, "2026-01-02", formatDate("2026-01-02"))
	assert.Equal(t, "last week", formatDate("last week"))
	assert.Equal(t, "-", formatDate(""))
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"graphs", "heuristics"}, splitKeywords(" graphs , heuristics ,"))
	assert.Nil(t, splitKeywords("  "))
}

func TestRenderErrorMapping(t *testing.T) {
	assert.Contains(t, renderError(services.FieldErrors{"title": "required"}), "title: required")
	assert.Contains(t, renderError(&api.DuplicateError{Message: "already submitted"}), "already submitted")
	assert.Contains(t, renderError(api.ErrUnauthorized), "sign in")
	assert.Contains(t, renderError(api.ErrUnavailable), "unavailable")
	assert.Contains(t, renderError(&api.APIError{Status: 500, Message: "backend exploded"}), "backend exploded")
	assert.Contains(t, renderError(errors.New("plain")), "plain")
	// Superseded responses are dropped without a message.
	assert.Empty(t, renderError(services.ErrSuperseded))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Empty(t, firstNonEmpty("", ""))
}
