package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

func TestLedgerRecordsClampsPage(t *testing.T) {
	var gotPage, gotSize int
	client := &fakeClient{
		recordsFn: func(_ context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error) {
			gotPage, gotSize = page, size
			return models.ResultSet[models.PublishedPaper]{}, nil
		},
	}
	svc := NewLedgerService(client, 25, logging.NopLogger{})

	_, err := svc.Records(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 25, gotSize)

	_, err = svc.Records(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, gotPage)
}

func TestLedgerStats(t *testing.T) {
	client := &fakeClient{
		statsFn: func(context.Context) (models.AdminStats, error) {
			return models.AdminStats{TotalUsers: 12, TotalPapers: 40, PendingVerifications: 3}, nil
		},
	}
	svc := NewLedgerService(client, 10, logging.NopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, stats.TotalPapers)
}
