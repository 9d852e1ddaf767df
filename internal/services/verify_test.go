package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

func validVerification(t *testing.T) VerificationForm {
	t.Helper()
	return VerificationForm{
		FilePath:       writeTempFile(t, "thesis.pdf", "content"),
		Title:          "Quantum Error Correction",
		Author:         "Li Wei",
		Department:     "Physics",
		SubmissionYear: 2024,
	}
}

func TestVerificationValidateExtensions(t *testing.T) {
	svc := NewVerificationService(&fakeClient{}, 0, logging.NopLogger{})

	for _, name := range []string{"a.pdf", "b.doc", "c.docx", "D.PDF"} {
		form := validVerification(t)
		form.FilePath = writeTempFile(t, name, "x")
		assert.Nil(t, svc.Validate(form), name)
	}

	form := validVerification(t)
	form.FilePath = writeTempFile(t, "notes.txt", "x")
	errs := svc.Validate(form)
	require.NotNil(t, errs)
	assert.Contains(t, errs["thesisFile"], ".pdf, .doc, .docx")
}

func TestVerificationValidateSizeCeiling(t *testing.T) {
	svc := NewVerificationService(&fakeClient{}, 16, logging.NopLogger{})

	form := validVerification(t)
	form.FilePath = writeTempFile(t, "big.pdf", strings.Repeat("x", 17))
	errs := svc.Validate(form)
	require.NotNil(t, errs)
	assert.Contains(t, errs["thesisFile"], "file size")
}

func TestVerificationValidateYearBounds(t *testing.T) {
	orig := nowFn
	nowFn = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFn = orig }()

	svc := NewVerificationService(&fakeClient{}, 0, logging.NopLogger{})

	for year, wantErr := range map[int]bool{
		1899: true,
		1900: false,
		2024: false,
		2025: false,
		2026: true,
		0:    true,
	} {
		form := validVerification(t)
		form.SubmissionYear = year
		errs := svc.Validate(form)
		if wantErr {
			require.NotNil(t, errs, "year %d", year)
			assert.Contains(t, errs["submissionYear"], "between 1900 and 2025")
		} else {
			assert.Nil(t, errs, "year %d", year)
		}
	}
}

func TestVerifyInvalidFormDoesNotReachNetwork(t *testing.T) {
	client := &fakeClient{}
	svc := NewVerificationService(client, 0, logging.NopLogger{})

	form := validVerification(t)
	form.Author = ""
	_, err := svc.Verify(context.Background(), form)

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "required", fe["author"])
	assert.Empty(t, client.calls)
}

func TestVerifySendsForm(t *testing.T) {
	client := &fakeClient{
		verifyFn: func(_ context.Context, up api.VerificationUpload) (models.VerificationReport, error) {
			assert.Equal(t, "thesis.pdf", up.Thesis.Name)
			assert.Equal(t, 2024, up.SubmissionYear)
			return models.VerificationReport{Verified: true, SimilarityScore: 97.5}, nil
		},
	}
	svc := NewVerificationService(client, 0, logging.NopLogger{})

	report, err := svc.Verify(context.Background(), validVerification(t))
	require.NoError(t, err)
	assert.True(t, report.Verified)
	assert.InDelta(t, 97.5, report.SimilarityScore, 0.001)
}

func TestSearchLedgerRequiresCriteria(t *testing.T) {
	client := &fakeClient{}
	svc := NewVerificationService(client, 0, logging.NopLogger{})

	_, err := svc.SearchLedger(context.Background(), models.LedgerQuery{})
	assert.ErrorIs(t, err, ErrNoSearchCriteria)
	assert.Empty(t, client.calls)

	_, err = svc.SearchLedger(context.Background(), models.LedgerQuery{Hash: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SearchLedger"}, client.calls)
}

func TestReportAnalysisNilSafe(t *testing.T) {
	r := models.VerificationReport{}
	assert.Zero(t, r.Analysis())

	r.AIAnalysis = &models.AIAnalysis{AIDetectionScore: 12.5}
	assert.InDelta(t, 12.5, r.Analysis().AIDetectionScore, 0.001)
}
