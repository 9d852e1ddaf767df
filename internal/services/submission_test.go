package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validSubmission(t *testing.T) SubmissionForm {
	t.Helper()
	return SubmissionForm{
		ThesisPath:             writeTempFile(t, "thesis.pdf", "thesis content"),
		ValidationDocumentPath: writeTempFile(t, "validation.pdf", "validation content"),
		Title:                  "Graph Coloring Heuristics",
		Author:                 "Jane Smith",
		Department:             "Computer Science",
		Keywords:               []string{"graphs", "heuristics"},
	}
}

func TestSubmissionValidateMissingFields(t *testing.T) {
	svc := NewSubmissionService(&fakeClient{}, logging.NopLogger{})

	errs := svc.Validate(SubmissionForm{})
	require.NotNil(t, errs)
	for _, field := range []string{"thesisFile", "validationDocument", "title", "author", "department"} {
		assert.Equal(t, "required", errs[field], field)
	}
}

func TestSubmissionValidateOK(t *testing.T) {
	svc := NewSubmissionService(&fakeClient{}, logging.NopLogger{})
	assert.Nil(t, svc.Validate(validSubmission(t)))
}

func TestSubmitInvalidFormDoesNotReachNetwork(t *testing.T) {
	client := &fakeClient{}
	svc := NewSubmissionService(client, logging.NopLogger{})

	form := validSubmission(t)
	form.Title = "   "

	_, err := svc.Submit(context.Background(), &form, "admin@uni.edu")
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "required", fe["title"])
	assert.Empty(t, client.calls)
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	client := &fakeClient{
		uploadFn: func(_ context.Context, up api.ThesisUpload) (models.SubmissionResult, error) {
			assert.Equal(t, "Graph Coloring Heuristics", up.Title)
			assert.Equal(t, "admin@uni.edu", up.UploadedBy)
			assert.Equal(t, "thesis.pdf", up.Thesis.Name)
			return models.SubmissionResult{
				Message:             "Thesis submitted for approval",
				NeedsApproval:       true,
				CurrentApprovals:    1,
				TotalAdminsRequired: 3,
			}, nil
		},
	}
	svc := NewSubmissionService(client, logging.NopLogger{})

	form := validSubmission(t)
	res, err := svc.Submit(context.Background(), &form, "admin@uni.edu")
	require.NoError(t, err)
	assert.True(t, res.NeedsApproval)
	assert.Equal(t, 1, res.CurrentApprovals)
	assert.Equal(t, SubmissionForm{}, form)
}

func TestSubmitDuplicateKeepsForm(t *testing.T) {
	client := &fakeClient{
		uploadFn: func(context.Context, api.ThesisUpload) (models.SubmissionResult, error) {
			return models.SubmissionResult{}, &api.DuplicateError{Message: "This thesis already exists in the system"}
		},
	}
	svc := NewSubmissionService(client, logging.NopLogger{})

	form := validSubmission(t)
	_, err := svc.Submit(context.Background(), &form, "admin@uni.edu")

	var dup *api.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "This thesis already exists in the system", dup.Message)
	assert.NotEqual(t, SubmissionForm{}, form)
}

func TestSubmitUnreadableThesisFile(t *testing.T) {
	client := &fakeClient{}
	svc := NewSubmissionService(client, logging.NopLogger{})

	form := validSubmission(t)
	form.ThesisPath = filepath.Join(t.TempDir(), "missing.pdf")

	_, err := svc.Submit(context.Background(), &form, "admin@uni.edu")
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe["thesisFile"], "cannot open")
	assert.Empty(t, client.calls)
}
