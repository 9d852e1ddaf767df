// Package api implements the REST client for the Thesis Ledger backend.
//
// All endpoints answer in a loose envelope {success, message, payload} where
// the payload key and shape vary per endpoint (bare array, Spring-style page
// object, or fields merged into the envelope itself). This package is the
// only place that knows about that inconsistency; callers always receive
// normalized models.
package api

import (
	"context"
	"io"

	"thesisledger/internal/models"
)

// FilePart is a named file streamed into a multipart request.
type FilePart struct {
	Name    string
	Content io.Reader
}

// ThesisUpload is the multipart payload of a thesis submission.
type ThesisUpload struct {
	Thesis             FilePart
	ValidationDocument FilePart

	Title        string
	Author       string
	Department   string
	Institution  string
	Supervisor   string
	CoSupervisor string
	AbstractText string
	Keywords     []string
	UploadedBy   string
}

// VerificationUpload is the multipart payload of a verification request.
type VerificationUpload struct {
	Thesis FilePart

	Title          string
	Author         string
	Department     string
	Institution    string
	SubmissionYear int
	Abstract       string
	Keywords       []string
	Supervisor     string
	CoSupervisor   string
}

// Client defines the backend operations the CLI needs.
//
// All methods honor context cancellation. Transport failures map to
// ErrUnavailable, identity rejections to ErrUnauthorized, duplicate
// detection to *DuplicateError, and everything else to *APIError.
type Client interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Signup(ctx context.Context, name, email, password string) (models.Session, error)
	Logout(ctx context.Context) error

	ListPapers(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error)
	SearchPapers(ctx context.Context, query string, page, size int) (models.ResultSet[models.PublishedPaper], error)
	SearchByDepartment(ctx context.Context, department string, page, size int) (models.ResultSet[models.PublishedPaper], error)

	UploadThesis(ctx context.Context, up ThesisUpload) (models.SubmissionResult, error)

	PendingTheses(ctx context.Context) ([]models.PendingThesis, error)
	ApproveThesis(ctx context.Context, id int64) (models.ApprovalOutcome, error)
	RejectThesis(ctx context.Context, id int64, reason string) error
	ValidationDocument(ctx context.Context, id int64, download bool) (io.ReadCloser, string, error)

	LedgerRecords(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error)
	AdminStats(ctx context.Context) (models.AdminStats, error)

	VerifyThesis(ctx context.Context, up VerificationUpload) (models.VerificationReport, error)
	SearchLedger(ctx context.Context, q models.LedgerQuery) (models.VerificationReport, error)
}
