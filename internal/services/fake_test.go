package services

import (
	"context"
	"io"

	"thesisledger/internal/api"
	"thesisledger/internal/models"
)

// fakeClient implements api.Client with overridable functions. Unset
// methods return zero values; calls records every method invoked.
type fakeClient struct {
	calls []string

	loginFn   func(ctx context.Context, email, password string) (models.Session, error)
	listFn    func(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error)
	searchFn  func(ctx context.Context, query string, page, size int) (models.ResultSet[models.PublishedPaper], error)
	deptFn    func(ctx context.Context, department string, page, size int) (models.ResultSet[models.PublishedPaper], error)
	uploadFn  func(ctx context.Context, up api.ThesisUpload) (models.SubmissionResult, error)
	pendingFn func(ctx context.Context) ([]models.PendingThesis, error)
	approveFn func(ctx context.Context, id int64) (models.ApprovalOutcome, error)
	rejectFn  func(ctx context.Context, id int64, reason string) error
	verifyFn  func(ctx context.Context, up api.VerificationUpload) (models.VerificationReport, error)
	ledgerFn  func(ctx context.Context, q models.LedgerQuery) (models.VerificationReport, error)
	recordsFn func(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error)
	statsFn   func(ctx context.Context) (models.AdminStats, error)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	f.calls = append(f.calls, "Login")
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return models.Session{}, nil
}

func (f *fakeClient) Signup(context.Context, string, string, string) (models.Session, error) {
	f.calls = append(f.calls, "Signup")
	return models.Session{}, nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.calls = append(f.calls, "Logout")
	return nil
}

func (f *fakeClient) ListPapers(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	f.calls = append(f.calls, "ListPapers")
	if f.listFn != nil {
		return f.listFn(ctx, page, size)
	}
	return models.ResultSet[models.PublishedPaper]{}, nil
}

func (f *fakeClient) SearchPapers(ctx context.Context, query string, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	f.calls = append(f.calls, "SearchPapers")
	if f.searchFn != nil {
		return f.searchFn(ctx, query, page, size)
	}
	return models.ResultSet[models.PublishedPaper]{}, nil
}

func (f *fakeClient) SearchByDepartment(ctx context.Context, department string, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	f.calls = append(f.calls, "SearchByDepartment")
	if f.deptFn != nil {
		return f.deptFn(ctx, department, page, size)
	}
	return models.ResultSet[models.PublishedPaper]{}, nil
}

func (f *fakeClient) UploadThesis(ctx context.Context, up api.ThesisUpload) (models.SubmissionResult, error) {
	f.calls = append(f.calls, "UploadThesis")
	if f.uploadFn != nil {
		return f.uploadFn(ctx, up)
	}
	return models.SubmissionResult{}, nil
}

func (f *fakeClient) PendingTheses(ctx context.Context) ([]models.PendingThesis, error) {
	f.calls = append(f.calls, "PendingTheses")
	if f.pendingFn != nil {
		return f.pendingFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) ApproveThesis(ctx context.Context, id int64) (models.ApprovalOutcome, error) {
	f.calls = append(f.calls, "ApproveThesis")
	if f.approveFn != nil {
		return f.approveFn(ctx, id)
	}
	return models.ApprovalOutcome{}, nil
}

func (f *fakeClient) RejectThesis(ctx context.Context, id int64, reason string) error {
	f.calls = append(f.calls, "RejectThesis")
	if f.rejectFn != nil {
		return f.rejectFn(ctx, id, reason)
	}
	return nil
}

func (f *fakeClient) ValidationDocument(context.Context, int64, bool) (io.ReadCloser, string, error) {
	f.calls = append(f.calls, "ValidationDocument")
	return io.NopCloser(nil), "", nil
}

func (f *fakeClient) LedgerRecords(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	f.calls = append(f.calls, "LedgerRecords")
	if f.recordsFn != nil {
		return f.recordsFn(ctx, page, size)
	}
	return models.ResultSet[models.PublishedPaper]{}, nil
}

func (f *fakeClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	f.calls = append(f.calls, "AdminStats")
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return models.AdminStats{}, nil
}

func (f *fakeClient) VerifyThesis(ctx context.Context, up api.VerificationUpload) (models.VerificationReport, error) {
	f.calls = append(f.calls, "VerifyThesis")
	if f.verifyFn != nil {
		return f.verifyFn(ctx, up)
	}
	return models.VerificationReport{}, nil
}

func (f *fakeClient) SearchLedger(ctx context.Context, q models.LedgerQuery) (models.VerificationReport, error) {
	f.calls = append(f.calls, "SearchLedger")
	if f.ledgerFn != nil {
		return f.ledgerFn(ctx, q)
	}
	return models.VerificationReport{}, nil
}
