package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// SubmissionForm is the thesis-submission input state. Files are given as
// local paths and streamed on submit.
type SubmissionForm struct {
	ThesisPath             string
	ValidationDocumentPath string

	Title        string
	Author       string
	Department   string
	Institution  string
	Supervisor   string
	CoSupervisor string
	AbstractText string
	Keywords     []string
}

// Reset clears the form to its empty state.
func (f *SubmissionForm) Reset() {
	*f = SubmissionForm{}
}

// SubmissionService uploads theses into the pending-approval workflow.
type SubmissionService struct {
	api api.Client
	log logging.Logger
}

func NewSubmissionService(c api.Client, log logging.Logger) *SubmissionService {
	return &SubmissionService{api: c, log: log}
}

// Validate checks the required fields and files. A non-empty result means
// the submission must not reach the network.
func (s *SubmissionService) Validate(f SubmissionForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.ThesisPath) == "" {
		errs["thesisFile"] = "required"
	}
	if strings.TrimSpace(f.ValidationDocumentPath) == "" {
		errs["validationDocument"] = "required"
	}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "required"
	}
	if strings.TrimSpace(f.Author) == "" {
		errs["author"] = "required"
	}
	if strings.TrimSpace(f.Department) == "" {
		errs["department"] = "required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates the form, uploads the multipart payload, and resets the
// form on success. A 409-class response surfaces as *api.DuplicateError.
func (s *SubmissionService) Submit(ctx context.Context, f *SubmissionForm, uploadedBy string) (models.SubmissionResult, error) {
	var res models.SubmissionResult

	if errs := s.Validate(*f); errs != nil {
		return res, errs
	}

	thesis, err := os.Open(f.ThesisPath)
	if err != nil {
		return res, FieldErrors{"thesisFile": fmt.Sprintf("cannot open: %v", err)}
	}
	defer thesis.Close()

	doc, err := os.Open(f.ValidationDocumentPath)
	if err != nil {
		return res, FieldErrors{"validationDocument": fmt.Sprintf("cannot open: %v", err)}
	}
	defer doc.Close()

	up := api.ThesisUpload{
		Thesis:             api.FilePart{Name: filepath.Base(f.ThesisPath), Content: thesis},
		ValidationDocument: api.FilePart{Name: filepath.Base(f.ValidationDocumentPath), Content: doc},
		Title:              f.Title,
		Author:             f.Author,
		Department:         f.Department,
		Institution:        f.Institution,
		Supervisor:         f.Supervisor,
		CoSupervisor:       f.CoSupervisor,
		AbstractText:       f.AbstractText,
		Keywords:           f.Keywords,
		UploadedBy:         uploadedBy,
	}

	res, err = s.api.UploadThesis(ctx, up)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	s.log.Info(ctx, "thesis submitted",
		"title", f.Title, "needs_approval", res.NeedsApproval,
		"approvals", res.CurrentApprovals, "required", res.TotalAdminsRequired)

	f.Reset()
	return res, nil
}
