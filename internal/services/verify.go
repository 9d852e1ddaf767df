package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// nowFn is a test seam for the submission-year upper bound.
var nowFn = time.Now

// Document types accepted for verification uploads: PDF plus legacy and
// modern word-processor formats.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// VerificationForm is the upload-and-verify input state.
type VerificationForm struct {
	FilePath string

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

// VerificationService requests similarity/authenticity reports and searches
// the ledger.
type VerificationService struct {
	api           api.Client
	maxUploadSize int64
	log           logging.Logger
}

func NewVerificationService(c api.Client, maxUploadSize int64, log logging.Logger) *VerificationService {
	return &VerificationService{api: c, maxUploadSize: maxUploadSize, log: log}
}

// Validate checks the verification form: allow-listed file type, size
// ceiling, required text fields, and submission year between 1900 and the
// next calendar year.
func (s *VerificationService) Validate(f VerificationForm) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.FilePath) == "" {
		errs["thesisFile"] = "required"
	} else {
		ext := strings.ToLower(filepath.Ext(f.FilePath))
		if _, ok := allowedExtensions[ext]; !ok {
			errs["thesisFile"] = "must be a PDF or Word document (.pdf, .doc, .docx)"
		} else if info, err := os.Stat(f.FilePath); err != nil {
			errs["thesisFile"] = fmt.Sprintf("cannot read: %v", err)
		} else if s.maxUploadSize > 0 && info.Size() > s.maxUploadSize {
			errs["thesisFile"] = fmt.Sprintf("file size must be less than %d MB", s.maxUploadSize/(1<<20))
		}
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
	if f.SubmissionYear < 1900 || f.SubmissionYear > nowFn().Year()+1 {
		errs["submissionYear"] = fmt.Sprintf("must be between 1900 and %d", nowFn().Year()+1)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Verify validates the form and requests a report. The backend may omit
// any report field; zero values render as neutral defaults.
func (s *VerificationService) Verify(ctx context.Context, f VerificationForm) (models.VerificationReport, error) {
	if errs := s.Validate(f); errs != nil {
		return models.VerificationReport{}, errs
	}

	file, err := os.Open(f.FilePath)
	if err != nil {
		return models.VerificationReport{}, FieldErrors{"thesisFile": fmt.Sprintf("cannot open: %v", err)}
	}
	defer file.Close()

	up := api.VerificationUpload{
		Thesis:         api.FilePart{Name: filepath.Base(f.FilePath), Content: file},
		Title:          f.Title,
		Author:         f.Author,
		Department:     f.Department,
		Institution:    f.Institution,
		SubmissionYear: f.SubmissionYear,
		Abstract:       f.Abstract,
		Keywords:       f.Keywords,
		Supervisor:     f.Supervisor,
		CoSupervisor:   f.CoSupervisor,
	}

	report, err := s.api.VerifyThesis(ctx, up)
	if err != nil {
		return models.VerificationReport{}, err
	}
	s.log.Info(ctx, "verification report received",
		"similarity", report.SimilarityScore, "plagiarism", report.PlagiarismScore)
	return report, nil
}

// SearchLedger looks a paper up by hash, title, author, or transaction id.
// At least one criterion is required.
func (s *VerificationService) SearchLedger(ctx context.Context, q models.LedgerQuery) (models.VerificationReport, error) {
	if q.Empty() {
		return models.VerificationReport{}, ErrNoSearchCriteria
	}
	return s.api.SearchLedger(ctx, q)
}
