package models

import "strings"

// PendingThesis is a submitted thesis awaiting quorum approval. Field names
// follow the backend's JSON.
type PendingThesis struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Author              string   `json:"author"`
	Department          string   `json:"department"`
	Institution         string   `json:"institution,omitempty"`
	Supervisor          string   `json:"supervisor,omitempty"`
	CoSupervisor        string   `json:"coSupervisor,omitempty"`
	AbstractText        string   `json:"abstractText,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
	UploadedBy          string   `json:"uploadedBy"`
	CurrentApprovals    int      `json:"currentApprovals"`
	TotalAdminsRequired int      `json:"totalAdminsRequired"`
	Approvals           []string `json:"approvals,omitempty"`

	ValidationDocumentName string `json:"validationDocumentName,omitempty"`
	ValidationDocumentPath string `json:"validationDocumentPath,omitempty"`
	ValidationDocumentSize int64  `json:"validationDocumentSize,omitempty"`

	SubmissionDate string `json:"submissionDate,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// IsUploader reports whether identity uploaded this thesis.
func (t *PendingThesis) IsUploader(identity string) bool {
	return identity != "" && strings.EqualFold(t.UploadedBy, identity)
}

// ApprovedBy reports whether identity is already in the approver set.
func (t *PendingThesis) ApprovedBy(identity string) bool {
	for _, a := range t.Approvals {
		if strings.EqualFold(a, identity) {
			return true
		}
	}
	return false
}

// Remaining returns how many approvals are still missing.
func (t *PendingThesis) Remaining() int {
	r := t.TotalAdminsRequired - t.CurrentApprovals
	if r < 0 {
		return 0
	}
	return r
}

// Normalize re-derives the approval count from the approver set so the
// invariants hold regardless of what the backend sent: the uploader is never
// counted as an approver, and the count never exceeds the required quorum.
func (t *PendingThesis) Normalize() {
	if t.Approvals != nil {
		n := 0
		for _, a := range t.Approvals {
			if !t.IsUploader(a) {
				n++
			}
		}
		t.CurrentApprovals = n
	}
	if t.TotalAdminsRequired > 0 && t.CurrentApprovals > t.TotalAdminsRequired {
		t.CurrentApprovals = t.TotalAdminsRequired
	}
	if t.SubmissionDate == "" {
		t.SubmissionDate = t.CreatedAt
	}
}

// SubmissionResult is the outcome of a thesis upload. The backend either
// places the thesis into the pending-approval workflow (NeedsApproval set,
// with approval counters) or, on legacy deployments, accepts it directly.
type SubmissionResult struct {
	Message             string  `json:"message"`
	NeedsApproval       bool    `json:"needsApproval"`
	PendingThesisID     int64   `json:"pendingThesisId,omitempty"`
	CurrentApprovals    int     `json:"currentApprovals,omitempty"`
	TotalAdminsRequired int     `json:"totalAdminsRequired,omitempty"`
	ApprovalProgress    float64 `json:"approvalProgress,omitempty"`
	Status              string  `json:"status,omitempty"`
	StoredOnLedger      bool    `json:"storedOnBlockchain,omitempty"`
}

// ApprovalOutcome is the result of one admin approval call.
type ApprovalOutcome struct {
	Message string
	// MovedToLedger is set when this approval completed the quorum and the
	// thesis was published; the caller must refresh both the pending list
	// and the ledger records.
	MovedToLedger bool
}
