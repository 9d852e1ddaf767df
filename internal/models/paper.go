package models

// PublishedPaper is a paper recorded on the ledger after full approval.
// Immutable from the client's perspective.
type PublishedPaper struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Department   string   `json:"department,omitempty"`
	Institution  string   `json:"institution,omitempty"`
	AbstractText string   `json:"abstractText,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Status       string   `json:"status,omitempty"`

	FileHash       string `json:"fileHash,omitempty"`
	LedgerHash     string `json:"blockchainHash,omitempty"`
	LedgerTxID     string `json:"blockchainTxId,omitempty"`
	FileSize       int64  `json:"fileSize,omitempty"`
	SubmissionDate string `json:"submissionDate,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	VerifiedAt     string `json:"verificationDate,omitempty"`
}

// AdminStats are the dashboard counters returned by the backend.
type AdminStats struct {
	TotalUsers           int `json:"totalUsers"`
	TotalPapers          int `json:"totalPapers"`
	PendingVerifications int `json:"pendingVerifications"`
}

// PageInfo describes the position of a page inside a paginated result.
type PageInfo struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// First reports whether this is the first page.
func (p PageInfo) First() bool { return p.Number <= 0 }

// Last reports whether this is the last page.
func (p PageInfo) Last() bool { return p.Number >= p.TotalPages-1 }

// ResultSet is a list of items with an optional pagination descriptor.
// Search endpoints return bare arrays, the listing endpoint returns a page
// object; both normalize to this shape. Page == nil means the backend did
// not paginate and pagination controls must be suppressed.
type ResultSet[T any] struct {
	Items []T
	Page  *PageInfo
}
