package models

// AIAnalysis is the AI-detection part of a verification report. Every field
// is optional in the backend response; zero values are the neutral defaults.
type AIAnalysis struct {
	AIDetectionScore      float64  `json:"aiDetectionScore"`
	AIDetectionConclusion string   `json:"aiDetectionConclusion,omitempty"`
	AIDetectionIndicators []string `json:"aiDetectionIndicators,omitempty"`
	MatchedPapersCount    int      `json:"matchedPapersCount,omitempty"`
}

// PaperMatch is one similar paper found during verification.
type PaperMatch struct {
	Title           string  `json:"title"`
	Author          string  `json:"author,omitempty"`
	SimilarityScore float64 `json:"similarityScore"`
}

// VerificationReport is the response-shaped result of one verification
// request. It is ephemeral and never persisted. Any field may be absent
// from the server payload and must render with a neutral default.
type VerificationReport struct {
	Verified        bool            `json:"verified"`
	Message         string          `json:"message,omitempty"`
	MatchedPaper    *PublishedPaper `json:"matchedPaper,omitempty"`
	SimilarityScore float64         `json:"similarityScore"`
	PlagiarismScore float64         `json:"plagiarismScore"`
	Matches         []PaperMatch    `json:"matches,omitempty"`
	AIAnalysis      *AIAnalysis     `json:"aiAnalysis,omitempty"`
}

// Analysis returns the AI-detection payload, or a zero value when the
// server omitted it.
func (r *VerificationReport) Analysis() AIAnalysis {
	if r.AIAnalysis == nil {
		return AIAnalysis{}
	}
	return *r.AIAnalysis
}

// LedgerQuery is the search form of the verification view: at least one
// field must be non-empty.
type LedgerQuery struct {
	Hash       string `json:"hash,omitempty"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	LedgerTxID string `json:"blockchainTxId,omitempty"`
}

// Empty reports whether no search criterion was provided.
func (q LedgerQuery) Empty() bool {
	return q.Hash == "" && q.Title == "" && q.Author == "" && q.LedgerTxID == ""
}
