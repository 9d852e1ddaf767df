package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// HTTPClient is the Client implementation over the backend's REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   func() string
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. token is consulted
// on every request; it returns the current bearer token or "" when the user
// is anonymous.
func NewHTTPClient(baseURL string, timeout time.Duration, token func() string, log logging.Logger) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// do executes the request and returns the parsed envelope. Connection-level
// failures map to ErrUnavailable; non-2xx statuses map through mapStatus.
func (c *HTTPClient) do(req *http.Request) (*envelope, error) {
	c.log.Debug(req.Context(), "api request",
		"method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get("X-Request-Id"))

	resp, err := c.http.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	env := parseEnvelope(body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatus(resp.StatusCode, env.errorMessage())
	}
	if env.failed() {
		// 2xx with an explicit failure envelope, message optional.
		return nil, &APIError{Status: resp.StatusCode, Message: env.errorMessage()}
	}
	return env, nil
}

func mapStatus(status int, msg string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusConflict:
		return &DuplicateError{Message: msg}
	default:
		return &APIError{Status: status, Message: msg}
	}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string) (*envelope, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, "application/json", nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", body)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// decodeSession pulls a session out of an auth response. Some deployments
// nest it under the payload key, others merge it into the envelope itself.
func decodeSession(env *envelope) (models.Session, error) {
	var s models.Session
	if p := env.payload(); p != nil {
		if err := json.Unmarshal(p, &s); err == nil && s.Token != "" {
			return s, nil
		}
	}
	if err := json.Unmarshal(env.raw, &s); err != nil {
		return s, err
	}
	if s.Token == "" {
		return s, &APIError{Status: http.StatusOK, Message: "auth response carried no token"}
	}
	return s, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	env, err := c.postJSON(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return models.Session{}, err
	}
	return decodeSession(env)
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (models.Session, error) {
	env, err := c.postJSON(ctx, "/api/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return models.Session{}, err
	}
	return decodeSession(env)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.postJSON(ctx, "/api/auth/logout", nil)
	return err
}

func (c *HTTPClient) ListPapers(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	env, err := c.getJSON(ctx, "/api/public/papers?"+q.Encode())
	if err != nil {
		return models.ResultSet[models.PublishedPaper]{}, err
	}
	return decodeResultSet(env.payload())
}

// SearchPapers sends page and size alongside the query; deployments that do
// not paginate search answer with a bare array and ignore them.
func (c *HTTPClient) SearchPapers(ctx context.Context, query string, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	env, err := c.getJSON(ctx, "/api/public/papers/search?"+q.Encode())
	if err != nil {
		return models.ResultSet[models.PublishedPaper]{}, err
	}
	return decodeResultSet(env.payload())
}

func (c *HTTPClient) SearchByDepartment(ctx context.Context, department string, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	q := url.Values{}
	q.Set("department", department)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	env, err := c.getJSON(ctx, "/api/public/papers/search/department?"+q.Encode())
	if err != nil {
		return models.ResultSet[models.PublishedPaper]{}, err
	}
	return decodeResultSet(env.payload())
}

func (c *HTTPClient) UploadThesis(ctx context.Context, up ThesisUpload) (models.SubmissionResult, error) {
	var res models.SubmissionResult

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := writeFilePart(w, "file", up.Thesis); err != nil {
		return res, err
	}
	if err := writeFilePart(w, "validationDocument", up.ValidationDocument); err != nil {
		return res, err
	}
	fields := map[string]string{
		"title":        up.Title,
		"author":       up.Author,
		"department":   up.Department,
		"institution":  up.Institution,
		"supervisor":   up.Supervisor,
		"coSupervisor": up.CoSupervisor,
		"abstractText": up.AbstractText,
		"keywords":     strings.Join(up.Keywords, ","),
		"uploadedBy":   up.UploadedBy,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return res, err
		}
	}
	if err := w.Close(); err != nil {
		return res, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/research-papers/upload", w.FormDataContentType(), buf)
	if err != nil {
		return res, err
	}
	env, err := c.do(req)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(env.raw, &res); err != nil {
		return res, err
	}
	if res.Message == "" {
		res.Message = env.Message
	}
	return res, nil
}

func (c *HTTPClient) PendingTheses(ctx context.Context) ([]models.PendingThesis, error) {
	env, err := c.getJSON(ctx, "/api/pending-thesis/pending")
	if err != nil {
		return nil, err
	}
	theses := []models.PendingThesis{}
	if p := env.payload(); p != nil {
		if err := json.Unmarshal(p, &theses); err != nil {
			return nil, err
		}
	}
	for i := range theses {
		theses[i].Normalize()
	}
	return theses, nil
}

func (c *HTTPClient) ApproveThesis(ctx context.Context, id int64) (models.ApprovalOutcome, error) {
	env, err := c.postJSON(ctx, fmt.Sprintf("/api/pending-thesis/%d/approve", id), nil)
	if err != nil {
		return models.ApprovalOutcome{}, err
	}
	return models.ApprovalOutcome{
		Message:       env.Message,
		MovedToLedger: strings.Contains(strings.ToLower(env.Message), "moved to blockchain"),
	}, nil
}

func (c *HTTPClient) RejectThesis(ctx context.Context, id int64, reason string) error {
	form := url.Values{}
	form.Set("reason", reason)
	req, err := c.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("/api/pending-thesis/%d/reject", id),
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// ValidationDocument streams the signed validation document. The caller owns
// the returned reader. The second return value is the server-suggested file
// name, when provided.
func (c *HTTPClient) ValidationDocument(ctx context.Context, id int64, download bool) (io.ReadCloser, string, error) {
	path := fmt.Sprintf("/api/pending-thesis/%d/validation-document", id)
	if download {
		path += "?download=true"
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, "", mapStatus(resp.StatusCode, parseEnvelope(body).errorMessage())
	}
	name := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		name = params["filename"]
	}
	return resp.Body, name, nil
}

func (c *HTTPClient) LedgerRecords(ctx context.Context, page, size int) (models.ResultSet[models.PublishedPaper], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	env, err := c.getJSON(ctx, "/api/research-papers/blockchain-records?"+q.Encode())
	if err != nil {
		return models.ResultSet[models.PublishedPaper]{}, err
	}
	return decodeResultSet(env.payload())
}

func (c *HTTPClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	env, err := c.getJSON(ctx, "/api/admin/stats")
	if err != nil {
		return models.AdminStats{}, err
	}
	var stats models.AdminStats
	raw := env.payload()
	if raw == nil {
		raw = env.raw
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (c *HTTPClient) VerifyThesis(ctx context.Context, up VerificationUpload) (models.VerificationReport, error) {
	var report models.VerificationReport

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := writeFilePart(w, "thesisFile", up.Thesis); err != nil {
		return report, err
	}
	keywords, err := json.Marshal(up.Keywords)
	if err != nil {
		return report, err
	}
	fields := map[string]string{
		"title":          up.Title,
		"author":         up.Author,
		"department":     up.Department,
		"institution":    up.Institution,
		"submissionYear": strconv.Itoa(up.SubmissionYear),
		"abstract":       up.Abstract,
		"keywords":       string(keywords),
		"supervisor":     up.Supervisor,
		"coSupervisor":   up.CoSupervisor,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return report, err
		}
	}
	if err := w.Close(); err != nil {
		return report, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/papers/verify-thesis", w.FormDataContentType(), buf)
	if err != nil {
		return report, err
	}
	env, err := c.do(req)
	if err != nil {
		return report, err
	}
	return decodeReport(env)
}

func (c *HTTPClient) SearchLedger(ctx context.Context, q models.LedgerQuery) (models.VerificationReport, error) {
	env, err := c.postJSON(ctx, "/api/papers/search", q)
	if err != nil {
		return models.VerificationReport{}, err
	}
	return decodeReport(env)
}

// decodeReport tolerates the report living under the payload key or merged
// into the envelope; absent fields keep their zero defaults.
func decodeReport(env *envelope) (models.VerificationReport, error) {
	var report models.VerificationReport
	raw := env.payload()
	if raw == nil {
		raw = env.raw
	}
	if len(raw) == 0 {
		return report, nil
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		return report, err
	}
	if report.Message == "" {
		report.Message = env.Message
	}
	return report, nil
}

func writeFilePart(w *multipart.Writer, field string, part FilePart) error {
	if part.Content == nil {
		return fmt.Errorf("missing file for field %q", field)
	}
	fw, err := w.CreateFormFile(field, part.Name)
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, part.Content)
	return err
}
