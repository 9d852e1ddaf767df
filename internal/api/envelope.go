package api

import (
	"bytes"
	"encoding/json"

	"thesisledger/internal/models"
)

// envelope is the uniform response wrapper. Different endpoints hang the
// payload off different keys; payload() picks the first one present.
type envelope struct {
	// Success is a pointer so a body without the field (a bare session
	// object, a report merged into the top level) is not mistaken for an
	// explicit failure.
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Papers  json.RawMessage `json:"papers"`
	Records json.RawMessage `json:"records"`

	raw json.RawMessage
}

func parseEnvelope(body []byte) *envelope {
	e := &envelope{}
	// A body that is not valid JSON (HTML error page, empty) still yields a
	// usable envelope with no payload.
	_ = json.Unmarshal(body, e)
	e.raw = append(json.RawMessage(nil), body...)
	return e
}

// payload returns the endpoint's payload, whichever key it was nested under.
func (e *envelope) payload() json.RawMessage {
	for _, p := range []json.RawMessage{e.Data, e.Papers, e.Records} {
		if len(p) > 0 && !bytes.Equal(p, []byte("null")) {
			return p
		}
	}
	return nil
}

// failed reports whether the body carried an explicit success=false marker.
func (e *envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

// errorMessage returns the server's message, preferring the message field
// over the legacy error field.
func (e *envelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// springPage mirrors the page object the listing endpoints wrap results in.
type springPage struct {
	Content       json.RawMessage `json:"content"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int64           `json:"totalElements"`
}

// decodeResultSet normalizes the two list shapes the backend produces: a
// bare JSON array (search endpoints, not paginated) and a Spring-style page
// object (listing endpoints). The returned Page descriptor is nil for the
// former so views can suppress pagination controls.
func decodeResultSet(raw json.RawMessage) (models.ResultSet[models.PublishedPaper], error) {
	var rs models.ResultSet[models.PublishedPaper]
	if len(raw) == 0 {
		rs.Items = []models.PublishedPaper{}
		return rs, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rs.Items); err != nil {
			return rs, err
		}
		if rs.Items == nil {
			rs.Items = []models.PublishedPaper{}
		}
		return rs, nil
	}

	var page springPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return rs, err
	}
	if len(page.Content) > 0 {
		if err := json.Unmarshal(page.Content, &rs.Items); err != nil {
			return rs, err
		}
	}
	if rs.Items == nil {
		rs.Items = []models.PublishedPaper{}
	}
	rs.Page = &models.PageInfo{
		Number:        page.Number,
		Size:          page.Size,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}
	return rs, nil
}
