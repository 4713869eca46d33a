package progressdraft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPSaver saves progress through the backend's PATCH endpoint.
type HTTPSaver struct {
	BaseURL string
	Token   string
	Slug    string
	Client  *http.Client
}

func NewHTTPSaver(baseURL, token, slug string) *HTTPSaver {
	return &HTTPSaver{
		BaseURL: baseURL,
		Token:   token,
		Slug:    slug,
		Client:  &http.Client{},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *HTTPSaver) Save(ctx context.Context, payload Payload) (Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Record{}, err
	}

	url := fmt.Sprintf("%s/api/progress/%s", s.BaseURL, s.Slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return Record{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return Record{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Record{}, fmt.Errorf("save failed (status %d): %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = string(raw)
		}
		return Record{}, fmt.Errorf("save rejected (status %d): %s", resp.StatusCode, msg)
	}

	var record Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}
