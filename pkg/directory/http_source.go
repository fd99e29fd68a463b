package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onereply/onereply/pkg/logger"
)

// HTTPSource queries an HTTP directory service. The service is known to
// answer with either a JSON array of contact records or a single record;
// both shapes are accepted.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

type contactRecord struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *HTTPSource) ResolveName(ctx context.Context, number string) (string, bool) {
	endpoint := fmt.Sprintf("%s/contacts?number=%s", h.baseURL, url.QueryEscape(number))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logger.WarnCF("directory", "Directory request failed", map[string]interface{}{
			"number": number,
			"error":  err.Error(),
		})
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", false
	}

	return matchRecord(body, number)
}

// matchRecord normalizes the two known response shapes to the first record
// whose number matches.
func matchRecord(body []byte, number string) (string, bool) {
	var records []contactRecord
	if err := json.Unmarshal(body, &records); err != nil {
		var single contactRecord
		if err := json.Unmarshal(body, &single); err != nil {
			return "", false
		}
		records = []contactRecord{single}
	}

	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		if SameNumber(rec.Number, number) {
			return rec.Name, true
		}
	}
	return "", false
}
