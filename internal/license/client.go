package license

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateTimeout bounds one validation call. There is no retry.
const ValidateTimeout = 10 * time.Second

const validatePath = "/api/license/validate"

type ValidationRequest struct {
	Key                string `json:"key"`
	Email              string `json:"email"`
	MachineFingerprint string `json:"machine_fingerprint"`
}

type ValidationResponse struct {
	Valid       bool    `json:"valid"`
	ExpiresAt   *int64  `json:"expires_at"`
	UserEmail   string  `json:"user_email"`
	LicenseType string  `json:"license_type"`
	Error       *string `json:"error"`
}

// Validator asks the license server whether a key may be activated.
type Validator interface {
	Validate(ctx context.Context, req *ValidationRequest) (*ValidationResponse, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: ValidateTimeout},
	}
}

// Validate returns a *ValidationError for transport, status and decoding
// failures. A rejected key is a normal response with Valid false.
func (c *HTTPClient) Validate(ctx context.Context, in *ValidationRequest) (*ValidationResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode validation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(body))
	if err != nil {
		return nil, &ValidationError{Kind: ErrNetwork, Msg: "Connection error: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ValidationError{Kind: ErrNetwork, Msg: "Connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ValidationError{
			Kind: ErrNetwork,
			Msg:  fmt.Sprintf("API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	var out ValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ValidationError{Kind: ErrParse, Msg: "Parse error: " + err.Error()}
	}
	return &out, nil
}
