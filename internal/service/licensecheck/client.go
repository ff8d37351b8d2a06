package licensecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LicenseKind is a license type known to the regulator registry.
type LicenseKind string

const (
	KindPharmacy   LicenseKind = "pharmacy"
	KindPharmacist LicenseKind = "pharmacist"
	KindBusiness   LicenseKind = "business"
)

// LicenseStatus is the registry verdict for one license.
type LicenseStatus string

const (
	StatusValid    LicenseStatus = "valid"
	StatusInvalid  LicenseStatus = "invalid"
	StatusNotFound LicenseStatus = "not_found"
)

type LicenseQuery struct {
	Kind   LicenseKind `json:"kind"`
	Number string      `json:"number"`
}

type CheckRequest struct {
	Licenses []LicenseQuery `json:"licenses"`
}

type LicenseResult struct {
	Kind   LicenseKind   `json:"kind"`
	Number string        `json:"number"`
	Status LicenseStatus `json:"status"`
}

type CheckResponse struct {
	Results []LicenseResult `json:"results"`
}

// AllValid reports whether every requested license came back valid.
func (r *CheckResponse) AllValid(requested int) bool {
	if len(r.Results) < requested {
		return false
	}
	for _, res := range r.Results {
		if res.Status != StatusValid {
			return false
		}
	}
	return true
}

// Client talks to the regulator's license registry over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Check(ctx context.Context, licenses []LicenseQuery) (*CheckResponse, error) {
	if len(licenses) == 0 {
		return nil, errors.New("no licenses to check")
	}
	for _, l := range licenses {
		if l.Number == "" {
			return nil, fmt.Errorf("empty %s license number", l.Kind)
		}
	}

	jsonData, err := json.Marshal(CheckRequest{Licenses: licenses})
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/licenses/check", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("build request failed: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var checkResp CheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkResp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	return &checkResp, nil
}
