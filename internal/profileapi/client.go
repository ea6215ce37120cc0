package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

// Client talks to the seller profile REST API and satisfies the onboarding
// client boundary. It is what desktop and CLI tooling use to drive the
// onboarding flow against a running server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a profile API client. token is sent as a bearer token on
// every request.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetBusinessInfo(ctx context.Context) (*onboarding.BusinessInfo, error) {
	var out onboarding.BusinessInfo
	if err := c.do(ctx, http.MethodGet, "/seller/profile/bussinessInfo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBusinessInfo(ctx context.Context, data *onboarding.BusinessInfo) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/bussinessInfo", data, nil)
}

func (c *Client) GetGoalsMetrics(ctx context.Context) (*onboarding.GoalsMetrics, error) {
	var out onboarding.GoalsMetrics
	if err := c.do(ctx, http.MethodGet, "/seller/profile/goalsMetric", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGoalsMetrics(ctx context.Context, data *onboarding.GoalsMetrics) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/goalsMetric", data, nil)
}

func (c *Client) GetBusinessOverview(ctx context.Context) (*onboarding.BusinessOverview, error) {
	var out onboarding.BusinessOverview
	if err := c.do(ctx, http.MethodGet, "/seller/profile/business-overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBusinessOverview(ctx context.Context, data *onboarding.BusinessOverview) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/business-overview", data, nil)
}

func (c *Client) GetCapabilitiesOperations(ctx context.Context) (*onboarding.CapabilitiesOperations, error) {
	var out onboarding.CapabilitiesOperations
	if err := c.do(ctx, http.MethodGet, "/seller/profile/capabilities-operations", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCapabilitiesOperations(ctx context.Context, data *onboarding.CapabilitiesOperations) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/capabilities-operations", data, nil)
}

func (c *Client) GetComplianceCredentials(ctx context.Context) (*onboarding.ComplianceCredentials, error) {
	var out onboarding.ComplianceCredentials
	if err := c.do(ctx, http.MethodGet, "/seller/profile/compliance-credentials", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateComplianceCredentials(ctx context.Context, data *onboarding.ComplianceCredentials) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/compliance-credentials", data, nil)
}

func (c *Client) GetBrandPresence(ctx context.Context) (*onboarding.BrandPresence, error) {
	var out onboarding.BrandPresence
	if err := c.do(ctx, http.MethodGet, "/seller/profile/brand-presence", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBrandPresence(ctx context.Context, data *onboarding.BrandPresence) error {
	return c.do(ctx, http.MethodPut, "/seller/profile/brand-presence", data, nil)
}

func (c *Client) GetProfileSummary(ctx context.Context) (*onboarding.ProfileSummary, error) {
	var out onboarding.ProfileSummary
	if err := c.do(ctx, http.MethodGet, "/seller/profile/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
