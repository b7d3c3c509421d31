// Package mora is the HTTP client for the external late-fee service. The
// ledger never evaluates the late-fee formula; it forwards the request and
// displays whatever the collaborator answers.
package mora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/dto"
)

const defaultTimeout = 10 * time.Second

// Client calls the late-fee calculation endpoint of the cobranzas service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a late-fee client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portssvc.MoraSvcFacade = (*Client)(nil)

// CalcularMora forwards the query and returns the precomputed amount.
func (c *Client) CalcularMora(ctx context.Context, req dto.MoraRequest) (*dto.MoraResponse, error) {
	q := url.Values{}
	q.Set("fechaVencimiento", req.FechaVencimiento.Format("2006-01-02"))
	q.Set("monto", req.Monto.String())
	q.Set("empresaID", req.EmpresaID)
	if req.Al != nil {
		q.Set("al", req.Al.Format("2006-01-02"))
	}

	endpoint := fmt.Sprintf("%s/api/v1/mora?%s", c.baseURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build mora request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mora service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: mora service rejected the request: %s", apperrors.ErrValidation, body)
	default:
		return nil, fmt.Errorf("mora service responded %d", resp.StatusCode)
	}

	var out dto.MoraResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode mora response: %w", err)
	}
	return &out, nil
}
