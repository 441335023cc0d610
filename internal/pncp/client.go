// Package pncp implements the consultation client for the Portal Nacional
// de Contratações Públicas public API.
package pncp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// noticesPath is the open-proposal consultation endpoint, relative to the
// API base URL.
const noticesPath = "/v1/contratacoes/proposta"

// SourceName labels every result envelope so the model can cite its source.
const SourceName = "Portal Nacional de Contratações Públicas (PNCP)"

// maxErrorBodyBytes bounds how much of an upstream error body is carried
// into the failure message.
const maxErrorBodyBytes = 512

// HTTPDoer abstracts the HTTP client for testability.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the PNCP consultation API, aggregating result pages up to
// a configured cap.
type Client struct {
	http     HTTPDoer
	baseURL  string
	maxPages int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPDoer replaces the underlying HTTP client (used by tests).
func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// NewClient creates a Client for the given API base URL.
// maxPages caps automatic page aggregation on open-ended searches.
func NewClient(baseURL string, timeout time.Duration, maxPages int, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		maxPages: maxPages,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchNotices runs a validated notice search. When the request pins a
// page, exactly that page is fetched; otherwise pages are aggregated from
// the first until the result set is exhausted or the cap is reached.
//
// The request must have passed Validate(); SearchNotices does not
// re-validate.
func (c *Client) SearchNotices(ctx context.Context, req NoticesRequest) (*SearchResult, error) {
	req = req.normalized()

	startPage := req.Pagina
	aggregate := startPage == 0
	if aggregate {
		startPage = 1
	}

	result := &SearchResult{
		Success: true,
		Fonte:   SourceName,
		Editais: []Notice{},
	}

	page := startPage
	for {
		resp, err := c.fetchPage(ctx, req, page)
		if err != nil {
			return nil, err
		}

		result.TotalRegistros = resp.TotalRegistros
		result.TotalPaginas = resp.TotalPaginas
		result.PaginasColetadas++
		for _, item := range resp.Data {
			result.Editais = append(result.Editais, item.toNotice())
		}

		if !aggregate {
			break
		}
		if resp.PaginasRestantes <= 0 || page >= resp.TotalPaginas {
			break
		}
		if result.PaginasColetadas >= c.maxPages {
			break
		}
		page++
	}

	return result, nil
}

// fetchPage issues one GET against the consultation endpoint.
func (c *Client) fetchPage(ctx context.Context, req NoticesRequest, page int) (*apiResponse, error) {
	endpoint := c.baseURL + noticesPath

	query := url.Values{}
	query.Set("dataFinal", req.DataFinal)
	query.Set("pagina", strconv.Itoa(page))
	query.Set("tamanhoPagina", strconv.Itoa(req.TamanhoPagina))
	if req.UF != "" {
		query.Set("uf", req.UF)
	}
	if req.CNPJ != "" {
		query.Set("cnpj", req.CNPJ)
	}
	if req.CodigoModalidade != 0 {
		query.Set("codigoModalidadeContratacao", strconv.Itoa(req.CodigoModalidade))
	}
	if req.CodigoMunicipioIBGE != "" {
		query.Set("codigoMunicipioIbge", req.CodigoMunicipioIBGE)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build PNCP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout: a API do PNCP demorou muito para responder")
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("timeout: a API do PNCP demorou muito para responder")
		}
		return nil, fmt.Errorf("erro de rede ao consultar o PNCP: %w", err)
	}
	defer httpResp.Body.Close()

	// 204 means a valid query with an empty result set.
	if httpResp.StatusCode == http.StatusNoContent {
		return &apiResponse{Data: []apiItem{}}, nil
	}

	if httpResp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("a API do PNCP retornou status %d: %s",
			httpResp.StatusCode, string(detail))
	}

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("resposta inválida da API do PNCP: %w", err)
	}

	return &resp, nil
}
