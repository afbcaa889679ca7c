package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"
)

const (
	pathRates      = "/rates"
	pathQuotations = "/quotations"

	maxErrorBody = 64 << 10
)

// Client talks to the quotation service over HTTP. It is both the quotation
// repository and the rates source of the CLI.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ interfaces.IQuotationRepository = (*Client)(nil)
	_ interfaces.IRatesSource         = (*Client)(nil)
)

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("quotation service URL must be absolute http(s), got %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ratesPayload mirrors entities.Rates with pointers so missing fields can be told
// apart from zero values.
type ratesPayload struct {
	PaintCategoryCostPerSqm map[string]float64 `json:"paintCategoryCostsPerSqm"`
	CoatMultiplier          map[string]float64 `json:"coatMultipliers"`
	LabourRatePerSqm        *float64           `json:"labourRatePerSqm"`
	TransportRate           *float64           `json:"transportRate"`
	OverheadPercentage      *float64           `json:"overheadPercentage"`
}

func (p ratesPayload) toRates() (entities.Rates, error) {
	var missing []string
	if p.PaintCategoryCostPerSqm == nil {
		missing = append(missing, "paintCategoryCostsPerSqm")
	}
	if p.CoatMultiplier == nil {
		missing = append(missing, "coatMultipliers")
	}
	if p.LabourRatePerSqm == nil {
		missing = append(missing, "labourRatePerSqm")
	}
	if p.TransportRate == nil {
		missing = append(missing, "transportRate")
	}
	if p.OverheadPercentage == nil {
		missing = append(missing, "overheadPercentage")
	}
	if len(missing) > 0 {
		return entities.Rates{}, fmt.Errorf("rates payload missing %s", strings.Join(missing, ", "))
	}
	return entities.Rates{
		PaintCategoryCostPerSqm: p.PaintCategoryCostPerSqm,
		CoatMultiplier:          p.CoatMultiplier,
		LabourRatePerSqm:        *p.LabourRatePerSqm,
		TransportRate:           *p.TransportRate,
		OverheadPercentage:      *p.OverheadPercentage,
	}, nil
}

// FetchRates retrieves the published rate set.
func (c *Client) FetchRates(ctx context.Context) (entities.Rates, error) {
	var payload ratesPayload
	if err := c.do(ctx, http.MethodGet, pathRates, nil, &payload, nil); err != nil {
		return entities.Rates{}, err
	}
	return payload.toRates()
}

// PutRates replaces the published rate set.
func (c *Client) PutRates(ctx context.Context, r entities.Rates) (entities.Rates, error) {
	var payload ratesPayload
	if err := c.do(ctx, http.MethodPut, pathRates, r, &payload, nil); err != nil {
		return entities.Rates{}, err
	}
	return payload.toRates()
}

func (c *Client) List(ctx context.Context) ([]entities.Quotation, error) {
	var out []entities.Quotation
	if err := c.do(ctx, http.MethodGet, pathQuotations, nil, &out, nil); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Quotation{}
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.ID = ""
	var out entities.Quotation
	if err := c.do(ctx, http.MethodPost, pathQuotations, q, &out, nil); err != nil {
		return entities.Quotation{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error) {
	q.ID = id
	var out entities.Quotation
	if err := c.do(ctx, http.MethodPut, quotationPath(id), q, &out, entities.ErrQuotationNotFound); err != nil {
		return entities.Quotation{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, quotationPath(id), nil, nil, entities.ErrQuotationNotFound)
}

func quotationPath(id string) string {
	return pathQuotations + "/" + url.PathEscape(id)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends one request. Every failure comes back as a *entities.NetworkError; a 404
// also matches notFound when it is set.
func (c *Client) do(ctx context.Context, method, path string, in, out any, notFound error) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entities.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp, notFound)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &entities.NetworkError{Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func statusError(resp *http.Response, notFound error) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := ""
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		msg = strings.TrimSpace(eb.Message)
	}

	netErr := &entities.NetworkError{Status: resp.StatusCode, Message: msg}
	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		netErr.Err = notFound
	} else {
		netErr.Err = errors.New(http.StatusText(resp.StatusCode))
	}
	return netErr
}
