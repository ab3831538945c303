// Package backend implements ports.Backend over the OpenCRE REST API.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/telemetry"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.trai.ch/zerr"
)

var tracer = otel.Tracer("github.com/Pa04rth/OpenCRE/internal/adapters/backend")

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 4 << 10

// Client implements ports.Backend.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// Options configures a Client.
type Options struct {
	// Timeout bounds every request. Zero disables the timeout.
	Timeout time.Duration
	// Retries is the number of retries after a failed request.
	Retries int
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = opts.Timeout
	// Hand every final response back so status codes can be classified here.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

type listResponse struct {
	Data       []domain.Document `json:"data"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type documentResponse struct {
	Data domain.Document `json:"data"`
}

// AllDocuments fetches one page of the flat document listing.
func (c *Client) AllDocuments(ctx context.Context, page, perPage int) (domain.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var resp listResponse
	if err := c.get(ctx, "all_cres", q, nil, &resp); err != nil {
		return domain.Page{}, err
	}

	out := domain.Page{Documents: resp.Data, Page: resp.Page, TotalPages: resp.TotalPages}
	if out.Page == 0 {
		out.Page = page
	}
	return out, nil
}

// RootDocuments fetches the root-level documents.
func (c *Client) RootDocuments(ctx context.Context) ([]domain.Document, error) {
	var resp listResponse
	if err := c.get(ctx, "root_cres", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DocumentByID fetches a single document.
func (c *Client) DocumentByID(ctx context.Context, id string) (domain.Document, error) {
	var resp documentResponse
	if err := c.get(ctx, "id/"+url.PathEscape(id), nil, domain.ErrDocumentNotFound, &resp); err != nil {
		return domain.Document{}, err
	}
	return resp.Data, nil
}

// Resources fetches the selectable doctypes.
func (c *Client) Resources(ctx context.Context) ([]string, error) {
	var resources []string
	if err := c.get(ctx, "resources", nil, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// get requests path and decodes the body into out. A 404 is reported as
// notFound when it is set and as an UpstreamError otherwise.
func (c *Client) get(ctx context.Context, path string, query url.Values, notFound error, out any) error {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	ctx, span := tracer.Start(ctx, "GET /"+strings.SplitN(path, "/", 2)[0])
	defer span.End()
	span.SetAttributes(attribute.String("http.url", endpoint))

	err := c.do(ctx, endpoint, notFound, out)
	if err != nil {
		telemetry.RecordFailure(span, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, endpoint string, notFound error, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBackendRequestFailed.Error()), "url", endpoint)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBackendRequestFailed.Error()), "url", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return zerr.With(zerr.Wrap(notFound, "backend returned 404"), "url", endpoint)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        endpoint,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return zerr.With(zerr.Wrap(err, domain.ErrBackendDecodeFailed.Error()), "url", endpoint)
	}
	return nil
}
