package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTRemote talks to a hosted document store over its REST surface.
// Endpoints follow the common collection layout:
//
//	GET    {base}/v1/{collection}          list
//	GET    {base}/v1/{collection}/{id}     fetch
//	POST   {base}/v1/{collection}          create
//	PATCH  {base}/v1/{collection}/{id}     partial update
//	DELETE {base}/v1/{collection}/{id}     delete
//
// Query filters are passed as URL parameters on the list endpoint.
type RESTRemote struct {
	baseURL    string
	projectID  string
	apiKey     string
	httpClient *http.Client
}

// RESTConfig holds configuration for the remote document store client.
type RESTConfig struct {
	BaseURL   string
	ProjectID string
	APIKey    string
	Timeout   time.Duration
}

// NewRESTRemote creates a document store client.
func NewRESTRemote(config RESTConfig) *RESTRemote {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RESTRemote{
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		projectID: config.ProjectID,
		apiKey:    config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchAll returns every record in the collection.
func (r *RESTRemote) FetchAll(ctx context.Context, collection string) ([]Record, error) {
	return r.list(ctx, collection, nil)
}

// Query returns records matching the given equality filters.
func (r *RESTRemote) Query(ctx context.Context, collection string, filter map[string]string) ([]Record, error) {
	return r.list(ctx, collection, filter)
}

func (r *RESTRemote) list(ctx context.Context, collection string, filter map[string]string) ([]Record, error) {
	endpoint := r.collectionURL(collection)
	if len(filter) > 0 {
		params := url.Values{}
		for k, v := range filter {
			params.Set(k, v)
		}
		endpoint += "?" + params.Encode()
	}

	body, err := r.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", collection, err)
	}
	return records, nil
}

// FetchByID returns a single record, or ErrNotFound.
func (r *RESTRemote) FetchByID(ctx context.Context, collection, id string) (Record, error) {
	body, err := r.do(ctx, http.MethodGet, r.recordURL(collection, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Create inserts a record and returns the store-confirmed copy, which may
// carry a store-assigned id.
func (r *RESTRemote) Create(ctx context.Context, collection string, rec Record) (Record, error) {
	body, err := r.do(ctx, http.MethodPost, r.collectionURL(collection), rec)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update applies a partial patch and returns the updated record.
func (r *RESTRemote) Update(ctx context.Context, collection, id string, patch Record) (Record, error) {
	body, err := r.do(ctx, http.MethodPatch, r.recordURL(collection, id), patch)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Delete removes a record. Deleting an absent id returns ErrNotFound.
func (r *RESTRemote) Delete(ctx context.Context, collection, id string) error {
	_, err := r.do(ctx, http.MethodDelete, r.recordURL(collection, id), nil)
	return err
}

func (r *RESTRemote) collectionURL(collection string) string {
	return fmt.Sprintf("%s/v1/%s", r.baseURL, collection)
}

func (r *RESTRemote) recordURL(collection, id string) string {
	return fmt.Sprintf("%s/v1/%s/%s", r.baseURL, collection, url.PathEscape(id))
}

func (r *RESTRemote) do(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.projectID != "" {
		req.Header.Set("X-Project-ID", r.projectID)
	}
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%s %s failed with status %d: %s", method, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func decodeRecord(body []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}
