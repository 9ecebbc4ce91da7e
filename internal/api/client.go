package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// fallbackErrorMsg is shown when the backend returns no usable msg field.
const fallbackErrorMsg = "Something went wrong. Please try again."

// CredentialProvider returns the current bearer credential, or "" when
// the user is logged out. It is consulted fresh on every authorized call
// so the client always sees the latest login/logout state.
type CredentialProvider func() string

// Client is the typed HTTP client for the VY portal backend. All methods
// follow one contract: send a request with method, path, optional bearer
// credential and JSON or multipart body; get back a status code and a
// JSON body.
type Client struct {
	baseURL    string
	httpClient *http.Client
	credential CredentialProvider
}

func NewClient(baseURL string, credential CredentialProvider) *Client {
	if credential == nil {
		credential = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		credential: credential,
	}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// rejection is the backend's non-2xx body shape. Both fields are
// optional; a missing or malformed body still produces a usable error.
type rejection struct {
	Msg        string `json:"msg"`
	IsApproved bool   `json:"isApproved"`
}

// do issues one request and returns the raw success body. Authorized
// calls are short-circuited with ErrNoCredential when no credential is
// stored — no network request is issued at all. Transport failures come
// back as *RequestError, non-2xx responses as *APIError.
func (c *Client) do(ctx context.Context, method, path string, authorized bool, body any) ([]byte, error) {
	var credential string
	if authorized {
		credential = c.credential()
		if credential == "" {
			return nil, ErrNoCredential
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rej := rejection{}
		// Best effort: a body that is not the documented shape still
		// yields a generic, user-presentable error.
		_ = json.Unmarshal(data, &rej)
		if rej.Msg == "" {
			rej.Msg = fallbackErrorMsg
		}
		return nil, &APIError{Status: resp.StatusCode, Msg: rej.Msg, AlreadyApproved: rej.IsApproved}
	}

	return data, nil
}

// doMultipart posts a multipart body (profile photo upload). Same
// credential and error semantics as do.
func (c *Client) doMultipart(ctx context.Context, path string, contentType string, body io.Reader) ([]byte, error) {
	credential := c.credential()
	if credential == "" {
		return nil, ErrNoCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rej := rejection{}
		_ = json.Unmarshal(data, &rej)
		if rej.Msg == "" {
			rej.Msg = fallbackErrorMsg
		}
		return nil, &APIError{Status: resp.StatusCode, Msg: rej.Msg, AlreadyApproved: rej.IsApproved}
	}

	return data, nil
}
