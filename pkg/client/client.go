// Package client is a small HTTP client for the storefront API. List
// responses are unwrapped defensively: endpoints may return either a
// bare array or an envelope object carrying the array under a
// data-like key, and an unrecognized shape degrades to an empty list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const sessionHeader = "X-Checkout-Session"

// envelopeKeys are tried in order when a list response is an object
// instead of a bare array.
var envelopeKeys = []string{"data", "items", "results"}

type Client struct {
	baseURL string
	http    *http.Client
	session string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithSession sets the checkout session key sent on every request.
func WithSession(session string) Option {
	return func(c *Client) {
		c.session = session
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Activity mirrors the storefront view of one activity.
type Activity struct {
	ID              uint    `json:"id"`
	Kind            string  `json:"kind"`
	Name            string  `json:"name"`
	Venue           string  `json:"venue"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	CategoryName    string  `json:"categoryName"`
	Description     string  `json:"description"`
	RegistrationFee float64 `json:"registrationFee"`
	Image           string  `json:"image"`
	Status          string  `json:"status"`
	AvailableSpots  int     `json:"availableSpots"`
	CanRegister     bool    `json:"canRegister"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type Participant struct {
	OrderID         string   `json:"orderId"`
	ActivityID      uint     `json:"activityId"`
	NumberOfTickets int      `json:"numberOfTickets"`
	TicketNumbers   []string `json:"ticketNumbers"`
	Amount          float64  `json:"amount"`
}

// ListSports fetches the sports listing. Query parameters (search,
// category, status, sort, page, perPage) pass through unchanged.
func (c *Client) ListSports(ctx context.Context, query url.Values) ([]Activity, error) {
	return listActivities(c, ctx, "/sports", query)
}

// ListEvents fetches the events listing.
func (c *Client) ListEvents(ctx context.Context, query url.Values) ([]Activity, error) {
	return listActivities(c, ctx, "/events", query)
}

func listActivities(c *Client, ctx context.Context, path string, query url.Values) ([]Activity, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeList[Activity](body), nil
}

// GetActivity fetches one activity by its section ("sports" or
// "events") and ID.
func (c *Client) GetActivity(ctx context.Context, section string, id uint) (Activity, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%s/%d", section, id), nil)
	if err != nil {
		return Activity{}, err
	}

	var activity Activity
	if err = json.Unmarshal(body, &activity); err != nil {
		return Activity{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return activity, nil
}

// ListCategories fetches categories, optionally narrowed by type
// ("event" or "sports").
func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]Category, error) {
	query := url.Values{}
	if categoryType != "" {
		query.Set("type", categoryType)
	}

	body, err := c.get(ctx, "/categories", query)
	if err != nil {
		return nil, err
	}

	return decodeList[Category](body), nil
}

// CreateCheckoutSession asks the API for a hosted payment URL for the
// current session's draft.
func (c *Client) CreateCheckoutSession(ctx context.Context) (string, error) {
	body, err := c.post(ctx, "/checkout/session", nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return resp.URL, nil
}

// CompleteCheckout finalizes the current session's draft and returns
// the resulting registration.
func (c *Client) CompleteCheckout(ctx context.Context) (Participant, error) {
	body, err := c.post(ctx, "/checkout/complete", nil)
	if err != nil {
		return Participant{}, err
	}

	var participant Participant
	if err = json.Unmarshal(body, &participant); err != nil {
		return Participant{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return participant, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal -> %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader) ([]byte, error) {
	endpoint := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != "" {
		req.Header.Set(sessionHeader, c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: data}
	}

	return data, nil
}

// APIError carries a non-2xx response.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	var resp struct {
		Message string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &resp); err == nil && resp.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, resp.Message)
	}

	return fmt.Sprintf("api error %d", e.StatusCode)
}

// decodeList unwraps a list response. Bare arrays decode directly;
// object responses are searched for a data-like key holding the array.
// Anything else is logged and treated as empty.
func decodeList[T any](body []byte) []T {
	var bare []T
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range envelopeKeys {
			raw, ok := envelope[key]
			if !ok {
				continue
			}

			var wrapped []T
			if err = json.Unmarshal(raw, &wrapped); err == nil {
				return wrapped
			}
		}
	}

	zap.L().Error("unrecognized list response shape", zap.ByteString("body", body))

	return []T{}
}
