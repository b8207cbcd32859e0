package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"activityboard/internal/domain"
)

var (
	// ErrFetchFailed wraps every failure of the activity listing
	ErrFetchFailed = errors.New("failed to load activities")
	// ErrTransport wraps mutations whose request or response never completed
	ErrTransport = errors.New("request did not complete")
)

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-ID"

// Result is the server's answer to a signup or unregister request
type Result struct {
	StatusCode int
	Message    string // set on success
	Detail     string // set on rejection, may be empty
}

// OK reports whether the server accepted the mutation
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client talks to the activities REST service
type Client interface {
	ListActivities(ctx context.Context) (*domain.Collection, error)
	Signup(ctx context.Context, activity, email string) (Result, error)
	Unregister(ctx context.Context, activity, email string) (Result, error)
}

// HTTPClient implements Client over net/http
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client for the service at baseURL.
// A nil httpClient uses a client without a timeout; the transport decides.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListActivities fetches the full activity snapshot
func (c *HTTPClient) ListActivities(ctx context.Context) (*domain.Collection, error) {
	resp, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	coll, err := DecodeActivities(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return coll, nil
}

// Signup registers email for activity
func (c *HTTPClient) Signup(ctx context.Context, activity, email string) (Result, error) {
	return c.mutate(ctx, http.MethodPost, activity, "signup", email)
}

// Unregister removes email from activity
func (c *HTTPClient) Unregister(ctx context.Context, activity, email string) (Result, error) {
	return c.mutate(ctx, http.MethodDelete, activity, "unregister", email)
}

func (c *HTTPClient) mutate(ctx context.Context, method, activity, action, email string) (Result, error) {
	path := MutationPath(activity, action, email)
	resp, err := c.do(ctx, method, path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	res := Result{StatusCode: resp.StatusCode}
	if !gjson.ValidBytes(body) {
		// An accepted mutation with an unreadable answer is reported like a failed request;
		// a rejection without a JSON body falls back to the generic message.
		if res.OK() {
			return Result{}, fmt.Errorf("%w: invalid response body", ErrTransport)
		}
		return res, nil
	}

	res.Message = textField(body, "message")
	res.Detail = textField(body, "detail")
	return res, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("api: %s %s request_id=%s failed: %v", method, path, requestID, err)
		return nil, err
	}
	log.Printf("api: %s %s request_id=%s status=%d", method, path, requestID, resp.StatusCode)
	return resp, nil
}

// MutationPath builds the percent-encoded path for a roster mutation
func MutationPath(activity, action, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/" + action + "?email=" + url.QueryEscape(email)
}

// DecodeActivities parses the activity listing, keeping the order of the JSON object keys
func DecodeActivities(body []byte) (*domain.Collection, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errors.New("expected a JSON object of activities")
	}

	coll := domain.NewCollection()
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			decodeErr = fmt.Errorf("activity %q: expected an object", key.String())
			return false
		}
		participants := []string{}
		for _, p := range value.Get("participants").Array() {
			participants = append(participants, p.String())
		}
		coll.Add(domain.Activity{
			Name:            key.String(),
			Description:     value.Get("description").String(),
			Schedule:        value.Get("schedule").String(),
			MaxParticipants: int(value.Get("max_participants").Int()),
			Participants:    participants,
		})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return coll, nil
}

// textField returns a top-level field as display text. Non-string values keep their raw JSON.
func textField(body []byte, field string) string {
	v := gjson.GetBytes(body, field)
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return ""
	case v.Type == gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}
