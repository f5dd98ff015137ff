package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// testPage returns a small valid page payload for client tests.
func testPage() *Page {
	return NewPage(validParentID, "Sarah's Life Design Dashboard", []Block{
		Heading(1, "The Ultimate Habit Tracker"),
		Todo("Morning routine"),
	})
}

// TestClientCreatePage tests the page-creation request/response cycle
// against a mocked transport.
func TestClientCreatePage(t *testing.T) {
	t.Parallel()

	t.Run("status 200 reports success with exactly one request", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		var gotAuth, gotVersion, gotContentType string
		var gotBody []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			gotAuth = r.Header.Get("Authorization")
			gotVersion = r.Header.Get("Notion-Version")
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"object":"page","id":"11112222-3333-4444-5555-666677778888","url":"https://www.notion.so/created"}`))
		}))
		defer server.Close()

		client := NewClient("secret_test_token", WithBaseURL(server.URL))
		created, err := client.CreatePage(context.Background(), testPage())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}

		if n := requests.Load(); n != 1 {
			t.Errorf("expected exactly 1 request, observed %d", n)
		}
		if created.Object != "page" {
			t.Errorf("expected object 'page', got %q", created.Object)
		}
		if created.ID != "11112222-3333-4444-5555-666677778888" {
			t.Errorf("unexpected page id %q", created.ID)
		}
		if created.URL != "https://www.notion.so/created" {
			t.Errorf("unexpected page url %q", created.URL)
		}

		if gotAuth != "Bearer secret_test_token" {
			t.Errorf("expected bearer authorization header, got %q", gotAuth)
		}
		if gotVersion != APIVersion {
			t.Errorf("expected pinned Notion-Version %q, got %q", APIVersion, gotVersion)
		}
		if gotContentType != "application/json" {
			t.Errorf("expected JSON content type, got %q", gotContentType)
		}

		var payload struct {
			Parent struct {
				PageID string `json:"page_id"`
			} `json:"parent"`
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(gotBody, &payload); err != nil {
			t.Fatalf("request body is not valid JSON: %v", err)
		}
		if payload.Parent.PageID != validParentID {
			t.Errorf("expected parent page id %q, got %q", validParentID, payload.Parent.PageID)
		}
		if len(payload.Children) != 2 {
			t.Errorf("expected 2 children in payload, got %d", len(payload.Children))
		}
	})

	t.Run("status 404 surfaces the body verbatim", func(t *testing.T) {
		t.Parallel()

		const errorBody = `{"code":"object_not_found"}`
		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(errorBody))
		}))
		defer server.Close()

		client := NewClient("secret_test_token", WithBaseURL(server.URL))
		_, err := client.CreatePage(context.Background(), testPage())
		if err == nil {
			t.Fatal("expected error for status 404")
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T: %v", err, err)
		}
		if apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", apiErr.StatusCode)
		}
		if apiErr.Body != errorBody {
			t.Errorf("expected body surfaced without alteration, got %q", apiErr.Body)
		}
		if n := requests.Load(); n != 1 {
			t.Errorf("expected exactly 1 request, observed %d", n)
		}
	})

	t.Run("status 401 is not retried", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
		}))
		defer server.Close()

		client := NewClient("revoked_token", WithBaseURL(server.URL))
		_, err := client.CreatePage(context.Background(), testPage())

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T: %v", err, err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", apiErr.StatusCode)
		}
		if n := requests.Load(); n != 1 {
			t.Errorf("expected exactly 1 request (no retry), observed %d", n)
		}
	})

	t.Run("non-200 success-family status is still failure", func(t *testing.T) {
		t.Parallel()

		// The contract defines success as exactly 200; 201 or any other
		// 2xx is treated uniformly as failure.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient("secret_test_token", WithBaseURL(server.URL))
		_, err := client.CreatePage(context.Background(), testPage())
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError for status 201, got %v", err)
		}
	})

	t.Run("invalid payload is rejected before any request", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
		}))
		defer server.Close()

		client := NewClient("secret_test_token", WithBaseURL(server.URL))
		page := NewPage(validParentID, "Test", []Block{Heading(4, "bad")})
		_, err := client.CreatePage(context.Background(), page)
		if !errors.Is(err, ErrInvalidHeadingLevel) {
			t.Fatalf("expected ErrInvalidHeadingLevel, got %v", err)
		}
		if n := requests.Load(); n != 0 {
			t.Errorf("expected no requests for invalid payload, observed %d", n)
		}
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient("secret_test_token", WithBaseURL(server.URL))
		_, err := client.CreatePage(ctx, testPage())
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

// TestAPIError tests the APIError message format.
func TestAPIError(t *testing.T) {
	t.Parallel()

	err := &APIError{StatusCode: 404, Body: `{"code":"object_not_found"}`}
	want := `notion API error: status 404: {"code":"object_not_found"}`
	if err.Error() != want {
		t.Errorf("got %q, expected %q", err.Error(), want)
	}
}
