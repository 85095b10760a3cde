package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopadmin-backend/internal/domain/order"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchOrderStatus_Success(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/orders/ORD-2025-0001/status" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Fatalf("auth header = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"orderNumber": "ORD-2025-0001",
			"status":      "SHIPPED",
		})
	})

	c := NewClient(srv.URL, "sekrit")
	status, err := c.FetchOrderStatus(context.Background(), "ORD-2025-0001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "SHIPPED" {
		t.Fatalf("status = %q", status)
	}
}

func TestFetchOrderStatus_NotFound(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(srv.URL, "sekrit")
	_, err := c.FetchOrderStatus(context.Background(), "ORD-404")
	if !errors.Is(err, order.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestFetchOrderStatus_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewClient(srv.URL, "sekrit")
	_, err := c.FetchOrderStatus(context.Background(), "ORD-1")

	var gerr *GatewayError
	if !errors.As(err, &gerr) || gerr.StatusCode != http.StatusBadGateway {
		t.Fatalf("want GatewayError 502, got %v", err)
	}
}

func TestFetchAllOrderStatuses(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/orders/status" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"orderNumber": "ORD-1", "status": "SHIPPED"},
			{"orderNumber": "ORD-2", "status": "PROCESSING"},
		})
	})

	c := NewClient(srv.URL, "sekrit")
	got, err := c.FetchAllOrderStatuses(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got["ORD-1"] != "SHIPPED" || got["ORD-2"] != "PROCESSING" {
		t.Fatalf("statuses = %+v", got)
	}
}

func TestFetchOrderStatus_EscapesOrderNumber(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/internal/orders/ORD%2F2025/status" {
			t.Fatalf("path not escaped: %q", r.URL.EscapedPath())
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"orderNumber": "ORD/2025", "status": "NEW"})
	})

	c := NewClient(srv.URL, "sekrit")
	if _, err := c.FetchOrderStatus(context.Background(), "ORD/2025"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
