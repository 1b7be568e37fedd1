package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sahilkr24/jobtrackr/internal/config"
	"github.com/sahilkr24/jobtrackr/internal/dtos"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

func newTestClient(ts *httptest.Server) *Client {
	return New(&config.Config{APIBaseURL: ts.URL})
}

func TestListDecodesRecords(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/jobapplications" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"company":"Acme","position":"Engineer","status":1,"dateApplied":"2024-01-15T00:00:00Z"},{"id":2,"company":"Globex","position":"SRE","status":3,"dateApplied":"2024-02-01T00:00:00Z"}]`)
	}))
	defer ts.Close()

	records, err := newTestClient(ts).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != 1 || records[0].Company != "Acme" || records[0].Status != models.StatusApplied {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestGetNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Application not found"}`)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Get(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	var se *ServerError
	if !errors.As(err, &se) || se.Message != "Application not found" {
		t.Fatalf("unexpected server error: %v", err)
	}
}

func TestServerErrorGenericMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).List(context.Background())
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("got status %d", se.StatusCode)
	}
	if se.Message != "request failed: Internal Server Error" {
		t.Fatalf("got message %q", se.Message)
	}
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	_, err := newTestClient(ts).List(context.Background())
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestClientErrorOnBadBaseURL(t *testing.T) {
	c := New(&config.Config{APIBaseURL: "://not-a-url"})
	_, err := c.List(context.Background())
	var ce *ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ClientError, got %v", err)
	}
}

func TestCreateSendsPayloadAndDecodesRecord(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/jobapplications" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req dtos.CreateApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Company != "Acme" || req.Position != "Engineer" || req.Status != models.StatusApplied {
			t.Fatalf("unexpected payload: %+v", req)
		}
		if !req.DateApplied.Equal(date) {
			t.Fatalf("unexpected dateApplied: %v", req.DateApplied)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":42,"company":"Acme","position":"Engineer","status":1,"dateApplied":"2024-01-15T00:00:00Z"}`)
	}))
	defer ts.Close()

	record, err := newTestClient(ts).Create(context.Background(), dtos.CreateApplicationRequest{
		Company:     "Acme",
		Position:    "Engineer",
		Status:      models.StatusApplied,
		DateApplied: date,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.ID != 42 {
		t.Fatalf("got id %d, want 42", record.ID)
	}
}

func TestDelete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/jobapplications/7" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := newTestClient(ts).Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

// UpdateStatus is a read-modify-write: first a GET, then a PUT carrying the
// current business fields with only the status swapped.
func TestUpdateStatusReadModifyWrite(t *testing.T) {
	var gets, puts int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			gets++
			fmt.Fprint(w, `{"id":7,"company":"Acme","position":"Engineer","status":1,"dateApplied":"2024-01-15T00:00:00Z"}`)
		case http.MethodPut:
			puts++
			if gets != 1 {
				t.Fatal("PUT before GET")
			}
			var req dtos.UpdateApplicationRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Company != "Acme" || req.Position != "Engineer" {
				t.Fatalf("business fields not preserved: %+v", req)
			}
			if req.Status != models.StatusInterview {
				t.Fatalf("got status %d, want %d", req.Status, models.StatusInterview)
			}
			fmt.Fprint(w, `{"id":7,"company":"Acme","position":"Engineer","status":3,"dateApplied":"2024-01-15T00:00:00Z"}`)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer ts.Close()

	record, err := newTestClient(ts).UpdateStatus(context.Background(), 7, models.StatusInterview)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if record.Status != models.StatusInterview {
		t.Fatalf("got status %d", record.Status)
	}
	if gets != 1 || puts != 1 {
		t.Fatalf("got %d GETs and %d PUTs, want 1 and 1", gets, puts)
	}
}
