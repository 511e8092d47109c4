package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Exists(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantExists bool
		wantErr    bool
	}{
		{
			name:       "known word",
			status:     http.StatusOK,
			body:       `[{"word":"hello","meanings":[]}]`,
			wantExists: true,
		},
		{
			name:       "empty entry list",
			status:     http.StatusOK,
			body:       `[]`,
			wantExists: false,
		},
		{
			name:       "unknown word",
			status:     http.StatusNotFound,
			body:       `{"title":"No Definitions Found"}`,
			wantExists: false,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: true,
		},
		{
			name:    "garbage body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			exists, err := c.Exists(context.Background(), "hello")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if exists {
					t.Error("exists must be false when the lookup errors")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.wantExists {
				t.Errorf("exists = %v, want %v", exists, tt.wantExists)
			}
		})
	}
}

func TestClient_ExistsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewClient(srv.URL, time.Second)
	exists, err := c.Exists(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error against a dead server")
	}
	if exists {
		t.Error("exists must be false on transport failure")
	}
}

func TestClient_RequestPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v2/entries/en", time.Second)
	if _, err := c.Exists(context.Background(), "wordy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v2/entries/en/wordy" {
		t.Errorf("unexpected request path %q", gotPath)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", time.Second)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", c.baseURL)
	}
}
