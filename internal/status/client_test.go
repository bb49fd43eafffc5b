package status_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"memo/internal/status"
)

func TestClientFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/index.html", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("<html><title>To-Do</title></html>"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctx := context.Background()

	t.Run("Body", func(t *testing.T) {
		client := status.NewClient(ts.URL+"/index.html", 0)
		body, err := client.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body != "<html><title>To-Do</title></html>" {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("NonOKStatusStillReturnsBody", func(t *testing.T) {
		client := status.NewClient(ts.URL+"/broken", 0)
		body, err := client.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body != "upstream exploded" {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("URL", func(t *testing.T) {
		client := status.NewClient(ts.URL+"/index.html", 0)
		if client.URL() != ts.URL+"/index.html" {
			t.Errorf("unexpected URL %q", client.URL())
		}
	})
}

func TestClientFetchConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := status.NewClient(url, 2*time.Second)
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error for a closed server")
	}
}

func TestClientFetchHonorsContext(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := status.NewClient(ts.URL, 0)
	if _, err := client.Fetch(ctx); err == nil {
		t.Fatal("expected an error once the context expires")
	}
}
