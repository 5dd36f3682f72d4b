package server

import (
	"io"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func newTestServer(t *testing.T, markdown string) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte(markdown), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := viper.New()
	cfg.Set("serve.http_addr", ":0")
	cfg.Set("serve.refresh_seconds", 2)
	return New(cfg, path, log.New(io.Discard, "", 0))
}

func TestPreviewRoute(t *testing.T) {
	srv := newTestServer(t, "# Hello\n\nSome *markdown*.")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	for _, want := range []string{"<h1", "Hello", "<em>markdown</em>", `http-equiv="refresh"`, "<title>Hello</title>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q:\n%s", want, html)
		}
	}
}

func TestRawRoute(t *testing.T) {
	srv := newTestServer(t, "raw **content**")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/raw")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "raw **content**" {
		t.Fatalf("raw body: %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("content type: %q", ct)
	}
}

func TestHealthzAndNotFound(t *testing.T) {
	srv := newTestServer(t, "x")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	resp, err = ts.Client().Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Fatalf("unknown path status %d", resp.StatusCode)
	}
}
