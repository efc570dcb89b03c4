package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v60/github"
)

func newTestSource(t *testing.T, mux *http.ServeMux) *Source {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	client.BaseURL = base
	return NewSourceWithClient(client)
}

func fileResponse(content string) string {
	return fmt.Sprintf(`{"type": "file", "encoding": "base64", "content": %q}`,
		base64.StdEncoding.EncodeToString([]byte(content)))
}

func TestLoad(t *testing.T) {
	var gotRef string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/shop/contents/prodlens.yaml", func(w http.ResponseWriter, r *http.Request) {
		gotRef = r.URL.Query().Get("ref")
		fmt.Fprint(w, fileResponse("name: Shop\ndependencies:\n  redis: ^4.0.0\n"))
	})
	s := newTestSource(t, mux)

	cfg, err := s.Load(context.Background(), "acme", "shop", "prodlens.yaml", "release")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotRef != "release" {
		t.Errorf("ref = %q, want release", gotRef)
	}
	if cfg.Name != "Shop" || cfg.Dependencies["redis"] != "^4.0.0" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/shop/contents/prodlens.json", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("ref") {
			t.Errorf("unexpected ref parameter")
		}
		fmt.Fprint(w, fileResponse(`{"name": "Shop", "blocks": {"components": [1, 2, 3]}}`))
	})
	s := newTestSource(t, mux)

	cfg, err := s.Load(context.Background(), "acme", "shop", "prodlens.json", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Components() != 3 {
		t.Errorf("Components = %d, want 3", cfg.Components())
	}
}

func TestFetchErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/shop/contents/config", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"type": "file", "name": "a.json", "path": "config/a.json"}]`)
	})
	mux.HandleFunc("GET /repos/acme/shop/contents/missing.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	mux.HandleFunc("GET /repos/acme/shop/contents/broken.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fileResponse(`[1, 2]`))
	})
	s := newTestSource(t, mux)
	ctx := context.Background()

	if _, err := s.Fetch(ctx, "acme", "shop", "config", ""); !errors.Is(err, ErrNotAFile) {
		t.Errorf("directory: err = %v, want ErrNotAFile", err)
	}

	_, err := s.Fetch(ctx, "acme", "shop", "missing.json", "")
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response.StatusCode != http.StatusNotFound {
		t.Errorf("missing: err = %v, want 404 ErrorResponse", err)
	}

	if _, err := s.Load(ctx, "acme", "shop", "broken.json", ""); err == nil {
		t.Error("expected parse error for non-object config")
	}
}

func TestSplitRepo(t *testing.T) {
	tests := []struct {
		in      string
		owner   string
		repo    string
		wantErr bool
	}{
		{"acme/shop", "acme", "shop", false},
		{"acme", "", "", true},
		{"/shop", "", "", true},
		{"acme/", "", "", true},
		{"acme/shop/extra", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := SplitRepo(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if owner != tt.owner || repo != tt.repo {
				t.Errorf("got %q/%q, want %q/%q", owner, repo, tt.owner, tt.repo)
			}
		})
	}
}
