package api

import (
	"net/http"
	"testing"
)

func searchUpstream(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestSearchLimitValidation(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"zero", "/search/go?limit=0"},
		{"negative", "/search/go?limit=-5"},
		{"too large", "/search/go?limit=51"},
		{"not a number", "/search/go?limit=ten"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, upstream := newTestRouter(t, searchUpstream(`{"pages":[]}`))

			w := doRequest(t, r, c.path)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", w.Code)
			}
			if upstream.Hits() != 0 {
				t.Fatalf("invalid limit reached the upstream (%d calls)", upstream.Hits())
			}
		})
	}
}

func TestSearchLimitBoundsAccepted(t *testing.T) {
	for _, path := range []string{"/search/go?limit=1", "/search/go?limit=50"} {
		r, _ := newTestRouter(t, searchUpstream(`{"pages":[]}`))
		if w := doRequest(t, r, path); w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d; want 200", path, w.Code)
		}
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	var gotLimit string
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotLimit = req.URL.Query().Get("limit")
		w.Write([]byte(`{"pages":[]}`))
	})

	doRequest(t, r, "/search/go")
	if gotLimit != "10" {
		t.Fatalf("default limit forwarded = %q; want 10", gotLimit)
	}
}

func TestSearchSuccess(t *testing.T) {
	r, _ := newTestRouter(t, searchUpstream(
		`{"pages":[{"title":"Zulu"},{"title":"Alpha"},{"title":"Mike"}]}`))

	w := doRequest(t, r, "/search/letters?limit=3")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body SearchResponse
	decodeJSON(t, w, &body)

	if body.Query != "letters" {
		t.Fatalf("query = %q; want letters", body.Query)
	}
	if body.ResultsCount != len(body.Articles) {
		t.Fatalf("resultsCount = %d, len(articles) = %d; must match", body.ResultsCount, len(body.Articles))
	}
	want := []string{"Zulu", "Alpha", "Mike"}
	for i, title := range want {
		if body.Articles[i] != title {
			t.Fatalf("articles[%d] = %q; want %q (upstream order must be preserved)", i, body.Articles[i], title)
		}
	}
}

func TestSearchNoResultsIsSuccess(t *testing.T) {
	r, _ := newTestRouter(t, searchUpstream(`{"pages":[]}`))

	w := doRequest(t, r, "/search/nonsense")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (zero results is not an error)", w.Code)
	}

	var body SearchResponse
	decodeJSON(t, w, &body)
	if body.ResultsCount != 0 {
		t.Fatalf("resultsCount = %d; want 0", body.ResultsCount)
	}
	if body.Articles == nil || len(body.Articles) != 0 {
		t.Fatalf("articles = %v; want empty list", body.Articles)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	// Any upstream failure maps to 500 for search, 404 included.
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(status)
		})

		w := doRequest(t, r, "/search/go")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("upstream %d: gateway status = %d; want 500", status, w.Code)
		}
	}
}
