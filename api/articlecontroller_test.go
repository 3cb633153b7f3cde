package api

import (
	"net/http"
	"testing"
)

const sectionsBody = `{
	"lead": {"normalizedtitle": "Go", "sections": [{"text": "intro"}]},
	"remaining": {"sections": [
		{"text": "A"}, {"text": "B"}, {"text": "C"}, {"text": "D"}, {"text": "E"}
	]}
}`

func TestSummarySuccess(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{
			"title": "Go",
			"extract": "Go is a programming language.",
			"content_urls": {"desktop": {"page": "https://ru.wikipedia.org/wiki/Go"}}
		}`))
	})

	w := doRequest(t, r, "/article/Go/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body SummaryResponse
	decodeJSON(t, w, &body)
	if body.Title != "Go" {
		t.Fatalf("title = %q; want Go", body.Title)
	}
	if body.Summary != "Go is a programming language." {
		t.Fatalf("summary = %q", body.Summary)
	}
	if body.URL != "https://ru.wikipedia.org/wiki/Go" {
		t.Fatalf("url = %q", body.URL)
	}
}

func TestSummaryMissingFieldsDefaultToEmpty(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"title": "Bare"}`))
	})

	w := doRequest(t, r, "/article/Bare/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body SummaryResponse
	decodeJSON(t, w, &body)
	if body.Summary != "" || body.URL != "" {
		t.Fatalf("missing fields must default to empty, got summary=%q url=%q", body.Summary, body.URL)
	}
}

func TestArticleNotFound(t *testing.T) {
	// Both article endpoints map any upstream failure to 404, never a 200
	// with empty fields.
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		for _, path := range []string{"/article/Missing/summary", "/article/Missing/content"} {
			r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(status)
			})

			w := doRequest(t, r, path)
			if w.Code != http.StatusNotFound {
				t.Fatalf("upstream %d: GET %s status = %d; want 404", status, path, w.Code)
			}
		}
	}
}

func TestContentWithLead(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(sectionsBody))
	})

	w := doRequest(t, r, "/article/Go/content")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body ContentResponse
	decodeJSON(t, w, &body)
	if body.Title != "Go" {
		t.Fatalf("title = %q; want Go", body.Title)
	}
	if body.Content != "intro\n\nA\n\nB\n\nC" {
		t.Fatalf("content = %q", body.Content)
	}
	if body.SectionsCount != 5 {
		t.Fatalf("sectionsCount = %d; want 5 (full body count, not included count)", body.SectionsCount)
	}
}

func TestContentWithoutLead(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(sectionsBody))
	})

	w := doRequest(t, r, "/article/Go/content?includeLead=false")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body ContentResponse
	decodeJSON(t, w, &body)
	if body.Content != "A\n\nB\n\nC" {
		t.Fatalf("content = %q; want %q", body.Content, "A\n\nB\n\nC")
	}
	if body.SectionsCount != 5 {
		t.Fatalf("sectionsCount = %d; want 5", body.SectionsCount)
	}
}

func TestContentUnparsableIncludeLeadFallsBack(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(sectionsBody))
	})

	w := doRequest(t, r, "/article/Go/content?includeLead=maybe")

	var body ContentResponse
	decodeJSON(t, w, &body)
	if body.Content != "intro\n\nA\n\nB\n\nC" {
		t.Fatalf("unparsable includeLead must fall back to true, got content = %q", body.Content)
	}
}

func TestContentMissingTitleDefaultsToEmpty(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"remaining": {"sections": [{"text": "only"}]}}`))
	})

	w := doRequest(t, r, "/article/Unknown/content")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body ContentResponse
	decodeJSON(t, w, &body)
	if body.Title != "" {
		t.Fatalf("title = %q; want empty string", body.Title)
	}
	if body.Content != "only" {
		t.Fatalf("content = %q; want %q", body.Content, "only")
	}
}
