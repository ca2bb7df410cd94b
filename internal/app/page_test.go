package app

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"AI":              "ai",
		"Cloud Computing": "cloud-computing",
		"Mobile Tech":     "mobile-tech",
		"Gaming":          "gaming",
	}

	for input, want := range tests {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

var filenamePattern = regexp.MustCompile(`^[a-z]+-[a-z-]+-\d{8}\.html$`)

func TestPageFilename(t *testing.T) {
	got := PageFilename("tutorial", "Cloud Computing", testClock())
	if want := "tutorial-cloud-computing-20240315.html"; got != want {
		t.Fatalf("PageFilename() = %q, want %q", got, want)
	}

	for _, pageType := range pageTypes {
		for _, category := range categories {
			name := PageFilename(pageType, category, testClock())
			if !filenamePattern.MatchString(name) {
				t.Fatalf("filename %q does not match {type}-{slug}-{date}.html", name)
			}
		}
	}
}

func TestCreatePageWritesOneFile(t *testing.T) {
	srv := newCompletionServer("<p>Generated body text.</p>", nil)
	defer srv.Close()

	dir := t.TempDir()
	a := NewAutomator(testConfig(dir, srv.URL+"/v1"),
		WithRand(&fakeRand{ints: []int{0}}),
		WithClock(testClock),
	)

	filename, err := a.CreatePage(context.Background())
	if err != nil {
		t.Fatalf("CreatePage returned error: %v", err)
	}
	if filename != "tutorial-ai-20240315.html" {
		t.Fatalf("CreatePage filename = %q", filename)
	}

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected exactly one page, found %d: %v", len(pages), pages)
	}

	body, err := os.ReadFile(pages[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "<p>Generated body text.</p>") {
		t.Fatalf("page missing generated body: %s", body)
	}
}

func TestCreatePageWritesMetadataSidecar(t *testing.T) {
	srv := newCompletionServer("<p>body</p>", nil)
	defer srv.Close()

	dir := t.TempDir()
	a := NewAutomator(testConfig(dir, srv.URL+"/v1"),
		WithRand(&fakeRand{ints: []int{1}}), // news + Cybersecurity
		WithClock(testClock),
	)

	filename, err := a.CreatePage(context.Background())
	if err != nil {
		t.Fatalf("CreatePage returned error: %v", err)
	}

	meta, err := a.ReadMetadata(filename)
	if err != nil {
		t.Fatalf("ReadMetadata returned error: %v", err)
	}
	if meta.Category != "Cybersecurity" || meta.Type != "news" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Title != "Cybersecurity News" {
		t.Fatalf("metadata title = %q", meta.Title)
	}
	if !meta.CreatedAt.Equal(testClock()) {
		t.Fatalf("metadata created_at = %v", meta.CreatedAt)
	}
}
