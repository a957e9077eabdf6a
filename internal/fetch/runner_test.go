package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ghazal-tools/models"
	"ghazal-tools/pkg/fetcher"
	"ghazal-tools/pkg/parser"
	"ghazal-tools/pkg/ratelimit"
	"ghazal-tools/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testConfig(srvURL, outDir string, start, end int) *models.FetchConfig {
	return &models.FetchConfig{
		Start:       start,
		End:         end,
		URLTemplate: srvURL + "/sh{index}/",
		Selector:    ".b",
		OutputDir:   outDir,
	}
}

func runFetch(t *testing.T, config *models.FetchConfig) ([]Result, error) {
	t.Helper()
	return run(context.Background(), testLogger(), config,
		fetcher.NewFetcher(), &parser.Parser{}, &storage.Storage{}, ratelimit.NewFixedDelay(0))
}

func TestBuildURL(t *testing.T) {
	got := BuildURL("https://ganjoor.net/hafez/ghazal/sh{index}/", 42)
	want := "https://ganjoor.net/hafez/ghazal/sh42/"
	if got != want {
		t.Errorf("BuildURL() = %q, want %q", got, want)
	}
}

func TestRun_ProducesOneFilePerIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><div class="b"><p>poem %s</p></div></body></html>`, r.URL.Path)
	}))
	defer srv.Close()

	outDir := t.TempDir()
	results, err := runFetch(t, testConfig(srv.URL, outDir, 3, 7))
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for i := 3; i <= 7; i++ {
		path := filepath.Join(outDir, fmt.Sprintf("%d.txt", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output file for index %d: %v", i, err)
		}
	}
}

func TestRun_ScenarioSingleIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="b"><p>Line1</p><p>Line2</p></div></body></html>`))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	results, err := runFetch(t, testConfig(srv.URL, outDir, 11, 11))
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	data, err := os.ReadFile(filepath.Join(outDir, "11.txt"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "Line1\nLine2\n" {
		t.Errorf("output = %q, want %q", data, "Line1\nLine2\n")
	}
}

func TestRun_FailureDoesNotStopLaterIndices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "sh2") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`<html><body><div class="b"><p>fine</p></div></body></html>`))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	results, err := runFetch(t, testConfig(srv.URL, outDir, 1, 3))
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[1].Error == nil || results[1].ErrorType != "fetch_error" {
		t.Errorf("index 2 should have a fetch_error, got %+v", results[1])
	}
	for _, i := range []int{1, 3} {
		if _, err := os.Stat(filepath.Join(outDir, fmt.Sprintf("%d.txt", i))); err != nil {
			t.Errorf("index %d should still have been written: %v", i, err)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="b"><p>stable</p></div></body></html>`))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	config := testConfig(srv.URL, outDir, 1, 2)

	if _, err := runFetch(t, config); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, "1.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := runFetch(t, config); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, "1.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("reruns differ: %q vs %q", first, second)
	}
}

func TestRun_EmptySelectorMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="a"><p>elsewhere</p></div></body></html>`))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	results, err := runFetch(t, testConfig(srv.URL, outDir, 5, 5))
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if !results[0].Empty {
		t.Error("result should be marked empty when the selector matches nothing")
	}
	data, err := os.ReadFile(filepath.Join(outDir, "5.txt"))
	if err != nil {
		t.Fatalf("an empty file should still be written: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("file content = %q, want empty", data)
	}
}

func TestBuildOutput(t *testing.T) {
	results := []Result{
		{Index: 1, URL: "u1", FilePath: "1.txt", Lines: 4},
		{Index: 2, URL: "u2", Error: fmt.Errorf("boom"), ErrorType: "fetch_error"},
		{Index: 3, URL: "u3", FilePath: "3.txt", Empty: true},
	}

	outputs := BuildOutput(results)
	wantStatuses := []string{"success", "failed", "empty"}
	for i, want := range wantStatuses {
		if outputs[i].Status != want {
			t.Errorf("outputs[%d].Status = %q, want %q", i, outputs[i].Status, want)
		}
	}
	if outputs[1].Error != "boom" || outputs[1].ErrorType != "fetch_error" {
		t.Errorf("failed output not populated: %+v", outputs[1])
	}
}
