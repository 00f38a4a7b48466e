package cli

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/hevy-metrics/internal/config"
	"github.com/daryltucker/hevy-metrics/internal/engine"
	"github.com/daryltucker/hevy-metrics/internal/output"
)

func TestMain(m *testing.M) {
	output.SetLogger(output.NewLogger(io.Discard))
	os.Exit(m.Run())
}

// run executes the root command with args against a fake API and returns stdout.
func run(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--base-url", ts.URL))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		outputDirOverride, timezoneOverride, baseURLOverride = "", "", ""
		pageSizeOverride = 0
		if f := recentCmd.Flags().Lookup("page-size"); f != nil {
			f.Changed = false
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestCountCommand(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")
	dir := t.TempDir()

	out, err := run(t, jsonHandler(`{"workout_count": 42}`), "count", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "workouts_count.txt")
	if want := "Saved workout_count=42 to " + path + "\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("count file = %q", data)
	}
}

func TestAppendCommand(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")
	dir := t.TempDir()
	body := `{"workouts":[{"title":"Leg Day","start_time":"2024-05-10T13:00:00Z","end_time":"2024-05-10T13:02:05Z","exercises":[]}]}`

	out, err := run(t, jsonHandler(body), "append", "-o", dir, "--timezone", "UTC")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, `Appended workout "Leg Day" to `) {
		t.Errorf("stdout = %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "workouts_data.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "start_time: 2024-05-10 at 13:00 - Friday\n") {
		t.Errorf("timezone flag not applied:\n%s", data)
	}
	if !strings.Contains(string(data), "duration: 2m 5s\n") {
		t.Errorf("missing duration:\n%s", data)
	}
}

func TestCommandMissingAPIKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	dir := t.TempDir()

	called := false
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) { called = true }, "count", "-o", dir)
	if !errors.Is(err, engine.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if called {
		t.Error("no request should be made without a key")
	}
}

func TestRecentCommand(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")
	body := `{"workouts":[
	  {"title":"Push","start_time":"2024-05-10T13:00:00Z","end_time":"2024-05-10T14:00:00Z"},
	  {"title":"Pull","start_time":"2024-05-08T13:00:00Z","end_time":"2024-05-08T13:45:30Z"}
	]}`

	handler := func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pageSize"); got != "2" {
			t.Errorf("pageSize=%q, want 2", got)
		}
		jsonHandler(body)(w, r)
	}
	out, err := run(t, handler, "recent", "--page-size", "2", "-o", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-05-10 at 08:00 - Friday  Push  (1h 0m 0s)\n" +
		"2024-05-08 at 08:00 - Wednesday  Pull  (45m 30s)\n"
	if out != want {
		t.Errorf("stdout =\n%s\nwant\n%s", out, want)
	}
}

func TestRecentCommandEmpty(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")

	out, err := run(t, jsonHandler(`{"page":1,"page_count":0,"workouts":[]}`), "recent", "-o", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if want := "No workouts found.\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRecentCommandRejectsPageSize(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")
	if _, err := run(t, jsonHandler(`{}`), "recent", "--page-size", "50"); err == nil {
		t.Fatal("expected error for page size above the API limit")
	}
}
