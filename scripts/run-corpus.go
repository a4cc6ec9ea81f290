// Command run-corpus checks every repository in a manifest concurrently and
// compares the outcome with the manifest's expectations.
//
//	go run ./scripts --manifest testdata/corpus.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	gh "github.com/3leaps/relcheck/internal/host/github"
	"github.com/3leaps/relcheck/internal/model"
	"github.com/3leaps/relcheck/pkg/update"
)

func main() {
	manifestPath := flag.String("manifest", "testdata/corpus.json", "path to corpus manifest")
	apiBase := flag.String("api-base", "", "GitHub API base URL (default https://api.github.com)")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request HTTP timeout")
	flag.Parse()

	manifest := firstSet(*manifestPath, os.Getenv("CORPUS_MANIFEST"))

	entries, err := loadManifest(manifest)
	if err != nil {
		fatalf("load manifest: %v", err)
	}
	if err := validateEntries(entries); err != nil {
		fatalf("manifest validation failed: %v", err)
	}

	client := gh.NewClient(
		gh.WithHTTPClient(&http.Client{Timeout: *timeout}),
		gh.WithUserAgent(gh.UserAgent("corpus")),
	)
	checker := update.NewChecker(
		update.WithLocator(update.Locator{APIBase: firstSet(*apiBase, os.Getenv("RELCHECK_API_BASE"))}),
		update.WithFetcher(client),
	)

	results := runAll(context.Background(), checker, entries)

	var failures int
	for _, r := range results {
		fmt.Printf("[%s] %s local=%s latest=%s update=%v", strings.ToUpper(r.Status), r.Repo, r.LocalVersion, r.LatestVersion, r.HasUpdate)
		if r.Note != "" {
			fmt.Printf(" note=%s", r.Note)
		}
		fmt.Println()
		if r.Error != "" {
			fmt.Printf("  error: %s\n", r.Error)
		}
		if r.Status != "pass" {
			failures++
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// inFlight bounds concurrent checks by GOMAXPROCS and the number of entries.
func inFlight(entries int) int {
	return max(1, min(entries, runtime.GOMAXPROCS(0)))
}

// runAll schedules one asynchronous check per entry, at most inFlight
// at a time, and collects results in manifest order.
func runAll(ctx context.Context, checker *update.Checker, entries []model.CorpusEntry) []model.CorpusResult {
	sem := make(chan struct{}, inFlight(len(entries)))
	pending := make([]*update.Pending, len(entries))
	for i, e := range entries {
		sem <- struct{}{}
		p := checker.CheckAsync(ctx, e.Repo, e.LocalVersion)
		go func() {
			<-p.Done()
			<-sem
		}()
		pending[i] = p
	}

	results := make([]model.CorpusResult, len(entries))
	for i, e := range entries {
		res, err := pending[i].Wait()
		results[i] = evaluate(e, res, err)
	}
	return results
}

func evaluate(e model.CorpusEntry, res update.Result, err error) model.CorpusResult {
	out := model.CorpusResult{
		Repo:          e.Repo,
		LocalVersion:  e.LocalVersion,
		LatestVersion: res.LatestVersion,
		HasUpdate:     res.HasUpdate,
		Note:          e.Note,
		Status:        "pass",
	}
	switch {
	case err != nil:
		out.Error = fmt.Sprintf("%s: %v", update.KindOf(err), err)
		if !e.ExpectError {
			out.Status = "fail"
		}
	case e.ExpectError:
		out.Status = "fail"
		out.Error = "expected an error, check succeeded"
	case res.HasUpdate != e.ExpectUpdate:
		out.Status = "fail"
	}
	return out
}

func loadManifest(path string) ([]model.CorpusEntry, error) {
	// #nosec G304 -- manifest path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []model.CorpusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func validateEntries(entries []model.CorpusEntry) error {
	if len(entries) == 0 {
		return errors.New("manifest has no entries")
	}
	var problems []string
	for i, e := range entries {
		if strings.TrimSpace(e.Repo) == "" {
			problems = append(problems, fmt.Sprintf("entry %d: repo missing", i))
		}
		if strings.TrimSpace(e.LocalVersion) == "" {
			problems = append(problems, fmt.Sprintf("entry %d: localVersion missing", i))
		}
		if e.ExpectError && e.ExpectUpdate {
			problems = append(problems, fmt.Sprintf("entry %d: expectError and expectUpdate are exclusive", i))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
