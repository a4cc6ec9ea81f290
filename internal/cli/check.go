package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/3leaps/relcheck/internal/config"
	gh "github.com/3leaps/relcheck/internal/host/github"
	"github.com/3leaps/relcheck/internal/logging"
	"github.com/3leaps/relcheck/internal/model"
	"github.com/3leaps/relcheck/pkg/update"
)

func runCheck(cmd *cobra.Command, opts *options, repoRef, localVersion string) (bool, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("api-base") {
		overrides[config.KeyAPIBase] = opts.apiBase
	}
	if flags.Changed("timeout") {
		overrides[config.KeyTimeout] = opts.timeout.String()
	}
	if flags.Changed("log-level") {
		overrides[config.KeyLogLevel] = opts.logLevel
	}

	settings, err := config.Load(config.Options{Path: opts.configPath, Overrides: overrides})
	if err != nil {
		return false, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), settings.LogLevel)

	ua := settings.UserAgent
	if ua == "" {
		ua = gh.UserAgent(Version)
	}
	client := gh.NewClient(
		gh.WithHTTPClient(&http.Client{Timeout: settings.Timeout}),
		gh.WithUserAgent(ua),
		gh.WithLogger(logger),
	)
	locator := update.Locator{APIBase: settings.APIBase, WebHost: settings.WebHost}
	checker := update.NewChecker(update.WithLocator(locator), update.WithFetcher(client))

	start := time.Now()
	res, err := checker.Check(cmd.Context(), repoRef, localVersion)
	if err != nil {
		logger.Debug().Str("kind", string(update.KindOf(err))).Err(err).Msg("update check failed")
		return false, err
	}
	logger.Debug().
		Str("endpoint", res.Endpoint).
		Str("decision", string(res.Decision())).
		Dur("elapsed", time.Since(start)).
		Msg("update check finished")

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		report := buildReport(locator, repoRef, localVersion, res)
		if err := writeReport(out, report); err != nil {
			return false, err
		}
	} else {
		printResult(out, localVersion, res)
	}
	return res.HasUpdate, nil
}

func printResult(w io.Writer, localVersion string, res update.Result) {
	answer := "NO"
	if res.HasUpdate {
		answer = "YES"
	}
	fmt.Fprintf(w, "Local version:  %s\n", localVersion)
	fmt.Fprintf(w, "Remote version: %s\n", res.LatestVersion)
	fmt.Fprintf(w, "Update:         %s\n", answer)
}

func buildReport(locator update.Locator, repoRef, localVersion string, res update.Result) model.Report {
	report := model.Report{
		Endpoint:        res.Endpoint,
		LocalVersion:    localVersion,
		LatestVersion:   res.LatestVersion,
		UpdateAvailable: res.HasUpdate,
		Decision:        string(res.Decision()),
		Summary:         update.DescribeResult(res),
	}
	if owner, repo, err := locator.Repository(repoRef); err == nil {
		report.Repository = owner + "/" + repo
	}
	return report
}

func writeReport(w io.Writer, report model.Report) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
