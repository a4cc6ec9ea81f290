package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// Version is the program version reported by --version and sent in the
// User-Agent. It is set by the main package (wired in init).
var Version = "dev"

// Exit codes.
const (
	ExitNoUpdate = 0
	ExitUsage    = 1
	ExitUpdate   = 2
	ExitFailure  = 3
)

const usageText = `Usage: relcheck [flags] <repo-url-or-api-url> <local-version>
Example:
  relcheck https://github.com/nlohmann/json 3.11.2
  relcheck https://api.github.com/repos/nlohmann/json/releases/latest 3.11.2
`

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	configPath string
	apiBase    string
	timeout    time.Duration
	logLevel   string
	jsonOut    bool
}

// Run executes relcheck with args (without the program name) and returns
// the process exit code: 0 no update, 1 usage error, 2 update available,
// 3 any runtime failure.
func Run(args []string, stdout, stderr io.Writer) int {
	code := ExitNoUpdate
	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "Error: %v\n", ue.err)
			fmt.Fprint(stderr, usageText)
			return ExitUsage
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "relcheck [flags] <repo-url-or-api-url> <local-version>",
		Short: "Check whether a newer GitHub release exists",
		Long: `relcheck compares a local version with the latest GitHub release of a
repository and reports whether an update is available.

The repository may be given as a web URL (https://github.com/owner/repo,
optionally ending in .git) or as a releases/latest API URL.`,
		Example: "  relcheck https://github.com/nlohmann/json 3.11.2\n" +
			"  relcheck --json https://github.com/nlohmann/json v3.11.2",
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasUpdate, err := runCheck(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}
			if hasUpdate {
				*code = ExitUpdate
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a JSON config file (default $RELCHECK_CONFIG)")
	flags.StringVar(&opts.apiBase, "api-base", "", "GitHub API base URL (default https://api.github.com)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout (default 30s)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	flags.BoolVar(&opts.jsonOut, "json", false, "print a JSON report instead of text")

	return cmd
}
