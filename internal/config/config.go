package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/viper"

	"github.com/3leaps/relcheck/pkg/update"
)

const (
	KeyAPIBase   = "api-base"
	KeyWebHost   = "web-host"
	KeyUserAgent = "user-agent"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log-level"

	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"

	envPrefix  = "RELCHECK"
	envPathVar = "RELCHECK_CONFIG"
	schemaName = "relcheck-config.schema.json"
)

//go:embed schema.json
var schemaJSON []byte

// Settings is the resolved configuration for one relcheck run.
type Settings struct {
	APIBase   string
	WebHost   string
	UserAgent string // empty means the client default
	Timeout   time.Duration
	LogLevel  string
}

// Options controls Load. Overrides typically come from CLI flags and win
// over every other source.
type Options struct {
	Path      string
	Overrides map[string]any
}

var (
	schemaOnce   sync.Once
	configSchema *jsonschema.Schema
	schemaErr    error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse embedded config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaName, doc); err != nil {
			schemaErr = fmt.Errorf("add embedded config schema: %w", err)
			return
		}
		configSchema, schemaErr = c.Compile(schemaName)
	})
	return configSchema, schemaErr
}

// Load resolves settings using the precedence:
// defaults < config file < environment variables < overrides.
//
// The config file is JSON and comes from opts.Path or $RELCHECK_CONFIG. It
// is validated against the embedded schema before it is merged.
func Load(opts Options) (Settings, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(envPathVar))
	}
	if err := mergeConfigFile(v, path); err != nil {
		return Settings{}, err
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	return settingsFrom(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBase, update.DefaultAPIBase)
	v.SetDefault(KeyWebHost, update.DefaultWebHost)
	v.SetDefault(KeyUserAgent, "")
	v.SetDefault(KeyTimeout, DefaultTimeout.String())
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	// #nosec G304 -- config path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := validate(data); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return sch.Validate(doc)
}

func settingsFrom(v *viper.Viper) (Settings, error) {
	var problems []string

	s := Settings{
		APIBase:   strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBase)), "/"),
		WebHost:   strings.TrimSpace(v.GetString(KeyWebHost)),
		UserAgent: strings.TrimSpace(v.GetString(KeyUserAgent)),
		LogLevel:  strings.TrimSpace(v.GetString(KeyLogLevel)),
	}
	if s.APIBase == "" {
		problems = append(problems, KeyAPIBase+": missing")
	}
	if s.WebHost == "" {
		problems = append(problems, KeyWebHost+": missing")
	}

	timeout, err := parseTimeout(v.Get(KeyTimeout))
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", KeyTimeout, err))
	}
	s.Timeout = timeout

	if len(problems) > 0 {
		return Settings{}, errors.New("invalid configuration:\n- " + strings.Join(problems, "\n- "))
	}
	return s, nil
}

func parseTimeout(raw any) (time.Duration, error) {
	var d time.Duration
	switch t := raw.(type) {
	case time.Duration:
		d = t
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(t))
		if err != nil {
			return 0, err
		}
		d = parsed
	default:
		return 0, fmt.Errorf("unsupported value %v", raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive (got %s)", d)
	}
	return d, nil
}
