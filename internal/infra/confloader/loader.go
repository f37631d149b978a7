package confloader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yndnr/envconf-go/internal/core/domain"
	"github.com/yndnr/envconf-go/internal/telemetry/logger"
	"github.com/yndnr/envconf-go/internal/telemetry/metric"
)

const (
	// DefaultExtension is the extension of files the loader merges.
	DefaultExtension = "yml"

	// DefaultGlobalName is the base name of the global file.
	DefaultGlobalName = "global"

	// Keys read from the global file.
	keyEnvironment          = "environment"
	keyRequiredEnvironments = "required_environments"
)

// Loader merges the configuration files of one directory into its Store.
type Loader struct {
	*Store

	lister     DirLister
	parser     koanf.Parser
	extension  string
	globalName string
	envPrefix  string
	log        logger.Logger
	metrics    *metric.Registry

	merged []string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithLister replaces the filesystem directory lister.
func WithLister(lister DirLister) Option {
	return func(l *Loader) {
		l.lister = lister
	}
}

// WithParser replaces the YAML parser. Any koanf parser producing a
// top-level map can be used.
func WithParser(parser koanf.Parser) Option {
	return func(l *Loader) {
		l.parser = parser
	}
}

// WithExtension sets the extension of files to merge, with or without
// the leading dot.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		l.extension = strings.TrimPrefix(ext, ".")
	}
}

// WithGlobalName sets the base name of the global file.
func WithGlobalName(name string) Option {
	return func(l *Loader) {
		l.globalName = name
	}
}

// WithEnvOverrides lets environment variables carrying prefix override
// top-level keys after all files are merged. APP_DB_HOST with prefix APP
// sets key db_host. Overrides only ever replace a whole top-level value,
// so variables whose name contains a dot are ignored.
func WithEnvOverrides(prefix string) Option {
	return func(l *Loader) {
		if prefix != "" && !strings.HasSuffix(prefix, "_") {
			prefix += "_"
		}
		l.envPrefix = prefix
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithMetrics records load and per-file metrics on reg.
func WithMetrics(reg *metric.Registry) Option {
	return func(l *Loader) {
		l.metrics = reg
	}
}

// New creates a loader. A non-empty dir is validated immediately; an
// empty one leaves the directory unset until SetDirectory is called.
func New(dir string, opts ...Option) (*Loader, error) {
	l := &Loader{
		Store:      NewStore(),
		lister:     OSLister{},
		parser:     yaml.Parser(),
		extension:  DefaultExtension,
		globalName: DefaultGlobalName,
		log:        logger.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if dir != "" {
		if err := l.SetDirectory(dir); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Load reads the directory and merges it into the store:
//  1. resolve environment metadata from the global file unless both the
//     environment and the possible environments are already set
//  2. merge every file with the configured extension, except those named
//     after a possible environment other than the active one
//  3. apply environment variable overrides, if enabled
//  4. check that every required key is present
//
// Values accumulate across calls; nothing is cleared and a failed load
// leaves whatever was merged before the failure.
func (l *Loader) Load() (err error) {
	start := time.Now()
	defer func() {
		if l.metrics == nil {
			return
		}
		result := metric.ResultSuccess
		if err != nil {
			result = metric.ResultFailure
		}
		l.metrics.ObserveLoad(result, time.Since(start))
	}()

	dir, err := l.Directory()
	if err != nil {
		return err
	}

	if err := l.resolveEnvironment(dir); err != nil {
		return err
	}

	if !slices.Contains(l.possibleEnvs, l.environment) {
		l.log.Warn("environment is not one of the possible environments",
			"environment", l.environment,
			"possible_environments", l.possibleEnvs,
		)
	}

	if err := l.mergeDirectory(dir); err != nil {
		return err
	}

	if l.envPrefix != "" {
		if err := l.applyEnvOverrides(); err != nil {
			return err
		}
	}

	for _, key := range l.requiredKeys {
		if _, ok := l.data[key]; !ok {
			return domain.ErrRequiredKeyMissing.WithDetails(key)
		}
	}

	l.log.Info("configuration loaded",
		"directory", dir,
		"environment", l.environment,
		"files", len(l.merged),
		"keys", len(l.data),
	)
	return nil
}

// MergedFiles returns the names of the files merged by the last Load, in
// merge order.
func (l *Loader) MergedFiles() []string {
	return slices.Clone(l.merged)
}

// resolveEnvironment fills environment and possible environments from the
// global file when either is unset.
func (l *Loader) resolveEnvironment(dir string) error {
	if l.environment != "" && l.possibleEnvs != nil {
		return nil
	}

	name := l.globalName + "." + l.extension
	path := filepath.Join(dir, name)
	if !accessibleFile(path) {
		return domain.ErrGlobalConfigMissing.WithDetailsf("%s in %s", name, dir)
	}

	data, err := l.parseFile(path)
	if err != nil {
		return err
	}

	environment, possible, err := environmentFromGlobal(data)
	if err != nil {
		return err
	}

	l.SetEnvironment(environment)
	l.SetPossibleEnvironments(possible)

	l.log.Debug("environment resolved from global file",
		"file", name,
		"environment", environment,
		"possible_environments", possible,
	)
	return nil
}

// environmentFromGlobal extracts the environment metadata of a parsed
// global file. Both keys must be present; environment must be a scalar and
// required_environments a sequence of scalars.
func environmentFromGlobal(data map[string]any) (string, []string, error) {
	rawEnv, ok := data[keyEnvironment]
	if !ok || rawEnv == nil {
		return "", nil, domain.ErrMissingEnvironmentKey.WithDetailsf("missing %q", keyEnvironment)
	}
	rawList, ok := data[keyRequiredEnvironments]
	if !ok || rawList == nil {
		return "", nil, domain.ErrMissingEnvironmentKey.WithDetailsf("missing %q", keyRequiredEnvironments)
	}

	environment, ok := scalarString(rawEnv)
	if !ok || environment == "" {
		return "", nil, domain.ErrMissingEnvironmentKey.WithDetailsf("%q must be a non-empty scalar", keyEnvironment)
	}

	items, ok := rawList.([]any)
	if !ok {
		return "", nil, domain.ErrMissingEnvironmentKey.WithDetailsf("%q must be a sequence", keyRequiredEnvironments)
	}

	possible := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := scalarString(item)
		if !ok {
			return "", nil, domain.ErrMissingEnvironmentKey.WithDetailsf("%q must contain only scalars", keyRequiredEnvironments)
		}
		possible = append(possible, s)
	}

	return environment, possible, nil
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any, []any, nil:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}

// mergeDirectory merges every eligible file of dir in listing order.
func (l *Loader) mergeDirectory(dir string) error {
	entries, err := l.lister.List(dir)
	if err != nil {
		return domain.ErrListDirectory.WithDetails(dir).Wrap(err)
	}

	excluded := l.excludedEnvironments()
	l.merged = nil

	for _, e := range entries {
		if e.IsDir {
			continue
		}

		ext := filepath.Ext(e.Name)
		if strings.TrimPrefix(ext, ".") != l.extension {
			l.record(metric.OutcomeSkippedExtension)
			l.log.Debug("skipping file with foreign extension", "file", e.Name)
			continue
		}

		base := strings.TrimSuffix(e.Name, ext)
		if slices.Contains(excluded, base) {
			l.record(metric.OutcomeSkippedEnvironment)
			l.log.Debug("skipping file of inactive environment", "file", e.Name, "environment", base)
			continue
		}

		data, err := l.parseFile(filepath.Join(dir, e.Name))
		if err != nil {
			return err
		}
		if len(data) == 0 {
			l.record(metric.OutcomeEmpty)
			l.log.Debug("file contributes no keys", "file", e.Name)
			continue
		}

		l.merge(data)
		l.merged = append(l.merged, e.Name)
		l.record(metric.OutcomeMerged)
		l.log.Debug("merged file", "file", e.Name, "keys", len(data))
	}

	return nil
}

// excludedEnvironments returns the possible environments minus the active one.
func (l *Loader) excludedEnvironments() []string {
	excluded := make([]string, 0, len(l.possibleEnvs))
	for _, name := range l.possibleEnvs {
		if name != l.environment {
			excluded = append(excluded, name)
		}
	}
	return excluded
}

// parseFile reads and parses one file. Blank files yield a nil map.
func (l *Loader) parseFile(path string) (map[string]any, error) {
	b, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, domain.ErrConfigParse.WithDetails(path).Wrap(err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}

	data, err := l.parser.Unmarshal(b)
	if err != nil {
		return nil, domain.ErrConfigParse.WithDetails(path).Wrap(err)
	}
	// Mappings with non-string keys (ports: {80: http}) decode as
	// map[any]any, which JSON cannot encode.
	maps.IntfaceKeysToStrings(data)
	return data, nil
}

// applyEnvOverrides merges prefixed environment variables as top-level keys.
func (l *Loader) applyEnvOverrides() error {
	prefix := l.envPrefix
	k := koanf.New(".")
	provider := env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		if strings.Contains(key, ".") {
			return ""
		}
		return key
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env overrides: %w", err)
	}

	overrides := k.Raw()
	for key := range overrides {
		l.log.Debug("environment variable override", "key", key)
	}
	l.merge(overrides)
	return nil
}

func (l *Loader) record(outcome string) {
	if l.metrics != nil {
		l.metrics.IncFile(outcome)
	}
}
