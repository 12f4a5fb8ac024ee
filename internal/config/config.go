package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/mirror/internal/errors"
	"github.com/vango-dev/mirror/pkg/script"
)

const (
	// YAMLFileName is the preferred configuration file name.
	YAMLFileName = "mirror.yaml"

	// JSONFileName is the JSON configuration file name.
	JSONFileName = "mirror.json"

	// NamespaceEnv overrides the namespace from any file.
	NamespaceEnv = "MIRROR_NAMESPACE"

	// DefaultSequencePrefix prefixes sequence identities.
	DefaultSequencePrefix = "n"

	// DefaultMetricsNamespace prefixes metric names.
	DefaultMetricsNamespace = "mirror"
)

// Identity source names.
const (
	IdentitiesUUID     = "uuid"
	IdentitiesSequence = "sequence"
)

// Config is the mirror.yaml / mirror.json configuration.
type Config struct {
	// Namespace prefixes the global slot of every live node.
	Namespace string `yaml:"namespace" json:"namespace"`

	// Identities selects the identity source: "uuid" or "sequence".
	Identities string `yaml:"identities" json:"identities"`

	// SequencePrefix prefixes identities when Identities is "sequence".
	SequencePrefix string `yaml:"sequence_prefix" json:"sequence_prefix"`

	// Log configures the command's logger.
	Log LogConfig `yaml:"log" json:"log"`

	// Metrics configures the renderer's metrics.
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" json:"level"`

	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" json:"namespace"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{
		Namespace:      script.DefaultNamespace,
		Identities:     IdentitiesUUID,
		SequencePrefix: DefaultSequencePrefix,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
	}
	cfg.applyEnv()
	return cfg
}

// Find returns the configuration file in dir, preferring mirror.yaml.
func Find(dir string) (string, bool) {
	for _, name := range []string{YAMLFileName, JSONFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads the configuration file in dir.
func Load(dir string) (*Config, error) {
	path, ok := Find(dir)
	if !ok {
		return nil, errors.New("M101").
			WithDetail("No " + YAMLFileName + " or " + JSONFileName + " found in " + dir).
			WithSuggestion("Run 'mirror init' to write a default " + YAMLFileName)
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path. The extension picks the codec:
// .json is JSON, anything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("M101").
				WithLocation(path, 0).
				WithSuggestion("Check the --config path")
		}
		return nil, errors.New("M101").Wrap(err)
	}

	cfg := New()
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.New("M102").
			WithLocation(path, errorLine(data, err)).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func decode(path string, data []byte, cfg *Config) error {
	if isJSON(path) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if stderrors.Is(err, io.EOF) {
		// An empty file keeps the defaults.
		return nil
	}
	return err
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// errorLine returns the 1-based line a decode error points at, or 0.
func errorLine(data []byte, err error) int {
	var syntax *json.SyntaxError
	if stderrors.As(err, &syntax) {
		return bytes.Count(data[:syntax.Offset], []byte("\n")) + 1
	}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as JSON for .json files and
// YAML otherwise.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New("M102").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("M102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Identities == "" {
		c.Identities = IdentitiesUUID
	}
	if c.SequencePrefix == "" {
		c.SequencePrefix = DefaultSequencePrefix
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

func (c *Config) applyEnv() {
	if ns, ok := os.LookupEnv(NamespaceEnv); ok {
		c.Namespace = ns
	}
}

// Validate checks that every value is in its allowed set.
func (c *Config) Validate() error {
	invalid := func(key, value, suggestion string) error {
		err := errors.New("M103").
			WithDetail(fmt.Sprintf("%s has the invalid value %q.", key, value)).
			WithSuggestion(suggestion)
		if c.configPath != "" {
			err.WithLocation(c.configPath, 0)
		}
		return err
	}

	switch c.Identities {
	case IdentitiesUUID, IdentitiesSequence:
	default:
		return invalid("identities", c.Identities, `Use "uuid" or "sequence"`)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "Use debug, info, warn or error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format", c.Log.Format, `Use "text" or "json"`)
	}
	if !model.IsValidMetricName(model.LabelValue(c.Metrics.Namespace)) {
		return invalid("metrics.namespace", c.Metrics.Namespace, "Use letters, digits and underscores, not starting with a digit")
	}
	return nil
}

// IdentitySource returns the identity source the configuration selects.
func (c *Config) IdentitySource() script.IdentitySource {
	if c.Identities == IdentitiesSequence {
		return script.NewSequence(c.SequencePrefix)
	}
	return script.UUIDs()
}

// Builder returns a script builder using the configured namespace and
// identity source.
func (c *Config) Builder() *script.Builder {
	return script.NewBuilder(
		script.WithNamespace(c.Namespace),
		script.WithIdentities(c.IdentitySource()),
	)
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
