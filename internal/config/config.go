// Package config resolves run settings from defaults, an optional YAML file,
// .env files, and GMETRICS_* environment variables, in that order. Command
// line flags are applied last by the caller.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GMETRICS_"

// Config holds everything a batch run needs.
type Config struct {
	InputTable     string `yaml:"input_table" validate:"required"`
	WorkDir        string `yaml:"work_dir" validate:"required"`
	OutJSON        string `yaml:"out_json" validate:"required"`
	OutCSV         string `yaml:"out_csv"`
	Curation       string `yaml:"curation"`
	AppendCuration bool   `yaml:"append_curation"`
	Limit          int    `yaml:"limit" validate:"gte=0"`
	Format         string `yaml:"format" validate:"omitempty,oneof=json jsonl csv table"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text logfmt json"`
	LogFile   string `yaml:"log_file"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		InputTable:     "data/reference_genomes.json",
		WorkDir:        ".genome_cache",
		OutJSON:        "public/data/genomes.json",
		Curation:       "data/curation.csv",
		AppendCuration: true,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load starts from Default, overlays the YAML file at path (when path is
// non-empty), then environment variables. A named file that does not exist
// is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := ApplyEnv(&c, os.LookupEnv); err != nil {
		return c, err
	}
	return c, nil
}

// LoadDotEnv loads each existing file into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrapf(err, "load %s", p)
		}
	}
	return nil
}

// ApplyEnv overlays GMETRICS_* variables found through lookup.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"INPUT_TABLE": &c.InputTable,
		"WORK_DIR":    &c.WorkDir,
		"OUT_JSON":    &c.OutJSON,
		"OUT_CSV":     &c.OutCSV,
		"CURATION":    &c.Curation,
		"FORMAT":      &c.Format,
		"LOG_LEVEL":   &c.LogLevel,
		"LOG_FORMAT":  &c.LogFormat,
		"LOG_FILE":    &c.LogFile,
	}
	for k, dst := range strs {
		if v, ok := lookup(EnvPrefix + k); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	if v, ok := lookup(EnvPrefix + "LIMIT"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Errorf("%sLIMIT: %q is not an integer", EnvPrefix, v)
		}
		c.Limit = n
	}
	if v, ok := lookup(EnvPrefix + "APPEND_CURATION"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Errorf("%sAPPEND_CURATION: %q is not a boolean", EnvPrefix, v)
		}
		c.AppendCuration = b
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation in one
// error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, describe(e))
	}
	return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed %s", e.Field(), e.Tag())
	}
}
