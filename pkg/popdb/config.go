package popdb

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/popdb-go/internal/loader"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/internal/backend"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/logging"
)

//go:embed config.cue
var configSchema string

// Backend names accepted by Config.Backend.
const (
	BackendNative  = backend.Native
	BackendBuiltin = backend.Builtin
	BackendSQLite  = backend.SQLite
)

// Config expresses the knobs required to open a Library. The zero value is
// usable: it loads libpopdb from the working directory with the native
// backend.
type Config struct {
	// Backend selects the implementation: "native" (default), "builtin" or
	// "sqlite".
	Backend string `yaml:"backend" json:"backend"`

	Library LibraryConfig `yaml:"library" json:"library"`
	SQLite  SQLiteConfig  `yaml:"sqlite" json:"sqlite"`
	Log     LogConfig     `yaml:"log" json:"log"`

	// Logger receives lifecycle events. Nil discards them.
	Logger logging.Logger `yaml:"-" json:"-"`
}

// LibraryConfig locates the shared library for the native backend.
type LibraryConfig struct {
	// Dir is the directory holding the library. Empty means the dynamic
	// linker's search path.
	Dir string `yaml:"dir" json:"dir"`

	// Name is the base name; the platform prefix and extension are added.
	Name string `yaml:"name" json:"name"`
}

// SQLiteConfig configures the sqlite backend.
type SQLiteConfig struct {
	// Path of the database file. Empty keeps each handle in memory.
	Path string `yaml:"path" json:"path"`
}

// LogConfig is read by the CLI when it builds its logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendNative
	}
	if c.Library.Name == "" {
		c.Library.Name = loader.DefaultBase
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	return c
}

// Validate applies defaults and checks c against the configuration schema.
func (c Config) Validate() error {
	c = c.withDefaults()

	ctx := cuecontext.New()
	schema := ctx.CompileString(configSchema).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	v := schema.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) toBackend() backend.Options {
	return backend.Options{
		LibraryDir:  c.Library.Dir,
		LibraryName: c.Library.Name,
		SQLitePath:  c.SQLite.Path,
	}
}

// LoadConfig reads a YAML configuration file. Missing fields keep their
// defaults; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
