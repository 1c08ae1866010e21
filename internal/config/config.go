// Package config loads ontology settings from YAML.
//
// Files are decoded strictly (unknown keys are errors) and then checked
// against an embedded CUE schema, so a typo or an out-of-range value fails
// at load time instead of silently falling back to a default.
//
// Example:
//
//	ontology_iri: http://example.org/animals
//	version_iri: http://example.org/animals/1.0
//	normalize_names: true
//	log_level: debug
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ontocore/internal/ontology"
)

//go:embed schema.cue
var schemaSource string

// Config holds the settings that shape a new Ontology.
//
// The json tags name the fields for the CUE schema; the yaml tags name them
// in configuration files. Both use the same spelling.
type Config struct {
	// OntologyIRI, when set, is interned and recorded as the ontology IRI.
	OntologyIRI string `yaml:"ontology_iri" json:"ontology_iri,omitempty"`

	// VersionIRI, when set, is interned and recorded as the version IRI.
	// It requires OntologyIRI.
	VersionIRI string `yaml:"version_iri" json:"version_iri,omitempty"`

	// NormalizeNames enables NFC normalisation of interned names.
	NormalizeNames bool `yaml:"normalize_names" json:"normalize_names,omitempty"`

	// LogLevel is one of debug, info, warn or error. Empty means info.
	LogLevel string `yaml:"log_level" json:"log_level,omitempty"`
}

// ErrVersionWithoutOntologyIRI is returned when a version IRI is configured
// without an ontology IRI.
var ErrVersionWithoutOntologyIRI = errors.New("version_iri requires ontology_iri")

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration and validates it. Empty input yields the
// zero Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks c against the configuration schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue")).
		LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	value := schema.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.VersionIRI != "" && c.OntologyIRI == "" {
		return fmt.Errorf("invalid config: %w", ErrVersionWithoutOntologyIRI)
	}
	return nil
}

// Options converts the configuration into ontology options. The logger is
// not included; pass Logger's result through ontology.WithLogger.
func (c *Config) Options() []ontology.Option {
	var opts []ontology.Option
	if c.OntologyIRI != "" {
		opts = append(opts, ontology.WithOntologyIRI(c.OntologyIRI))
	}
	if c.VersionIRI != "" {
		opts = append(opts, ontology.WithVersionIRI(c.VersionIRI))
	}
	if c.NormalizeNames {
		opts = append(opts, ontology.WithNameNormalization())
	}
	return opts
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// New creates an ontology configured by c, logging to w.
func (c *Config) New(w io.Writer) *ontology.Ontology {
	opts := append([]ontology.Option{ontology.WithLogger(c.Logger(w))}, c.Options()...)
	return ontology.New(opts...)
}
