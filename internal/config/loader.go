package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RETRODESK"

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
	SourceEnv     SourceKind = "env"
)

type Source struct {
	Kind   SourceKind
	Name   string // env variable name
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML-path -> last writer source
	Files   []string          // loaded files, empty when defaults were used
}

// Env holds the environment overrides, read with the RETRODESK_ prefix.
type Env struct {
	Config   string `envconfig:"CONFIG"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// ReadEnv reads the RETRODESK_* overrides.
func ReadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "retrodesk", "config.yaml"), nil
}

// ResolvePath picks the config file: an explicit path wins, then
// RETRODESK_CONFIG, then the standard location.
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}
	env, err := ReadEnv()
	if err != nil {
		return "", err
	}
	if env.Config != "" {
		return env.Config, nil
	}
	return DefaultConfigPath()
}

// Load reads the configuration from the resolved location and returns an
// effective config ready for use.
func Load() (*Config, error) {
	res, err := LoadWithSources()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSources loads config and returns per-key sources for introspection.
func LoadWithSources() (*LoadResult, error) {
	path, err := ResolvePath("")
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults, applies environment overrides
// and validates the result. A missing file yields the defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	sources := map[string]Source{}
	var files []string

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		canon, fileSources, err := loadFile(path, cfg)
		if err != nil {
			return nil, err
		}
		sources = fileSources
		files = append(files, canon)
	}

	env, err := ReadEnv()
	if err != nil {
		return nil, err
	}
	applyEnv(cfg, env, sources)

	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, sources)
	}

	return &LoadResult{
		Config:  cfg,
		Sources: sources,
		Files:   files,
	}, nil
}

// Explain returns where a top-level or dotted key got its value.
func Explain(res *LoadResult, path string) Source {
	if res != nil {
		if src, ok := res.Sources[path]; ok {
			return src
		}
	}
	return Source{Kind: SourceDefault, Name: path}
}

func loadFile(path string, cfg *Config) (string, map[string]Source, error) {
	canon, err := canonicalPath(path)
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(canon)
	if err != nil {
		return "", nil, fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}

	// Decoding over the defaults keeps every key the file leaves out.
	// Sequences are replaced, not merged.
	if err := decodeStrictYAML(data, cfg); err != nil {
		return "", nil, fmt.Errorf("%s: %w", canon, err)
	}

	return canon, collectSources(&doc, canon), nil
}

func applyEnv(cfg *Config, env Env, sources map[string]Source) {
	if env.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(env.LogLevel)
		sources["log_level"] = Source{Kind: SourceEnv, Name: EnvPrefix + "_LOG_LEVEL"}
	}
	if env.LogFile != "" {
		cfg.LogFile = env.LogFile
		sources["log_file"] = Source{Kind: SourceEnv, Name: EnvPrefix + "_LOG_FILE"}
	}
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return real, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%s: %w", path, err)
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if doc == nil {
		return out
	}
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	collectSourcesRec(node, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			valNode := node.Content[i+1]
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			out[path] = fileSource(file, valNode)
			collectSourcesRec(valNode, file, path, out)
		}
	case yaml.SequenceNode:
		if prefix != "" {
			out[prefix] = fileSource(file, node)
		}
		for i, item := range node.Content {
			path := fmt.Sprintf("%s[%d]", prefix, i)
			out[path] = fileSource(file, item)
			collectSourcesRec(item, file, path, out)
		}
	}
}

func fileSource(file string, node *yaml.Node) Source {
	return Source{
		Kind:   SourceFile,
		File:   file,
		Line:   node.Line,
		Column: node.Column,
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
