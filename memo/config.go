package memo

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"
)

// KeyStrategy selects how call arguments are turned into cache keys.
type KeyStrategy int

const (
	// KeyString renders arguments with %#v. It is the fastest strategy but is
	// only safe when an argument's text identifies its value.
	KeyString KeyStrategy = iota
	// KeySerialized encodes arguments with msgpack. It is slower but does not
	// depend on how values print.
	KeySerialized
	// KeyHashed reduces arguments and their types to a 64-bit structural
	// hash. Distinct arguments share a key only on a hash collision.
	KeyHashed
)

func (s KeyStrategy) String() string {
	switch s {
	case KeyString:
		return "string"
	case KeySerialized:
		return "serialized"
	case KeyHashed:
		return "hashed"
	default:
		return "unknown"
	}
}

// ParseKeyStrategy converts a strategy name into a KeyStrategy.
func ParseKeyStrategy(s string) (KeyStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string", "repr":
		return KeyString, nil
	case "serialized", "msgpack":
		return KeySerialized, nil
	case "hashed", "hash":
		return KeyHashed, nil
	}
	return KeyString, errors.Newf("memo: unknown key strategy %q", s)
}

func (s KeyStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *KeyStrategy) UnmarshalText(text []byte) error {
	v, err := ParseKeyStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Config describes a memoized function's cache.
type Config struct {
	// Capacity bounds the number of cached results. Zero or less disables
	// caching and every call computes.
	Capacity int
	// TTL expires cached results this long after they are stored. Zero means
	// results never expire.
	TTL time.Duration
	// KeyStrategy selects key derivation. Defaults to KeyString.
	KeyStrategy KeyStrategy
	// Concurrent makes the cache safe for use from multiple goroutines.
	Concurrent bool
	// Shards splits a concurrent cache into independently locked parts.
	// Defaults to 1, which keeps the eviction order exact.
	Shards int
}

// DefaultConfig returns the config used when none is supplied: 5000 entries
// kept for ten minutes.
func DefaultConfig() Config {
	return Config{Capacity: 5000, TTL: 10 * time.Minute, KeyStrategy: KeyString}
}

// Enabled reports whether the configuration caches anything.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

type yamlConfig struct {
	Capacity    int    `yaml:"capacity"`
	TTL         string `yaml:"ttl"`
	KeyStrategy string `yaml:"key_strategy"`
	Concurrent  bool   `yaml:"concurrent"`
	Shards      int    `yaml:"shards"`
}

// UnmarshalYAML reads a Config. ttl accepts Go durations as well as day and
// week units such as "1d12h".
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}
	strategy, err := ParseKeyStrategy(raw.KeyStrategy)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if raw.TTL != "" {
		ttl, err = str2duration.ParseDuration(raw.TTL)
		if err != nil {
			return errors.Wrapf(err, "memo: invalid ttl %q", raw.TTL)
		}
		if ttl < 0 {
			return errors.Newf("memo: negative ttl %q", raw.TTL)
		}
	}
	*c = Config{
		Capacity:    raw.Capacity,
		TTL:         ttl,
		KeyStrategy: strategy,
		Concurrent:  raw.Concurrent,
		Shards:      raw.Shards,
	}
	return nil
}

// MarshalYAML writes a Config in the form read by UnmarshalYAML.
func (c Config) MarshalYAML() (any, error) {
	raw := yamlConfig{
		Capacity:    c.Capacity,
		KeyStrategy: c.KeyStrategy.String(),
		Concurrent:  c.Concurrent,
		Shards:      c.Shards,
	}
	if c.TTL > 0 {
		raw.TTL = str2duration.String(c.TTL)
	}
	return raw, nil
}

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(buf []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "memo: parse config")
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(filename string) (Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "memo: read config %s", filename)
	}
	return ParseConfig(buf)
}
