package main

import (
	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/errors"
)

// Config is a workload description. It can be read from a TOML file and
// then overridden from the command line.
type Config struct {
	Count      int         `toml:"count"`
	Seed       int64       `toml:"seed"`
	Containers []string    `toml:"containers"`
	Alloc      AllocConfig `toml:"alloc"`
}

type AllocConfig struct {
	Name    string `toml:"name"`
	Pool    int    `toml:"pool"`
	Budget  int    `toml:"budget"`
	Metrics bool   `toml:"metrics"`
}

func DefaultConfig() Config {
	return Config{
		Count:      10000,
		Seed:       1,
		Containers: []string{"vector", "list", "rbtree", "array", "stack", "queue"},
		Alloc:      AllocConfig{Name: "bench"},
	}
}

// LoadConfig reads path over the defaults. Keys the file sets that Config
// does not know are logged and ignored.
func LoadConfig(path string, log *zap.Logger) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Errorf("reading %v: %v", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", zap.String("file", path), zap.String("key", key.String()))
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.Alloc.Budget < 0 {
		return errors.Errorf("alloc.budget must not be negative, got %d", c.Alloc.Budget)
	}
	for _, name := range c.Containers {
		if _, has := Workloads[name]; !has {
			return errors.Errorf("unknown container %q", name)
		}
	}
	return nil
}

// Strategy turns the alloc section into an allocation strategy.
func (c AllocConfig) Strategy() *alloc.Strategy {
	opts := []alloc.Option{alloc.WithName(c.Name)}
	if c.Pool > 0 {
		opts = append(opts, alloc.WithPool(c.Pool))
	}
	if c.Budget > 0 {
		opts = append(opts, alloc.WithBudget(c.Budget))
	}
	if c.Metrics {
		opts = append(opts, alloc.WithMetrics())
	}
	return alloc.NewStrategy(opts...)
}
