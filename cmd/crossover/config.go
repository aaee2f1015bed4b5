package main

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var defaultSizes = []int{1, 2, 4, 8, 16, 32, 64, 128, 256}

const defaultLookups = 1_000_000

type Config struct {
	Sizes   []int  `yaml:"sizes"`
	Lookups int    `yaml:"lookups"`
	Seed    uint64 `yaml:"seed"`
	Log     struct {
		Pretty bool          `yaml:"pretty"`
		Level  zerolog.Level `yaml:"level"`
	} `yaml:"log"`
}

func (c *Config) Parse(src []byte) error {
	if err := yaml.Unmarshal(src, c); err != nil {
		return errors.Wrap(err, "decode config")
	}
	if len(c.Sizes) == 0 {
		c.Sizes = slices.Clone(defaultSizes)
	}
	if c.Lookups == 0 {
		c.Lookups = defaultLookups
	}
	if c.Lookups < 0 {
		return errors.Errorf(`"lookups" must be positive, got %d`, c.Lookups)
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return errors.Errorf(`"sizes" must be positive, got %d`, size)
		}
	}
	slices.Sort(c.Sizes)
	c.Sizes = slices.Compact(c.Sizes)
	return nil
}
