package main

import (
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if err := run(); err != nil {
		log.Fatal().Stack().Err(err).Msg("Crossover")
	}
}

func run() error {
	if len(os.Args) < 2 {
		return errors.New("YAML config is required as argument")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		return errors.Wrap(err, "open config")
	}

	var cfg Config
	if err := cfg.Parse(raw); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339Nano}
	}
	log.Logger = zerolog.New(w).
		Level(cfg.Log.Level).
		With().
		Timestamp().
		Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	log.Info().Ints("sizes", cfg.Sizes).Int("lookups", cfg.Lookups).Uint64("seed", seed).Msg("Measure")

	results := make([]Result, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		r := Measure(size, cfg.Lookups, rnd)
		results = append(results, r)
		log.Debug().
			Int("size", r.Size).
			Float64("arrayset_ns", r.ArraySet).
			Float64("hashset_ns", r.HashSet).
			Msg("Lookup cost")
	}

	if size, ok := Crossover(results); ok {
		log.Info().Int("size", size).Msg("Hash set faster from size")
	} else {
		log.Info().Int("max_size", cfg.Sizes[len(cfg.Sizes)-1]).Msg("Array set faster at every measured size")
	}
	return nil
}
