package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dgallion1/planscheme/internal/cache"
	"github.com/dgallion1/planscheme/internal/config"
	"github.com/dgallion1/planscheme/internal/ordinance"
	"github.com/dgallion1/planscheme/internal/parser"
	"github.com/dgallion1/planscheme/internal/vicplan"
)

// app holds everything the commands share.
type app struct {
	log    *slog.Logger
	cfg    config.Config
	client *vicplan.Client
	closer func()
}

func newApp() (*app, error) {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var store cache.Cache
	closer := func() {}
	bolt, err := cache.NewBolt(cfg.CachePath, cfg.CacheTTL)
	if err != nil {
		log.Warn("cache file unavailable, using in-memory cache", "path", cfg.CachePath, "error", err)
		store = cache.NewMemory(cfg.CacheTTL)
	} else {
		store = bolt
		closer = func() { bolt.Close() }
	}

	client := vicplan.NewClient(cfg.BaseURL, store, cfg.HTTPTimeout)
	return &app{log: log, cfg: cfg, client: client, closer: closer}, nil
}

func (a *app) Close() {
	a.client.Close()
	a.closer()
}

// sections fetches the ordinance and parses every section's fragment.
func (a *app) sections(ctx context.Context, clause, subClause string) ([]ordinance.Section, error) {
	raw, err := a.client.Sections(ctx, clause, subClause)
	if err != nil {
		return nil, err
	}
	var sections []ordinance.Section
	for _, sec := range raw {
		rules := parser.ParseFragment(sec.Content, a.log)
		if rules == nil {
			a.log.Warn("section yielded no rules", "section", sec.Title)
			continue
		}
		sections = append(sections, ordinance.Section{Title: sec.Title, Rules: rules})
	}
	return sections, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
