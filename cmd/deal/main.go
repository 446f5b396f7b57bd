package main

import (
	"flag"
	"strings"

	"carddeck/internal/config"
	"carddeck/internal/rng"
	"carddeck/internal/util"
	"carddeck/pkg/deck"
	"carddeck/pkg/poker"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// Version is the dealer version
var Version = "v0.0.0-dev"

var (
	hands        = flag.Int("hands", 0, "number of hands to deal (overrides config)")
	cardsPerHand = flag.Int("cards", 0, "cards per hand (overrides config)")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *hands > 0 {
		cfg.Hands = *hands
	}

	if *cardsPerHand > 0 {
		cfg.CardsPerHand = *cardsPerHand
	}

	generator := newGenerator(cfg.Seed)

	d, err := deck.NewMulti(cfg.Decks, cfg.IncludeJokers)
	if err != nil {
		logrus.WithError(err).Fatal("could not build deck")
	}

	d.Shuffle(generator)

	dealID := uuid.New().String()
	logger := logrus.WithFields(logrus.Fields{
		"deal":    dealID,
		"version": Version,
		"decks":   cfg.Decks,
		"jokers":  cfg.IncludeJokers,
	})
	logger.WithField("hash", d.HashCode()).Debug("deck shuffled")

	dealt, err := d.DealHands(cfg.Hands, cfg.CardsPerHand)
	if err != nil {
		logger.WithError(err).Fatal("could not deal")
	}

	table := pterm.TableData{{"Hand", "Cards", "Rank"}}
	for _, h := range dealt {
		name := util.RandomHandName(generator)
		table = append(table, []string{name, h.String(), describe(*h)})

		logger.WithFields(logrus.Fields{
			"hand":  name,
			"cards": deck.CardsToString(*h),
		}).Info("hand dealt")
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		logger.WithError(err).Fatal("could not render table")
	}

	logger.WithField("remaining", d.CardsLeft()).Info("deal complete")
}

// describe ranks a hand for display. Hands holding a joker have no
// poker rank.
func describe(h deck.Hand) string {
	rank, err := poker.Rank(h)
	if err != nil {
		return "unranked: " + err.Error()
	}

	return rank.String()
}

func newGenerator(seed int64) rng.Generator {
	if seed > 0 {
		return rng.NewSeeded(seed)
	}

	return rng.Crypto{}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if config.Instance().Log.JSON || strings.EqualFold(util.Getenv("LOG_FORMAT", ""), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
