// srsadmin is an operator tool that works on the card store directly.
//
//	srsadmin [config flags] migrate
//	srsadmin [config flags] queue -user-id 3
//	srsadmin [config flags] add -user-id 3 CARD1 CARD2 ...
//	srsadmin [config flags] top -user-id 3 CARD1 CARD2 ...
//	srsadmin [config flags] session -user-id 3 [-as-of 2024-09-22]
//	srsadmin [config flags] review -user-id 3 [-as-of 2024-09-22] CARD1=good CARD2=again ...
//	srsadmin [config flags] streak -user-id 3 [-as-of 2024-09-22]
//	srsadmin [config flags] heatmap -user-id 3 [-as-of 2024-09-22] [-days 30]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/config"
	"github.com/domino14/srs_server/internal/activity"
	"github.com/domino14/srs_server/internal/queue"
	"github.com/domino14/srs_server/internal/session"
	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/srsserver"
	"github.com/domino14/srs_server/internal/stores"
)

type command struct {
	name   string
	userID int64
	asOf   civil.Date
	days   int
	cards  []string
}

func parseCommand(args []string, today civil.Date) (*command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("a command is required: migrate, queue, add, top, session, review, streak or heatmap")
	}
	cmd := &command{name: args[0], asOf: today}
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.Int64Var(&cmd.userID, "user-id", 0, "user whose cards to inspect")
	asOf := fs.String("as-of", "", "day to evaluate, YYYY-MM-DD (default today)")
	fs.IntVar(&cmd.days, "days", 30, "heatmap length in days")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	cmd.cards = fs.Args()
	if *asOf != "" {
		d, err := civil.ParseDate(*asOf)
		if err != nil {
			return nil, fmt.Errorf("as-of: %w", err)
		}
		cmd.asOf = d
	}
	if cmd.name != "migrate" && cmd.userID == 0 {
		return nil, fmt.Errorf("%s needs -user-id", cmd.name)
	}
	if cmd.days <= 0 {
		return nil, fmt.Errorf("days must be positive")
	}
	return cmd, nil
}

type cardRating struct {
	cardID string
	rating srs.Rating
}

// parseRatings reads CARD=rating arguments.
func parseRatings(args []string) ([]cardRating, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("review needs at least one CARD=rating")
	}
	out := make([]cardRating, len(args))
	for i, arg := range args {
		card, name, ok := strings.Cut(arg, "=")
		if !ok || card == "" {
			return nil, fmt.Errorf("%q is not CARD=rating", arg)
		}
		r, err := srs.ParseRating(name)
		if err != nil {
			return nil, err
		}
		out[i] = cardRating{card, r}
	}
	return out, nil
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, store stores.Store, nower srs.Nower, cmd *command) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	mgr := queue.NewManager(store, cfg.MaxCardsAdd)
	tracker := activity.NewTracker(store)

	switch cmd.name {
	case "migrate":
		fmt.Fprintln(w, "store is at the latest schema")

	case "queue":
		ids, err := mgr.NewQueue(ctx, cmd.userID)
		if err != nil {
			return err
		}
		for i, id := range ids {
			fmt.Fprintf(w, "%5d  %s\n", i, id)
		}
		due, err := store.CountDue(ctx, cmd.userID, cmd.asOf)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d new, %d due on %s\n", len(ids), due, cmd.asOf)

	case "add":
		res, err := mgr.AddCards(ctx, cmd.userID, cmd.cards)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "added %d from position %d, skipped %d: %s\n",
			len(res.Added), res.FirstPosition, len(res.Skipped), strings.Join(res.Skipped, " "))

	case "top":
		if err := mgr.MoveToTop(ctx, cmd.userID, cmd.cards); err != nil {
			return err
		}
		fmt.Fprintf(w, "moved %d cards to the front\n", len(cmd.cards))

	case "session":
		b := &session.Builder{Store: store, Scheduler: srs.Scheduler{Location: loc}, Nower: nower}
		ids, err := b.BuildSession(ctx, cmd.userID, cmd.asOf)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d cards for %s\n", len(ids), cmd.asOf)
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}

	case "review":
		ratings, err := parseRatings(cmd.cards)
		if err != nil {
			return err
		}
		b := session.NewBuilder(store, srs.Scheduler{Location: loc}, nil)
		b.Nower = nower
		sess, err := b.Start(ctx, cmd.userID, cmd.asOf)
		if err != nil {
			return err
		}
		for _, cr := range ratings {
			rec, err := sess.Rate(ctx, cr.cardID, cr.rating)
			if err != nil {
				return fmt.Errorf("rate %s: %w", cr.cardID, err)
			}
			fmt.Fprintf(w, "%s %s: due %s, interval %d\n", cr.cardID, cr.rating, rec.Due, rec.IntervalDays)
		}
		rated := 0
		for _, id := range sess.Cards {
			if _, done := sess.Rated(id); done {
				rated++
			}
		}
		fmt.Fprintf(w, "rated %d of %d cards for %s\n", rated, len(sess.Cards), sess.Date)

	case "streak":
		n, err := tracker.CurrentStreak(ctx, cmd.userID, cmd.asOf)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "streak on %s: %d days\n", cmd.asOf, n)

	case "heatmap":
		start := cmd.asOf.AddDays(1 - cmd.days)
		counts, err := tracker.ConsistencyMap(ctx, cmd.userID, start, cmd.asOf)
		if err != nil {
			return err
		}
		for d := start; !d.After(cmd.asOf); d = d.AddDays(1) {
			n := counts[d]
			fmt.Fprintf(w, "%s %4d %s\n", d, n, strings.Repeat("#", min(int(n), 60)))
		}

	default:
		return fmt.Errorf("unknown command %q", cmd.name)
	}
	return nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("bad-timezone")
	}
	cmd, err := parseCommand(cfg.Args, srs.Today(srs.RealNower{}, loc))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := log.Logger.WithContext(context.Background())
	store, err := srsserver.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error-opening-store")
	}
	defer store.Close()

	if err := run(ctx, os.Stdout, cfg, store, srs.RealNower{}, cmd); err != nil {
		store.Close()
		log.Fatal().Err(err).Str("command", cmd.name).Msg("command-failed")
	}
}
