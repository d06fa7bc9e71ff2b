package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/matryer/is"

	"github.com/domino14/srs_server/config"
	"github.com/domino14/srs_server/internal/stores/sqlitestore"
)

var today = civil.Date{Year: 2024, Month: 9, Day: 22}

type FakeNower struct{ fakenow time.Time }

func (f FakeNower) Now() time.Time {
	return f.fakenow
}

func TestParseCommand(t *testing.T) {
	is := is.New(t)

	cmd, err := parseCommand([]string{"add", "-user-id", "3", "A", "B"}, today)
	is.NoErr(err)
	is.Equal(cmd.name, "add")
	is.Equal(cmd.userID, int64(3))
	is.Equal(cmd.cards, []string{"A", "B"})
	is.Equal(cmd.asOf, today)

	cmd, err = parseCommand([]string{"streak", "-user-id", "3", "-as-of", "2024-01-02"}, today)
	is.NoErr(err)
	is.Equal(cmd.asOf, civil.Date{Year: 2024, Month: 1, Day: 2})

	_, err = parseCommand(nil, today)
	is.True(err != nil)
	_, err = parseCommand([]string{"queue"}, today)
	is.True(err != nil)
	_, err = parseCommand([]string{"streak", "-user-id", "3", "-as-of", "yesterday"}, today)
	is.True(err != nil)
	_, err = parseCommand([]string{"migrate"}, today)
	is.NoErr(err)
}

func TestRun(t *testing.T) {
	is := is.New(t)
	store, err := sqlitestore.Open(":memory:")
	is.NoErr(err)
	defer store.Close()
	cfg := &config.Config{Timezone: "UTC", MaxCardsAdd: 10}
	ctx := context.Background()
	nower := FakeNower{fakenow: time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC)}

	exec := func(args ...string) string {
		cmd, err := parseCommand(args, today)
		is.NoErr(err)
		var buf bytes.Buffer
		is.NoErr(run(ctx, &buf, cfg, store, nower, cmd))
		return buf.String()
	}

	out := exec("add", "-user-id", "3", "A", "B", "C")
	is.True(strings.HasPrefix(out, "added 3 from position 0"))
	exec("top", "-user-id", "3", "C")
	out = exec("queue", "-user-id", "3")
	is.Equal(out, "    0  C\n    1  A\n    2  B\n3 new, 0 due on 2024-09-22\n")

	out = exec("session", "-user-id", "3")
	is.Equal(out, "3 cards for 2024-09-22\nC\nA\nB\n")

	out = exec("streak", "-user-id", "3")
	is.Equal(out, "streak on 2024-09-22: 0 days\n")

	out = exec("heatmap", "-user-id", "3", "-days", "2")
	is.Equal(out, "2024-09-21    0 \n2024-09-22    0 \n")

	// C is rated twice; the second rating replaces the first
	out = exec("review", "-user-id", "3", "C=good", "A=again", "C=easy")
	is.Equal(out, "C good: due 2024-09-23, interval 1\n"+
		"A again: due 2024-09-23, interval 1\n"+
		"C easy: due 2024-09-26, interval 4\n"+
		"rated 2 of 3 cards for 2024-09-22\n")
	out = exec("queue", "-user-id", "3", "-as-of", "2024-09-23")
	is.Equal(out, "    0  B\n1 new, 1 due on 2024-09-23\n")
	out = exec("streak", "-user-id", "3")
	is.Equal(out, "streak on 2024-09-22: 1 days\n")

	for _, args := range [][]string{
		{"bogus", "-user-id", "3"},
		{"review", "-user-id", "3"},
		{"review", "-user-id", "3", "B"},
		{"review", "-user-id", "3", "B=meh"},
		{"review", "-user-id", "3", "Z=good"},
	} {
		cmd, err := parseCommand(args, today)
		is.NoErr(err)
		is.True(run(ctx, &bytes.Buffer{}, cfg, store, nower, cmd) != nil)
	}
}
