package sqlitestore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores/storetest"
)

func TestStoreBehaviour(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	storetest.Run(t, s, 100)
}

func TestReopenKeepsData(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "srs.db")
	ctx := context.Background()

	s, err := Open(path)
	is.NoErr(err)
	ok, err := s.InsertCard(ctx, srs.NewCardRecord(1, "A", 0))
	is.NoErr(err)
	is.True(ok)
	is.NoErr(s.Close())

	// migrations are a no-op the second time
	s, err = Open(path)
	is.NoErr(err)
	defer s.Close()
	rec, err := s.GetCard(ctx, 1, "A")
	is.NoErr(err)
	is.Equal(*rec.Queue, 0)
}

func TestLargeCardLists(t *testing.T) {
	is := is.New(t)
	s, err := Open(":memory:")
	is.NoErr(err)
	defer s.Close()
	ctx := context.Background()

	ids := make([]string, 2*MaxSQLChunkSize+7)
	for i := range ids {
		ids[i] = fmt.Sprintf("C%05d", i)
		ok, err := s.InsertCard(ctx, srs.NewCardRecord(1, ids[i], i))
		is.NoErr(err)
		is.True(ok)
	}
	recs, err := s.GetCards(ctx, 1, ids)
	is.NoErr(err)
	is.Equal(len(recs), len(ids))

	deleted, err := s.DeleteCards(ctx, 1, ids[5:])
	is.NoErr(err)
	is.Equal(len(deleted), len(ids)-5)
	pos, ok, err := s.MaxQueuePosition(ctx, 1)
	is.NoErr(err)
	is.True(ok)
	is.Equal(pos, 4)
}
