package pgstore

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/internal/queue"
	"github.com/domino14/srs_server/internal/stores"
	"github.com/domino14/srs_server/internal/stores/storetest"
)

func testDBURI(useDBName bool) string {
	user := os.Getenv("TEST_DBUSER")
	pass := os.Getenv("TEST_DBPASSWORD")
	dbname := os.Getenv("TEST_DBNAME")
	dbhost := os.Getenv("TEST_DBHOST")
	dbport := os.Getenv("TEST_DBPORT")
	sslmode := os.Getenv("TEST_DBSSLMODE")
	if !useDBName {
		dbname = ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, dbhost, dbport, dbname, sslmode)
}

func RecreateTestDB() error {
	ctx := context.Background()
	db, err := pgx.Connect(ctx, testDBURI(false))
	if err != nil {
		return err
	}
	defer db.Close(ctx)
	log.Info().Msg("dropping db")
	_, err = db.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", os.Getenv("TEST_DBNAME")))
	if err != nil {
		return err
	}
	log.Info().Msg("creating db")
	_, err = db.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", os.Getenv("TEST_DBNAME")))
	if err != nil {
		return err
	}
	return Migrate(testDBURI(true))
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("TEST_DBHOST") == "" {
		t.Skip("TEST_DBHOST not set")
	}
	if err := RecreateTestDB(); err != nil {
		t.Fatal(err)
	}
	s, err := Open(context.Background(), testDBURI(true))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreBehaviour(t *testing.T) {
	s := openTestStore(t)
	storetest.Run(t, s, 100)
}

func TestConcurrentQueueWrites(t *testing.T) {
	is := is.New(t)
	s := openTestStore(t)
	m := queue.NewManager(s, 1000)
	ctx := log.Logger.WithContext(context.Background())
	const user = 9

	_, err := m.AddCards(ctx, user, []string{"seed0", "seed1", "seed2"})
	is.NoErr(err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 8 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := m.AddCards(ctx, user, []string{fmt.Sprintf("w%d-a", i), fmt.Sprintf("w%d-b", i)})
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			errs <- m.MoveToTop(ctx, user, []string{fmt.Sprintf("seed%d", i%3)})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		is.NoErr(err)
	}

	recs, err := s.NewCards(ctx, user, 0)
	is.NoErr(err)
	is.Equal(len(recs), 19)
	for i, rec := range recs {
		is.Equal(*rec.Queue, i) // dense
	}
}

// The pool stays private: every caller goes through stores.Store.
func TestStoreExposesOnlyStoreMethods(t *testing.T) {
	is := is.New(t)
	iface := reflect.TypeOf((*stores.Store)(nil)).Elem()
	st := reflect.TypeOf(&Store{})
	for i := 0; i < st.NumMethod(); i++ {
		name := st.Method(i).Name
		_, ok := iface.MethodByName(name)
		if !ok {
			t.Errorf("unexpected exported method %s", name)
		}
	}
	is.Equal(st.NumMethod(), iface.NumMethod())
}
