package config

import (
	"fmt"
	"time"

	"github.com/namsral/flag"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	LogLevel   string
	ListenAddr string

	Store       string
	DBConnURI   string
	SQLitePath  string
	RedisURL    string
	SecretKey   string
	Timezone    string
	MaxCardsAdd int

	// Args holds the positional arguments left after the flags.
	Args []string
}

// Load loads the configs from the given arguments. Every flag can also be
// set through the environment variable of the same name, upper-cased with
// underscores (e.g. DB_CONN_URI).
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("srsserver", flag.ContinueOnError)

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	fs.StringVar(&c.ListenAddr, "listen-addr", ":8280", "address the RPC server listens on")
	fs.StringVar(&c.Store, "store", StorePostgres, "card store backend: postgres or sqlite")
	fs.StringVar(&c.DBConnURI, "db-conn-uri", "", "postgres connection URI")
	fs.StringVar(&c.SQLitePath, "sqlite-path", "srs.db", "path of the sqlite database file")
	fs.StringVar(&c.RedisURL, "redis-url", "", "redis URL for shared review counting; empty keeps it in-process")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC key used to verify JWTs")
	fs.StringVar(&c.Timezone, "timezone", "UTC", "IANA time zone that decides what day it is")
	fs.IntVar(&c.MaxCardsAdd, "max-cards-add", 1000, "maximum cards accepted by one AddCards call")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Args = fs.Args()
	if c.Store != StorePostgres && c.Store != StoreSQLite {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.MaxCardsAdd <= 0 {
		return fmt.Errorf("max-cards-add must be positive, got %d", c.MaxCardsAdd)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
