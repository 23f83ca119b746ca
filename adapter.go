package neomodel

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dan-poling/neomodel/store"
	"github.com/dan-poling/neomodel/store/neo"
)

// EnvURL is the environment variable FromEnv and DefaultDB read the
// store URL from.
const EnvURL = "NEO4J_URL"

// DB owns the store client and the per-process category anchor cache.
// Unlike Registry, DB is safe for concurrent use.
type DB struct {
	client store.Client

	mu         sync.Mutex
	categories map[string]store.Node
	group      singleflight.Group
}

// Open returns a DB over an existing store client. The caller keeps
// ownership of nothing: Close closes the client.
func Open(client store.Client) *DB {
	return &DB{client: client, categories: make(map[string]store.Node)}
}

// FromEnv connects to the store at the URL named by the NEO4J_URL
// environment variable.
func FromEnv(ctx context.Context) (*DB, error) {
	url := os.Getenv(EnvURL)
	if url == "" {
		return nil, fmt.Errorf("neomodel: environment variable %s not set", EnvURL)
	}
	client, err := neo.Open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("neomodel: connect to %s: %w", url, err)
	}
	return Open(client), nil
}

var (
	defaultDB     *DB
	defaultDBErr  error
	defaultDBOnce sync.Once
)

// DefaultDB returns the process-wide DB, connecting on first use via
// FromEnv. A failed first connection is sticky: every subsequent call
// returns the same error until the process restarts.
func DefaultDB(ctx context.Context) (*DB, error) {
	defaultDBOnce.Do(func() {
		defaultDB, defaultDBErr = FromEnv(ctx)
	})
	return defaultDB, defaultDBErr
}

// Client returns the underlying store client.
func (db *DB) Client() store.Client { return db.client }

// Close closes the underlying store client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Close(ctx)
}

// Category returns the anchor node for a type name, creating it in the
// store on first use. Anchors are cached for the lifetime of the DB;
// concurrent first lookups of the same name are collapsed into one
// store round-trip.
func (db *DB) Category(ctx context.Context, name string) (store.Node, error) {
	db.mu.Lock()
	if n, ok := db.categories[name]; ok {
		db.mu.Unlock()
		return n, nil
	}
	db.mu.Unlock()

	v, err, _ := db.group.Do(name, func() (any, error) {
		n, err := db.client.GetOrCreateNode(ctx, "Category", "category", name)
		if err != nil {
			return store.Node{}, err
		}
		db.mu.Lock()
		db.categories[name] = n
		db.mu.Unlock()
		return n, nil
	})
	if err != nil {
		return store.Node{}, fmt.Errorf("neomodel: category %q: %w", name, err)
	}
	return v.(store.Node), nil
}
