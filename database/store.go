package database

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the document-store handle shared by all core operations. It is
// connected once at startup and injected into the transport layer; the
// core holds no other state between requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// Connect establishes the MongoDB session, verifies it with a ping and
// ensures the text index used by product search.
func Connect(ctx context.Context, uri, dbName string, log zerolog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, wrapErr("failed to connect to MongoDB", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, wrapErr("failed to ping MongoDB", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(dbName),
		log:    log,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("database", dbName).Msg("connected to MongoDB")
	return s, nil
}

// ensureIndexes creates the text index on the product name field backing
// the preferred search tier. Creation is idempotent.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.products().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	})
	if err != nil {
		return wrapErr("failed to create product text index", err)
	}
	return nil
}

// Disconnect closes the MongoDB session.
func (s *Store) Disconnect(ctx context.Context) error {
	s.log.Info().Msg("closing MongoDB connection")
	return s.client.Disconnect(ctx)
}

func (s *Store) users() *mongo.Collection      { return s.db.Collection("users") }
func (s *Store) categories() *mongo.Collection { return s.db.Collection("categories") }
func (s *Store) products() *mongo.Collection   { return s.db.Collection("products") }
func (s *Store) bundles() *mongo.Collection    { return s.db.Collection("bundles") }
func (s *Store) orders() *mongo.Collection     { return s.db.Collection("orders") }
