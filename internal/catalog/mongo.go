// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalog reads games from a MongoDB collection.
type MongoCatalog struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoCatalog connects to uri and reads database.collection.
func NewMongoCatalog(ctx context.Context, uri, database, collection string) (*MongoCatalog, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoCatalog{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Categories returns the distinct category values, sorted.
func (c *MongoCatalog) Categories(ctx context.Context) ([]string, error) {
	values, err := c.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo distinct categories: %w", err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && ValidateCategory(s) == nil {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// List returns the games of one category ordered by name.
func (c *MongoCatalog) List(ctx context.Context, category string) ([]Game, error) {
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	cursor, err := c.collection.Find(ctx, bson.M{"category": category}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo find category %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	games := []Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("mongo decode category %s: %w", category, err)
	}
	for i := range games {
		games[i] = games[i].normalize(category)
	}
	return games, nil
}

// Get returns the game with the given id.
func (c *MongoCatalog) Get(ctx context.Context, id string) (Game, error) {
	var g Game
	err := c.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Game{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if err != nil {
		return Game{}, fmt.Errorf("mongo find game %s: %w", id, err)
	}
	return g.normalize(g.Category), nil
}

// Close disconnects the client.
func (c *MongoCatalog) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
