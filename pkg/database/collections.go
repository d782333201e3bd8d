package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createMemeIndexes()
	createUserIndexes()
}

func createMemeIndexes() {
	// Meme Templates
	memeTemplatesCollection := GetCollection("meme_templates")
	memeTemplatesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := memeTemplatesCollection.Indexes().CreateMany(context.Background(), memeTemplatesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Meme Details
	memeDetailsCollection := GetCollection("meme_details")
	memeDetailsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "templateid", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "creationdatetime", Value: -1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = memeDetailsCollection.Indexes().CreateMany(context.Background(), memeDetailsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Images
	imagesCollection := GetCollection("images")
	imagesIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "link", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	opts = options.CreateIndexes()
	_, err = imagesCollection.Indexes().CreateMany(context.Background(), imagesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createUserIndexes() {
	usersCollection := GetCollection("users")
	usersIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	opts := options.CreateIndexes()
	_, err := usersCollection.Indexes().CreateMany(context.Background(), usersIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
