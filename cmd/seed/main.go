// Command seed imports or destroys the sample data set.
//
//	go run ./cmd/seed -import   # load _data/*.json into the database
//	go run ./cmd/seed -destroy  # wipe all collections
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	mongodb "github.com/devtrail/bootcamp-api/internal/infrastructure/db/mongo"
	"github.com/devtrail/bootcamp-api/internal/pkg/config"
	"github.com/devtrail/bootcamp-api/pkg/logger"
)

var collections = []string{"bootcamps", "courses", "reviews", "users"}

func main() {
	doImport := flag.Bool("import", false, "import sample data")
	doDestroy := flag.Bool("destroy", false, "delete all data")
	dataDir := flag.String("data", "_data", "directory holding the sample JSON files")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *doImport == *doDestroy {
		log.Fatal().Msg("pass exactly one of -import or -destroy")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(ctx)

	if *doDestroy {
		for _, name := range collections {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				log.Fatal().Err(err).Str("collection", name).Msg("destroy failed")
			}
		}
		log.Info().Msg("data destroyed")
		return
	}

	for _, name := range collections {
		path := filepath.Join(*dataDir, name+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			log.Fatal().Err(err).Str("file", path).Msg("read failed")
		}

		var docs []map[string]any
		if err := json.Unmarshal(raw, &docs); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("parse failed")
		}
		if len(docs) == 0 {
			continue
		}

		batch := make([]any, 0, len(docs))
		for _, d := range docs {
			batch = append(batch, d)
		}
		if _, err := db.Collection(name).InsertMany(ctx, batch); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("import failed")
		}
		log.Info().Str("collection", name).Int("count", len(docs)).Msg("imported")
	}
	log.Info().Msg("data imported")
}
