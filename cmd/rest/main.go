package main

import (
	"context"
	"log"

	"speedpress-addons-be/internal/bootstrap"
	"speedpress-addons-be/internal/config"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/server"
	"speedpress-addons-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Register the shipped addon manifest. Idempotent; a re-deploy never
	// resets the store owner's enabled choices.
	if err := container.CatalogService.UpsertManifest(context.Background(), manifest.Shipped()); err != nil {
		log.Panicf("Unable to register addon manifest: %v", err)
	}

	// 5. Initialize Server (loads enabled addons onto the storefront)
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
