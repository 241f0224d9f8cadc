package main

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Azimiwizard/App-1/configs"
	"github.com/Azimiwizard/App-1/events"
	"github.com/Azimiwizard/App-1/pkg/supabase"
	"github.com/Azimiwizard/App-1/routes"
	"github.com/Azimiwizard/App-1/services"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := configs.SeedRoles(db); err != nil {
		log.Fatalf("seed roles: %v", err)
	}
	if err := configs.SeedDishes(db); err != nil {
		log.Fatalf("seed dishes: %v", err)
	}

	rdb := configs.ConnectRedis(cfg)

	// Auth is delegated to Supabase when configured, local otherwise.
	var provider services.AuthProvider
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		provider = supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseServiceKey)
		log.Println("auth: supabase provider configured")
	} else {
		log.Println("auth: supabase not configured, using local credentials")
	}

	publisher := events.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	if publisher != nil {
		defer publisher.Close()
	}

	app := routes.Setup(cfg, db, rdb, provider, publisher)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		app.Hub.Run()
		return nil
	})
	g.Go(func() error {
		return app.Relay.Run(ctx)
	})
	g.Go(func() error {
		log.Printf("listening on :%s", cfg.Port)
		return http.ListenAndServe(":"+cfg.Port, app.Engine)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
