package main

import (
	"fmt"
	"log"
	"os"

	"github.com/LSkevi/PieTracker/internal/config"
	"github.com/LSkevi/PieTracker/internal/currency"
	"github.com/LSkevi/PieTracker/internal/identity"
	"github.com/LSkevi/PieTracker/internal/router"
	"github.com/LSkevi/PieTracker/internal/store"
)

func main() {
	configPath := os.Getenv("PT_CONFIG")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("auth.secret must be set (config or PT_AUTH_SECRET)")
	}

	st, err := store.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	resolver := identity.NewResolver(cfg.Auth)
	rates := currency.NewCache(cfg.Currency)

	r := router.Setup(cfg, st, resolver, rates)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
