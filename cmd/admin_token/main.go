package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/config"
)

// Mints an admin bearer token for the /admin routes, signed with ADMIN_JWT_SECRET.
func main() {
	subject := flag.String("subject", "ops", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.AdminJWTSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	tokens := auth.NewTokenService([]byte(cfg.AdminJWTSecret))
	token, err := tokens.Generate(*subject, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
