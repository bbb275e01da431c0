package main

import (
	"context"
	"log"
	"os"

	"srinu_foods_client/internal/config"
	"srinu_foods_client/internal/stub"
)

func main() {
	config.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
		log.Println("⚠️  JWT_SECRET not set — using the development default")
	}

	var carts stub.CartStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store := stub.NewRedisCartStore(addr)
		if err := store.Ping(context.Background()); err != nil {
			log.Fatalf("❌ Could not reach Redis at %s: %v", addr, err)
		}
		log.Println("✅ Redis cart store connected:", addr)
		carts = store
	} else {
		log.Println("⚠️  REDIS_ADDR not set — carts held in memory")
	}

	server := stub.New(secret, carts)
	server.Seed()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Srinu Foods stub API listening on port", port)
	if err := server.Router().Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
