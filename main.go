package main

import (
	"log"

	"recipe-api/cache"
	"recipe-api/confs"
	"recipe-api/db"
	"recipe-api/server"
)

func main() {
	// load config
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// optional redis-backed token cache
	tokenCache := cache.New(cfg.RedisAddr)
	if tokenCache.Enabled() {
		log.Println("Token cache enabled (redis)")
	} else {
		log.Println("Token cache disabled, resolving tokens against the DB")
	}

	// run server
	srv := server.NewServer(cfg, database, tokenCache)
	srv.Start()
}
