package main

import (
	"log"
	"net/http"
	"os"

	"wikigate/api"
	"wikigate/wikipedia"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	wiki := wikipedia.NewClientFromEnv()
	r := api.NewRouter(wiki)

	log.Printf("Starting gateway on %s (wikipedia language: %s)", addr, wiki.Lang())
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  GET  /api/health")
	log.Println("  GET  /search/{query}")
	log.Println("  GET  /article/{title}/summary")
	log.Println("  GET  /article/{title}/content")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
