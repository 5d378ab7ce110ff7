package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present; real environments set vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	Execute()
}
