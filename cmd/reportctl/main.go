package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found; using environment variables")
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
