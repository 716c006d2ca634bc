package main

import (
	"log"
	"os"

	"github.com/Conceptual-Machines/tweetcraft-api/cmd"
	"github.com/joho/godotenv"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := cmd.Execute(releaseVersion); err != nil {
		os.Exit(1)
	}
}
