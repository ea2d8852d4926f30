package infra

import (
	"os"

	"github.com/joho/godotenv"
)

// Initialize loads .env and then .env.<ENV> into the process environment and
// returns the files it found. Variables already set are never overwritten.
func Initialize() []string {
	files := []string{".env"}
	if env := os.Getenv("ENV"); env != "" {
		files = append([]string{".env." + env}, files...)
	}

	var loaded []string
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err == nil {
			loaded = append(loaded, file)
		}
	}
	return loaded
}
