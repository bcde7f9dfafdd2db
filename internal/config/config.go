package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl         string
	Port          string
	JWTSecret     string
	ClassifierURL string
}

const (
	// Fallback listing images, same stock photos the web client uses.
	DefaultProductImage  = "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?auto=format&fit=crop&q=80&w=500"
	DefaultResourceImage = "https://images.unsplash.com/photo-1601084881623-cdf9a8ea242c?auto=format&fit=crop&q=80&w=500"
)

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using environment defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	classifierURL := os.Getenv("CLASSIFIER_URL")
	if classifierURL == "" {
		classifierURL = "http://localhost:8000"
	}

	return Config{
		DBUrl:         os.Getenv("DB_URL"),
		Port:          port,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ClassifierURL: classifierURL,
	}
}
