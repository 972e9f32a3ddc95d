package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cardguess/internal/httpserver"
	"cardguess/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cmd := "play"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "play":
		runPlay()
	case "serve":
		runServe()
	case "simulate":
		runSimulate(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [play|serve|simulate]\n", os.Args[0])
		os.Exit(2)
	}
}

func runServe() {
	mem := store.NewMemoryStore()
	srv := httpserver.New(mem)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting cardguess server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
