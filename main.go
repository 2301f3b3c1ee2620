package main

import (
	"embed"
	"log"

	"github.com/joho/godotenv"

	"global-translator/internal/bootstrap"
)

//go:embed frontend/index.html
var appAssets embed.FS

func main() {
	_ = godotenv.Load()

	app, err := bootstrap.NewWithAssets(appAssets)
	if err != nil {
		log.Fatalf("bootstrap app: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}
