package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"global-translator/internal/mockserver"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("GT_MOCK_ADDR", ":8080"), "listen address")
	uploadDir := flag.String("upload-dir", envOr("GT_MOCK_UPLOAD_DIR", "uploads"), "directory for uploaded files")
	step := flag.Duration("step", 2*time.Second, "delay between simulated progress steps")
	flag.Parse()

	server, err := mockserver.New(mockserver.Options{
		UploadDir: *uploadDir,
		StepEvery: *step,
	})
	if err != nil {
		log.Fatalf("mock server: %v", err)
	}

	log.Printf("mock dubbing service listening on %s (uploads in %s)", *addr, *uploadDir)
	if err := http.ListenAndServe(*addr, server.Router()); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

// envOr returns the environment value or a fallback.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
