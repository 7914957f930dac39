package main

import (
	"log"
	"net/http"
	"os"

	"taxbook/internal/config"
	"taxbook/internal/routes"
)

func main() {
	cfg := config.New()
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}
	db := initDB(cfg)
	engine := routes.Register(db, cfg)
	srv := &http.Server{Addr: cfg.Addr, Handler: engine}
	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(srv.ListenAndServe())
}
