package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boogie/cms"
	"boogie/config"
	"boogie/content"
	"boogie/database"
	"boogie/site"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	client := cms.NewClient(cfg.CMSProjectID, cfg.CMSDataset, cfg.CMSAPIVersion, cfg.CMSAPIHost)
	store := content.NewStore(client)

	var contactDB *gorm.DB
	if cfg.ContactStoreDSN != "" {
		contactDB, err = database.Open(cfg.ContactStoreDSN)
		if err != nil {
			log.Fatalf("open contact store: %v", err)
		}
	}

	handler := site.NewHandler(cfg, store, contactDB)
	r := handler.Routes()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Running on http://localhost%s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	if err := database.Close(contactDB); err != nil {
		log.Printf("close contact store: %v", err)
	}
}
