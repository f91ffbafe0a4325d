//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/theme"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve the compiled game from")
	script := flag.String("script", "/henshin-strike.js", "URL of the compiled game script")
	configPath := flag.String("config", "", "Optional tuning override file")
	flag.Parse()

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	themes, err := theme.NewProvider()
	if err != nil {
		log.Fatal(err)
	}

	srv := &Server{Tuning: tuning, Themes: themes, StaticDir: *staticDir, Script: *script}
	handler, err := srv.Routes()
	if err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Henshin Strike server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
