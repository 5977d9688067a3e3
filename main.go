package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Set properties of the predefined Logger: a program prefix and no
	// timestamp, since gin and the request middleware add their own.
	log.SetPrefix("lg/fitcalc-go-api: ")
	log.SetFlags(0)

	cfg := loadConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h := newHandler(cfg)

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	// The browser front end is served from another origin.
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	addr := ":" + cfg.Port
	log.Printf("Starting gin app on %s...", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
