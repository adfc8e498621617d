// Command main is the entry point for the Hoopline backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoopline/internal/config"
	"hoopline/internal/mailer"
	"hoopline/internal/middleware"
	"hoopline/internal/observability"
	"hoopline/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "hoopline-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TraceSampleRate,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Without SMTP credentials the mailer logs deliveries instead of sending,
	// which keeps local development working with no mail server.
	var provider mailer.Provider
	if cfg.SMTPHost != "" {
		provider = mailer.NewSMTPProvider(cfg)
	} else {
		log.Println("SMTP_HOST not set; outgoing email will be logged, not delivered")
		provider = mailer.NewMockProvider(middleware.Logger)
	}
	m := mailer.New(provider, middleware.Logger, cfg.ClientURL)

	srv, err := server.NewServer(cfg, m)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
	}()

	log.Fatal(srv.Start())
}
