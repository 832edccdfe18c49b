package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/davrd/gatekit/pkg/auth"
	"github.com/davrd/gatekit/pkg/providers"
)

func main() {
	// Initialize Logrus
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found. Proceeding with environment variables.")
	}

	config, err := auth.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load provider configuration: %v", err)
	}

	for _, d := range config.Providers.List() {
		logger.Infof("Configured provider %s (%s)", d.ProviderID(), d.ProviderType())
		if o, ok := providers.AsOAuth(d); ok {
			logger.Debugf("Provider %s authorization endpoint: %s", o.ID, o.AuthorizationURL)
		}
	}

	handler := auth.NewHandler(config, logger)

	corsOptions := cors.Options{
		AllowedOrigins:   splitEnv("AUTH_CORS_ORIGINS", "*"),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}

	server := &http.Server{
		Addr:    envOr("AUTH_LISTEN", ":8080"),
		Handler: cors.New(corsOptions).Handler(handler.Router()),
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("ListenAndServe(): %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown(): %v", err)
	}
}

func envOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	value := envOr(key, defaultValue)
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
