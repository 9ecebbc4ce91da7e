package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/vy-hr/portal-go/internal/config"
	"github.com/vy-hr/portal-go/internal/devserver"
	"github.com/vy-hr/portal-go/internal/pkg/jwt"
	"github.com/vy-hr/portal-go/internal/pkg/storage"
)

func main() {
	cfg, err := config.LoadDevServer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	port := pflag.Int("port", cfg.Port, "listen port")
	pflag.Parse()

	photos, err := storage.NewLocalStorage(cfg.StorageBasePath, cfg.StorageBaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing storage:", err)
		os.Exit(1)
	}

	store := devserver.NewStore()
	if err := store.Seed(); err != nil {
		fmt.Fprintln(os.Stderr, "Error seeding store:", err)
		os.Exit(1)
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.AccessExpiration)
	handler := devserver.NewHandler(store, jwtService, photos)
	router := devserver.NewRouter(handler, jwtService, cfg.Env, photos.Dir())

	addr := fmt.Sprintf(":%d", *port)
	slog.Info("dev server listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}
