package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/quimera-ai/quimera/pkg/api"
	"github.com/quimera-ai/quimera/pkg/config"
	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/media"
	"github.com/quimera-ai/quimera/pkg/portal"
	"github.com/quimera-ai/quimera/pkg/storage"
	"github.com/urfave/cli/v3"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the editing API and public site server",
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c.String("config"))
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	// Config changes restart the listener with the new settings. SIGHUP
	// forces the same restart path.
	for {
		reload, err := runServer(ctx, configPath, sigCh)
		if err != nil {
			return err
		}
		if !reload {
			return nil
		}
		log.Println("Restarting server with new configuration...")
	}
}

// runServer runs one server lifetime. It returns reload=true when the server
// should be rebuilt from a fresh config read.
func runServer(ctx context.Context, configPath string, sigCh <-chan os.Signal) (bool, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return false, fmt.Errorf("loading config: %w", err)
	}

	registry := core.GetGlobalRegistry()
	manager := storage.NewManager(cfg.StorageDir, registry)
	defer closeManager(manager)

	var generator media.Generator
	if cfg.Images != nil {
		generator = media.NewHTTPGenerator(cfg.Images.Endpoint, cfg.Images.APIKey)
	}
	library := media.NewLibrary(cfg.MediaDir, "/media", generator)

	var clientPortal *portal.Portal
	if cfg.Portal != nil {
		clientPortal = portal.New(portal.Config{
			ClientID:     cfg.Portal.ClientID,
			ClientSecret: cfg.Portal.ClientSecret,
			AuthURL:      cfg.Portal.AuthURL,
			TokenURL:     cfg.Portal.TokenURL,
			UserInfoURL:  cfg.Portal.UserInfoURL,
			RedirectURL:  cfg.Portal.RedirectURL,
			Scopes:       cfg.Portal.Scopes,
		})
	}

	apiServer := api.NewServer(registry, manager, api.Options{
		Media:  library,
		Portal: clientPortal,
	})

	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.CorsMiddleware(cfg.Server.AllowedOrigins, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Warning: failed to create config file watcher: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Printf("Warning: failed to close config file watcher: %v", err)
			}
		}()
		if err := watcher.Add(configPath); err != nil {
			log.Printf("Warning: failed to watch config file %s: %v", configPath, err)
		} else {
			log.Printf("Watching config file for changes: %s", configPath)
		}
	}

	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		select {
		case err := <-serverErr:
			return false, fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			return false, shutdown()

		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				log.Println("Received SIGHUP, reloading configuration...")
				return true, shutdown()
			default:
				fmt.Println("\nShutting down...")
				return false, shutdown()
			}

		case event, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			// Editors often replace the file rather than write in place.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				time.Sleep(200 * time.Millisecond)
				if _, err := os.Stat(configPath); os.IsNotExist(err) {
					log.Println("Config file was removed and not replaced, skipping reload")
					continue
				}
				log.Printf("Config file changed: %s, reloading configuration...", event.Name)
				return true, shutdown()
			}

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			log.Printf("Config file watcher error: %v", err)
		}
	}
}
