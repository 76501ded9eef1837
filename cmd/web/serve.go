package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/handlers"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	site, target, profiles, err := loadSite(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	feed := countdown.NewFeed(countdown.NewEngine(target, countdown.WithPeriod(cfg.TickPeriod)))
	feed.Start(ctx)
	defer feed.Stop()

	sessions := visitor.NewStore(profiles, handlers.PageElements(site))
	sessions.StartJanitor(ctx, time.Minute, cfg.SessionTTL)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The stream outlives any request timeout.
	handlers.NewStreamHandler(site, feed, sessions).RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))
		handlers.NewHomeHandler(site, feed, sessions).RegisterRoutes(r)
		handlers.NewCountdownHandler(site, feed).RegisterRoutes(r)
		handlers.NewRevealHandler(sessions).RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s target=%s", cfg.Addr(), target)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Streams only end when their client goes away or the feed stops.
	feed.Stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
