package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndanilin/homepage/internal/articles"
	"github.com/ndanilin/homepage/internal/background"
	"github.com/ndanilin/homepage/internal/db"
	"github.com/ndanilin/homepage/internal/visits"
	"github.com/ndanilin/homepage/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long: `Starts the HTTP server: article pages, the background image API and
websocket feed, visit counts, and static assets.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Articles: builtin posts plus anything in the content dir.
	extra, err := articles.LoadDir(cfg.ContentDir, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("loading content dir: %w", err)
	}
	registry, err := articles.NewRegistry(cfg.DefaultArticle, extra...)
	if err != nil {
		return fmt.Errorf("building article registry: %w", err)
	}

	// Visit log.
	database, err := db.Open(filepath.Join(cfg.DataDir, "homepage.db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	visitStore := visits.NewStore(database)

	// Background state, change feed, preload, rotation.
	store := background.NewStore(cfg.AssetBase, cfg.Backgrounds)
	hub := background.NewHub(store)

	background.NewPreloader(store).Preload(ctx)

	if cfg.RotateInterval > 0 && len(cfg.Backgrounds) > 1 {
		rot := background.NewRotator(store, time.Duration(cfg.RotateInterval)*time.Second)
		go rot.Run(ctx)
	}

	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	srv := web.New(web.Config{
		Port:      cfg.Port,
		SiteTitle: cfg.Title,
		AssetsDir: cfg.AssetsDir,
		AssetBase: cfg.AssetBase,
		AllowAll:  allowAll,
	}, registry, store, hub, visitStore)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
