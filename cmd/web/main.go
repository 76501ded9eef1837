package main

import (
	"context"
	"embed"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

//go:embed static/*
var embeddedStatic embed.FS

var siteFile string

var rootCmd = &cobra.Command{
	Use:   "wedding",
	Short: "Wedding announcement site",
	Long:  `Serve the wedding page with its live countdown and scroll reveals.`,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&siteFile, "site", "s", "", "path to the site YAML file (overrides WEDDING_SITE_CONFIG)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("error: %v", err)
		stop()
		os.Exit(1)
	}
}
