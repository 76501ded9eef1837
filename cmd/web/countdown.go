package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
)

var follow bool

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Print the time left until the wedding",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		site, target, _, err := loadSite(cfg)
		if err != nil {
			return err
		}
		engine := countdown.NewEngine(target, countdown.WithPeriod(cfg.TickPeriod))
		out := cmd.OutOrStdout()

		if !follow {
			printState(cmd, site, engine.Current())
			_, _ = fmt.Fprintln(out)
			return nil
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		sub := engine.Start(ctx, func(state countdown.State) {
			printState(cmd, site, state)
			if state.Arrived {
				cancel()
			}
		})
		<-sub.Done()
		_, _ = fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countdownCmd)
	countdownCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep printing every tick until the date arrives")
}

func printState(cmd *cobra.Command, site config.Site, state countdown.State) {
	out := cmd.OutOrStdout()
	if state.Arrived {
		_, _ = fmt.Fprintf(out, "\r%s %s", site.Arrived.Heading, site.Arrived.Message)
		return
	}
	_, _ = fmt.Fprintf(out, "\r%s & %s: %s", site.Groom, site.Bride, state)
}
