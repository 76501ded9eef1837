package main

import (
	"log"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
)

// loadSite reads the site file named by the flag or the environment.
// Bad dates and thresholds are logged and degrade rather than fail.
func loadSite(cfg config.Server) (config.Site, countdown.Target, []config.Profile, error) {
	path := cfg.SiteFile
	if siteFile != "" {
		path = siteFile
	}
	site, err := config.LoadSite(path)
	if err != nil {
		return site, countdown.Target{}, nil, err
	}

	if _, err := site.Location(); err != nil {
		log.Printf("time zone unknown, using local zone=%q err=%v", site.TimeZone, err)
	}
	target, err := site.Target()
	if err != nil {
		log.Printf("countdown target unusable date=%q err=%v", site.Date, err)
	}

	profiles, err := site.Profiles()
	if err != nil {
		log.Printf("observer config skipped err=%v", err)
	}
	for _, p := range profiles {
		if !p.Options.Valid() {
			log.Printf("observer threshold out of range profile=%s threshold=%v", p.Name, p.Options.Threshold)
		}
	}
	return site, target, profiles, nil
}
