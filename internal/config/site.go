package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/reveal"
)

// Site is the page content plus the countdown and reveal configuration.
type Site struct {
	Title         string     `yaml:"title"`
	Bride         string     `yaml:"bride"`
	Groom         string     `yaml:"groom"`
	Tagline       string     `yaml:"tagline"`
	Date          string     `yaml:"date"`
	TimeZone      string     `yaml:"time_zone"`
	ParallaxSpeed float64    `yaml:"parallax_speed"`
	Arrived       Banner     `yaml:"arrived"`
	Story         []Story    `yaml:"story"`
	Info          []InfoCard `yaml:"info"`
	Gallery       []Photo    `yaml:"gallery"`
	Observers     []Observer `yaml:"observers"`
}

// Banner replaces the countdown once the date has arrived.
type Banner struct {
	Heading string `yaml:"heading"`
	Message string `yaml:"message"`
}

// Story is one entry of the couple's timeline.
type Story struct {
	When  string `yaml:"when"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// InfoCard describes a ceremony or reception venue.
type InfoCard struct {
	Icon  string   `yaml:"icon"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

// Photo is a gallery image.
type Photo struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Observer is one visibility treatment: which element classes it watches,
// the threshold and margin it uses and the class it adds on activation.
type Observer struct {
	Name        string   `yaml:"name"`
	Threshold   float64  `yaml:"threshold"`
	RootMargin  string   `yaml:"root_margin"`
	Classes     []string `yaml:"classes"`
	ActiveClass string   `yaml:"active_class"`
}

// Profile is an Observer with its options resolved.
type Profile struct {
	Name        string
	Options     reveal.Options
	Classes     []string
	ActiveClass string
}

// Watches reports whether an element carrying classes belongs to the profile.
func (p Profile) Watches(classes []string) bool {
	for _, c := range classes {
		for _, w := range p.Classes {
			if c == w {
				return true
			}
		}
	}
	return false
}

// DefaultSite returns the built-in page.
func DefaultSite() Site {
	return Site{
		Title:         "Thiệp cưới",
		Bride:         "Thu Trang",
		Groom:         "Minh Tuấn",
		Tagline:       "Trân trọng kính mời",
		Date:          "2025-12-28T09:00:00",
		TimeZone:      "Asia/Ho_Chi_Minh",
		ParallaxSpeed: 0.5,
		Arrived: Banner{
			Heading: "🎉 Hôm nay là ngày cưới! 🎉",
			Message: "Chúc mừng cô dâu chú rể!",
		},
		Observers: []Observer{
			{
				Name:        "reveal",
				Threshold:   0.1,
				RootMargin:  "0px 0px -50px 0px",
				Classes:     []string{"slide-in", "story-item", "info-card", "countdown-item"},
				ActiveClass: "active",
			},
			{
				Name:        "animate",
				Threshold:   0.2,
				RootMargin:  "0px 0px -50px 0px",
				Classes:     []string{"countdown-item", "photo-item", "story-content", "info-card"},
				ActiveClass: "animate-in",
			},
		},
	}
}

// LoadSite reads path over the defaults. A missing file yields the defaults.
func LoadSite(path string) (Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return site, nil
		}
		return site, fmt.Errorf("read site file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return DefaultSite(), fmt.Errorf("parse site yaml: %w", err)
	}
	return site, nil
}

// Location resolves TimeZone, falling back to time.Local.
func (s Site) Location() (*time.Location, error) {
	if s.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.Local, fmt.Errorf("load time zone %q: %w", s.TimeZone, err)
	}
	return loc, nil
}

// Target parses the wedding date in the site's zone, or in time.Local when
// the zone cannot be loaded (Location reports that). On error the returned
// target is the zero target, which reports arrival immediately.
func (s Site) Target() (countdown.Target, error) {
	loc, _ := s.Location()
	return countdown.ParseTarget(s.Date, loc)
}

// Profiles resolves the observers. Observers whose margin cannot be parsed
// are skipped and reported in the joined error; out-of-range thresholds are
// kept and simply never activate.
func (s Site) Profiles() ([]Profile, error) {
	profiles := make([]Profile, 0, len(s.Observers))
	var errs []error
	for _, o := range s.Observers {
		margin, err := reveal.ParseMargin(o.RootMargin)
		if err != nil {
			errs = append(errs, fmt.Errorf("observer %s: %w", o.Name, err))
			continue
		}
		active := o.ActiveClass
		if active == "" {
			active = "active"
		}
		profiles = append(profiles, Profile{
			Name:        o.Name,
			Options:     reveal.Options{Threshold: o.Threshold, Margin: margin},
			Classes:     o.Classes,
			ActiveClass: active,
		})
	}
	return profiles, errors.Join(errs...)
}
