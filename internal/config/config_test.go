package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSite_MissingFileUsesDefaults(t *testing.T) {
	site, err := LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	if site.Date != DefaultSite().Date {
		t.Errorf("Date %q, want default", site.Date)
	}
	if len(site.Observers) != 2 {
		t.Errorf("len(Observers) %d, want 2", len(site.Observers))
	}
}

func TestLoadSite_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
bride: Lan
groom: Nam
date: "2026-05-01T16:30:00"
time_zone: UTC
gallery:
  - src: /static/img/1.jpg
    alt: Beach
observers:
  - name: fade
    threshold: 0.3
    root_margin: "10px"
    classes: [fade]
`)
	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	if site.Bride != "Lan" || site.Groom != "Nam" {
		t.Errorf("names %q/%q", site.Bride, site.Groom)
	}
	if site.Arrived.Heading != DefaultSite().Arrived.Heading {
		t.Error("unset fields should keep defaults")
	}
	if len(site.Gallery) != 1 || site.Gallery[0].Alt != "Beach" {
		t.Errorf("Gallery %+v", site.Gallery)
	}

	target, err := site.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	want := time.Date(2026, 5, 1, 16, 30, 0, 0, time.UTC)
	if !target.At().Equal(want) {
		t.Errorf("target %v, want %v", target.At(), want)
	}

	profiles, err := site.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(profiles) %d, want 1", len(profiles))
	}
	p := profiles[0]
	if p.ActiveClass != "active" {
		t.Errorf("ActiveClass %q, want default active", p.ActiveClass)
	}
	if p.Options.Margin.Left != 10 || p.Options.Threshold != 0.3 {
		t.Errorf("options %+v", p.Options)
	}
	if !p.Watches([]string{"x", "fade"}) || p.Watches([]string{"x"}) {
		t.Error("Watches mismatch")
	}
}

func TestLoadSite_BadYAML(t *testing.T) {
	path := writeFile(t, "date: [unterminated")
	if _, err := LoadSite(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSite_MalformedDateArrivesImmediately(t *testing.T) {
	site := DefaultSite()
	site.Date = "sometime in december"
	target, err := site.Target()
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !target.IsZero() {
		t.Error("malformed date should give the zero target")
	}
}

func TestSite_UnknownZoneKeepsTarget(t *testing.T) {
	site := DefaultSite()
	site.TimeZone = "Mars/Olympus_Mons"

	loc, err := site.Location()
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if loc != time.Local {
		t.Errorf("Location %v, want time.Local", loc)
	}

	target, err := site.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	want := time.Date(2025, 12, 28, 9, 0, 0, 0, time.Local)
	if !target.At().Equal(want) {
		t.Errorf("target %v, want %v", target.At(), want)
	}
}

func TestSite_ProfilesSkipsBadMargin(t *testing.T) {
	site := DefaultSite()
	site.Observers = append(site.Observers, Observer{Name: "broken", Threshold: 0.5, RootMargin: "1em"})
	profiles, err := site.Profiles()
	if err == nil {
		t.Fatal("expected margin error")
	}
	if len(profiles) != 2 {
		t.Errorf("len(profiles) %d, want 2", len(profiles))
	}
	if profiles[0].Options.Margin.Bottom != -50 {
		t.Errorf("reveal margin %+v, want bottom -50", profiles[0].Options.Margin)
	}
}

func TestLoadServer(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WEDDING_TICK_PERIOD", "500ms")
	t.Setenv("WEDDING_SITE_CONFIG", "custom.yaml")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr %q, want :9090", cfg.Addr())
	}
	if cfg.TickPeriod != 500*time.Millisecond {
		t.Errorf("TickPeriod %v, want 500ms", cfg.TickPeriod)
	}
	if cfg.SiteFile != "custom.yaml" {
		t.Errorf("SiteFile %q", cfg.SiteFile)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL %v, want default 2h", cfg.SessionTTL)
	}
}

func TestLoadServer_BadDuration(t *testing.T) {
	t.Setenv("WEDDING_TICK_PERIOD", "soon")
	if _, err := LoadServer(); err == nil {
		t.Fatal("expected env parse error")
	}
}
