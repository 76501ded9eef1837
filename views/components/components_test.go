package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nguyentuan-2001/wedding/internal/viewmodel"
)

func render(t *testing.T, data viewmodel.CountdownFragment) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Countdown(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestCountdown_Units(t *testing.T) {
	html := render(t, viewmodel.CountdownFragment{
		Units: []viewmodel.CountdownUnit{
			{ID: "countdown-days", Name: "days", Label: "Days", Value: "05", Class: "countdown-item active"},
			{ID: "countdown-seconds", Name: "seconds", Label: "Seconds", Value: "00", Pulse: true, Class: "countdown-item"},
		},
	})
	for _, want := range []string{
		`id="countdown-days" class="countdown-item active"`,
		`<span id="days" class="countdown-number">05</span>`,
		`class="countdown-number pulse">00</span>`,
		`<span class="countdown-label">Days</span>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
}

func TestCountdown_ArrivedEscapes(t *testing.T) {
	html := render(t, viewmodel.CountdownFragment{
		Arrived:        true,
		ArrivedHeading: "Today <3",
		ArrivedMessage: "Congrats",
	})
	if !strings.Contains(html, `<h2>Today &lt;3</h2>`) {
		t.Errorf("heading not escaped: %s", html)
	}
	if strings.Contains(html, "countdown-number") {
		t.Error("arrived banner should replace the units")
	}
}
