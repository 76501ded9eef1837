package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/viewmodel"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
	"github.com/nguyentuan-2001/wedding/views/components"
)

var unitLabels = map[countdown.Unit]string{
	countdown.UnitDays:    "Ngày",
	countdown.UnitHours:   "Giờ",
	countdown.UnitMinutes: "Phút",
	countdown.UnitSeconds: "Giây",
}

type CountdownHandler struct {
	site config.Site
	feed *countdown.Feed
}

func NewCountdownHandler(site config.Site, feed *countdown.Feed) *CountdownHandler {
	return &CountdownHandler{site: site, feed: feed}
}

func (h *CountdownHandler) RegisterRoutes(r chi.Router) {
	r.Get("/countdown", h.fragment)
	r.Get("/countdown.json", h.state)
}

func (h *CountdownHandler) fragment(w http.ResponseWriter, r *http.Request) {
	render(w, r, components.Countdown(buildCountdownFragment(h.site, h.feed.Latest(), nil)))
}

type countdownPayload struct {
	countdown.State
	Target string `json:"target"`
}

func (h *CountdownHandler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, countdownPayload{
		State:  h.feed.Latest(),
		Target: h.feed.Engine().Target().String(),
	})
}

func buildCountdownFragment(site config.Site, state countdown.State, sess *visitor.Session) viewmodel.CountdownFragment {
	data := viewmodel.CountdownFragment{
		Arrived:        state.Arrived,
		ArrivedHeading: site.Arrived.Heading,
		ArrivedMessage: site.Arrived.Message,
	}
	if state.Arrived {
		return data
	}
	pulses := make(map[countdown.Unit]bool)
	for _, u := range state.Pulses() {
		pulses[u] = true
	}
	for _, u := range countdownUnits {
		id := countdownItemID(u)
		data.Units = append(data.Units, viewmodel.CountdownUnit{
			ID:    id,
			Name:  string(u),
			Label: unitLabels[u],
			Value: state.Padded(u),
			Pulse: pulses[u],
			Class: classAttr(sess, id, "countdown-item"),
		})
	}
	return data
}
