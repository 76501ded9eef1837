package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
	"github.com/nguyentuan-2001/wedding/views/components"
)

const keepAliveInterval = 25 * time.Second

type StreamHandler struct {
	site     config.Site
	feed     *countdown.Feed
	sessions *visitor.Store
}

func NewStreamHandler(site config.Site, feed *countdown.Feed, sessions *visitor.Store) *StreamHandler {
	return &StreamHandler{site: site, feed: feed, sessions: sessions}
}

func (h *StreamHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stream", h.stream)
}

func (h *StreamHandler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sess := openSession(w, r, h.sessions)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticks := h.feed.Subscribe()
	defer h.feed.Unsubscribe(ticks)

	var activations chan visitor.Activation
	if hub := h.sessions.Broadcaster(sess.ID); hub != nil {
		activations = hub.Subscribe()
		defer hub.Unsubscribe(activations)
	}

	sendCountdown := func(state countdown.State) {
		html := renderToString(r, components.Countdown(buildCountdownFragment(h.site, state, sess)))
		writeSSE(w, "countdown", html)
		flusher.Flush()
	}

	sendCountdown(h.feed.Latest())

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case state, ok := <-ticks:
			if !ok {
				return
			}
			sess.Touch(time.Now())
			sendCountdown(state)
		case a, ok := <-activations:
			if !ok {
				// Session was swept; keep serving ticks.
				activations = nil
				continue
			}
			payload, _ := json.Marshal(a)
			writeSSE(w, "reveal", string(payload))
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}
