package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentuan-2001/wedding/internal/reveal"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
)

const maxRevealBody = 64 << 10

type RevealHandler struct {
	sessions *visitor.Store
}

func NewRevealHandler(sessions *visitor.Store) *RevealHandler {
	return &RevealHandler{sessions: sessions}
}

func (h *RevealHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reveal", h.report)
}

// revealRequest carries either raw geometry (viewport + elements) or
// precomputed ratios (entries), or both. Removed and Added are applied
// before either, in that order.
type revealRequest struct {
	Viewport reveal.Rect     `json:"viewport"`
	Elements []reveal.Report `json:"elements"`
	Entries  []reveal.Entry  `json:"entries"`
	Removed  []string        `json:"removed"`
	Added    []string        `json:"added"`
}

type revealResponse struct {
	Activated []visitor.Activation `json:"activated"`
}

func (h *RevealHandler) report(w http.ResponseWriter, r *http.Request) {
	var req revealRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRevealBody))
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid report", http.StatusBadRequest)
		return
	}

	sess := openSession(w, r, h.sessions)
	now := time.Now()
	for _, id := range req.Removed {
		sess.Forget(id)
	}
	for _, id := range req.Added {
		sess.Watch(id)
	}
	activated := make([]visitor.Activation, 0)
	if len(req.Elements) > 0 {
		activated = append(activated, sess.Scan(req.Viewport, req.Elements, now)...)
	}
	if len(req.Entries) > 0 {
		activated = append(activated, sess.Notify(req.Entries, now)...)
	}
	if len(activated) > 0 {
		log.Printf("reveal session=%s activated=%d", sess.ID, len(activated))
	}
	writeJSON(w, revealResponse{Activated: activated})
}
