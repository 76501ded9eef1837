package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/viewmodel"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
	"github.com/nguyentuan-2001/wedding/views/pages"
)

const dateLabelLayout = "15:04 · 02.01.2006"

type HomeHandler struct {
	site     config.Site
	feed     *countdown.Feed
	sessions *visitor.Store
}

func NewHomeHandler(site config.Site, feed *countdown.Feed, sessions *visitor.Store) *HomeHandler {
	return &HomeHandler{site: site, feed: feed, sessions: sessions}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	sess := openSession(w, r, h.sessions)
	render(w, r, pages.HomePage(buildHomePage(h.site, h.feed.Engine().Target(), h.feed.Latest(), sess)))
}

func buildHomePage(site config.Site, target countdown.Target, state countdown.State, sess *visitor.Session) viewmodel.HomePage {
	data := viewmodel.HomePage{
		Title:         site.Title,
		Bride:         site.Bride,
		Groom:         site.Groom,
		Tagline:       site.Tagline,
		ParallaxSpeed: site.ParallaxSpeed,
		Headings:      make(map[string]viewmodel.Heading, len(sectionHeadings)),
		Countdown:     buildCountdownFragment(site, state, sess),
	}
	if !target.IsZero() {
		data.DateLabel = target.At().Format(dateLabelLayout)
	}
	for _, sh := range sectionHeadings {
		id := headingID(sh.key)
		data.Headings[sh.key] = viewmodel.Heading{
			ID:    id,
			Text:  sh.text,
			Class: classAttr(sess, id, "section-title", "slide-in"),
		}
	}
	for i, s := range site.Story {
		data.Story = append(data.Story, viewmodel.StoryItem{
			ID:           storyID(i),
			Class:        classAttr(sess, storyID(i), "story-item"),
			ContentID:    storyContentID(i),
			ContentClass: classAttr(sess, storyContentID(i), "story-content"),
			When:         s.When,
			Title:        s.Title,
			Text:         s.Text,
			Image:        s.Image,
		})
	}
	for i, c := range site.Info {
		data.Info = append(data.Info, viewmodel.InfoCard{
			ID:    infoID(i),
			Class: classAttr(sess, infoID(i), "info-card"),
			Icon:  c.Icon,
			Title: c.Title,
			Lines: c.Lines,
		})
	}
	for i, p := range site.Gallery {
		data.Gallery = append(data.Gallery, viewmodel.Photo{
			ID:    photoID(i),
			Class: classAttr(sess, photoID(i), "photo-item"),
			Src:   p.Src,
			Alt:   p.Alt,
		})
	}
	return data
}
