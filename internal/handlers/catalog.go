package handlers

import (
	"strconv"
	"strings"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/countdown"
	"github.com/nguyentuan-2001/wedding/internal/visitor"
)

var countdownUnits = []countdown.Unit{
	countdown.UnitDays,
	countdown.UnitHours,
	countdown.UnitMinutes,
	countdown.UnitSeconds,
}

var sectionHeadings = []struct {
	key  string
	text string
}{
	{"countdown", "Đếm ngược"},
	{"story", "Chuyện tình yêu"},
	{"info", "Thông tin lễ cưới"},
	{"gallery", "Album ảnh"},
}

func countdownItemID(u countdown.Unit) string { return "countdown-" + string(u) }
func headingID(key string) string             { return "heading-" + key }
func storyID(i int) string                    { return "story-" + strconv.Itoa(i) }
func storyContentID(i int) string             { return "story-content-" + strconv.Itoa(i) }
func infoID(i int) string                     { return "info-" + strconv.Itoa(i) }
func photoID(i int) string                    { return "photo-" + strconv.Itoa(i) }

// PageElements lists every element the page exposes to the reveal triggers.
func PageElements(site config.Site) []visitor.Element {
	var out []visitor.Element
	for _, h := range sectionHeadings {
		out = append(out, visitor.Element{ID: headingID(h.key), Classes: []string{"section-title", "slide-in"}})
	}
	for _, u := range countdownUnits {
		out = append(out, visitor.Element{ID: countdownItemID(u), Classes: []string{"countdown-item"}})
	}
	for i := range site.Story {
		out = append(out,
			visitor.Element{ID: storyID(i), Classes: []string{"story-item"}},
			visitor.Element{ID: storyContentID(i), Classes: []string{"story-content"}},
		)
	}
	for i := range site.Info {
		out = append(out, visitor.Element{ID: infoID(i), Classes: []string{"info-card"}})
	}
	for i := range site.Gallery {
		out = append(out, visitor.Element{ID: photoID(i), Classes: []string{"photo-item"}})
	}
	return out
}

// classAttr joins base classes with whatever the session already earned.
func classAttr(sess *visitor.Session, id string, base ...string) string {
	classes := base
	if sess != nil {
		classes = append(append([]string(nil), base...), sess.ActiveClasses(id)...)
	}
	return strings.Join(classes, " ")
}
