// Package page renders the "coming soon" landing page. Every visual variant
// draws the same display.Frame; only layout and styling differ.
package page

import (
	"sort"

	g "maragu.dev/gomponents"

	"github.com/mattjoyce/launchpad/internal/display"
)

// DefaultVariant is served when no variant or an unknown one is requested.
const DefaultVariant = "cinematic"

// Content is the copy shown around the countdown.
type Content struct {
	EventName   string
	Tagline     string
	Organizer   string
	RegisterURL string
	// StreamURL is the event stream the client script follows. Empty
	// disables live updates and the page shows the server-rendered frame.
	StreamURL string
}

// Variant is one styled presentation of the page.
type Variant struct {
	Name        string
	Radius      float64
	StrokeWidth float64
	Video       string
	VideoType   string
	Background  string
	css         string
	section     func(v Variant, c Content, f display.Frame) g.Node
}

var variants = map[string]Variant{
	"cinematic": {
		Name:        "cinematic",
		Radius:      44,
		StrokeWidth: 2,
		Video:       "/videos/Color.mp4",
		VideoType:   "video/mp4",
		Background:  "#000000",
		css:         cinematicCSS,
		section:     cinematicSection,
	},
	"gradient": {
		Name:        "gradient",
		Radius:      42,
		StrokeWidth: 1.5,
		Video:       "/videos/Gradient.webm",
		VideoType:   "video/webm",
		Background:  "#02091A",
		css:         gradientCSS,
		section:     gradientSection,
	},
}

// Lookup returns the named variant, falling back to the default. ok is false
// when the fallback was used.
func Lookup(name string) (Variant, bool) {
	if v, found := variants[name]; found {
		return v, true
	}
	return variants[DefaultVariant], false
}

// Names lists the registered variants in sorted order.
func Names() []string {
	out := make([]string, 0, len(variants))
	for name := range variants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
