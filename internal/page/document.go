package page

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mattjoyce/launchpad/internal/display"
)

const (
	headline = "Coming Soon!"
	ctaLabel = "Register Now"
)

// Render writes the full HTML document for v showing frame f.
func Render(w io.Writer, v Variant, c Content, f display.Frame) error {
	return Document(v, c, f).Render(w)
}

// Document builds the page tree. f is expected to be composed with v.Radius;
// a frame with a different radius is resized first.
func Document(v Variant, c Content, f display.Frame) g.Node {
	if f.Radius != v.Radius {
		f = f.WithRadius(v.Radius)
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Textf("%s | %s", c.EventName, headline)),
				h.StyleEl(g.Raw(baseCSS+v.css)),
			),
			h.Body(
				h.Class("variant-"+v.Name),
				g.Attr("data-variant", v.Name),
				v.section(v, c, f),
				g.If(c.StreamURL != "", clientScript(c.StreamURL, v.Name)),
			),
		),
	)
}

func cinematicSection(v Variant, c Content, f display.Frame) g.Node {
	return h.Section(
		h.Class("hero"),
		h.Div(h.Class("ambience")),
		h.Div(
			h.Class("video-frame"),
			heroVideo(v, "video"),
			h.Div(h.Class("video-glow")),
		),
		h.Div(
			h.Class("headline"),
			h.Span(h.Class("rule rule-left")),
			h.H1(g.Text(headline)),
			h.Span(h.Class("rule rule-right")),
		),
		h.Div(
			h.Class("panel"),
			h.P(h.Class("tagline"), g.Text(c.Tagline)),
			registerButton(c),
			timer(f, v.StrokeWidth),
			expiredNote(f),
			h.P(h.Class("organizer"), g.Textf("An event by %s", c.Organizer)),
		),
	)
}

func gradientSection(v Variant, c Content, f display.Frame) g.Node {
	return h.Section(
		h.Class("hero"),
		heroVideo(v, "video video-cover"),
		h.Div(h.Class("overlay")),
		h.Div(
			h.Class("content"),
			h.P(h.Class("tagline"), g.Text(c.Tagline)),
			registerButton(c),
			timer(f, v.StrokeWidth),
			expiredNote(f),
			h.P(
				h.Class("organizer"),
				g.Text("An event by "),
				h.Span(g.Text(c.Organizer)),
			),
		),
		h.Div(h.Class("glow")),
	)
}

func heroVideo(v Variant, class string) g.Node {
	return h.Video(
		h.Class(class),
		g.Attr("autoplay"),
		g.Attr("muted"),
		g.Attr("loop"),
		g.Attr("playsinline"),
		h.Source(h.Src(v.Video), h.Type(v.VideoType)),
	)
}

func registerButton(c Content) g.Node {
	return h.A(
		h.Class("register"),
		h.Href(c.RegisterURL),
		h.Span(g.Text(ctaLabel)),
	)
}

func timer(f display.Frame, strokeWidth float64) g.Node {
	return h.Div(
		h.Class("timer"),
		g.Attr("data-expired", boolAttr(f.Expired)),
		g.Map(f.Units[:], func(u display.UnitView) g.Node {
			return TimeUnit(u, f.Radius, strokeWidth)
		}),
	)
}

// expiredNote is shown once the target has passed; the client script toggles
// it for pages that were opened before expiry.
func expiredNote(f display.Frame) g.Node {
	return h.P(
		h.Class("expired-note"),
		g.If(!f.Expired, g.Attr("hidden")),
		g.Text("The event has started"),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
