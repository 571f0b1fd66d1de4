package page

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mattjoyce/launchpad/internal/display"
)

// TimeUnit renders one countdown unit: a track circle, a progress circle
// whose dash offset encodes the unit's fraction, the padded value and label.
// The client script finds the value and progress nodes by data-unit.
func TimeUnit(u display.UnitView, radius, strokeWidth float64) g.Node {
	// viewBox leaves room for the stroke so the ring is never clipped.
	size := 2*radius + 2*strokeWidth
	center := num(size / 2)
	name := u.Label

	return h.Div(
		h.Class("unit"),
		g.Attr("data-unit", name),
		h.Div(
			h.Class("dial"),
			g.El("svg",
				h.Class("ring"),
				g.Attr("viewBox", "0 0 "+num(size)+" "+num(size)),
				g.Attr("aria-hidden", "true"),
				g.El("circle",
					h.Class("track"),
					g.Attr("cx", center),
					g.Attr("cy", center),
					g.Attr("r", num(radius)),
					g.Attr("fill", "none"),
					g.Attr("stroke-width", "1"),
				),
				g.El("circle",
					h.Class("progress"),
					g.Attr("data-role", "progress"),
					g.Attr("cx", center),
					g.Attr("cy", center),
					g.Attr("r", num(radius)),
					g.Attr("fill", "none"),
					g.Attr("stroke-width", num(strokeWidth)),
					g.Attr("stroke-linecap", "round"),
					g.Attr("stroke-dasharray", num(u.Circumference)),
					g.Attr("stroke-dashoffset", num(u.Offset)),
				),
			),
			h.Span(h.Class("value"), g.Attr("data-role", "value"), g.Text(u.Text)),
			h.Span(h.Class("label"), g.Text(name)),
		),
	)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
