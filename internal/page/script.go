package page

import (
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mattjoyce/launchpad/internal/events"
)

// Frames arrive already sized for this page's variant, so the script only
// copies text and dash offsets into the DOM.
const clientJS = `(function () {
  var src = document.currentScript.getAttribute("data-stream");
  if (!src || !window.EventSource) { return; }
  var es = new EventSource(src);
  es.addEventListener(%q, function (ev) {
    var frame;
    try { frame = JSON.parse(ev.data); } catch (e) { return; }
    frame.units.forEach(function (u) {
      var el = document.querySelector('[data-unit="' + u.label + '"]');
      if (!el) { return; }
      var value = el.querySelector('[data-role="value"]');
      if (value && value.textContent !== u.text) { value.textContent = u.text; }
      var ring = el.querySelector('[data-role="progress"]');
      if (ring) { ring.setAttribute("stroke-dashoffset", u.offset.toFixed(2)); }
    });
    var timer = document.querySelector(".timer");
    if (timer) { timer.setAttribute("data-expired", frame.expired ? "true" : "false"); }
    var note = document.querySelector(".expired-note");
    if (note) { note.hidden = !frame.expired; }
  });
})();`

// StreamPath returns the event stream URL for a variant rooted at base.
func StreamPath(base, variant string) string {
	q := url.Values{}
	q.Set("variant", variant)
	return base + "?" + q.Encode()
}

func clientScript(stream, variant string) g.Node {
	return h.Script(
		g.Attr("data-stream", StreamPath(stream, variant)),
		g.Rawf(clientJS, events.TypeTick),
	)
}
