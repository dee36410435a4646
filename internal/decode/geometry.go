package decode

import (
	"strconv"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// parsePoint reads a <point x= y=/> element.
func parsePoint(el *xmlnode.Element) *model.Point {
	x, _ := el.Attr("x")
	y, _ := el.Attr("y")
	return &model.Point{X: parseFloat(x), Y: parseFloat(y)}
}

// parseRect reads a <rect x= y= width= height=/> element. A zero-sized
// rect is normalized to nil (Pass C would strip it anyway, but doing it
// here keeps the decoder's output already clean for callers that skip
// reconstruction).
func parseRect(el *xmlnode.Element) *model.Rect {
	x, _ := el.Attr("x")
	y, _ := el.Attr("y")
	w, _ := el.Attr("width")
	h, _ := el.Attr("height")
	r := model.Rect{X: parseFloat(x), Y: parseFloat(y), W: parseFloat(w), H: parseFloat(h)}
	if r.IsEmpty() {
		return nil
	}
	return &r
}

// parseGeometryChild reads whichever of <point>/<rect> is present under
// a <data key=...> wrapper element, returning (point, rect) with an
// absent one nil. Both present is returned as both and left to the
// caller (Pass C rejects it, per I4).
func parseGeometryChild(wrapper *xmlnode.Element) (*model.Point, *model.Rect) {
	var p *model.Point
	var r *model.Rect
	if el := wrapper.FirstChildNamed("point"); el != nil {
		p = parsePoint(el)
	}
	if el := wrapper.FirstChildNamed("rect"); el != nil {
		r = parseRect(el)
	}
	return p, r
}

// parsePolyline reads every <point> child of wrapper, in order, as a
// polyline (an edge's intermediate geometry points).
func parsePolyline(wrapper *xmlnode.Element) model.Polyline {
	pts := wrapper.ChildrenNamed("point")
	if len(pts) == 0 {
		return nil
	}
	out := make(model.Polyline, len(pts))
	for i, p := range pts {
		out[i] = *parsePoint(p)
	}
	return out
}
