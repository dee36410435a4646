package decode

import (
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

func TestParsePointReadsXAndY(t *testing.T) {
	el := &xmlnode.Element{Name: "point", Attrs: []xmlnode.Attr{
		{Name: "x", Value: "1.5"}, {Name: "y", Value: "-2"},
	}}
	p := parsePoint(el)
	if p.X != 1.5 || p.Y != -2 {
		t.Errorf("parsePoint = %+v, want {1.5 -2}", p)
	}
}

func TestParseRectZeroSizeIsNil(t *testing.T) {
	el := &xmlnode.Element{Name: "rect"}
	if got := parseRect(el); got != nil {
		t.Errorf("parseRect(zero) = %+v, want nil", got)
	}
}

func TestParseRectNonZeroSize(t *testing.T) {
	el := &xmlnode.Element{Name: "rect", Attrs: []xmlnode.Attr{
		{Name: "x", Value: "1"}, {Name: "y", Value: "2"},
		{Name: "width", Value: "3"}, {Name: "height", Value: "4"},
	}}
	got := parseRect(el)
	if got == nil || got.X != 1 || got.Y != 2 || got.W != 3 || got.H != 4 {
		t.Errorf("parseRect = %+v, want {1 2 3 4}", got)
	}
}

func TestParseGeometryChildReadsPointOnly(t *testing.T) {
	wrapper := &xmlnode.Element{Name: "data"}
	wrapper.AddChild(&xmlnode.Element{Name: "point", Attrs: []xmlnode.Attr{{Name: "x", Value: "1"}, {Name: "y", Value: "1"}}})
	p, r := parseGeometryChild(wrapper)
	if p == nil || r != nil {
		t.Errorf("parseGeometryChild = (%v, %v), want point only", p, r)
	}
}

func TestParsePolylineReadsPointsInOrder(t *testing.T) {
	wrapper := &xmlnode.Element{Name: "data"}
	wrapper.AddChild(&xmlnode.Element{Name: "point", Attrs: []xmlnode.Attr{{Name: "x", Value: "0"}, {Name: "y", Value: "0"}}})
	wrapper.AddChild(&xmlnode.Element{Name: "point", Attrs: []xmlnode.Attr{{Name: "x", Value: "1"}, {Name: "y", Value: "1"}}})

	got := parsePolyline(wrapper)
	if len(got) != 2 || got[1].X != 1 {
		t.Errorf("parsePolyline = %v, want two points ending at (1,1)", got)
	}
}

func TestParsePolylineEmptyIsNil(t *testing.T) {
	wrapper := &xmlnode.Element{Name: "data"}
	if got := parsePolyline(wrapper); got != nil {
		t.Errorf("parsePolyline(empty) = %v, want nil", got)
	}
}
