package projector

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// emitPath walks a projected geometry and emits SVG path syntax. Points
// cannot produce a drawable segment and contribute nothing; degenerate
// rings and lines are dropped.
func emitPath(geom orb.Geometry) string {
	var b strings.Builder

	switch v := geom.(type) {
	case orb.Point, orb.MultiPoint:
		// No drawable segments.

	case orb.LineString:
		writeLine(&b, v)

	case orb.MultiLineString:
		for _, ls := range v {
			writeLine(&b, ls)
		}

	case orb.Ring:
		writeRing(&b, v)

	case orb.Polygon:
		writePolygon(&b, v)

	case orb.MultiPolygon:
		for _, poly := range v {
			writePolygon(&b, poly)
		}

	case orb.Collection:
		for _, child := range v {
			b.WriteString(emitPath(child))
		}

	case orb.Bound:
		writePolygon(&b, boundToPolygon(v))
	}

	return b.String()
}

// writePolygon emits one sub-path per ring, holes included.
func writePolygon(b *strings.Builder, poly orb.Polygon) {
	for _, ring := range poly {
		writeRing(b, ring)
	}
}

// writeRing emits a closed sub-path. The duplicated closing vertex of a
// closed ring is replaced by the explicit Z command.
func writeRing(b *strings.Builder, ring orb.Ring) {
	pts := []orb.Point(ring)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return
	}
	writeVertices(b, pts)
	b.WriteByte('Z')
}

// writeLine emits an open sub-path.
func writeLine(b *strings.Builder, ls orb.LineString) {
	if len(ls) < 2 {
		return
	}
	writeVertices(b, ls)
}

func writeVertices(b *strings.Builder, pts []orb.Point) {
	for i, pt := range pts {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(formatCoord(pt[0]))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt[1]))
	}
}

// formatCoord renders a canvas coordinate with two decimals, enough for
// sub-pixel accuracy on the 1600×900 canvas without bloating the output.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// boundToPolygon converts a bound to its rectangle ring.
func boundToPolygon(bd orb.Bound) orb.Polygon {
	return orb.Polygon{
		orb.Ring{
			{bd.Min[0], bd.Min[1]},
			{bd.Max[0], bd.Min[1]},
			{bd.Max[0], bd.Max[1]},
			{bd.Min[0], bd.Max[1]},
			{bd.Min[0], bd.Min[1]},
		},
	}
}
