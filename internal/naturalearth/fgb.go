package naturalearth

import (
	"encoding/binary"
	"fmt"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/paulmach/orb"
)

// readLayer loads every admin-0 feature of a FlatGeobuf file. Iteration
// goes through the spatial index over the header envelope; files without an
// index cannot be scanned by the official Go implementation.
func readLayer(path string) ([]feature, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, err
	}

	h := fgb.Header()
	if h == nil {
		return nil, fmt.Errorf("%s: missing header", path)
	}
	if h.IndexNodeSize() == 0 || h.EnvelopeLength() < 4 {
		return nil, ErrNoIndex
	}

	raw, err := fgb.Search(h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
	if err != nil {
		return nil, err
	}

	feats := make([]feature, 0, len(raw))
	for _, ft := range raw {
		var geomObj flattypes.Geometry
		geom := decodeGeometry(ft.Geometry(&geomObj))

		props := stringProperties(ft, h, colAdmin, colISOA3)
		feats = append(feats, feature{
			code: props[colISOA3],
			name: props[colAdmin],
			geom: geom,
		})
	}
	return feats, nil
}

// decodeGeometry converts a FlatGeobuf geometry to orb form. The admin-0
// layers only carry polygons and multipolygons; anything else is ignored.
func decodeGeometry(g *flattypes.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g.Type() {
	case flattypes.GeometryTypePolygon:
		poly := decodePolygon(g)
		if len(poly) == 0 {
			return nil
		}
		return poly

	case flattypes.GeometryTypeMultiPolygon:
		partsLen := g.PartsLength()
		if partsLen == 0 {
			poly := decodePolygon(g)
			if len(poly) == 0 {
				return nil
			}
			return orb.MultiPolygon{poly}
		}
		mp := make(orb.MultiPolygon, 0, partsLen)
		for i := 0; i < partsLen; i++ {
			var part flattypes.Geometry
			if g.Parts(&part, i) {
				if poly := decodePolygon(&part); len(poly) > 0 {
					mp = append(mp, poly)
				}
			}
		}
		if len(mp) == 0 {
			return nil
		}
		return mp

	default:
		return nil
	}
}

// decodePolygon gathers the flat coordinate array and ring offsets of a
// geometry and slices them into a polygon.
func decodePolygon(g *flattypes.Geometry) orb.Polygon {
	xyLen := g.XyLength()
	if xyLen < 2 {
		return nil
	}

	xy := make([]float64, xyLen)
	for i := 0; i < xyLen; i++ {
		xy[i] = g.Xy(i)
	}
	ends := make([]uint32, g.EndsLength())
	for i := range ends {
		ends[i] = g.Ends(i)
	}
	return decodeRings(xy, ends)
}

// decodeRings slices a flat coordinate array into rings at the ends
// offsets. Without ends the whole array is one ring.
func decodeRings(xy []float64, ends []uint32) orb.Polygon {
	if len(xy) < 2 {
		return nil
	}
	if len(ends) == 0 {
		ends = []uint32{uint32(len(xy) / 2)}
	}

	poly := make(orb.Polygon, 0, len(ends))
	start := uint32(0)
	for _, end := range ends {
		ring := make(orb.Ring, 0, end-start)
		for j := start; j < end; j++ {
			idx := int(j) * 2
			if idx+1 < len(xy) {
				ring = append(ring, orb.Point{xy[idx], xy[idx+1]})
			}
		}
		poly = append(poly, ring)
		start = end
	}
	return poly
}

// stringProperties scans a feature's property block and materializes the
// wanted string columns. The block is a sequence of (uint16 column index,
// value) pairs; values of other types are skipped over by their encoded
// size per the FlatGeobuf spec (fixed-width scalars, length-prefixed
// strings and blobs).
func stringProperties(ft *flattypes.Feature, h *flattypes.Header, wanted ...string) map[string]string {
	out := make(map[string]string, len(wanted))
	propsLen := ft.PropertiesLength()
	if propsLen == 0 || h.ColumnsLength() == 0 {
		return out
	}

	want := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		want[name] = true
	}

	data := make([]byte, propsLen)
	for i := 0; i < propsLen; i++ {
		data[i] = byte(ft.Properties(i))
	}

	offset := 0
	for offset+2 <= len(data) {
		colIndex := int(binary.LittleEndian.Uint16(data[offset : offset+2]))
		offset += 2
		if colIndex >= h.ColumnsLength() {
			break
		}

		var col flattypes.Column
		if !h.Columns(&col, colIndex) {
			break
		}

		value, size := scanValue(data[offset:], col.Type())
		if size < 0 {
			break
		}
		offset += size

		if name := string(col.Name()); want[name] && value != "" {
			out[name] = value
		}
	}
	return out
}

// scanValue returns the string form of a value (for string-typed columns)
// and the number of bytes it occupies, or -1 when the block is truncated.
func scanValue(data []byte, colType flattypes.ColumnType) (string, int) {
	fixed := func(n int) (string, int) {
		if len(data) < n {
			return "", -1
		}
		return "", n
	}

	switch colType {
	case flattypes.ColumnTypeBool, flattypes.ColumnTypeByte, flattypes.ColumnTypeUByte:
		return fixed(1)
	case flattypes.ColumnTypeShort, flattypes.ColumnTypeUShort:
		return fixed(2)
	case flattypes.ColumnTypeInt, flattypes.ColumnTypeUInt, flattypes.ColumnTypeFloat:
		return fixed(4)
	case flattypes.ColumnTypeLong, flattypes.ColumnTypeULong, flattypes.ColumnTypeDouble:
		return fixed(8)

	case flattypes.ColumnTypeString, flattypes.ColumnTypeDateTime, flattypes.ColumnTypeJson:
		if len(data) < 4 {
			return "", -1
		}
		n := int(binary.LittleEndian.Uint32(data[:4]))
		if len(data) < 4+n {
			return "", -1
		}
		return string(data[4 : 4+n]), 4 + n

	case flattypes.ColumnTypeBinary:
		if len(data) < 4 {
			return "", -1
		}
		n := int(binary.LittleEndian.Uint32(data[:4]))
		if len(data) < 4+n {
			return "", -1
		}
		return "", 4 + n

	default:
		return "", -1
	}
}
