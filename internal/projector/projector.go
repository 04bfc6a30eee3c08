// Package projector converts region geometries from WKT into SVG path data
// rendered in one shared cartographic projection. The projection is fitted
// once per run to the union extent of every high-res geometry in the
// dataset, so all regions land in a single consistent coordinate space.
package projector

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/project"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

// Common errors returned by this package.
var (
	ErrParse       = errors.New("projector: malformed WKT")
	ErrEmptyPath   = errors.New("projector: geometry produced no drawable path")
	ErrEmptyExtent = errors.New("projector: no high-res geometry to fit the projection")
)

// Canvas dimensions shared by every projected path.
const (
	CanvasWidth  = 1600.0
	CanvasHeight = 900.0
)

// Projection maps geographic coordinates onto a fixed canvas. It is built
// once per run and must be treated as read-only afterwards; every region
// conversion shares the same value.
type Projection struct {
	bound  orb.Bound
	width  float64
	height float64
	sx     float64
	sy     float64
}

// Fit builds an equirectangular projection whose parameters map the union
// bound of geoms exactly onto a width×height canvas. Longitude and latitude
// are scaled per axis, so the extent fills the canvas edge to edge; y is
// inverted for screen space.
func Fit(geoms []orb.Geometry, width, height float64) (*Projection, error) {
	if len(geoms) == 0 {
		return nil, ErrEmptyExtent
	}

	b := geoms[0].Bound()
	for _, g := range geoms[1:] {
		b = b.Union(g.Bound())
	}

	p := &Projection{bound: b, width: width, height: height}
	if dx := b.Max[0] - b.Min[0]; dx > 0 {
		p.sx = width / dx
	}
	if dy := b.Max[1] - b.Min[1]; dy > 0 {
		p.sy = height / dy
	}
	return p, nil
}

// FitDataset collects the high-res geometry of every region that has one
// and fits the shared projection to their union extent. Regions without a
// usable high-res geometry are skipped; a dataset with none at all is a
// configuration error.
func FitDataset(ds *world.Dataset, width, height float64, log *slog.Logger) (*Projection, error) {
	if log == nil {
		log = slog.Default()
	}

	var geoms []orb.Geometry
	for _, code := range ds.Regions.Codes() {
		r, _ := ds.Regions.Get(code)
		area := r.Areas.Get(world.HighRes)
		if area == nil || strings.TrimSpace(area.AreaWKT) == "" {
			continue
		}
		g, err := wkt.Unmarshal(area.AreaWKT)
		if err != nil {
			log.Warn("skipping unparsable high-res geometry", "region", code, "err", err)
			continue
		}
		geoms = append(geoms, g)
	}

	return Fit(geoms, width, height)
}

// Bound returns the geographic extent the projection was fitted to.
func (p *Projection) Bound() orb.Bound {
	return p.bound
}

// Size returns the canvas dimensions.
func (p *Projection) Size() (width, height float64) {
	return p.width, p.height
}

// Project maps a (longitude, latitude) point into canvas coordinates.
func (p *Projection) Project(pt orb.Point) orb.Point {
	return orb.Point{
		(pt[0] - p.bound.Min[0]) * p.sx,
		(p.bound.Max[1] - pt[1]) * p.sy,
	}
}

// Geometry parses WKT and projects it into canvas space.
func (p *Projection) Geometry(wktText string) (orb.Geometry, error) {
	g, err := wkt.Unmarshal(wktText)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, truncate(wktText, 64), err)
	}
	return project.Geometry(orb.Clone(g), p.Project), nil
}

// Path parses WKT and renders it as an SVG path string in canvas space:
// a move at every ring or line start, lines for the following vertices and
// an explicit close per ring, one sub-path per component.
func (p *Projection) Path(wktText string) (string, error) {
	g, err := p.Geometry(wktText)
	if err != nil {
		return "", err
	}
	path := emitPath(g)
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyPath, truncate(wktText, 64))
	}
	return path, nil
}

// truncate shortens text for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
