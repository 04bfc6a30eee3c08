// Package world defines the world.json dataset model shared by every build
// utility: the region mapping, the per-resolution area tiers and the
// pass-through metadata (disputed regions, common territories).
package world

import "fmt"

// Resolution names one of the fixed area tiers carried by a region.
type Resolution string

const (
	LowRes    Resolution = "low-res"
	MediumRes Resolution = "medium-res"
	HighRes   Resolution = "high-res"
)

// Resolutions lists the tiers in coarse-to-fine order.
var Resolutions = []Resolution{LowRes, MediumRes, HighRes}

// ParseResolution validates a tier name.
func ParseResolution(s string) (Resolution, error) {
	switch Resolution(s) {
	case LowRes, MediumRes, HighRes:
		return Resolution(s), nil
	}
	return "", fmt.Errorf("unknown resolution %q", s)
}

// Dataset is the top-level world.json container. The dev form carries raw
// WKT areas; the prod form carries projected SVG paths plus the canvas
// width/height.
type Dataset struct {
	CommonTerritories map[string]string `json:"commonTerritories,omitempty"`
	Regions           *RegionMap        `json:"regions"`
	Width             int               `json:"width,omitempty"`
	Height            int               `json:"height,omitempty"`
}

// Region is a single entry in the regions mapping. The code keying it is
// either exactly 3 characters (a top-level ISO-style code) or longer
// (a composite/sub-national key).
type Region struct {
	RegionName      string           `json:"regionName"`
	Areas           *AreaSet         `json:"areas,omitempty"`
	DisputedRegions []DisputedRegion `json:"disputedRegions,omitempty"`
}

// AreaSet holds the fixed resolution tiers of a region. Any tier may be
// absent.
type AreaSet struct {
	LowRes    *Area `json:"low-res,omitempty"`
	MediumRes *Area `json:"medium-res,omitempty"`
	HighRes   *Area `json:"high-res,omitempty"`
}

// Get returns the area for a tier, or nil.
func (s *AreaSet) Get(r Resolution) *Area {
	if s == nil {
		return nil
	}
	switch r {
	case LowRes:
		return s.LowRes
	case MediumRes:
		return s.MediumRes
	case HighRes:
		return s.HighRes
	}
	return nil
}

// Set stores the area for a tier. Unknown tiers are ignored.
func (s *AreaSet) Set(r Resolution, a *Area) {
	switch r {
	case LowRes:
		s.LowRes = a
	case MediumRes:
		s.MediumRes = a
	case HighRes:
		s.HighRes = a
	}
}

// Empty reports whether no tier is populated.
func (s *AreaSet) Empty() bool {
	return s == nil || (s.LowRes == nil && s.MediumRes == nil && s.HighRes == nil)
}

// Area is one resolution tier of a region. Dev-form areas carry WKT and
// source metadata; prod-form areas carry the projected SVG path.
type Area struct {
	AreaWKT        string          `json:"areaWKT,omitempty"`
	AreaSVG        string          `json:"areaSVG,omitempty"`
	SourceMetadata *SourceMetadata `json:"sourceMetadata,omitempty"`
}

// SourceMetadata records where a dev-form geometry came from. It is
// informational only and never read by the conversion.
type SourceMetadata struct {
	LayerName        string `json:"layerName,omitempty"`
	EntityIdentifier string `json:"entityIdentifier,omitempty"`
	Remark           string `json:"remark,omitempty"`
}

// Control types for disputed-region claims.
const (
	Controlled = "CONTROLLED"
	Claimed    = "CLAIMED"
)

// Reference types for disputed-region area references.
const (
	RegionReference    = "regionReference"
	TerritoryReference = "territoryReference"
)

// DisputedRegion is a claim attached to a region. Claims pass through the
// conversion unmodified.
type DisputedRegion struct {
	ControlType   string        `json:"controlType"`
	AreaReference AreaReference `json:"areaReference"`
}

// AreaReference points at another region or territory by type and id.
type AreaReference struct {
	ReferenceType string `json:"referenceType"`
	ReferenceID   string `json:"referenceId"`
}
