package world

import (
	"slices"
	"testing"
)

func TestHighResOnly(t *testing.T) {
	ds := &Dataset{
		CommonTerritories: map[string]string{"eng": "gbr"},
		Regions:           NewRegionMap(),
	}
	ds.Regions.Set("usa", &Region{
		RegionName: "United States",
		Areas: &AreaSet{
			LowRes:    &Area{AreaWKT: "POINT (1 1)"},
			MediumRes: &Area{AreaWKT: "POINT (2 2)"},
			HighRes:   &Area{AreaWKT: "POINT (3 3)"},
		},
	})
	ds.Regions.Set("can", &Region{
		RegionName: "Canada",
		Areas:      &AreaSet{LowRes: &Area{AreaWKT: "POINT (4 4)"}},
	})
	ds.Regions.Set("gbr", &Region{RegionName: "United Kingdom"})

	out := HighResOnly(ds)

	if !slices.Equal(out.Regions.Codes(), []string{"usa"}) {
		t.Fatalf("expected only usa to survive, got %v", out.Regions.Codes())
	}
	r, _ := out.Regions.Get("usa")
	if r.Areas.LowRes != nil || r.Areas.MediumRes != nil {
		t.Error("low/medium tiers should be stripped")
	}
	if r.Areas.HighRes == nil || r.Areas.HighRes.AreaWKT != "POINT (3 3)" {
		t.Errorf("high-res tier not retained: %+v", r.Areas.HighRes)
	}
	if out.CommonTerritories["eng"] != "gbr" {
		t.Error("commonTerritories should pass through")
	}
}
