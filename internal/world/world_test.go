package world

import (
	"strings"
	"testing"
)

func TestAreaSet_GetSet(t *testing.T) {
	s := &AreaSet{}
	for _, res := range Resolutions {
		if s.Get(res) != nil {
			t.Errorf("%s: expected nil on empty set", res)
		}
	}

	a := &Area{AreaWKT: "POINT (1 2)"}
	s.Set(MediumRes, a)

	if s.Get(MediumRes) != a {
		t.Error("expected stored medium-res area back")
	}
	if s.Get(LowRes) != nil || s.Get(HighRes) != nil {
		t.Error("other tiers should stay empty")
	}
	if s.Empty() {
		t.Error("set with one tier is not empty")
	}

	var nilSet *AreaSet
	if !nilSet.Empty() || nilSet.Get(HighRes) != nil {
		t.Error("nil set behaves as empty")
	}
}

func TestParseResolution(t *testing.T) {
	for _, res := range Resolutions {
		got, err := ParseResolution(string(res))
		if err != nil || got != res {
			t.Errorf("%s: got %v, %v", res, got, err)
		}
	}
	if _, err := ParseResolution("ultra-res"); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	doc := `{
  "commonTerritories": {
    "eng": "gbr"
  },
  "regions": {
    "usa": {
      "regionName": "United States",
      "areas": {
        "medium-res": {
          "areaWKT": "POLYGON ((0 0, 1 0, 1 1, 0 0))",
          "sourceMetadata": {
            "layerName": "ne_50m_admin_0_countries",
            "entityIdentifier": "ADMIN=United States"
          }
        }
      },
      "disputedRegions": [
        {
          "controlType": "CLAIMED",
          "areaReference": {
            "referenceType": "regionReference",
            "referenceId": "cub"
          }
        }
      ]
    }
  }
}`

	ds, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if ds.CommonTerritories["eng"] != "gbr" {
		t.Errorf("commonTerritories not preserved: %v", ds.CommonTerritories)
	}
	r, ok := ds.Regions.Get("usa")
	if !ok {
		t.Fatal("missing region usa")
	}
	if len(r.DisputedRegions) != 1 || r.DisputedRegions[0].ControlType != Claimed {
		t.Errorf("disputedRegions not preserved: %+v", r.DisputedRegions)
	}
	if r.DisputedRegions[0].AreaReference.ReferenceID != "cub" {
		t.Errorf("areaReference not preserved: %+v", r.DisputedRegions[0].AreaReference)
	}

	out, err := Encode(ds)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	for _, want := range []string{`"areaWKT"`, `"CLAIMED"`, `"regionReference"`, `"eng": "gbr"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("encoded output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(string(out), `"areaSVG"`) {
		t.Errorf("dev-form encode grew an areaSVG field:\n%s", out)
	}
}
