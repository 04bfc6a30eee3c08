// ne-ingest builds a dev-form world dataset from Natural Earth admin-0
// country layers in FlatGeobuf form. Each layer feeds one resolution tier;
// features are grouped by ISO-3 code.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/naturalearth"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	low := flag.String("low", "", "110m admin-0 countries FlatGeobuf (low-res tier)")
	medium := flag.String("medium", "", "50m admin-0 countries FlatGeobuf (medium-res tier)")
	high := flag.String("high", "", "10m admin-0 countries FlatGeobuf (high-res tier)")
	out := flag.String("out", "world.json", "output dataset file")
	flag.Parse()

	layers := naturalearth.Layers(*low, *medium, *high)
	if len(layers) == 0 {
		log.Error("no layers given: set at least one of -low, -medium, -high")
		os.Exit(1)
	}

	ds, err := naturalearth.Ingest(layers, log)
	if err != nil {
		log.Error("ingest failed", "err", err)
		os.Exit(1)
	}

	if err := world.Save(*out, ds); err != nil {
		log.Error("save failed", "file", *out, "err", err)
		os.Exit(1)
	}
	log.Info("ingested", "regions", ds.Regions.Len(), "out", *out)
}
