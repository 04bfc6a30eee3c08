// highres-extract derives a dataset that keeps only each region's high-res
// area, dropping the low- and medium-res tiers.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	in := flag.String("in", "world.json", "full dataset")
	out := flag.String("out", "world.highres.json", "derived high-res-only file")
	flag.Parse()

	ds, err := world.Load(*in)
	if err != nil {
		log.Error("load failed", "file", *in, "err", err)
		os.Exit(1)
	}

	derived := world.HighResOnly(ds)
	if err := world.Save(*out, derived); err != nil {
		log.Error("save failed", "file", *out, "err", err)
		os.Exit(1)
	}
	log.Info("extracted", "regions", derived.Regions.Len(), "out", *out)
}
