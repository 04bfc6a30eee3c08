// schema-check validates a world dataset against the declared JSON Schema
// for its form (dev or prod). Every violation is printed, not just the
// first; any violation fails the run.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/schema"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	in := flag.String("in", "world.json", "dataset to validate")
	form := flag.String("form", string(schema.Dev), "document form: dev or prod")
	flag.Parse()

	f, err := schema.ParseForm(*form)
	if err != nil {
		log.Error("bad -form", "err", err)
		os.Exit(1)
	}

	doc, err := os.ReadFile(*in)
	if err != nil {
		log.Error("read failed", "file", *in, "err", err)
		os.Exit(1)
	}

	violations, err := schema.Validate(doc, f)
	if err != nil {
		log.Error("validation could not run", "file", *in, "err", err)
		os.Exit(1)
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s\n", v)
		}
		log.Error("document does not conform", "file", *in, "violations", len(violations))
		os.Exit(1)
	}
	log.Info("document conforms", "file", *in, "form", string(f))
}
