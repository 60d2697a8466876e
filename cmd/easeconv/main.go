// Command easeconv converts keyframe documents into CustomEase-style curve
// strings, one line per property.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/motiontools/ease"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("easeconv: ")

	input := flag.String("input", "", "path to a YAML keyframe document")
	mode := flag.String("mode", "svg", "output mode: svg (one path string per property) or array (normalized control points, single property)")
	property := flag.String("property", "", "convert only the named property (required with -mode array when the document has several)")
	noClamp := flag.Bool("no-clamp", false, "keep infinite normalized values instead of capping them at ±10")
	verbose := flag.Bool("v", false, "log per-pair classification to stderr")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	doc, err := ease.LoadDocument(*input)
	if err != nil {
		log.Fatal(err)
	}

	opts := ease.DefaultOptions()
	opts.ClampInfiniteValues = !*noClamp
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	props := doc.Properties
	if *property != "" {
		props = nil
		for _, p := range doc.Properties {
			if p.Name == *property {
				props = []ease.PropertyData{p}
				break
			}
		}
		if props == nil {
			log.Fatalf("no property named %q in %s", *property, *input)
		}
	}

	switch *mode {
	case "svg":
	case "array":
		opts.OutputMode = ease.NormalizedArray
		if len(props) > 1 {
			log.Fatal("-mode array converts a single property; use -property to pick one")
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	if len(props) == 0 {
		log.Fatal("the document contains no properties")
	}

	for _, p := range props {
		res := ease.Convert(p, doc.FrameRate, opts)
		for _, d := range res.Diagnostics {
			fmt.Fprintf(os.Stderr, "easeconv: %s: %s\n", p.Name, d)
		}
		if res.Output == "" {
			fmt.Fprintf(os.Stderr, "easeconv: %s: skipped, needs at least two keyframes\n", p.Name)
			continue
		}
		fmt.Printf("%s: %s\n", p.Name, res.Output)
	}
}
