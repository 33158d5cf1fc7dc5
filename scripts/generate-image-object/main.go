package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-fakeimage/pkg/filler"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
	"github.com/goliatone/go-fakeimage/pkg/testsupport"
)

func main() {
	var (
		sizesPath  = flag.String("sizes", "", "size registry file (defaults to the test fixture registry)")
		baseURL    = flag.String("base-url", placeholder.DefaultBaseURL, "placeholder base URL")
		outputPath = flag.String("output", "pkg/filler/testdata/image_object.golden.json", "output path for the serialized image object")
	)
	flag.Parse()

	var reg sizes.Registry = testsupport.Registry()
	if *sizesPath != "" {
		loaded, err := sizes.LoadFile(*sizesPath)
		if err != nil {
			fail(err)
		}
		reg = loaded
	}

	obj := filler.NewImageObject(placeholder.New(placeholder.WithBaseURL(*baseURL)), reg)
	payload, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		fail(err)
	}
	payload = append(payload, '\n')

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fail(err)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s\n", *outputPath)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "generate-image-object: %v\n", err)
	os.Exit(1)
}
