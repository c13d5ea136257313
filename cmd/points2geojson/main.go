package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/woozymasta/maskmap/internal/points"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input spreadsheet (xlsx)" required:"true"`
	Sheet  string `short:"s" long:"sheet" description:"Sheet name (default: first sheet)"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	records, err := points.Load(opts.Input, opts.Sheet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading points: %v\n", err)
		os.Exit(1)
	}

	outputData, err := marshal(points.FeatureCollection(records), opts.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d points to %s (format: %s)\n", len(records), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}

// marshal encodes v as indented JSON, or as YAML built from that JSON so
// geometries keep their GeoJSON shape.
func marshal(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil || format != "yaml" {
		return data, err
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	return yaml.Marshal(tree)
}
