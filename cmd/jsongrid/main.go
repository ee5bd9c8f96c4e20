package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	jsongrid "github.com/jsongrid/jsongrid"
	"github.com/jsongrid/jsongrid/source"
)

var rootCmd = &cobra.Command{
	Use:           "jsongrid <command>",
	Short:         "Schema-driven conversion between JSON records and tables",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSchema reads a schema document, picking the decoder by file extension.
func loadSchema(path string) (jsongrid.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return source.DecodeSchemaYAML(data)
	case ".toml":
		return source.DecodeSchemaTOML(data)
	default:
		return source.DecodeSchema(data)
	}
}

// loadRecords reads a data file as JSON, or YAML by extension.
func loadRecords(path string) ([]jsongrid.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return source.DecodeRecordsYAML(data)
	default:
		return source.DecodeRecords(data)
	}
}
