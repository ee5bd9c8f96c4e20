package main

import (
	"fmt"

	"github.com/spf13/cobra"

	jsongrid "github.com/jsongrid/jsongrid"
	"github.com/jsongrid/jsongrid/source"
)

var inferCmd = &cobra.Command{
	Use:   "infer FILE",
	Short: "Infer a schema from the first record of a data file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(args[0])
		if err != nil {
			return err
		}
		schema := jsongrid.Schema{}
		if len(records) > 0 {
			schema = jsongrid.InferSchema(records[0])
		}
		out, err := source.EncodeSchema(schema)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inferCmd)
}
