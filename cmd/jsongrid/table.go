package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jsongrid "github.com/jsongrid/jsongrid"
	"github.com/jsongrid/jsongrid/source"
)

var (
	toTableSchemaPath   string
	fromTableSchemaPath string
)

var toTableCmd = &cobra.Command{
	Use:   "to-table DATA",
	Short: "Project records onto the schema's columns and emit CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(toTableSchemaPath)
		if err != nil {
			return err
		}
		records, err := loadRecords(args[0])
		if err != nil {
			return err
		}
		tbl := jsongrid.ToTable(records, schema)
		w := csv.NewWriter(cmd.OutOrStdout())
		if err := w.Write(tbl.Columns); err != nil {
			return err
		}
		for _, row := range tbl.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.Text()
			}
			if err := w.Write(cells); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	},
}

var fromTableCmd = &cobra.Command{
	Use:   "from-table CSV",
	Short: "Reconstruct JSON records from a CSV table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(fromTableSchemaPath)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return nil
		}
		tbl := jsongrid.Table{Columns: rows[0]}
		for _, row := range rows[1:] {
			cells := make([]jsongrid.Value, len(row))
			for i, c := range row {
				cells[i] = jsongrid.String(c)
			}
			tbl.Rows = append(tbl.Rows, cells)
		}
		records := jsongrid.ToRecords(tbl, schema)
		out, err := source.EncodeRecords(records)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	toTableCmd.Flags().StringVarP(&toTableSchemaPath, "schema", "s", "", "schema file (.json, .yaml or .toml)")
	_ = toTableCmd.MarkFlagRequired("schema")
	fromTableCmd.Flags().StringVarP(&fromTableSchemaPath, "schema", "s", "", "schema file (.json, .yaml or .toml)")
	_ = fromTableCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(toTableCmd, fromTableCmd)
}
