package jsongrid

// Package jsongrid provides:
//
// - A closed Value union (string/number/bool/list/null) for record data
// - Schema inference from a sample record (InferSchema)
// - A named schema registry with field-level mutation (Store)
// - Lossless projection between record sequences and tables (ToTable/ToRecords)
//
// Design policy:
// - Keep only public APIs in the root package; put boundary codecs under source/
//   and the CLI under cmd/jsongrid.
// - The core never parses text itself; callers decode JSON/YAML/TOML via source/
//   and hand the core typed records and schemas.
// - Coercion is total and lenient: malformed cells degrade to zero values
//   instead of failing, so reconstruction never blocks on bad input.
//
// Typical usage:
//
//	recs, err := source.DecodeRecords(data)
//	schema := jsongrid.InferSchema(recs[0])
//	tbl := jsongrid.ToTable(recs, schema)
//	out := jsongrid.ToRecords(tbl, schema)
