// Package ingest turns CSV files into upload records.
//
// The sync settings decide both the shape of the output (one record
// per row versus a single file-level record) and whether anything is
// uploaded at all.
package ingest
