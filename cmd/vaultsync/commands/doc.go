// Package commands defines the vaultsync CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init          Create the local identity keys
//   - fingerprint   Print the identity fingerprint and masked keys
//   - export        Print the key export bundle for backup
//   - import        Replace the identity from an export bundle
//   - regenerate    Destructively replace the identity with fresh keys
//   - token         Print the bearer token presented to the API
//   - settings      Show or change sync settings
//   - activity      Show the activity view, optionally following the live stream
//   - import-csv    Ingest a CSV file into records
//
// # Implementation
//
// The root command builds a dependency graph (stores, services, API
// clients) before any subcommand runs, so handlers can use a shared
// wire with one HTTP client and logger.
package commands
