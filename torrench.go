// Package torrench provides a CLI for searching a torrent index, listing
// the results as a table and downloading the selected .torrent file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bencode/).
package torrench
