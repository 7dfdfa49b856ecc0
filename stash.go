// Package stash provides a read-it-later archive for web articles and
// highlights. It turns arbitrary web pages into clean, structurally faithful
// plain text for long-term storage and re-reading, and imports bulk
// highlights without duplicating ones already stored.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, readability/).
package stash
