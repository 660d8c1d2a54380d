// Package lnsplit converts concatenated LexisNexis plain-text exports into
// structured per-article records. It segments an export into documents at
// copyright-footer boundaries, discovers which metadata tags the corpus
// actually carries, extracts positional and tagged fields from each
// document, and hands ordered records to CSV or SQLite sinks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, csv/, yaml/).
package lnsplit
