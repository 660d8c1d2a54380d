package lnsplit

// Reporter receives diagnostic events emitted while a corpus is processed.
// The extraction pipeline calls it from a single goroutine in document
// order. Implementations decide whether events reach a console, a log, or
// are dropped.
type Reporter interface {
	// SchemaDiscovered fires once per run, after tag discovery completes.
	SchemaDiscovered(schema Schema)

	// NoDocuments fires when the document boundary never matched and the
	// corpus produced zero documents.
	NoDocuments()

	// DateParseFailure fires for each raw date string that matched no
	// supported form. The record keeps the raw value unchanged.
	DateParseFailure(position int, raw string)

	// DocumentAnomaly fires for records whose identifying fields are all
	// empty or whose body text is implausibly short. The record is still
	// emitted.
	DocumentAnomaly(position int, record *Record)
}
