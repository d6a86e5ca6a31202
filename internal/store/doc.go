// Package store provides the persistence layer for degreeclass.
//
// # Record Store
//
// [CSV] owns the in-memory list of module records and the backing CSV file
// they come from. The file is append-only from this program: [CSV.Append]
// adds one row (and the header when the file is new), [CSV.Load] replaces the
// in-memory list with the rows currently on disk.
//
// Load distinguishes two kinds of bad data:
//   - A well-formed row with an empty or zero field is skipped and reported
//     in [LoadResult.Skipped]; the load still succeeds.
//   - A malformed row (wrong field count, non-integer number) fails the whole
//     load with a [*ParseError] and leaves the previous records in place.
//
// # History
//
// [History] is a BoltDB log of every degree average that was persisted to the
// derived file, kept so earlier results can be listed later.
//
// # Export
//
// [ExportSQLite] copies the loaded records into a SQLite database for ad-hoc
// querying with other tools.
package store
