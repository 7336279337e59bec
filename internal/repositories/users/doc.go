// Package users is the credential store: the single persistence boundary for
// the record collection.
//
// # Overview
//
// Repository loads and saves the whole collection as one unit. There is no
// per-record API: callers load, mutate and save. Nothing is cached between
// calls, so every operation sees the file as it is on disk.
//
// # Implementations
//
//   - FileRepository: indented JSON file; every Save also writes a
//     timestamped snapshot (<base>_<YYYYMMDD_HHMMSS><ext>) and optionally
//     prunes old snapshots.
//   - MemoryRepository: map-backed, for tests and dry runs.
//
// # Concurrency
//
// The application is single-user. Load→mutate→Save is not locked; two
// processes sharing a file race and the last writer wins.
package users
