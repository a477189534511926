// Package sqlite stores a catalog as a SQLite database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// Two tables hold the catalog: domains and documents. Row ids record catalog
// order, so loading a database reproduces the domain and key order of the
// artifact it was written from. The schema is managed through versioned
// migrations stored in the migrations/ directory.
//
// # Access Modes
//
// Open creates or upgrades a writable database and is used when converting a
// catalog. OpenReadOnly and Loader open an existing file with SQLite's
// mode=ro, so a serving process can never modify its catalog.
package sqlite
