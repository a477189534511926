// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The search engine in this package is a pure function over an immutable
// catalog: it takes no locks and is safe for any number of concurrent callers.
package services
