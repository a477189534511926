// Package jsonfile loads a catalog from a JSON artifact shaped as
// {"<domain>": {"<key>": {<record>}}}, optionally gzip-compressed.
//
// The artifact is decoded as a token stream rather than into Go maps so that
// the domain and key order of the file becomes the catalog iteration order.
package jsonfile
