// Package library keeps the list of documents a user reads and the reading
// position of each, persisted as one JSON file.
package library
