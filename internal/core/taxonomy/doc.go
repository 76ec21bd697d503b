// Package taxonomy is the static registry of document categories: the
// ordered section catalog per category, the per-category engine descriptor,
// and the built-in field templates that seed a fresh document.
//
// The registry is pure reference data with no mutation and no error paths:
// unknown categories or sections yield empty results so that consumers
// (classification UIs in particular) degrade gracefully when a stored name
// no longer matches the catalog. Runtime taxonomy extensions never mutate
// this package; they are tracked per document by the extension engine.
package taxonomy
