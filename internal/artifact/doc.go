// Package artifact builds an artifact directory from a memo and an optional
// cluster config.
//
// The directory holds the normalized memo, the capacity report and a build
// summary. It is assembled in a temporary sibling directory and renamed into
// place, so an interrupted build never leaves a half-written artifact at the
// output path.
package artifact
