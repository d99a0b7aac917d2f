// Package naming provides the fixed file names used inside an artifact
// directory and the normalization applied to artifact names.
//
// Artifact names are lowercase alphanumerics separated by hyphens. They
// default to the memo file stem and fall back to "artifact" when nothing
// usable remains after normalization.
package naming
