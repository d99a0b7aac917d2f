// Package bundle packages an artifact directory into a reproducible archive.
//
// A bundle holds every regular file under the directory, in bytewise order of
// its slash-separated relative path, followed by a MANIFEST.json entry that
// lists each file's path, size and SHA-256. Timestamps, modes and ownership
// are fixed, so the same directory contents and source date epoch always
// produce the same archive bytes.
//
// Two formats are supported: STORED zip and tar inside gzip.
package bundle
