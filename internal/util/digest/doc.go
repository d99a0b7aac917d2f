// Package digest computes lowercase hex SHA-256 content digests.
//
// Digests depend only on byte content, never on paths or file metadata.
// File input is streamed in fixed-size chunks so memory use stays flat
// regardless of payload size.
package digest
