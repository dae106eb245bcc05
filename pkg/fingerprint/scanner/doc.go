// Package scanner walks directory trees and fingerprints their files.
//
// A Scanner reads its walk rules (extension filter, hidden-entry skipping,
// size cap) from configuration, fans file paths out to a bounded worker
// pool, and upserts one fingerprint record per file into a storage.Store.
// Each run is identified by a scan UUID and summarized in a ScanSummary.
package scanner
