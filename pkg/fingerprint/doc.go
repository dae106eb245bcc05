// Package fingerprint ties content digesting and classification together
// into file-level records.
//
// A fingerprint is the pair every other imprint component works with: the
// uppercase SHA-256 hex digest of a file's bytes plus its heuristic content
// kind. Bytes, Reader, and File produce fingerprints from the three input
// shapes the tool meets; Scanner walks a directory tree and fingerprints
// everything in it, persisting records through a storage.Store.
//
// # Usage
//
//	rec, err := fingerprint.File("/etc/hosts")
//	if err != nil {
//		return err
//	}
//	log.Info("fingerprinted", "digest", rec.Digest, "kind", rec.Kind)
package fingerprint
