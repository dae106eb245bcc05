// Imprint fingerprints and classifies file content.
//
// It computes SHA-256 hex digests, sniffs content shape (JSON, XML/HTML,
// text, binary), and keeps an SQLite catalog of fingerprints for whole
// directory trees, optionally watching them for changes.
//
// Usage:
//
//	# Digest files or stdin
//	imprint hash report.json
//	cat payload | imprint hash
//
//	# Classify content shape
//	imprint classify --mime response.bin
//
//	# Fingerprint a directory tree into the catalog
//	imprint scan /var/data
//
//	# List cataloged fingerprints
//	imprint report --kind json --limit 50
//
//	# Watch a tree and keep the catalog current
//	imprint watch /var/data --config imprint.yaml
//
//	# Show version information
//	imprint version
package main

func main() {
	Execute()
}
