// ABOUTME: Version and product identification constants
// ABOUTME: Reported by the CLI and in mDNS TXT records
package version

const (
	// Version is the sketchsound release
	Version = "0.3.0"

	// Product is the human readable product name
	Product = "sketchsound"

	// Manufacturer identifies the maintainers
	Manufacturer = "Sendspin"
)
