// ABOUTME: Version information for VocalForge
// ABOUTME: Single source of truth for product and version strings
package version

const (
	// Version is the current release
	Version = "0.3.0"

	// Product name shown by the CLI
	Product = "VocalForge"

	// Manufacturer identifies the publisher
	Manufacturer = "VocalForge"
)

// String returns the product and version, e.g. "VocalForge 0.3.0"
func String() string {
	return Product + " " + Version
}
