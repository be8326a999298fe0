package version

// Version represents the current version of Quimera
const Version = "1.4.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "quimera version " + Version
}

// APIVersion returns just the version number for API responses
func APIVersion() string {
	return Version
}
