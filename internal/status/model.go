// Package status provides health information collection and display for the
// Ghostline doctor report.
package status

// Data contains all the information to display in the doctor report.
type Data struct {
	// Header
	Version   string
	GitCommit string
	BuildTime string

	// Configuration
	ConfigPath   string
	ConfigExists bool
	ConfigValid  bool
	ConfigErrors []string

	// Model
	Provider  string
	Model     string
	Endpoint  string
	APIKeySet bool
	TimeoutMS uint64

	// Trigger
	AutoDelayMS uint32

	// Privacy
	Sanitize       bool
	BlockDangerous bool

	// Context
	IncludeCwdListing bool

	// Log
	LogLevel string
}
