// Package constants centralizes shared literal values used across layers.
package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
