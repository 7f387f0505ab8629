// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvTest       = "test"
	EnvProduction = "production"
)

// Event publishing providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// PaystackSignatureHeader carries the hex HMAC-SHA512 of a webhook body.
const PaystackSignatureHeader = "x-paystack-signature"
