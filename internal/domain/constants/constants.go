// Package constants holds identifiers shared across configuration and wiring.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event transport providers
const (
	PubSubProviderInProcess = "inprocess"
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
)

// Delivery channel providers
const (
	DeliveryProviderTelegram = "telegram"
	DeliveryProviderFirebase = "firebase"
	DeliveryProviderWebhook  = "webhook"
)
