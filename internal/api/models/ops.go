package models

// Health is the liveness/readiness check response.
type Health struct {
	Status  HealthStatus           `json:"status"`
	Time    Timestamp              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// CatalogStatus describes the currently loaded exercise catalog snapshot.
type CatalogStatus struct {
	// Source names the catalog source that produced the snapshot.
	Source string `json:"source"`

	// Exercises is the number of normalized records in the snapshot.
	Exercises int `json:"exercises"`

	// LoadedAt is when the snapshot was built.
	LoadedAt Timestamp `json:"loadedAt"`

	// Degraded is true when the built-in sample catalog is serving.
	Degraded bool `json:"degraded"`
}

// ClassifierStatus describes the classification model state.
type ClassifierStatus struct {
	// Available is false when the model failed to load at startup.
	Available bool `json:"available"`

	// Classes lists the model's output labels when available.
	Classes []string `json:"classes,omitempty"`
}

// ProviderStatus describes the health of an external provider.
type ProviderStatus struct {
	Provider     string       `json:"provider"`
	Status       HealthStatus `json:"status"`
	CircuitState string       `json:"circuitState,omitempty"`
	LastError    string       `json:"lastError,omitempty"`
}

// SystemStatus is the ops status response.
type SystemStatus struct {
	Status     HealthStatus     `json:"status"`
	Time       Timestamp        `json:"time"`
	Catalog    CatalogStatus    `json:"catalog"`
	Classifier ClassifierStatus `json:"classifier"`
	Providers  []ProviderStatus `json:"providers,omitempty"`
}
