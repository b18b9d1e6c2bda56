package domain

// ExtensionMapping binds a lowercase file extension to a resource type.
type ExtensionMapping struct {
	Extension    string `json:"extension"`
	ResourceType string `json:"resource_type"`
}

// ResourceTypeExtensions lists the extensions mapped to one resource type.
type ResourceTypeExtensions struct {
	ResourceType string   `json:"resource_type"`
	Extensions   []string `json:"extensions"`
}
