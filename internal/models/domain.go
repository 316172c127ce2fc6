package models

import "time"

// Domain represents a single proxied domain and its backend wiring.
// Field names follow the on-disk domains.json format.
type Domain struct {
	Name         string `json:"name"`
	Port         int    `json:"port"`
	SSL          bool   `json:"ssl"`
	CustomConfig string `json:"custom_config,omitempty"`
	Wildcard     bool   `json:"wildcard,omitempty"`
	BackendIP    string `json:"backend_ip,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// NewDomain creates a domain with creation timestamps set.
func NewDomain(name string, port int, ssl bool) Domain {
	now := time.Now().Format(time.RFC3339)
	return Domain{
		Name:      name,
		Port:      port,
		SSL:       ssl,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
