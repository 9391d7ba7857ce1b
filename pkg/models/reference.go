package models

import "github.com/dorgan-csgroup/SafeScale/pkg/serialize"

// Reference points at another entity by id, by name, or both.
type Reference struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

func ReferenceFromMap(data map[string]any) (*Reference, error) {
	reference := &Reference{}
	if err := serialize.Decode(data, reference); err != nil {
		return nil, err
	}

	return reference, nil
}

// Image describes an OS image available on a tenant.
type Image struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

func ImageFromMap(data map[string]any) (*Image, error) {
	image := &Image{}
	if err := serialize.Decode(data, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Tenant names a configured provider account.
type Tenant struct {
	Name     *string `json:"name,omitempty"`
	Provider *string `json:"provider,omitempty"`
}

func TenantFromMap(data map[string]any) (*Tenant, error) {
	tenant := &Tenant{}
	if err := serialize.Decode(data, tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

func init() {
	serialize.ModelTypeRegistry.Register("Reference", func() any { return &Reference{} })
	serialize.ModelTypeRegistry.Register("Image", func() any { return &Image{} })
	serialize.ModelTypeRegistry.Register("Tenant", func() any { return &Tenant{} })
}
