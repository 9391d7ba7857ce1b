package models

import "github.com/dorgan-csgroup/SafeScale/pkg/serialize"

// Network describes the parent network a subnet belongs to.
type Network struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	CIDR *string `json:"cidr,omitempty"`
}

func NetworkFromMap(data map[string]any) (*Network, error) {
	network := &Network{}
	if err := serialize.Decode(data, network); err != nil {
		return nil, err
	}

	return network, nil
}

func init() {
	serialize.ModelTypeRegistry.Register("Network", func() any { return &Network{} })
}
