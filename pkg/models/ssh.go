package models

import "github.com/dorgan-csgroup/SafeScale/pkg/serialize"

// SSHConfig describes how to reach a host over SSH. Hosts on a private
// subnet are reached through the gateway config nested inside.
type SSHConfig struct {
	User       *string    `json:"user,omitempty"`
	Host       *string    `json:"host,omitempty"`
	Port       *int       `json:"port,omitempty"`
	PrivateKey *string    `json:"privateKey,omitempty"`
	Gateway    *SSHConfig `json:"gateway,omitempty"`
}

func SSHConfigFromMap(data map[string]any) (*SSHConfig, error) {
	config := &SSHConfig{}
	if err := serialize.Decode(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

func init() {
	serialize.ModelTypeRegistry.Register("SshConfig", func() any { return &SSHConfig{} })
}
