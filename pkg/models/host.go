package models

import (
	"fmt"

	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
)

// HostTemplate describes a compute host sizing profile offered by a provider.
type HostTemplate struct {
	ID       *string `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Cores    *int    `json:"cores,omitempty"`
	RAM      *int    `json:"ram,omitempty"`
	Disk     *int    `json:"disk,omitempty"`
	GPUCount *int    `json:"gpuCount,omitempty"`
	GPUType  *string `json:"gpuType,omitempty"`
}

func HostTemplateFromMap(data map[string]any) (*HostTemplate, error) {
	template := &HostTemplate{}
	if err := serialize.Decode(data, template); err != nil {
		return nil, err
	}

	return template, nil
}

// Host describes a provisioned compute host.
type Host struct {
	ID         *string    `json:"id,omitempty"`
	Name       *string    `json:"name,omitempty"`
	CPU        *int       `json:"cpu,omitempty"`
	RAM        *int       `json:"ram,omitempty"`
	Disk       *int       `json:"disk,omitempty"`
	PublicIP   *string    `json:"publicIp,omitempty"`
	PrivateIP  *string    `json:"privateIp,omitempty"`
	PrivateKey *string    `json:"privateKey,omitempty"`
	GatewayID  *string    `json:"gatewayId,omitempty"`
	State      *HostState `json:"state,omitempty"`
}

func HostFromMap(data map[string]any) (*Host, error) {
	host := &Host{}
	if err := serialize.Decode(data, host); err != nil {
		return nil, err
	}

	return host, nil
}

// HostState describes the power state of a host.
type HostState int

const (
	HostStateStopped HostState = iota
	HostStateStarting
	HostStateStarted
	HostStateStopping
	HostStateError
)

var hostStateText = map[HostState]string{
	HostStateStopped:  "STOPPED",
	HostStateStarting: "STARTING",
	HostStateStarted:  "STARTED",
	HostStateStopping: "STOPPING",
	HostStateError:    "ERROR",
}

func (s HostState) String() string {
	if text, ok := hostStateText[s]; ok {
		return text
	}

	return fmt.Sprintf("HostState(%d)", int(s))
}

func (s HostState) MarshalText() ([]byte, error) {
	text, ok := hostStateText[s]
	if !ok {
		return nil, fmt.Errorf("invalid host state %d", int(s))
	}

	return []byte(text), nil
}

func (s *HostState) UnmarshalText(text []byte) error {
	for state, name := range hostStateText {
		if name == string(text) {
			*s = state
			return nil
		}
	}

	return fmt.Errorf("invalid host state %q", string(text))
}

func init() {
	serialize.ModelTypeRegistry.Register("HostTemplate", func() any { return &HostTemplate{} })
	serialize.ModelTypeRegistry.Register("Host", func() any { return &Host{} })
}
