package models

import (
	"fmt"

	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
)

// Subnet describes a network subnet resource.
type Subnet struct {
	ID         *string      `json:"id,omitempty"`
	Name       *string      `json:"name,omitempty"`
	CIDR       *string      `json:"cidr,omitempty"`
	GatewayIDs []string     `json:"gatewayIds,omitempty"`
	VirtualIP  *VirtualIP   `json:"virtualIp,omitempty"`
	Failover   *bool        `json:"failover,omitempty"`
	State      *SubnetState `json:"state,omitempty"`
	NetworkID  *string      `json:"networkId,omitempty"`
}

func SubnetFromMap(data map[string]any) (*Subnet, error) {
	subnet := &Subnet{}
	if err := serialize.Decode(data, subnet); err != nil {
		return nil, err
	}

	return subnet, nil
}

// VirtualIP describes a floating address that can migrate between the
// gateways of a subnet.
type VirtualIP struct {
	ID        *string `json:"id,omitempty"`
	NetworkID *string `json:"networkId,omitempty"`
	PrivateIP *string `json:"privateIp,omitempty"`
	PublicIP  *string `json:"publicIp,omitempty"`
}

func VirtualIPFromMap(data map[string]any) (*VirtualIP, error) {
	vip := &VirtualIP{}
	if err := serialize.Decode(data, vip); err != nil {
		return nil, err
	}

	return vip, nil
}

// SubnetState describes where a subnet is in its lifecycle.
type SubnetState int

const (
	SubnetStateUnknown SubnetState = iota
	SubnetStateGatewayCreation
	SubnetStateGatewayConfiguration
	SubnetStateReady
	SubnetStateError
)

var subnetStateText = map[SubnetState]string{
	SubnetStateUnknown:              "UNKNOWN",
	SubnetStateGatewayCreation:      "GATEWAY_CREATION",
	SubnetStateGatewayConfiguration: "GATEWAY_CONFIGURATION",
	SubnetStateReady:                "READY",
	SubnetStateError:                "ERROR",
}

func (s SubnetState) String() string {
	if text, ok := subnetStateText[s]; ok {
		return text
	}

	return fmt.Sprintf("SubnetState(%d)", int(s))
}

func (s SubnetState) MarshalText() ([]byte, error) {
	text, ok := subnetStateText[s]
	if !ok {
		return nil, fmt.Errorf("invalid subnet state %d", int(s))
	}

	return []byte(text), nil
}

func (s *SubnetState) UnmarshalText(text []byte) error {
	for state, name := range subnetStateText {
		if name == string(text) {
			*s = state
			return nil
		}
	}

	return fmt.Errorf("invalid subnet state %q", string(text))
}

func init() {
	serialize.ModelTypeRegistry.Register("Subnet", func() any { return &Subnet{} })
	serialize.ModelTypeRegistry.Register("VirtualIp", func() any { return &VirtualIP{} })
}
