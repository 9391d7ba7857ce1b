package models

import (
	"fmt"

	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
)

// VolumeDefinition describes a block storage volume.
type VolumeDefinition struct {
	ID    *string      `json:"id,omitempty"`
	Name  *string      `json:"name,omitempty"`
	Size  *int         `json:"size,omitempty"`
	Speed *VolumeSpeed `json:"speed,omitempty"`
}

func VolumeDefinitionFromMap(data map[string]any) (*VolumeDefinition, error) {
	volume := &VolumeDefinition{}
	if err := serialize.Decode(data, volume); err != nil {
		return nil, err
	}

	return volume, nil
}

// VolumeAttachment describes where a volume is mounted on a host.
type VolumeAttachment struct {
	Volume    *Reference `json:"volume,omitempty"`
	Host      *Reference `json:"host,omitempty"`
	MountPath *string    `json:"mountPath,omitempty"`
	Device    *string    `json:"device,omitempty"`
	Format    *string    `json:"format,omitempty"`
}

func VolumeAttachmentFromMap(data map[string]any) (*VolumeAttachment, error) {
	attachment := &VolumeAttachment{}
	if err := serialize.Decode(data, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

// VolumeSpeed ranks the storage performance class of a volume.
type VolumeSpeed int

const (
	VolumeSpeedCold VolumeSpeed = iota
	VolumeSpeedHDD
	VolumeSpeedSSD
)

var volumeSpeedText = map[VolumeSpeed]string{
	VolumeSpeedCold: "COLD",
	VolumeSpeedHDD:  "HDD",
	VolumeSpeedSSD:  "SSD",
}

func (s VolumeSpeed) String() string {
	if text, ok := volumeSpeedText[s]; ok {
		return text
	}

	return fmt.Sprintf("VolumeSpeed(%d)", int(s))
}

func (s VolumeSpeed) MarshalText() ([]byte, error) {
	text, ok := volumeSpeedText[s]
	if !ok {
		return nil, fmt.Errorf("invalid volume speed %d", int(s))
	}

	return []byte(text), nil
}

func (s *VolumeSpeed) UnmarshalText(text []byte) error {
	for speed, name := range volumeSpeedText {
		if name == string(text) {
			*s = speed
			return nil
		}
	}

	return fmt.Errorf("invalid volume speed %q", string(text))
}

func init() {
	serialize.ModelTypeRegistry.Register("VolumeDefinition", func() any { return &VolumeDefinition{} })
	serialize.ModelTypeRegistry.Register("VolumeAttachment", func() any { return &VolumeAttachment{} })
}
