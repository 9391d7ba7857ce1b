package models

import "github.com/dorgan-csgroup/SafeScale/pkg/serialize"

// ShareDefinition describes an exported filesystem share.
type ShareDefinition struct {
	ID      *string    `json:"id,omitempty"`
	Name    *string    `json:"name,omitempty"`
	Host    *Reference `json:"host,omitempty"`
	Path    *string    `json:"path,omitempty"`
	Type    *string    `json:"type,omitempty"`
	Options *string    `json:"options,omitempty"`
}

func ShareDefinitionFromMap(data map[string]any) (*ShareDefinition, error) {
	share := &ShareDefinition{}
	if err := serialize.Decode(data, share); err != nil {
		return nil, err
	}

	return share, nil
}

// ShareMountDefinition describes one mount of a share on a host.
type ShareMountDefinition struct {
	Share   *Reference `json:"share,omitempty"`
	Host    *Reference `json:"host,omitempty"`
	Path    *string    `json:"path,omitempty"`
	Type    *string    `json:"type,omitempty"`
	Options *string    `json:"options,omitempty"`
}

func ShareMountDefinitionFromMap(data map[string]any) (*ShareMountDefinition, error) {
	mount := &ShareMountDefinition{}
	if err := serialize.Decode(data, mount); err != nil {
		return nil, err
	}

	return mount, nil
}

// ShareMountList associates a share with its mounts, in wire payload order.
type ShareMountList struct {
	Share     *ShareDefinition       `json:"share,omitempty"`
	MountList []ShareMountDefinition `json:"mountList,omitempty"`
}

func ShareMountListFromMap(data map[string]any) (*ShareMountList, error) {
	list := &ShareMountList{}
	if err := serialize.Decode(data, list); err != nil {
		return nil, err
	}

	return list, nil
}

func init() {
	serialize.ModelTypeRegistry.Register("ShareDefinition", func() any { return &ShareDefinition{} })
	serialize.ModelTypeRegistry.Register("ShareMountDefinition", func() any { return &ShareMountDefinition{} })
	serialize.ModelTypeRegistry.Register("ShareMountList", func() any { return &ShareMountList{} })
}
