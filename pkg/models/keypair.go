package models

import (
	"errors"
	"fmt"

	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
	"golang.org/x/crypto/ssh"
)

var ErrNoPublicKey = errors.New("no public key")

// KeyPair holds the SSH key material attached to a host.
type KeyPair struct {
	ID         *string `json:"id,omitempty"`
	Name       *string `json:"name,omitempty"`
	PrivateKey *string `json:"privateKey,omitempty"`
	PublicKey  *string `json:"publicKey,omitempty"`
}

func KeyPairFromMap(data map[string]any) (*KeyPair, error) {
	pair := &KeyPair{}
	if err := serialize.Decode(data, pair); err != nil {
		return nil, err
	}

	return pair, nil
}

// Fingerprint returns the SHA256 fingerprint of the public key. The public
// key must be set and hold a valid authorized_keys entry.
func (k KeyPair) Fingerprint() (string, error) {
	if k.PublicKey == nil {
		return "", ErrNoPublicKey
	}

	key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(*k.PublicKey))
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}

	return ssh.FingerprintSHA256(key), nil
}

func init() {
	serialize.ModelTypeRegistry.Register("KeyPair", func() any { return &KeyPair{} })
}
