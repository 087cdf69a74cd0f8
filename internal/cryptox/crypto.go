// Package cryptox holds the symmetric codec used for client-side storage and
// the password hashing used by the backend.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/railticket/internal/common"
	"golang.org/x/crypto/argon2"
)

var (
	// ErrSerialization means the value handed to Encrypt cannot be marshaled.
	// It indicates a programming error and is never swallowed.
	ErrSerialization = errors.New("value is not serializable")

	// ErrDecryption covers every way a ciphertext can fail to yield a value:
	// bad encoding, truncated input, wrong or rotated secret, invalid payload.
	ErrDecryption = errors.New("ciphertext cannot be decrypted")

	// ErrEmptySecret is returned by NewCodec when no key material is given.
	ErrEmptySecret = errors.New("secret is empty")
)

const nonceSize = 12

// codecSalt separates codec keys from any other argon2 use of the same secret.
var codecSalt = []byte("railticket/session-store/v1")

// DeriveMasterKey stretches secret material into a 32-byte AES-256 key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// Codec turns serializable values into opaque ciphertext strings and back.
//
// Encryption is AES-256-GCM with a fresh random nonce per call. The string
// form is the standard base64 encoding of nonce||ciphertext. A Codec is safe
// for concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec derives the codec key from secret. The secret itself is not kept.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	key := DeriveMasterKey(secret, codecSalt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{aead: aead}, nil
}

// Encrypt serializes v to JSON and seals it.
//
// A marshaling failure is returned wrapped in ErrSerialization.
//
// Example:
//
//	codec, err := cryptox.NewCodec([]byte(cfg.Secret))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ct, err := codec.Encrypt("8b0f3c4e-...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var token string
//	if err := codec.Decrypt(ct, &token); err != nil {
//	    // treat as "no stored value"
//	}
func (c *Codec) Encrypt(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	defer common.WipeByteArray(plaintext)

	nonce := common.GenerateRandByteArray(nonceSize)

	// nonce is the prefix of the sealed output
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens ciphertext and unmarshals the payload into v.
// Any failure yields ErrDecryption and leaves no side effects besides a
// possibly partially populated v.
func (c *Codec) Decrypt(ciphertext string, v any) error {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return ErrDecryption
	}
	if len(raw) < nonceSize+c.aead.Overhead() {
		return ErrDecryption
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return ErrDecryption
	}
	defer common.WipeByteArray(plaintext)

	if err := json.Unmarshal(plaintext, v); err != nil {
		return ErrDecryption
	}
	return nil
}
