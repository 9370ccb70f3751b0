package ethaddr

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// SeedSize is the number of raw bytes drawn from the CSPRNG.
	SeedSize = 32
	// PrivateKeySize is the size of a secp256k1 private key in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an uncompressed public key with the
	// format byte stripped.
	PublicKeySize = 64
	// AddressSize is the size of an Ethereum address in bytes.
	AddressSize = 20

	// DefaultMaxAttempts bounds the internal retry loop in Generate.
	// Invalid scalars are astronomically unlikely, so this ceiling only
	// exists to turn a persistently broken RNG into an error instead of
	// an infinite loop.
	DefaultMaxAttempts = 10
)

// PrivateKey is a secp256k1 private key scalar.
type PrivateKey [PrivateKeySize]byte

// Hex returns the private key as a lowercase hex string (no 0x prefix).
func (k PrivateKey) Hex() string { return hex.EncodeToString(k[:]) }

// PublicKey is an uncompressed secp256k1 public key (X||Y) with the
// leading format byte stripped, as used by the Ethereum yellow paper.
type PublicKey [PublicKeySize]byte

// Hex returns the public key as a lowercase hex string (no 0x prefix).
func (k PublicKey) Hex() string { return hex.EncodeToString(k[:]) }

// Address is a 20-byte Ethereum address.
type Address [AddressSize]byte

// Hex returns the address as a lowercase hex string with 0x prefix.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// Keypair is the result of one generation: a private key, the public key
// derived from it, and the corresponding Ethereum address.
type Keypair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
	Address    Address
}

// Generator produces random keypairs. The zero value is usable; fields
// left unset fall back to crypto/rand and DefaultMaxAttempts.
type Generator struct {
	// Rand is the entropy source. Defaults to crypto/rand.Reader.
	Rand io.Reader
	// MaxAttempts bounds the retry loop on invalid scalars.
	MaxAttempts int

	// keyFromSeed turns a raw seed into a private key candidate.
	// Overridden in tests to force invalid scalars.
	keyFromSeed func(seed []byte) []byte
}

// NewGenerator returns a Generator with default entropy source and retry
// budget.
func NewGenerator() *Generator {
	return &Generator{}
}

var defaultGenerator = NewGenerator()

// Generate produces one random keypair using the default generator.
func Generate() (*Keypair, error) {
	return defaultGenerator.Generate()
}

// Generate draws fresh entropy and derives a keypair from it.
// It retries with fresh entropy when the derived scalar is invalid, up to
// MaxAttempts, and returns ErrKeyDerivationFailed once the budget is spent.
// Entropy read failures are fatal and returned immediately.
func (g *Generator) Generate() (*Keypair, error) {
	for attempt := 0; attempt < g.maxAttempts(); attempt++ {
		// 1. Draw 32 random bytes from the secure random source
		seed := make([]byte, SeedSize)
		if _, err := io.ReadFull(g.reader(), seed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}

		// 2. Whiten the raw entropy: the private key is the Keccak-256
		// hash of the seed rather than the seed itself, so weak or
		// biased raw entropy never reaches the curve directly
		privateKey := g.deriveKey(seed)

		// 3-5. Derive the public key and address
		keypair, err := DeriveKeypair(privateKey)
		if errors.Is(err, ErrInvalidScalar) {
			// Invalid scalars are independent across draws; redraw
			continue
		}
		if err != nil {
			return nil, err
		}
		return keypair, nil
	}
	return nil, ErrKeyDerivationFailed
}

// DeriveKeypair derives the public key and Ethereum address for a 32-byte
// private key. It returns ErrInvalidScalar when the key is zero, negative,
// or not below the secp256k1 group order. The derivation is deterministic:
// the same private key always yields the same public key and address.
func DeriveKeypair(privateKey []byte) (*Keypair, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d",
			ErrInvalidScalar, PrivateKeySize, len(privateKey))
	}

	// 3. Check the scalar range and compute the public curve point.
	// ToECDSA rejects zero and anything >= the group order.
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}

	// 4. Serialize the point uncompressed (0x04 || X || Y, 65 bytes) and
	// strip the leading format byte to get the 64-byte public key
	publicKey := crypto.FromECDSAPub(&key.PublicKey)[1:]

	// 5. The address is the low-order 20 bytes of the Keccak-256 hash
	// of the public key
	hash := crypto.Keccak256(publicKey)

	keypair := &Keypair{}
	copy(keypair.PrivateKey[:], privateKey)
	copy(keypair.PublicKey[:], publicKey)
	copy(keypair.Address[:], hash[len(hash)-AddressSize:])
	return keypair, nil
}

func (g *Generator) reader() io.Reader {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.Reader
}

func (g *Generator) maxAttempts() int {
	if g.MaxAttempts > 0 {
		return g.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (g *Generator) deriveKey(seed []byte) []byte {
	if g.keyFromSeed != nil {
		return g.keyFromSeed(seed)
	}
	return crypto.Keccak256(seed)
}
