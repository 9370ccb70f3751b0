package ethaddr

import "errors"

// Sentinel errors - generation
var (
	// ErrEntropyUnavailable means the system's secure random source could
	// not supply bytes. It is fatal and never retried.
	ErrEntropyUnavailable = errors.New("ethaddr: entropy source unavailable")

	// ErrInvalidScalar means a candidate private key is zero or not below
	// the secp256k1 group order. Generate recovers from it internally by
	// redrawing entropy; it only escapes from DeriveKeypair.
	ErrInvalidScalar = errors.New("ethaddr: private key is not a valid secp256k1 scalar")

	// ErrKeyDerivationFailed means the retry budget was exhausted without
	// producing a valid scalar.
	ErrKeyDerivationFailed = errors.New("ethaddr: key derivation retry budget exhausted")
)

// Sentinel errors - batch
var (
	ErrBatchLimitExceeded = errors.New("ethaddr: batch count exceeds configured limit")
	ErrInvalidConfig      = errors.New("ethaddr: invalid configuration")
)
