package base

import (
	"crypto/sha256"
	"errors"
	"math"

	"filippo.io/edwards25519"

	"github.com/cielu/go-solana-idl/common"
)

const (
	// MaxSeedLength Maximum length of derived pubkey seed.
	MaxSeedLength = 32
	// MaxSeeds Maximum number of seeds.
	MaxSeeds = 16
	// Number of bytes in a signature.
)

const PDA_MARKER = "ProgramDerivedAddress"

var ErrMaxSeedLengthExceeded = errors.New("Max seed length exceeded")

// CreateProgramAddress Create a program address.
// Ported from https://github.com/solana-labs/solana/blob/216983c50e0a618facc39aa07472ba6d23f1b33a/sdk/program/src/pubkey.rs#L204
func CreateProgramAddress(seeds [][]byte, programID common.Address) (common.Address, error) {
	if len(seeds) > MaxSeeds {
		return common.Address{}, ErrMaxSeedLengthExceeded
	}

	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return common.Address{}, ErrMaxSeedLengthExceeded
		}
	}

	var buf []byte
	for _, seed := range seeds {
		buf = append(buf, seed...)
	}

	buf = append(buf, programID[:]...)
	buf = append(buf, []byte(PDA_MARKER)...)
	hash := sha256.Sum256(buf)

	if IsOnCurve(hash[:]) {
		return common.Address{}, errors.New("invalid seeds; address must fall off the curve")
	}

	return common.BytesToAddress(hash[:]), nil
}

// IsOnCurve reports whether b is the canonical or near-canonical encoding
// of a point on the edwards25519 curve. A program-derived address must
// fall OFF the curve, so CreateProgramAddress rejects any seed/bump
// combination for which this returns true.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// FindProgramAddress Find a valid program address and its corresponding bump seed.
func FindProgramAddress(seed [][]byte, programID common.Address) (common.Address, uint8, error) {
	var address common.Address
	var err error
	bumpSeed := uint8(math.MaxUint8)
	for bumpSeed != 0 {
		address, err = CreateProgramAddress(append(seed, []byte{bumpSeed}), programID)
		if err == nil {
			return address, bumpSeed, nil
		}
		bumpSeed--
	}
	return common.Address{}, bumpSeed, errors.New("unable to find a valid program address")
}

// MaxSeedStringLength is the maximum length, in bytes, of the seed string
// accepted by CreateAddressWithSeed.
const MaxSeedStringLength = 32

// CreateAddressWithSeed derives an address the way Pubkey::create_with_seed
// does: sha256(base || seed || owner). Unlike CreateProgramAddress/
// FindProgramAddress (program-derived addresses, which must fall off the
// curve), the result here is never checked against the curve - it is a
// deterministic hash, not a PDA.
func CreateAddressWithSeed(base common.Address, seed string, owner common.Address) (common.Address, error) {
	if len(seed) > MaxSeedStringLength {
		return common.Address{}, ErrMaxSeedLengthExceeded
	}

	var buf []byte
	buf = append(buf, base[:]...)
	buf = append(buf, []byte(seed)...)
	buf = append(buf, owner[:]...)
	hash := sha256.Sum256(buf)

	return common.BytesToAddress(hash[:]), nil
}

func FindAssociatedTokenAddress(account common.Address, mint common.Address, options ...common.Address) (common.Address, uint8, error) {
	return FindAssociatedTokenAddressAndBumpSeed(account, mint, SPLAssociatedTokenAccountProgramID, options...)
}

func FindAssociatedTokenAddressAndBumpSeed(account common.Address, splTokenMintAddress common.Address, programID common.Address, options ...common.Address) (common.Address, uint8, error) {
	tokenProgramID := TokenProgramID
	if len(options) > 0 && options[0] == Token2022ProgramID {
		tokenProgramID = Token2022ProgramID
	}
	return FindProgramAddress([][]byte{account[:], tokenProgramID[:], splTokenMintAddress[:]}, programID)
}
