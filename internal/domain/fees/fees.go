// Package fees provides pure, stateless fee split accounting.
//
// Fee values are bookkeeping integers in wei. Nothing is ever transferred;
// the addresses below are labels carried through reports and exports.
package fees

import "math/big"

// Basis point configuration for the operator/treasury split.
const (
	BPSDenominator = 10000
	OperatorFeeBPS = 80 // 0.8%
)

// Bookkeeping addresses. Never used for transfers.
const (
	TreasuryAddress = "0x7c2E4A6b8D0f2a4C6e8F0b2D4a6C8e0F2a4B6d8"
	OperatorAddress = "0x8d3F5B7c9E1a3C5e7F9b1D3e5F7a9C1e3F5b7D9"
	VaultSeedHex    = "0x1b4e7a9c2d5f8b0e3a6c9d2f5b8e1a4c7d0f3b6e9"
)

var (
	bpsDenom    = big.NewInt(BPSDenominator)
	operatorBPS = big.NewInt(OperatorFeeBPS)
)

// OperatorShare returns floor(total * OperatorFeeBPS / BPSDenominator).
// The input is not modified.
func OperatorShare(total *big.Int) *big.Int {
	share := new(big.Int).Mul(total, operatorBPS)
	return share.Quo(share, bpsDenom)
}

// TreasuryShare returns the remainder after the operator share.
func TreasuryShare(total *big.Int) *big.Int {
	return new(big.Int).Sub(total, OperatorShare(total))
}

// Split returns both shares at once. For any non-negative total,
// operator + treasury == total holds exactly.
func Split(total *big.Int) (operator, treasury *big.Int) {
	operator = OperatorShare(total)
	treasury = new(big.Int).Sub(total, operator)
	return operator, treasury
}
