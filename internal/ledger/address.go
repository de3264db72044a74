package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const addressEllipsis = "..."

// FormatAddress shortens an address to its first 6 and last 4 characters.
// Inputs shorter than 10 characters are returned unchanged.
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + addressEllipsis + address[len(address)-4:]
}

// ParseAddress accepts a hex address in any letter case.
func ParseAddress(s string) (common.Address, bool) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, false
	}
	return common.HexToAddress(s), true
}
