package resolver

import (
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Address hooks piggyback routing parameters on a bech32 address. The payload
// layout is:
//
//	magic(2) || len(base)(1) || base address bytes || RFC3986 query string
//
// The HRP is the base address's own prefix, so a hook still reads as an
// address of the settlement chain to anything that only checks the prefix.
var hookMagic = [2]byte{0x78, 0xf1}

// EncodeAddressHook packs a base address and query parameters into a hook.
func EncodeAddressHook(baseAddress string, query url.Values) (string, error) {
	hrp, _, err := bech32.DecodeNoLimit(baseAddress)
	if err != nil {
		return "", fmt.Errorf("decode base address: %w", err)
	}
	if len(baseAddress) > 255 {
		return "", fmt.Errorf("base address too long: %d bytes", len(baseAddress))
	}

	payload := make([]byte, 0, 3+len(baseAddress))
	payload = append(payload, hookMagic[0], hookMagic[1], byte(len(baseAddress)))
	payload = append(payload, baseAddress...)
	payload = append(payload, query.Encode()...)

	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert payload: %w", err)
	}
	return bech32.Encode(hrp, converted)
}

// DecodeAddressHook unpacks a hook into its base address and query parameters.
func DecodeAddressHook(hook string) (baseAddress string, query url.Values, err error) {
	_, data, err := bech32.DecodeNoLimit(hook)
	if err != nil {
		return "", nil, fmt.Errorf("decode hook: %w", err)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("convert payload: %w", err)
	}

	if len(payload) < 3 || payload[0] != hookMagic[0] || payload[1] != hookMagic[1] {
		return "", nil, fmt.Errorf("not an address hook")
	}
	baseLen := int(payload[2])
	if len(payload) < 3+baseLen {
		return "", nil, fmt.Errorf("truncated address hook")
	}

	baseAddress = string(payload[3 : 3+baseLen])
	query, err = url.ParseQuery(string(payload[3+baseLen:]))
	if err != nil {
		return "", nil, fmt.Errorf("parse hook query: %w", err)
	}
	return baseAddress, query, nil
}
