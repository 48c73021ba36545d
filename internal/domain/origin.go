package domain

import (
	"fmt"
	"net/netip"
)

// originLen is the fixed width of the persisted remote_origin column.
// IPv4 addresses occupy it in the IPv4-mapped IPv6 layout.
const originLen = 16

// OriginBytes returns the fixed 16-byte storage form of an address.
func OriginBytes(addr netip.Addr) ([]byte, error) {
	if !addr.IsValid() {
		return nil, fmt.Errorf("remote origin: %w", ErrUnsupportedAddrFamily)
	}
	b := addr.As16()
	return b[:], nil
}

// OriginFromBytes parses the 16-byte storage form back into an address.
// IPv4-mapped addresses are unmapped so "1.2.3.4" round-trips as IPv4.
func OriginFromBytes(b []byte) (netip.Addr, error) {
	if len(b) != originLen {
		return netip.Addr{}, fmt.Errorf("remote origin: want %d bytes, got %d", originLen, len(b))
	}
	var raw [16]byte
	copy(raw[:], b)
	return netip.AddrFrom16(raw).Unmap(), nil
}

// MaskOrigin coarsens an address for anonymization by clearing host bits of
// the 16-byte form: the low 16 bits of an IPv4 address, the low 80 bits of an
// IPv6 address (keeping the /48). Any other family is rejected with
// ErrUnsupportedAddrFamily.
func MaskOrigin(addr netip.Addr) (netip.Addr, error) {
	b := addr.As16()

	switch {
	case addr.Is4() || addr.Is4In6():
		b[14] = 0
		b[15] = 0
	case addr.Is6():
		for i := 6; i < originLen; i++ {
			b[i] = 0
		}
	default:
		return netip.Addr{}, fmt.Errorf("mask origin %q: %w", addr, ErrUnsupportedAddrFamily)
	}

	masked := netip.AddrFrom16(b)
	if addr.Is4() {
		masked = masked.Unmap()
	}
	return masked, nil
}
