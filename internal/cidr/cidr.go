package cidr

import (
	"fmt"
	"net/netip"

	"github.com/MKhiriev/cidr-viewer/models"
)

const (
	msgInvalidFormat = "Invalid CIDR format: %v"
	msgInvalidMask   = "Invalid subnet mask"
	msgIPv6          = "IPv6 ranges are not supported"
)

// ParseCIDR parses an IPv4 CIDR block. Host bits are allowed and masked off;
// surrounding whitespace is not. The result is never an error: invalid input yields Valid == false with
// ErrorMsg set.
func ParseCIDR(s string) models.CIDRRange {
	r := models.CIDRRange{Original: s}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		r.ErrorMsg = fmt.Sprintf(msgInvalidFormat, err)
		return r
	}
	if !prefix.Addr().Is4() {
		r.ErrorMsg = fmt.Sprintf(msgInvalidFormat, msgIPv6)
		return r
	}

	prefix = prefix.Masked()
	start, end := bounds(prefix)

	r.Network = prefix.Addr().String()
	r.Mask = uint32ToAddr(maskBits(prefix.Bits())).String()
	r.Broadcast = uint32ToAddr(end).String()

	if prefix.Bits() == 0 {
		r.ErrorMsg = msgInvalidMask
		return r
	}

	r.TotalIPs = int(end - start + 1)
	r.UsableIPs = r.TotalIPs - 2
	if r.TotalIPs <= 2 {
		r.UsableIPs = 0
	}
	r.Valid = true

	return r
}

// prefixOf re-parses a valid range.
func prefixOf(r models.CIDRRange) (netip.Prefix, bool) {
	if !r.Valid {
		return netip.Prefix{}, false
	}

	prefix, err := netip.ParsePrefix(r.Original)
	if err != nil || !prefix.Addr().Is4() || prefix.Bits() == 0 {
		return netip.Prefix{}, false
	}

	return prefix.Masked(), true
}

// bounds returns the first and last address of an IPv4 prefix.
func bounds(prefix netip.Prefix) (uint32, uint32) {
	start := addrToUint32(prefix.Masked().Addr())
	return start, start | ^maskBits(prefix.Bits())
}

func maskBits(ones int) uint32 {
	if ones <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - ones)
}

func addrToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func uint32ToAddr(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
