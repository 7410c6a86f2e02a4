package validator

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash/crc32"
	"net"
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
)

var (
	fqdnTLDRegex      = regexp.MustCompile(`(?i)^([a-z\x{00A1}-\x{00A8}\x{00AA}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}]{2,}|xn[a-z0-9-]{2,})$`)
	fqdnPartRegex     = regexp.MustCompile(`(?i)^[a-z_\x{00a1}-\x{ffff}0-9-]+$`)
	fullWidthASCII    = regexp.MustCompile(`[\x{ff01}-\x{ff5e}]`)
	allDigitsRegex    = regexp.MustCompile(`^\d+$`)
	whitespaceRegex   = regexp.MustCompile(`\s`)
	macNoSeparator    = regexp.MustCompile(`(?i)^[0-9a-f]{12}$`)
	macNoSeparatorEUI = regexp.MustCompile(`(?i)^[0-9a-f]{16}$`)
)

// HashAlgorithm names a digest whose hex encoding IsHash recognises.
type HashAlgorithm string

// Supported digest algorithms.
const (
	MD4       HashAlgorithm = "md4"
	MD5       HashAlgorithm = "md5"
	SHA1      HashAlgorithm = "sha1"
	SHA256    HashAlgorithm = "sha256"
	SHA384    HashAlgorithm = "sha384"
	SHA512    HashAlgorithm = "sha512"
	RIPEMD128 HashAlgorithm = "ripemd128"
	RIPEMD160 HashAlgorithm = "ripemd160"
	Tiger128  HashAlgorithm = "tiger128"
	Tiger160  HashAlgorithm = "tiger160"
	Tiger192  HashAlgorithm = "tiger192"
	CRC32     HashAlgorithm = "crc32"
	CRC32b    HashAlgorithm = "crc32b"
)

// digestSizes maps algorithms to their digest length in bytes.
var digestSizes = map[HashAlgorithm]int{
	MD4:       md4.Size,
	MD5:       md5.Size,
	SHA1:      sha1.Size,
	SHA256:    sha256.Size,
	SHA384:    sha512.Size384,
	SHA512:    sha512.Size,
	RIPEMD128: 16,
	RIPEMD160: ripemd160.Size,
	Tiger128:  16,
	Tiger160:  20,
	Tiger192:  24,
	CRC32:     crc32.Size,
	CRC32b:    crc32.Size,
}

// Validate reports an algorithm IsHash does not know.
func (a HashAlgorithm) Validate() error {
	if _, ok := digestSizes[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
	return nil
}

// IsHash reports whether str is the hex encoding of a digest produced by algorithm.
func IsHash(str string, algorithm HashAlgorithm) bool {
	size, ok := digestSizes[algorithm]
	if !ok || len(str) != size*2 {
		return false
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// IPVersion selects the address family accepted by IsIP and IsIPRange.
// Zero accepts both.
type IPVersion int

// Address families.
const (
	AnyIP IPVersion = 0
	IPv4  IPVersion = 4
	IPv6  IPVersion = 6
)

// Validate reports a version other than 0, 4 or 6.
func (v IPVersion) Validate() error {
	switch v {
	case AnyIP, IPv4, IPv6:
		return nil
	}
	return fmt.Errorf("%w: IP version %d", ErrUnsupportedVersion, int(v))
}

func (v IPVersion) accepts(addr netip.Addr) bool {
	switch v {
	case IPv4:
		return addr.Is4()
	case IPv6:
		return addr.Is6()
	case AnyIP:
		return true
	}
	return false
}

// IsIP reports whether str is an IP address of the requested version.
// IPv6 addresses may carry a zone.
func IsIP(str string, version IPVersion) bool {
	addr, err := netip.ParseAddr(str)
	if err != nil {
		return false
	}
	return version.accepts(addr)
}

// IsIPRange reports whether str is a CIDR block of the requested version.
func IsIPRange(str string, version IPVersion) bool {
	addr, bits, ok := strings.Cut(str, "/")
	if !ok || bits == "" || (len(bits) > 1 && bits[0] == '0') || !allDigitsRegex.MatchString(bits) {
		return false
	}
	prefix, err := netip.ParsePrefix(str)
	if err != nil {
		return false
	}
	return IsIP(addr, version) && version.accepts(prefix.Addr())
}

// FQDNOptions configures IsFQDN. The zero value requires a top-level domain
// and rejects underscores, trailing dots, numeric TLDs and wildcards.
type FQDNOptions struct {
	AllowMissingTLD  bool
	AllowUnderscores bool
	AllowTrailingDot bool
	AllowNumericTLD  bool
	AllowWildcard    bool
}

// IsFQDN reports whether str is a fully qualified domain name.
func IsFQDN(str string, opts FQDNOptions) bool {
	if opts.AllowTrailingDot {
		str = strings.TrimSuffix(str, ".")
	}
	if opts.AllowWildcard {
		str = strings.TrimPrefix(str, "*.")
	}
	if str == "" || len(str) > 253 {
		return false
	}

	parts := strings.Split(str, ".")
	tld := parts[len(parts)-1]

	if !opts.AllowMissingTLD {
		if len(parts) < 2 {
			return false
		}
		if !opts.AllowNumericTLD && !fqdnTLDRegex.MatchString(tld) {
			return false
		}
		if whitespaceRegex.MatchString(tld) {
			return false
		}
	}
	if !opts.AllowNumericTLD && allDigitsRegex.MatchString(tld) {
		return false
	}

	for _, part := range parts {
		if len(part) > 63 || !fqdnPartRegex.MatchString(part) {
			return false
		}
		if fullWidthASCII.MatchString(part) {
			return false
		}
		if strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
		if !opts.AllowUnderscores && strings.Contains(part, "_") {
			return false
		}
	}
	return true
}

// EmailOptions configures IsEmail. The zero value accepts a bare address
// with a top-level domain.
type EmailOptions struct {
	AllowDisplayName   bool
	RequireDisplayName bool
	AllowMissingTLD    bool
	AllowIPDomain      bool
	// BlacklistedChars are rejected anywhere in the local part.
	BlacklistedChars string
	// HostBlacklist rejects addresses at these domains (case-insensitive).
	HostBlacklist []string
}

// IsEmail reports whether str is an e-mail address.
func IsEmail(str string, opts EmailOptions) bool {
	if strings.TrimSpace(str) == "" || len(str) > 254 {
		return false
	}

	addr, err := mail.ParseAddress(str)
	if err != nil {
		return false
	}
	hasDisplay := addr.Address != str
	if hasDisplay && !(opts.AllowDisplayName || opts.RequireDisplayName) {
		return false
	}
	if opts.RequireDisplayName && (!hasDisplay || addr.Name == "") {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || len(local) > 64 {
		return false
	}
	if opts.BlacklistedChars != "" && strings.ContainsAny(local, opts.BlacklistedChars) {
		return false
	}
	lowerDomain := strings.ToLower(domain)
	for _, host := range opts.HostBlacklist {
		if strings.ToLower(host) == lowerDomain {
			return false
		}
	}

	if IsFQDN(domain, FQDNOptions{AllowMissingTLD: opts.AllowMissingTLD}) {
		return true
	}
	if !opts.AllowIPDomain {
		return false
	}
	if ip, ok := strings.CutPrefix(domain, "["); ok {
		ip = strings.TrimSuffix(ip, "]")
		ip = strings.TrimPrefix(ip, "IPv6:")
		return IsIP(ip, AnyIP)
	}
	return IsIP(domain, IPv4)
}

// URLOptions configures IsURL. The zero value requires an http, https or
// ftp scheme and a host.
type URLOptions struct {
	// Protocols overrides the accepted schemes.
	Protocols       []string
	AllowMissingTLD bool
	AllowLocalhost  bool
}

// IsURL reports whether str is an absolute URL with an accepted scheme and a
// valid host name or IP address.
func IsURL(str string, opts URLOptions) bool {
	if strings.TrimSpace(str) == "" || len(str) > 2083 || whitespaceRegex.MatchString(str) {
		return false
	}
	u, err := url.Parse(str)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	protocols := opts.Protocols
	if len(protocols) == 0 {
		protocols = []string{"http", "https", "ftp"}
	}
	if !slices.Contains(protocols, strings.ToLower(u.Scheme)) {
		return false
	}

	if port := u.Port(); port != "" && !IsPort(port) {
		return false
	}
	host := u.Hostname()
	switch {
	case IsIP(host, AnyIP):
		return true
	case opts.AllowLocalhost && strings.EqualFold(host, "localhost"):
		return true
	}
	return IsFQDN(host, FQDNOptions{AllowMissingTLD: opts.AllowMissingTLD, AllowUnderscores: true})
}

// MACOptions configures IsMACAddress.
type MACOptions struct {
	// NoSeparators accepts the bare 12 (or 16) hex digit form.
	NoSeparators bool
	// EUI64 accepts 64-bit addresses as well as 48-bit ones.
	EUI64 bool
}

// IsMACAddress reports whether str is a colon, hyphen or dot separated MAC address.
func IsMACAddress(str string, opts MACOptions) bool {
	if opts.NoSeparators {
		if macNoSeparator.MatchString(str) {
			return true
		}
		if opts.EUI64 && macNoSeparatorEUI.MatchString(str) {
			return true
		}
	}
	hw, err := net.ParseMAC(str)
	if err != nil {
		return false
	}
	switch len(hw) {
	case 6:
		return true
	case 8:
		return opts.EUI64
	}
	return false
}

// IsPort reports whether str is a decimal port number in [0, 65535].
func IsPort(str string) bool {
	if !intRegex.MatchString(str) {
		return false
	}
	n, err := strconv.ParseInt(str, 10, 32)
	return err == nil && n >= 0 && n <= 65535
}
