package validator

import (
	"regexp"
	"strings"
)

var (
	base32Regex        = regexp.MustCompile(`^[A-Z2-7]+=*$`)
	base58Regex        = regexp.MustCompile(`^[A-HJ-NP-Za-km-z1-9]+$`)
	base64Chars        = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	base64URLSafeRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]*$`)

	mimeTypeSimple    = regexp.MustCompile(`(?i)^(application|audio|font|image|message|model|multipart|text|video)/[a-zA-Z0-9\.\-\+_]{1,100}$`)
	mimeTypeText      = regexp.MustCompile(`(?i)^text/[a-zA-Z0-9\.\-\+]{1,100};\s?charset=("[a-zA-Z0-9\.\-\+\s]{0,70}"|[a-zA-Z0-9\.\-\+]{0,70})(\s?\([a-zA-Z0-9\.\-\+\s]{1,20}\))?$`)
	mimeTypeMultipart = regexp.MustCompile(`(?i)^multipart/[a-zA-Z0-9\.\-\+]{1,100}(;\s?(boundary|charset)=("[a-zA-Z0-9\.\-\+\s]{0,70}"|[a-zA-Z0-9\.\-\+]{0,70})(\s?\([a-zA-Z0-9\.\-\+\s]{1,20}\))?){0,2}$`)

	dataURIMediaType = regexp.MustCompile(`(?i)^[a-z]+/[a-z0-9\-\+\._]+$`)
	dataURIAttribute = regexp.MustCompile(`(?i)^[a-z\-]+=[a-z0-9\-]+$`)
	dataURIPayload   = regexp.MustCompile(`(?i)^[a-z0-9!\$&'\(\)\*\+,;=\-\._~:@/\?%\s]*$`)
)

// IsBase32 reports whether str is padded RFC 4648 base32.
func IsBase32(str string) bool {
	return len(str)%8 == 0 && base32Regex.MatchString(str)
}

// IsBase58 reports whether str uses only the bitcoin base58 alphabet.
func IsBase58(str string) bool {
	return base58Regex.MatchString(str)
}

// Base64Options configures IsBase64.
type Base64Options struct {
	// URLSafe switches to the unpadded URL and filename safe alphabet.
	URLSafe bool
}

// IsBase64 reports whether str is standard padded base64, or URL safe
// base64 when opts.URLSafe is set. The empty string is rejected.
func IsBase64(str string, opts Base64Options) bool {
	if str == "" {
		return false
	}
	if opts.URLSafe {
		return base64URLSafeRegex.MatchString(str)
	}
	n := len(str)
	if n%4 != 0 || !base64Chars.MatchString(str) {
		return false
	}
	pad := strings.IndexByte(str, '=')
	return pad == -1 || pad == n-1 || (pad == n-2 && str[n-1] == '=')
}

// IsDataURI reports whether str is an RFC 2397 data URI. A ";base64" payload
// must itself be valid base64.
func IsDataURI(str string) bool {
	rest, ok := strings.CutPrefix(str, "data:")
	if !ok {
		return false
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return false
	}
	attrs := strings.Split(strings.TrimSpace(header), ";")
	if mediaType := attrs[0]; mediaType != "" && !dataURIMediaType.MatchString(mediaType) {
		return false
	}
	isBase64 := false
	for i, attr := range attrs[1:] {
		if i == len(attrs)-2 && strings.EqualFold(attr, "base64") {
			isBase64 = true
			continue
		}
		if !dataURIAttribute.MatchString(attr) {
			return false
		}
	}
	if isBase64 {
		return IsBase64(payload, Base64Options{})
	}
	return dataURIPayload.MatchString(payload)
}

// IsMimeType reports whether str is a MIME type, optionally with charset or
// boundary parameters for text and multipart types.
func IsMimeType(str string) bool {
	return mimeTypeSimple.MatchString(str) ||
		mimeTypeText.MatchString(str) ||
		mimeTypeMultipart.MatchString(str)
}

// IsJWT reports whether str has the three dot-separated base64url segments
// of a JSON Web Token. Signatures are not verified.
func IsJWT(str string) bool {
	parts := strings.Split(str, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if !base64URLSafeRegex.MatchString(part) {
			return false
		}
	}
	return true
}
