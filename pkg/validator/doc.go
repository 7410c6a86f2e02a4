// Package validator provides the constraint predicates used by guardrail
// directives: small, pure functions that report whether a value has a given
// shape or format.
//
// Every predicate takes the value first and its configuration after it, and
// returns a plain bool. Predicates never panic and never return errors for
// malformed input; they simply report false. Configuration problems (an
// unknown locale, an unsupported hash algorithm, an impossible IP version)
// are reported separately by the Validate method of the matching options
// type so that callers can reject them once, at declaration time, instead of
// on every check.
//
// # Architecture
//
// Each source file groups a family of predicates:
//
//   - strings.go  – equality, substrings, patterns, membership, JSON, lengths
//   - charset.go  – character classes (alpha, ASCII, full/half width, case)
//   - encoding.go – base32/58/64, data URIs, MIME types, JWT
//   - internet.go – e-mail, FQDN, IP, CIDR, URL, MAC, port, digest shape
//   - formats.go  – identity cards, IMEI, ISIN, lat/long, UUID, semver, ...
//   - numbers.go  – integer, float, decimal and numeric string grammars
//   - dates.go    – calendar dates and timestamps
//   - logic.go    – boolean literals
//   - locales.go  – per-locale alphabets and decimal separators
//
// Lookup tables and most regular expressions are built at package
// initialisation and only read afterwards. Locale-specific number patterns
// are compiled on first use into a sync.Map. All predicates are safe for
// concurrent use.
//
// # Usage
//
//	ok := validator.IsDecimal("0,01", validator.DecimalOptions{Locale: "bg-BG"})
//	ok = validator.IsHash(digest, validator.SHA256)
//
//	opts := validator.DecimalOptions{Locale: "is-NOT"}
//	if err := opts.Validate(); err != nil {
//	    // errors.Is(err, validator.ErrUnknownLocale)
//	}
//
// # Error Handling
//
// Only the Validate methods return errors, and they wrap one of the sentinel
// errors declared in errors.go so they can be matched with errors.Is.
package validator
