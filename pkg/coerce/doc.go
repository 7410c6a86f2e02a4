// Package coerce converts loosely typed input into the Go types a setter or
// function body actually stores.
//
// Coercion is the companion of validation: a directive proves that "42" is an
// integer, and the body then calls ToInt to obtain int64(42). Every function
// either returns the converted value or a *TypeMismatchError; nothing panics
// and no silent zero values are produced.
//
//   - ToInt accepts integer kinds, integral floats and base-10 strings.
//   - ToFloat accepts numeric kinds and strings, honouring the decimal
//     separator of the locale passed with WithLocale.
//   - ToDate accepts time.Time and date strings in the common layouts.
//   - ToBoolean accepts bool, 0/1 and the literals true/false/1/0, plus
//     yes/no in any case unless Strict is given.
//
// Options are explicit per call. There is no package-level default to mutate:
//
//	n, err := coerce.ToInt("3")                                // 3
//	f, err := coerce.ToFloat("2,5", coerce.WithLocale("bg-BG")) // 2.5
//	b, err := coerce.ToBoolean("YES")                          // true
//	_, err = coerce.ToBoolean("yes", coerce.Strict())          // ErrTypeMismatch
//
// Non-string kinds are converted with github.com/spf13/cast.
package coerce
