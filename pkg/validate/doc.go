// Package validate provides format-checking predicates for common user input:
// email addresses, URLs, phone numbers, payment card numbers, and numeric
// ranges.
//
// Every predicate reports validity as a bool. Malformed input is a validation
// outcome, not an error: an empty string, a bad checksum, or a disallowed URL
// scheme all yield false without failing. The single exception is IsPhone,
// which returns ErrUnsupportedCountry when asked about a country it has no
// pattern for; that is a programmer error, not a data-quality signal.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/validate"
//
//	validate.IsEmail("user@example.com")                    // true
//	validate.IsURL("https://example.com", validate.Schemes("https")) // true
//	validate.IsCreditCard("4532-0151-1283-0366")            // true
//	validate.InRange(5, validate.Min(0), validate.Max(10))  // true
//
// # Thread Safety
//
// The package is stateless; all predicates are safe for concurrent use.
package validate
