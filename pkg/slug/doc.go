// Package slug converts arbitrary strings into URL-safe slugs.
//
// Input is NFKD-normalized so that accented characters decompose into their
// base letter plus combining marks; the marks and any remaining non-ASCII
// runes are dropped, runs of non-alphanumeric characters collapse into a
// single separator, and leading/trailing separators are trimmed.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/slug"
//
//	slug.Make("Café Résumé")                       // "cafe-resume"
//	slug.Make("Hello World!", slug.Separator("_")) // "hello_world"
//	slug.Make("Hello World", slug.Lowercase(false)) // "Hello-World"
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package slug
