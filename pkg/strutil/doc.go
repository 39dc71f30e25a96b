// Package strutil provides string transformation helpers: case conversion
// between camelCase, snake_case, and Title Case, length-budgeted truncation,
// HTML tag stripping, and masking of sensitive values.
//
// All helpers are pure functions over their input; none mutate shared state.
// Length-sensitive operations (Truncate, MaskSensitive) count Unicode
// characters, not bytes.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/strutil"
//
//	strutil.ToCamelCase("hello_world")       // "helloWorld"
//	strutil.ToSnakeCase("APIResponseHandler") // "api_response_handler"
//	strutil.MaskSensitive("4532015112830366") // "************0366"
//
// Transformation chains can be built with Apply and Compose:
//
//	clean := strutil.Compose(strutil.StripHTML, strutil.ToSnakeCase)
//	clean("<b>Hello World</b>") // "hello_world"
package strutil
