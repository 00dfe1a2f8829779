// Package forms holds the DreamPlanner form contracts: what each screen
// submits, how every field is cleaned and which rules the cleaned values
// must satisfy.
//
// Every form type has two methods. Sanitize returns a cleaned copy and never
// fails; Validate returns validator.ValidationErrors describing every broken
// rule, or nil. Check combines decoding, sanitization and validation, and a
// Registry exposes the forms by name for the HTTP layer.
package forms
