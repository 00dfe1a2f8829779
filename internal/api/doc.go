// Package api exposes the sanitizers, validators and form contracts over
// HTTP so that clients without a Go runtime can share one implementation.
//
// Every response uses the JSONResponse envelope. Request bodies are bound
// strictly with pkg/binder; binder failures map to 400, 413 or 415 and
// validation failures to 422 with messages localized for the negotiated
// request language.
package api
