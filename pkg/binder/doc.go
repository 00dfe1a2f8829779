// Package binder decodes HTTP request bodies into Go values.
//
// JSON enforces an application/json content type, a body size limit, a
// single JSON document per request and, unless AllowUnknownFields is given,
// rejects fields the target struct does not declare. Numbers decoded into
// interface values are kept as json.Number so no precision is lost before
// they reach the sanitizer.
//
//	bind := binder.JSON()
//	var req checkRequest
//	if err := bind(r, &req); err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType), ...
//	}
//
// The binder does not clean values; sanitization belongs to the form layer.
package binder
