// Package environment names the deployment environments the service runs in
// and carries the current one through request contexts.
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
//
//	if environment.IsProduction(ctx) {
//	    // hide internal error detail
//	}
package environment
