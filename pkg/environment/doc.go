// Package environment carries the deployment environment (development,
// staging or production) through request contexts and log records.
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//		// secure cookies, JSON logs
//	}
package environment
