// Package environment names the runtime environment a binary runs in.
//
// The environment selects logging defaults: text output at debug level for
// development, JSON at info level for staging and production.
//
//	env := environment.Parse(os.Getenv("XKCDPASS_ENV"))
//	if env.IsProduction() {
//	    // ...
//	}
package environment
