// Package config assembles [StructuredConfig] for the server and favctl.
//
// Sources are merged in this order, later non-zero values winning:
// environment, command-line flags, then the JSON file named by CONFIG or
// -c. Defaults fill what is still empty and validation runs last.
// Credentials are checked separately by [StructuredConfig.RequireCredentials]
// since favctl migrate and users run without them.
package config
