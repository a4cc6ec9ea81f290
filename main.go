// Command relcheck reports whether a newer GitHub release of a project exists.
//
//	relcheck <repo-url-or-api-url> <local-version>
//
// Exit codes: 0 no update, 1 usage error, 2 update available, 3 runtime error.
package main

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"
