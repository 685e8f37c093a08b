package port

// PermissionChecker reports whether the process may observe the global
// pointer. On macOS this is the accessibility trust flag.
type PermissionChecker interface {
	Trusted() bool
	// Request asks the system to prompt the user. It returns the trust
	// state at the time of the call; granting happens asynchronously.
	Request() bool
}
