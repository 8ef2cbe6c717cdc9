package auth

// publicPaths lists URL paths that bypass authentication: infrastructure
// endpoints (health checks) and the credential endpoints themselves, plus
// the public hospital and doctor directory.
var publicPaths = map[string]bool{
	"/health":               true,
	"/health/db":            true,
	"/api/v1/auth/register": true,
	"/api/v1/auth/login":    true,
	"/api/v1/hospitals":     true,
	"/api/v1/hospitals/:id": true,
	"/api/v1/doctors":       true,
	"/api/v1/doctors/:id":   true,
}

// IsPublicPath reports whether the given route path should bypass auth.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
