package auth

import "strings"

// PermissionExplorer gates the document explorer surface.
const PermissionExplorer = "ai:monitor"

// Session is the authentication state held for the active user. Login
// flows live in the platform's auth service; this only carries the
// contract the explorer consumes.
type Session struct {
	Token       string
	UserID      string
	Email       string
	Role        string
	Permissions []string
}

// DemoSession is the identity used when demo mode is on and no real
// token is configured. Wildcard permissions keep every guard path open.
func DemoSession() *Session {
	return &Session{
		Token:       "demo-jwt-token-123",
		UserID:      "demo-user-123",
		Email:       "demo@example.com",
		Role:        "ADMIN",
		Permissions: []string{"*"},
	}
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

func (s *Session) HasPermission(permission string) bool {
	if !s.IsAuthenticated() {
		return false
	}
	for _, p := range s.Permissions {
		if p == "*" || strings.EqualFold(p, permission) {
			return true
		}
	}
	return false
}

// BearerToken is the value attached to outbound Authorization headers;
// empty when unauthenticated.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}
