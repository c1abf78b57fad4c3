package auth

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		session    *Session
		permission string
		want       bool
	}{
		{
			name:       "nil session",
			session:    nil,
			permission: PermissionExplorer,
			want:       false,
		},
		{
			name:       "empty token is unauthenticated",
			session:    &Session{Permissions: []string{"*"}},
			permission: PermissionExplorer,
			want:       false,
		},
		{
			name:       "wildcard grants everything",
			session:    &Session{Token: "tok", Permissions: []string{"*"}},
			permission: "decisions:make",
			want:       true,
		},
		{
			name:       "exact match",
			session:    &Session{Token: "tok", Permissions: []string{"applications:view", "ai:monitor"}},
			permission: "ai:monitor",
			want:       true,
		},
		{
			name:       "case-insensitive match",
			session:    &Session{Token: "tok", Permissions: []string{"AI:Monitor"}},
			permission: "ai:monitor",
			want:       true,
		},
		{
			name:       "missing permission",
			session:    &Session{Token: "tok", Permissions: []string{"applications:view"}},
			permission: "ai:monitor",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.HasPermission(tt.permission); got != tt.want {
				t.Errorf("HasPermission(%q) = %v, want %v", tt.permission, got, tt.want)
			}
		})
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name       string
		session    *Session
		allowed    bool
		wantReason string
	}{
		{
			name:       "unauthenticated",
			session:    &Session{},
			allowed:    false,
			wantReason: "not authenticated",
		},
		{
			name:       "authenticated without permission",
			session:    &Session{Token: "tok", Permissions: []string{"applications:view"}},
			allowed:    false,
			wantReason: "missing permission: " + PermissionExplorer,
		},
		{
			name:    "demo session passes",
			session: DemoSession(),
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authz := Guard(tt.session, PermissionExplorer)
			if authz.Allowed != tt.allowed {
				t.Errorf("Guard() allowed = %v, want %v", authz.Allowed, tt.allowed)
			}
			if !tt.allowed && authz.Reason != tt.wantReason {
				t.Errorf("Guard() reason = %q, want %q", authz.Reason, tt.wantReason)
			}
			if authz.Denied() == tt.allowed {
				t.Errorf("Denied() inconsistent with Allowed")
			}
		})
	}
}
