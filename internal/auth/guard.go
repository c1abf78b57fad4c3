package auth

// Authorization is the typed result of a guard check. Handlers evaluate
// it before invoking the explorer core.
type Authorization struct {
	Allowed bool
	Reason  string
}

func (a Authorization) Denied() bool { return !a.Allowed }

// Guard checks the session against a required permission.
func Guard(s *Session, permission string) Authorization {
	switch {
	case !s.IsAuthenticated():
		return Authorization{Reason: "not authenticated"}
	case !s.HasPermission(permission):
		return Authorization{Reason: "missing permission: " + permission}
	default:
		return Authorization{Allowed: true}
	}
}
