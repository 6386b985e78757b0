package gate

import (
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
)

type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectRoleSelection
	RedirectDashboard
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectRoleSelection:
		return "redirect_role_selection"
	case RedirectDashboard:
		return "redirect_dashboard"
	}
	return "unknown"
}

// Decision is what a protected page does for the current user. Location is
// empty when the page renders.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Decide applies, in order: no user goes to login, a user without a role
// goes to role selection, a role outside required goes to its own
// dashboard. An empty required list admits every role.
func Decide(user *models.User, required ...models.Role) Decision {
	if user == nil {
		return Decision{Outcome: RedirectLogin, Location: constvars.RoutePathLogin}
	}
	if !user.HasRole() {
		return Decision{Outcome: RedirectRoleSelection, Location: constvars.RoutePathRoleSelection}
	}
	if len(required) > 0 && !containsRole(required, user.Role) {
		return Decision{Outcome: RedirectDashboard, Location: user.Role.DashboardPath()}
	}
	return Decision{Outcome: Render}
}

// PostAuthPath is where a user lands after logging in or visiting /.
func PostAuthPath(user *models.User) string {
	if user == nil {
		return constvars.RoutePathLogin
	}
	if !user.HasRole() {
		return constvars.RoutePathRoleSelection
	}
	return user.Role.DashboardPath()
}

func containsRole(roles []models.Role, role models.Role) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
