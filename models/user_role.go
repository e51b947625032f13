package models

type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSupervisor UserRole = "SUPERVISOR"
	UserRoleOfficer    UserRole = "OFFICER"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:      "Administrator",
	UserRoleSupervisor: "Supervisor",
	UserRoleOfficer:    "Compliance officer",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

// CanApprove roles may be named as the approving authority of an enforcement action.
func (r UserRole) CanApprove() bool {
	return r == UserRoleAdmin || r == UserRoleSupervisor
}

const SystemUser = "System"
