package role

const (
	Master = "master"
	Admin  = "admin"
)

func IsValid(r string) bool {
	return r == Master || r == Admin
}

// Only the master login may add or remove other admin users; everything
// else in the panel is open to both roles.
func CanManageAdmins(r string) bool {
	return r == Master
}
