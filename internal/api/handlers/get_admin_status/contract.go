package get_admin_status

type AdminService interface {
	RequiresPin() bool
}
