package model

// StaffRole 门户用户角色，由上游令牌声明携带
type StaffRole string

const (
	RoleAdmin           StaffRole = "admin"
	RoleNurse           StaffRole = "nurse"
	RoleSpecialist      StaffRole = "specialist"
	RoleReceptionist    StaffRole = "receptionist"
	RoleBiller          StaffRole = "biller"
	RoleLabAttendant    StaffRole = "lab_attendant"
	RolePhysiotherapist StaffRole = "physiotherapist"
)

// AllRoles 导航与路由注册用的全量角色列表
var AllRoles = []StaffRole{
	RoleAdmin,
	RoleNurse,
	RoleSpecialist,
	RoleReceptionist,
	RoleBiller,
	RoleLabAttendant,
	RolePhysiotherapist,
}
