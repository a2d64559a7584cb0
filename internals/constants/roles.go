package constants

// Staff privilege levels. GRADE_VIEW overrides live in configs.SystemConfig;
// this is the closed set a staff record may carry.
const (
	PrivilegeAdmin     = "admin"
	PrivilegeRegistrar = "registrar"
	PrivilegeFinance   = "finance"
	PrivilegeAcademics = "academics"
	PrivilegeAdminDVC  = "admin_dvc"
	PrivilegeICT       = "ict"
	PrivilegeAdminVC   = "admin_vc"
	PrivilegeLecturer  = "lecturer"
	PrivilegeNone      = "none"
)

var AllPrivilegeLevels = []string{
	PrivilegeAdmin,
	PrivilegeRegistrar,
	PrivilegeFinance,
	PrivilegeAcademics,
	PrivilegeAdminDVC,
	PrivilegeICT,
	PrivilegeAdminVC,
	PrivilegeLecturer,
	PrivilegeNone,
}

func IsValidPrivilegeLevel(level string) bool {
	for _, p := range AllPrivilegeLevels {
		if p == level {
			return true
		}
	}
	return false
}
