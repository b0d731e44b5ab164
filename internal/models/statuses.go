package models

type UserRole string
type PersonType string
type ApplicationStatus string

const (
	UserRoleFreelancer  UserRole = "freelancer"
	UserRoleContratante UserRole = "contratante"

	PersonTypeIndividual PersonType = "individual"
	PersonTypeEmpresa    PersonType = "empresa"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the three known
// application states. Transitions between them are deliberately
// unrestricted: a decision may be re-set by the job owner.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
