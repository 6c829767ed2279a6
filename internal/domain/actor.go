package domain

// Actor is the authenticated caller of an operation. Privileged actors may
// bypass validation rules on behalf of other people.
type Actor struct {
	UserID     string
	EmployeeID string
	CompanyID  string
	Role       string
	Privileged bool
}

// CanActFor reports whether the actor may read or write records owned by
// employeeID.
func (a Actor) CanActFor(employeeID string) bool {
	return a.Privileged || (a.EmployeeID != "" && a.EmployeeID == employeeID)
}

// TargetEmployee resolves the person an operation is about: the requested
// employee when given, otherwise the actor.
func (a Actor) TargetEmployee(requested string) string {
	if requested == "" {
		return a.EmployeeID
	}
	return requested
}
