package entity

// ApprovalStatus tracks the admin-approval state of a hospital account.
// Transitions are one-directional: pending is the only non-terminal state.
type ApprovalStatus string

const (
	// ApprovalStatusPending indicates the account awaits an admin decision.
	ApprovalStatusPending ApprovalStatus = "pending"
	// ApprovalStatusApproved indicates the account was approved by an admin.
	ApprovalStatusApproved ApprovalStatus = "approved"
	// ApprovalStatusRejected indicates the account was rejected by an admin.
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}
