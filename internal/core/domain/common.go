package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// BranchScope selects which branch a query or aggregate is computed over.
// It is either a specific location ID or ScopeAllBranches.
type BranchScope string

// ScopeAllBranches is the sentinel scope meaning "no branch filtering".
const ScopeAllBranches BranchScope = "all"

// IsAll reports whether the scope covers every branch.
func (s BranchScope) IsAll() bool {
	return s == "" || s == ScopeAllBranches
}

// Matches reports whether an entity attributed to locationID falls inside the scope.
func (s BranchScope) Matches(locationID string) bool {
	return s.IsAll() || string(s) == locationID
}
