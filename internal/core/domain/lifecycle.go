package domain

// Lifecycle is the soft-delete state attached to every entity. Records are
// never physically removed; Deleted marks them unusable instead.
type Lifecycle struct {
	Active  bool `json:"active" bson:"active"`
	Deleted bool `json:"deleted" bson:"deleted"`
}

// NewLifecycle returns the state newly created records start in.
func NewLifecycle() Lifecycle {
	return Lifecycle{Active: true, Deleted: false}
}

// Usable is the single predicate deciding whether a record participates in
// reads, logins, and listings.
func (l Lifecycle) Usable() bool {
	return l.Active && !l.Deleted
}
