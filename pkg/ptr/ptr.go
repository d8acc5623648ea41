package ptr

// New returns a pointer to v. Useful for filling optional struct fields
// from literals.
func New[T any](v T) *T { return &v }
