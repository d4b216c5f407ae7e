package model

// All returns one zero value of every table model, in creation order.
func All() []any {
	return []any{&Setup{}, &Question{}, &MCOption{}, &Rubric{}}
}
