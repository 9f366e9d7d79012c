package entity

// Optional holds the outcome of an auxiliary lookup: either a value
// (Present) or nothing because the source had no data or failed (Absent).
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value when present, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}
