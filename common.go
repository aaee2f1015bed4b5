package compact

type Comparer[T any] interface {
	Before(T) bool
}
