package tui

// remote models one async request's lifecycle as a single value instead
// of independent loading/error/data flags, so impossible combinations
// (loading with an error set, data alongside a failure) cannot be
// represented.
type remote[T any] struct {
	phase phase
	data  T
	err   error
}

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseSucceeded
	phaseFailed
)

func (r remote[T]) idle() bool    { return r.phase == phaseIdle }
func (r remote[T]) loading() bool { return r.phase == phaseLoading }
func (r remote[T]) ready() bool   { return r.phase == phaseSucceeded }
func (r remote[T]) failed() bool  { return r.phase == phaseFailed }

func loadingRemote[T any]() remote[T] {
	return remote[T]{phase: phaseLoading}
}

func succeededRemote[T any](data T) remote[T] {
	return remote[T]{phase: phaseSucceeded, data: data}
}

func failedRemote[T any](err error) remote[T] {
	return remote[T]{phase: phaseFailed, err: err}
}
