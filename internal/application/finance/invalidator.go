package finance

// CacheInvalidator drops derived advisory state after a write to the
// underlying records. The recommendation cache satisfies it.
type CacheInvalidator interface {
	Clear()
}

// noopInvalidator is used when no cache is wired, mainly in tests.
type noopInvalidator struct{}

func (noopInvalidator) Clear() {}

// NoopInvalidator returns an invalidator that does nothing.
func NoopInvalidator() CacheInvalidator {
	return noopInvalidator{}
}
