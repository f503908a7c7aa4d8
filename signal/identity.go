package signal

import "unsafe"

// funcPtr returns the closure record behind a func value. F must be a func
// type. Func values are a single pointer word, so the record address is
// what distinguishes two closures of the same literal.
func funcPtr[F any](fn F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}
