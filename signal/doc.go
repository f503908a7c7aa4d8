// Package signal implements typed, synchronous signals with connectable
// slots.
//
// A Signal[T] broadcasts a value of type T to every slot connected to it.
// Payloads with several arguments are expressed as a struct and signals
// without arguments use struct{}.
//
// There are two kinds of slots. A free slot is a plain func(T):
//
//	var changed signal.Signal[string]
//	changed.Connect(onChanged)
//	changed.Emit("name")
//	changed.Disconnect(onChanged)
//
// A method slot binds a receiver and a method expression. The pair is the
// identity used to disconnect it, so unrelated receivers sharing the same
// method are never confused:
//
//	signal.ConnectMethod(&changed, view, (*View).Refresh)
//	signal.DisconnectMethod(&changed, view, (*View).Refresh)
//
// ConnectMethod keeps the receiver reachable for as long as the connection
// exists. ConnectMethodWeak does not: once the receiver has been garbage
// collected its slot is skipped and later dropped. Package-level receivers
// are never collected and are simply held.
//
// Receivers of a zero-size type such as struct{} cannot be told apart, as
// Go may give distinct zero-size values the same address. For them only
// the method identifies a connection: DisconnectMethod with any receiver
// of that type removes the first connection of the method.
//
// Free slots compare by the function value they wrap. Copies of the same
// func value are equal, as are repeated references to a named function or
// a method expression. Two closures created from the same literal but
// capturing different variables are not equal. Method values such as
// view.Refresh produce a new closure on every evaluation and therefore can
// only be disconnected through the returned Connection; use ConnectMethod
// for methods instead.
//
// Emit calls slots in the order they were connected. The slot list is
// captured when Emit starts: slots connected while emitting run from the
// next Emit on, and slots disconnected while emitting are not called if
// they have not run yet. A panicking slot aborts the Emit and the panic
// reaches the caller; TryEmit runs every slot and returns the panics as
// errors instead.
//
// A Signal is not safe for concurrent use. Guard it externally or use
// Safe.
package signal
