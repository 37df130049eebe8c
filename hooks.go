package tonmsg

// Hooks are lightweight callbacks for high-signal registry events.
// Implementations MUST be cheap and non-blocking. The registry calls them
// inline on the parse path.
type Hooks interface {
	// No codec is registered for a cell's leading opcode.
	UnknownOpcode(opcode uint32)

	// A registered codec rejected its input.
	ParseFailed(opcode uint32, err error)
}

// NopHooks is the default no-op implementation.
type NopHooks struct{}

func (NopHooks) UnknownOpcode(uint32)      {}
func (NopHooks) ParseFailed(uint32, error) {}
