package tonmsg

import (
	"fmt"

	"github.com/xssnick/tonutils-go/tvm/cell"
)

// ParseFunc decodes one message kind from its cell encoding.
type ParseFunc func(c *cell.Cell) (Message, error)

// RegistryOptions tune the registry. All fields are optional.
type RegistryOptions struct {
	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// Registry dispatches cells to message codecs keyed by their leading 32-bit
// opcode. Registration is not synchronized: register every kind up front,
// then share the registry freely. Parse only reads.
type Registry struct {
	codecs map[uint32]ParseFunc
	log    Logger
	hooks  Hooks
}

// NewRegistry returns an empty registry.
func NewRegistry(opts RegistryOptions) *Registry {
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}
	if opts.Hooks == nil {
		opts.Hooks = NopHooks{}
	}
	return &Registry{
		codecs: make(map[uint32]ParseFunc),
		log:    opts.Logger,
		hooks:  opts.Hooks,
	}
}

// Register binds an opcode to a parse function, replacing any previous
// binding for the same opcode.
func (r *Registry) Register(opcode uint32, parse ParseFunc) {
	r.codecs[opcode] = parse
}

// Parse reads the leading opcode of c and dispatches to the registered
// codec. The cell is handed to the codec whole; the codec re-reads and
// verifies the opcode itself.
func (r *Registry) Parse(c *cell.Cell) (Message, error) {
	raw, err := c.BeginParse().LoadUInt(32)
	if err != nil {
		return nil, fmt.Errorf("tonmsg: load opcode: %w", err)
	}
	op := uint32(raw)

	parse, ok := r.codecs[op]
	if !ok {
		r.hooks.UnknownOpcode(op)
		r.log.Warn("no codec for opcode", Fields{"opcode": fmt.Sprintf("%08x", op)})
		return nil, fmt.Errorf("%w: %08x", ErrUnknownOpcode, op)
	}

	m, err := parse(c)
	if err != nil {
		r.hooks.ParseFailed(op, err)
		r.log.Debug("message parse failed", Fields{
			"opcode": fmt.Sprintf("%08x", op),
			"err":    err.Error(),
		})
		return nil, err
	}
	return m, nil
}
