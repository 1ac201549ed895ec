package delegate

import (
	"sync"

	"github.com/tiiuae/sel4-gdbstub/internal/registers"
)

// Loopback is an in-memory Delegate: it holds a flat address space, one
// UserContext per known TCB, and a breakpoint table, and never talks to
// a kernel. It exists for tests and for the cmd/gdbstubd demo harness,
// standing in for the capability-invoking implementation that is out of
// scope per the specification.
//
// Its shape - a small struct wrapping the debuggee's visible state
// behind Read/Write/Step/Continue-style methods, guarded by one mutex -
// is carried over from the emulator teacher's Machine type in
// machine.go, generalised from a single cgo-backed machine to an
// arbitrary number of in-memory register files and a byte-addressed
// memory map.
type Loopback struct {
	mu sync.Mutex

	arch registers.Arch
	desc *registers.Descriptor

	mem   map[uint64]byte
	ctxs  map[TCB]UserContext
	brks  map[breakKey]struct{}
	steps int
}

type breakKey struct {
	tcb  TCB
	typ  BreakType
	addr uint64
}

// NewLoopback creates a Loopback for the given architecture. Every TCB
// it is asked about gets a zeroed UserContext on first access.
func NewLoopback(arch registers.Arch) *Loopback {
	return &Loopback{
		arch: arch,
		desc: registers.For(arch),
		mem:  make(map[uint64]byte),
		ctxs: make(map[TCB]UserContext),
		brks: make(map[breakKey]struct{}),
	}
}

// LoadMemory seeds the address space starting at addr, as a test fixture
// or the demo harness's firmware-image loader would.
func (l *Loopback) LoadMemory(addr uint64, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, b := range data {
		l.mem[addr+uint64(i)] = b
	}
}

func (l *Loopback) contextFor(tcb TCB) UserContext {
	ctx, ok := l.ctxs[tcb]
	if !ok {
		ctx = NewUserContext(len(l.desc.Names), l.desc.WordBytes)
		l.ctxs[tcb] = ctx
	}
	return ctx
}

func (l *Loopback) ReadMemory(addr, length uint64) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]byte, length)
	for i := range out {
		out[i] = l.mem[addr+uint64(i)]
	}
	return out, nil
}

func (l *Loopback) WriteMemory(addr, length uint64, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := uint64(0); i < length; i++ {
		l.mem[addr+i] = data[i]
	}
	return nil
}

func (l *Loopback) ReadRegisters(tcb TCB) (UserContext, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ctx := l.contextFor(tcb)
	out := make(UserContext, len(ctx))
	copy(out, ctx)
	return out, nil
}

func (l *Loopback) ReadRegister(tcb TCB, slotOffset int) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ctx := l.contextFor(tcb)
	return ctx.WordAt(slotOffset, l.desc.WordBytes), nil
}

func (l *Loopback) WriteRegisters(tcb TCB, ctx UserContext, numWords int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	dst := l.contextFor(tcb)
	n := numWords * l.desc.WordBytes
	if n > len(ctx) {
		n = len(ctx)
	}
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst, ctx[:n])
	return nil
}

func (l *Loopback) WriteRegister(tcb TCB, value uint64, slotOffset int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ctx := l.contextFor(tcb)
	ctx.SetWordAt(slotOffset, l.desc.WordBytes, value)
	return nil
}

func (l *Loopback) InsertBreak(tcb TCB, typ BreakType, addr, size uint64, access AccessMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brks[breakKey{tcb, typ, addr}] = struct{}{}
	return nil
}

func (l *Loopback) RemoveBreak(tcb TCB, typ BreakType, addr, size uint64, access AccessMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.brks, breakKey{tcb, typ, addr})
	return nil
}

func (l *Loopback) Resume(tcb TCB) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steps = 0
	return nil
}

func (l *Loopback) Step(tcb TCB) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steps++
	return nil
}

var _ Delegate = (*Loopback)(nil)
