package registers

// x86 (IA32) register map. GDB's expected register order for the "i386"
// core comes from gdb/features/i386/32bit-core.xml; the kernel's user
// context for a 32-bit x86 thread carries general-purpose registers,
// eip, eflags and the two segment bases used for TLS, but not the
// segment selectors themselves (cs/ss/ds/es) since those aren't part of
// a thread's saved state on this kernel.
const (
	x86CtxEAX = iota
	x86CtxECX
	x86CtxEDX
	x86CtxEBX
	x86CtxESP
	x86CtxEBP
	x86CtxESI
	x86CtxEDI
	x86CtxEIP
	x86CtxEFlags
	x86CtxFSBase
	x86CtxGSBase
	x86CtxNumWords
)

const x86WordBytes = 4

func x86Slot(field int) Slot { return Slot(field * x86WordBytes) }

// GDB register indices for the i386 core, in GDB's wire order.
const (
	x86RegEAX = iota
	x86RegECX
	x86RegEDX
	x86RegEBX
	x86RegESP
	x86RegEBP
	x86RegESI
	x86RegEDI
	x86RegEIP
	x86RegEFlags
	x86RegCS
	x86RegSS
	x86RegDS
	x86RegES
	x86RegFS
	x86RegGS
	x86NumRegisters
)

func init() {
	slots := make([]Slot, x86NumRegisters)
	slots[x86RegEAX] = x86Slot(x86CtxEAX)
	slots[x86RegECX] = x86Slot(x86CtxECX)
	slots[x86RegEDX] = x86Slot(x86CtxEDX)
	slots[x86RegEBX] = x86Slot(x86CtxEBX)
	slots[x86RegESP] = x86Slot(x86CtxESP)
	slots[x86RegEBP] = x86Slot(x86CtxEBP)
	slots[x86RegESI] = x86Slot(x86CtxESI)
	slots[x86RegEDI] = x86Slot(x86CtxEDI)
	slots[x86RegEIP] = x86Slot(x86CtxEIP)
	slots[x86RegEFlags] = x86Slot(x86CtxEFlags)
	slots[x86RegCS] = Absent // no segment selectors in this kernel's user context
	slots[x86RegSS] = Absent
	slots[x86RegDS] = Absent
	slots[x86RegES] = Absent
	slots[x86RegFS] = x86Slot(x86CtxFSBase)
	slots[x86RegGS] = x86Slot(x86CtxGSBase)

	register(&Descriptor{
		Arch:          X86,
		NumRegisters:  x86NumRegisters,
		WordBytes:     x86WordBytes,
		PCIndex:       x86RegEIP,
		SwapWireBytes: true,
		Names: []string{
			"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
			"eip", "eflags", "cs", "ss", "ds", "es", "fs", "gs",
		},
		slots: slots,
	})
}
