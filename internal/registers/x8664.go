package registers

// x86-64 register map. GDB's expected order again comes from the
// relevant gdb/features core file; the kernel user context keeps rip,
// rsp and rflags up front (they're touched on every fault/syscall
// entry) followed by the general-purpose registers and the two
// TLS segment bases, same shape as the 32-bit table in x86.go but wider.
const (
	x8664CtxRIP = iota
	x8664CtxRSP
	x8664CtxRFlags
	x8664CtxRAX
	x8664CtxRBX
	x8664CtxRCX
	x8664CtxRDX
	x8664CtxRSI
	x8664CtxRDI
	x8664CtxRBP
	x8664CtxR8
	x8664CtxR9
	x8664CtxR10
	x8664CtxR11
	x8664CtxR12
	x8664CtxR13
	x8664CtxR14
	x8664CtxR15
	x8664CtxFSBase
	x8664CtxGSBase
	x8664CtxNumWords
)

const x8664WordBytes = 8

func x8664Slot(field int) Slot { return Slot(field * x8664WordBytes) }

// GDB register indices for the amd64 core, in GDB's wire order.
const (
	x8664RegRAX = iota
	x8664RegRBX
	x8664RegRCX
	x8664RegRDX
	x8664RegRSI
	x8664RegRDI
	x8664RegRBP
	x8664RegRSP
	x8664RegR8
	x8664RegR9
	x8664RegR10
	x8664RegR11
	x8664RegR12
	x8664RegR13
	x8664RegR14
	x8664RegR15
	x8664RegRIP
	x8664RegEFlags
	x8664RegCS
	x8664RegSS
	x8664RegDS
	x8664RegES
	x8664RegFS
	x8664RegGS
	x8664NumRegisters
)

func init() {
	slots := make([]Slot, x8664NumRegisters)
	slots[x8664RegRAX] = x8664Slot(x8664CtxRAX)
	slots[x8664RegRBX] = x8664Slot(x8664CtxRBX)
	slots[x8664RegRCX] = x8664Slot(x8664CtxRCX)
	slots[x8664RegRDX] = x8664Slot(x8664CtxRDX)
	slots[x8664RegRSI] = x8664Slot(x8664CtxRSI)
	slots[x8664RegRDI] = x8664Slot(x8664CtxRDI)
	slots[x8664RegRBP] = x8664Slot(x8664CtxRBP)
	slots[x8664RegRSP] = x8664Slot(x8664CtxRSP)
	slots[x8664RegR8] = x8664Slot(x8664CtxR8)
	slots[x8664RegR9] = x8664Slot(x8664CtxR9)
	slots[x8664RegR10] = x8664Slot(x8664CtxR10)
	slots[x8664RegR11] = x8664Slot(x8664CtxR11)
	slots[x8664RegR12] = x8664Slot(x8664CtxR12)
	slots[x8664RegR13] = x8664Slot(x8664CtxR13)
	slots[x8664RegR14] = x8664Slot(x8664CtxR14)
	slots[x8664RegR15] = x8664Slot(x8664CtxR15)
	slots[x8664RegRIP] = x8664Slot(x8664CtxRIP)
	slots[x8664RegEFlags] = x8664Slot(x8664CtxRFlags)
	slots[x8664RegCS] = Absent
	slots[x8664RegSS] = Absent
	slots[x8664RegDS] = Absent
	slots[x8664RegES] = Absent
	slots[x8664RegFS] = x8664Slot(x8664CtxFSBase)
	slots[x8664RegGS] = x8664Slot(x8664CtxGSBase)

	register(&Descriptor{
		Arch:          X8664,
		NumRegisters:  x8664NumRegisters,
		WordBytes:     x8664WordBytes,
		PCIndex:       x8664RegRIP,
		SwapWireBytes: true,
		Names: []string{
			"rax", "rbx", "rcx", "rdx", "rsi", "rdi", "rbp", "rsp",
			"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
			"rip", "eflags", "cs", "ss", "ds", "es", "fs", "gs",
		},
		slots: slots,
	})
}
