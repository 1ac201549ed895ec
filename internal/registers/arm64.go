package registers

import "fmt"

// 64-bit ARM register map. x30 doubles as the link register on this
// kernel, and unlike the 32-bit core there is no FPA-slot gap: GDB's
// aarch64-core.xml places sp, pc and cpsr immediately after x0-x30, so
// the kernel's user context can mirror GDB's order word for word and
// every one of the 34 registers is present.
const (
	arm64CtxX0 = iota
	arm64CtxX1
	arm64CtxX2
	arm64CtxX3
	arm64CtxX4
	arm64CtxX5
	arm64CtxX6
	arm64CtxX7
	arm64CtxX8
	arm64CtxX9
	arm64CtxX10
	arm64CtxX11
	arm64CtxX12
	arm64CtxX13
	arm64CtxX14
	arm64CtxX15
	arm64CtxX16
	arm64CtxX17
	arm64CtxX18
	arm64CtxX19
	arm64CtxX20
	arm64CtxX21
	arm64CtxX22
	arm64CtxX23
	arm64CtxX24
	arm64CtxX25
	arm64CtxX26
	arm64CtxX27
	arm64CtxX28
	arm64CtxX29
	arm64CtxX30 // link register
	arm64CtxSP
	arm64CtxPC
	arm64CtxCPSR
	arm64CtxNumWords
)

const arm64WordBytes = 8

func arm64Slot(field int) Slot { return Slot(field * arm64WordBytes) }

const arm64NumRegisters = arm64CtxNumWords

func init() {
	slots := make([]Slot, arm64NumRegisters)
	for i := 0; i < arm64NumRegisters; i++ {
		// GDB's aarch64 order is identical to the kernel context's, so
		// every register is present at word index i.
		slots[i] = arm64Slot(i)
	}

	names := make([]string, arm64NumRegisters)
	for i := 0; i <= 30; i++ {
		names[i] = fmt.Sprintf("x%d", i)
	}
	names[arm64CtxSP] = "sp"
	names[arm64CtxPC] = "pc"
	names[arm64CtxCPSR] = "cpsr"

	register(&Descriptor{
		Arch:          ARM64,
		NumRegisters:  arm64NumRegisters,
		WordBytes:     arm64WordBytes,
		PCIndex:       arm64CtxPC,
		SwapWireBytes: false,
		Names:         names,
		slots:         slots,
	})
}
