package registers

import "fmt"

// 32-bit ARM register map. GDB numbers r0-r12, sp, lr, pc contiguously
// (0-15), then reserves indices 16-24 for the FPA registers that used
// to sit between pc and cpsr in arm-core.xml, and only then places
// cpsr at 25 - "the CPSR is register 25, rather than register 16,
// because the FPA registers historically were placed between the PC
// and the CPSR in the g packet" (GDB's own arm-core.xml comment). This
// kernel never had FPA registers, so 16-24 are simply absent.
const (
	arm32CtxR0 = iota
	arm32CtxR1
	arm32CtxR2
	arm32CtxR3
	arm32CtxR4
	arm32CtxR5
	arm32CtxR6
	arm32CtxR7
	arm32CtxR8
	arm32CtxR9
	arm32CtxR10
	arm32CtxR11
	arm32CtxR12
	arm32CtxSP
	arm32CtxLR // r14
	arm32CtxPC
	arm32CtxCPSR
	arm32CtxNumWords
)

const arm32WordBytes = 4

func arm32Slot(field int) Slot { return Slot(field * arm32WordBytes) }

const (
	arm32RegR0 = iota
	arm32RegR1
	arm32RegR2
	arm32RegR3
	arm32RegR4
	arm32RegR5
	arm32RegR6
	arm32RegR7
	arm32RegR8
	arm32RegR9
	arm32RegR10
	arm32RegR11
	arm32RegR12
	arm32RegSP
	arm32RegLR
	arm32RegPC
	// 16-24: legacy FPA slots, absent on this kernel.
	arm32RegCPSR      = 25
	arm32NumRegisters = arm32RegCPSR + 1
)

func init() {
	slots := make([]Slot, arm32NumRegisters)
	slots[arm32RegR0] = arm32Slot(arm32CtxR0)
	slots[arm32RegR1] = arm32Slot(arm32CtxR1)
	slots[arm32RegR2] = arm32Slot(arm32CtxR2)
	slots[arm32RegR3] = arm32Slot(arm32CtxR3)
	slots[arm32RegR4] = arm32Slot(arm32CtxR4)
	slots[arm32RegR5] = arm32Slot(arm32CtxR5)
	slots[arm32RegR6] = arm32Slot(arm32CtxR6)
	slots[arm32RegR7] = arm32Slot(arm32CtxR7)
	slots[arm32RegR8] = arm32Slot(arm32CtxR8)
	slots[arm32RegR9] = arm32Slot(arm32CtxR9)
	slots[arm32RegR10] = arm32Slot(arm32CtxR10)
	slots[arm32RegR11] = arm32Slot(arm32CtxR11)
	slots[arm32RegR12] = arm32Slot(arm32CtxR12)
	slots[arm32RegSP] = arm32Slot(arm32CtxSP)
	slots[arm32RegLR] = arm32Slot(arm32CtxLR)
	slots[arm32RegPC] = arm32Slot(arm32CtxPC)
	for i := 16; i <= 24; i++ {
		slots[i] = Absent
	}
	slots[arm32RegCPSR] = arm32Slot(arm32CtxCPSR)

	names := make([]string, arm32NumRegisters)
	for i := 0; i <= 12; i++ {
		names[i] = fmt.Sprintf("r%d", i)
	}
	names[arm32RegSP] = "sp"
	names[arm32RegLR] = "lr"
	names[arm32RegPC] = "pc"
	for i := 16; i <= 24; i++ {
		names[i] = fmt.Sprintf("fpa%d", i-16)
	}
	names[arm32RegCPSR] = "cpsr"

	register(&Descriptor{
		Arch:          ARM32,
		NumRegisters:  arm32NumRegisters,
		WordBytes:     arm32WordBytes,
		PCIndex:       arm32RegPC,
		SwapWireBytes: false,
		Names:         names,
		slots:         slots,
	})
}
