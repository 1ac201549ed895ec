package stub

import (
	"github.com/tiiuae/sel4-gdbstub/internal/registers"
	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
)

// handleReadAll implements 'g': one delegate round-trip to fetch the
// whole user context, then NUM_GDB_REGISTERS fixed-width hex words,
// absent registers rendered as the reserved "xxxx..." placeholder.
// Ground truth: GDB_read_general_registers.
func (s *Session) handleReadAll() (reply []byte, send bool) {
	ctx, err := s.Delegate.ReadRegisters(s.CurrentThreadTCB)
	if err != nil {
		s.Log.Errorf("gdb: read all registers failed: %v", err)
		return []byte("E01"), true
	}

	width := s.Desc.WordBytes
	out := make([]byte, 0, s.Desc.NumRegisters*width*2)
	placeholder := make([]byte, width*2)
	for i := range placeholder {
		placeholder[i] = 'x'
	}
	for i := 0; i < s.Desc.NumRegisters; i++ {
		slot := s.Desc.ToSlot(i)
		if slot == registers.Absent {
			out = append(out, placeholder...)
			continue
		}
		value := ctx.WordAt(int(slot), width)
		if s.Desc.SwapWireBytes {
			value = rsp.SwapWireWord(value, width)
		}
		out = append(out, []byte(rsp.EncodeHexWord(value, width))...)
	}
	return out, true
}

// handleReadOne implements 'p<hex-idx>'. Unlike 'g', an absent register
// is an error (E00), not a placeholder - the original only defines the
// placeholder convention for the bulk dump.
// Ground truth: GDB_read_register.
func (s *Session) handleReadOne(payload []byte) (reply []byte, send bool) {
	idx, err := rsp.ParseHex(string(payload[1:]))
	if err != nil || int(idx) >= s.Desc.NumRegisters {
		return []byte("E00"), true
	}
	slot := s.Desc.ToSlot(int(idx))
	if slot == registers.Absent {
		s.Log.Warnf("gdb: read of absent register %d", idx)
		return []byte("E00"), true
	}
	value, err := s.Delegate.ReadRegister(s.CurrentThreadTCB, int(slot))
	if err != nil {
		s.Log.Errorf("gdb: read register %d failed: %v", idx, err)
		return []byte("E00"), true
	}
	if s.Desc.SwapWireBytes {
		value = rsp.SwapWireWord(value, s.Desc.WordBytes)
	}
	return []byte(rsp.EncodeHexWord(value, s.Desc.WordBytes)), true
}

// handleWriteAll implements 'G<hex-string>': parse as many words as the
// payload and the kernel context both have room for, skip absent slots
// silently, write the whole context back in one delegate call, then
// refresh CurrentPC from the slot the architecture's PC lives in.
// Ground truth: GDB_write_general_registers.
func (s *Session) handleWriteAll(payload []byte) (reply []byte, send bool) {
	data := string(payload[1:])
	width := s.Desc.WordBytes

	numRegsData := len(data) / (width * 2)
	if numRegsData > s.Desc.NumRegisters {
		numRegsData = s.Desc.NumRegisters
	}

	ctx := delegateNewContext(s.Desc)
	for i := 0; i < numRegsData; i++ {
		slot := s.Desc.ToSlot(i)
		if slot == registers.Absent {
			continue
		}
		chunk := data[i*width*2 : i*width*2+width*2]
		value, err := rsp.ParseHex(chunk)
		if err != nil {
			s.Log.Warnf("gdb: malformed register word at index %d: %v", i, err)
			continue
		}
		if s.Desc.SwapWireBytes {
			value = rsp.SwapWireWord(value, width)
		}
		ctx.SetWordAt(int(slot), width, value)
	}

	if err := s.Delegate.WriteRegisters(s.CurrentThreadTCB, ctx, numRegsData); err != nil {
		s.Log.Errorf("gdb: write all registers failed: %v", err)
		return []byte("E01"), true
	}
	s.CurrentPC = ctx.WordAt(int(s.Desc.ToSlot(s.Desc.PCIndex)), width)
	return []byte("OK"), true
}

// handleWriteOne implements 'P<hex-idx>=<hex-value>'. An out-of-range
// index is tolerated silently (GDB tolerance, per the original); an
// absent slot is logged and ignored; only a present PC write updates
// CurrentPC. Always replies OK.
// Ground truth: GDB_write_register.
func (s *Session) handleWriteOne(payload []byte) (reply []byte, send bool) {
	rest := string(payload[1:])
	eq := indexByte(rest, '=')
	if eq < 0 {
		return []byte("OK"), true
	}
	idx, err := rsp.ParseHex(rest[:eq])
	if err != nil || int(idx) >= s.Desc.NumRegisters {
		return []byte("OK"), true
	}
	value, err := rsp.ParseHex(rest[eq+1:])
	if err != nil {
		return []byte("OK"), true
	}
	if s.Desc.SwapWireBytes {
		value = rsp.SwapWireWord(value, s.Desc.WordBytes)
	}
	slot := s.Desc.ToSlot(int(idx))
	if slot == registers.Absent {
		s.Log.Warnf("gdb: write to absent register %d ignored", idx)
		return []byte("OK"), true
	}
	if err := s.Delegate.WriteRegister(s.CurrentThreadTCB, value, int(slot)); err != nil {
		s.Log.Errorf("gdb: write register %d failed: %v", idx, err)
		return []byte("OK"), true
	}
	if int(idx) == s.Desc.PCIndex {
		s.CurrentPC = value
	}
	return []byte("OK"), true
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
