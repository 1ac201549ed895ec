package registers

import (
	"fmt"
	"strings"
)

// TargetXML renders the GDB target-description annex GDB requests over
// qXfer:features:read:target.xml: when it first connects, one <reg> per
// GDB register index, generated from the same Names/slots table that
// drives g/G/p/P so the two can never drift apart.
//
// The shape (an org.gnu.gdb.*.core feature with one <reg> per line) is
// taken directly from the annex the emulator teacher hands to GDB for
// its Cortex-M target; this rewrite parameterises the feature name and
// register list per architecture instead of hard-coding one core.
func TargetXML(a Arch) string {
	d := For(a)
	var feature string
	switch a {
	case X86:
		feature = "org.gnu.gdb.i386.core"
	case X8664:
		feature = "org.gnu.gdb.i386.64bit.core"
	case ARM32:
		feature = "org.gnu.gdb.arm.core"
	case ARM64:
		feature = "org.gnu.gdb.aarch64.core"
	}

	bitsize := d.WordBytes * 8
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<!DOCTYPE target SYSTEM "gdb-target.dtd">` + "\n")
	b.WriteString(`<target version="1.0">` + "\n")
	fmt.Fprintf(&b, "<feature name=%q>\n", feature)
	for i, name := range d.Names {
		if name == "" {
			continue
		}
		typ := "int"
		switch name {
		case "pc", "eip", "rip":
			typ = "code_ptr"
		case "sp", "esp", "rsp":
			typ = "data_ptr"
		}
		fmt.Fprintf(&b, `<reg name="%s" bitsize="%d" regnum="%d" save-restore="yes" type="%s" group="general"/>`+"\n",
			name, bitsize, i, typ)
	}
	b.WriteString("</feature>\n</target>\n")
	return b.String()
}
