package nes

import "fmt"

// Disassemble returns a map of addresses and their corresponding
// instructions from 0x0000 to 0xffff. Unmapped regions, undefined
// opcodes, and truncated operands render as "???".
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	unknown := func(pc uint16) {
		disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
	}

	addr := uint32(0)
	for addr <= 0xffff {
		pc := uint16(addr)
		opcode, err := c.read8(pc)
		if err != nil {
			unknown(pc)
			addr++
			continue
		}
		in := c.instrs[opcode]
		if in.fn == nil {
			unknown(pc)
			addr++
			continue
		}

		pc++
		skip := uint32(0)
		switch in.mode {
		case addrModeIMM:
			operand, err := c.read8(pc)
			if err != nil {
				unknown(uint16(addr))
				addr++
				continue
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, in.name, operand, in.mode)
			skip = 1
		case addrModeABS:
			operand, err := c.read16(pc)
			if err != nil {
				unknown(uint16(addr))
				addr++
				continue
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, in.name, operand, in.mode)
			skip = 2
		case addrModeABSX:
			operand, err := c.read16(pc)
			if err != nil {
				unknown(uint16(addr))
				addr++
				continue
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, in.name, operand, in.mode)
			skip = 2
		case addrModeREL:
			operand, err := c.read8(pc)
			if err != nil {
				unknown(uint16(addr))
				addr++
				continue
			}
			pc++
			target := uint16(operand)
			if target&0x80 > 0 {
				target |= 0xff00 // add leading 1 s to save the sign
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, in.name, pc+target, in.mode)
			skip = 1
		case addrModeIMP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s {%s}", addr, in.name, in.mode)
		}

		addr = addr + 1 + skip
	}

	return disasm
}
