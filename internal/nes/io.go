package nes

// ioPort stubs the $2000-$2007 register window. Writes latch into the
// registers and reads return the latched value; no device sits behind
// them yet.
type ioPort struct {
	regs [8]uint8
}

func (p *ioPort) readRegister(addr uint16) uint8 {
	return p.regs[addr&0x7]
}

func (p *ioPort) writeRegister(addr uint16, data uint8) {
	p.regs[addr&0x7] = data
}
