package nes

// Branch if Not Equal
// If Z = 0, PC <- target
//
// Flags affected: None
//
// Additional cycles: +1 when the branch is taken,
// +1 more when the target is on a different page.
func (c *CPU) bne() (uint8, error) {
	if c.getFlag(flagZ) {
		return 0, nil
	}
	c.extraCycles++
	if c.pageCrossed {
		c.extraCycles++
	}
	c.pc = c.operandAddr
	return 0, nil
}

// Decrement Y Register
// Y <- Y - 1
//
// Flags affected: Z, N
func (c *CPU) dey() (uint8, error) {
	c.y--
	return c.y, nil
}

// Increment X Register
// X <- X + 1
//
// Flags affected: Z, N
func (c *CPU) inx() (uint8, error) {
	c.x++
	return c.x, nil
}

// Jump
// PC <- address
//
// Flags affected: None
func (c *CPU) jmp() (uint8, error) {
	c.pc = c.operandAddr
	return 0, nil
}

// Load Accumulator
// A <- M
//
// Flags affected: Z, N
//
// An additional cycle is needed if the page boundary is crossed.
func (c *CPU) lda() (uint8, error) {
	v, err := c.loadOperand()
	if err != nil {
		return 0, err
	}
	c.a = v
	if c.pageCrossed {
		c.extraCycles++
	}
	return c.a, nil
}

// Load X Register
// X <- M
//
// Flags affected: Z, N
//
// An additional cycle is needed if the page boundary is crossed.
func (c *CPU) ldx() (uint8, error) {
	v, err := c.loadOperand()
	if err != nil {
		return 0, err
	}
	c.x = v
	if c.pageCrossed {
		c.extraCycles++
	}
	return c.x, nil
}

// Load Y Register
// Y <- M
//
// Flags affected: Z, N
//
// An additional cycle is needed if the page boundary is crossed.
func (c *CPU) ldy() (uint8, error) {
	v, err := c.loadOperand()
	if err != nil {
		return 0, err
	}
	c.y = v
	if c.pageCrossed {
		c.extraCycles++
	}
	return c.y, nil
}

// No Operation
//
// Flags affected: None
func (c *CPU) nop() (uint8, error) {
	return 0, nil
}

// Set Interrupt Disable
// I <- 1
//
// Flags affected: I
func (c *CPU) sei() (uint8, error) {
	c.setFlag(flagI, true)
	return 0, nil
}

// Store Accumulator
// M <- A
//
// Flags affected: None
//
// An additional cycle is needed if the page boundary is crossed.
func (c *CPU) sta() (uint8, error) {
	if c.pageCrossed {
		c.extraCycles++
	}
	return 0, c.write8(c.operandAddr, c.a)
}

// Transfer X to Stack Pointer
// SP <- X
//
// Flags affected: Z, N
func (c *CPU) txs() (uint8, error) {
	c.sp = c.x
	return c.sp, nil
}

// initInstructions fills the opcode table. The cycle column is the base
// cost with the addressing surcharge folded in; conditional surcharges
// (page crossing, branch taken) are added by the handlers.
func (c *CPU) initInstructions() {
	c.instrs[0x4c] = instr{name: "JMP", mode: addrModeABS, fn: c.jmp, cycles: 3}
	c.instrs[0x78] = instr{name: "SEI", mode: addrModeIMP, fn: c.sei, cycles: 2}
	c.instrs[0x88] = instr{name: "DEY", mode: addrModeIMP, fn: c.dey, cycles: 2, setsZN: true}
	c.instrs[0x8d] = instr{name: "STA", mode: addrModeABS, fn: c.sta, cycles: 4}
	c.instrs[0x9a] = instr{name: "TXS", mode: addrModeIMP, fn: c.txs, cycles: 2, setsZN: true}
	c.instrs[0xa0] = instr{name: "LDY", mode: addrModeIMM, fn: c.ldy, cycles: 2, setsZN: true}
	c.instrs[0xa2] = instr{name: "LDX", mode: addrModeIMM, fn: c.ldx, cycles: 2, setsZN: true}
	c.instrs[0xa9] = instr{name: "LDA", mode: addrModeIMM, fn: c.lda, cycles: 2, setsZN: true}
	c.instrs[0xbd] = instr{name: "LDA", mode: addrModeABSX, fn: c.lda, cycles: 4, setsZN: true}
	c.instrs[0xd0] = instr{name: "BNE", mode: addrModeREL, fn: c.bne, cycles: 2}
	c.instrs[0xe8] = instr{name: "INX", mode: addrModeIMP, fn: c.inx, cycles: 2, setsZN: true}
}
