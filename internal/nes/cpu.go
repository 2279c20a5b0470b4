package nes

const resetVectorAddr = uint16(0xfffc)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, always set
	flagV                    // Overflow
	flagN                    // Negative
)

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeREL                      // Relative
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeREL:
		return "REL"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// OpcodePolicy fixes what the CPU does with a byte that has no
// instruction table entry. The reference hardware behavior for them is
// outside our subset, so the choice is explicit per CPU instance.
type OpcodePolicy uint8

const (
	// OpcodePolicyNOP executes an undefined opcode as a 2-cycle NOP.
	OpcodePolicyNOP OpcodePolicy = iota
	// OpcodePolicyFault stops execution with an *OpcodeError.
	OpcodePolicyFault
)

type opcodeFunc func() (uint8, error)

type instr struct {
	name   string
	mode   addrMode
	fn     opcodeFunc
	cycles uint8 // base cost, addressing surcharge included
	setsZN bool  // result drives the Z and N flags
}

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	sp uint8
	p  uint8
	pc uint16

	mem    Memory
	instrs [0x100]instr
	policy OpcodePolicy

	// transient state written by fetch and consumed by the opcode
	// handlers, cleared after every step
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
	extraCycles  uint8

	totalCycles uint64
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem Memory, policy OpcodePolicy) *CPU {
	c := &CPU{
		mem:    mem,
		policy: policy,
	}
	c.initInstructions()
	return c
}

func (c *CPU) read8(addr uint16) (uint8, error) {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) (uint16, error) {
	lo, err := c.read8(addr)
	if err != nil {
		return 0, err
	}
	hi, err := c.read8(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (c *CPU) write8(addr uint16, data uint8) error {
	return c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

// setFlagsZN is the only place the Z and N flags change. Step calls it
// for instructions whose table entry marks a flag result.
func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

// Reset returns the CPU to its power-on state and loads PC from the
// reset vector.
func (c *CPU) Reset() error {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0
	c.p = 0x00 | flagU
	pc, err := c.read16(resetVectorAddr)
	if err != nil {
		return err
	}
	c.pc = pc
	c.totalCycles = 0
	return nil
}

// Step executes exactly one instruction and returns its cycle cost.
// On a fault the machine state stops advancing and the error is
// returned to the caller.
func (c *CPU) Step() (uint8, error) {
	opcodeAddr := c.pc
	opcode, err := c.read8(opcodeAddr)
	if err != nil {
		return 0, err
	}
	c.pc++

	in := c.instrs[opcode]
	if in.fn == nil {
		if c.policy == OpcodePolicyFault {
			// leave PC on the faulting byte for the caller
			c.pc = opcodeAddr
			return 0, &OpcodeError{Opcode: opcode, PC: opcodeAddr}
		}
		in = instr{name: "NOP", mode: addrModeIMP, fn: c.nop, cycles: 2}
	}

	if err := c.fetch(in.mode); err != nil {
		return 0, err
	}
	result, err := in.fn()
	if err != nil {
		return 0, err
	}
	if in.setsZN {
		c.setFlagsZN(result)
	}

	cycles := in.cycles + c.extraCycles

	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	c.extraCycles = 0

	c.totalCycles += uint64(cycles)
	return cycles, nil
}

// fetch resolves the addressing mode, consuming operand bytes from the
// instruction stream. Page crossing affects timing only, never the
// resulting address.
func (c *CPU) fetch(mode addrMode) error {
	c.addrMode = mode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	switch mode {
	case addrModeIMM:
		v, err := c.read8(c.pc)
		if err != nil {
			return err
		}
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = v

	case addrModeABS:
		addr, err := c.read16(c.pc)
		if err != nil {
			return err
		}
		c.pc += 2
		c.operandAddr = addr

	case addrModeABSX:
		baseAddr, err := c.read16(c.pc)
		if err != nil {
			return err
		}
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.x)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeREL:
		offset, err := c.read8(c.pc)
		if err != nil {
			return err
		}
		c.pc++
		rel := uint16(offset)
		if rel&0x80 > 0 {
			rel |= 0xff00 // add leading 1 s to save the sign
		}
		c.operandAddr = c.pc + rel
		c.pageCrossed = isDiffPage(c.pc, c.operandAddr)

	case addrModeIMP:
	}

	return nil
}

// loadOperand returns the value the resolved operand refers to: the
// immediate byte itself, or a bus read at the effective address.
func (c *CPU) loadOperand() (uint8, error) {
	if c.addrMode == addrModeIMM {
		return c.operandValue, nil
	}
	return c.read8(c.operandAddr)
}

// TotalCycles reports the cycles consumed since the last reset.
func (c CPU) TotalCycles() uint64 {
	return c.totalCycles
}

// Registers is a read-only snapshot of the register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16
}

// InspectRegisters returns the current register state with no side
// effects.
func (c CPU) InspectRegisters() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, SP: c.sp, P: c.p, PC: c.pc}
}

// StatusString renders the P register as NVUBDIZC, lowercase for clear
// bits.
func (r Registers) StatusString() string {
	const names = "NVUBDIZC"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bit := uint8(0x80) >> i
		if r.P&bit > 0 {
			s[i] = names[i]
		} else {
			s[i] = names[i] - 'A' + 'a'
		}
	}
	return string(s)
}
