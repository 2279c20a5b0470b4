package nes

// ClockHz is the NTSC 6502 clock rate. Callers use it together with the
// cycle count returned by Step to pace real time; the core itself never
// sleeps.
const ClockHz = 1789773

type Bus struct {
	cpu *CPU
	ram *RAM
	io  *ioPort
	rom *ROM

	stepCounter uint64
	paused      bool
	stepOnce    bool
}

func NewBus(policy OpcodePolicy) *Bus {
	b := &Bus{}
	b.ram = NewRAM()
	b.io = &ioPort{}
	b.cpu = NewCPU(b.newCPUMemory(), policy)
	return b
}

// LoadROM attaches a cartridge and resets the CPU from its vector.
func (b *Bus) LoadROM(rom *ROM) error {
	b.rom = rom
	return b.Reset()
}

func (b *Bus) Reset() error {
	b.stepCounter = 0
	return b.cpu.Reset()
}

// Step executes one instruction and returns its cycle cost.
func (b *Bus) Step() (uint8, error) {
	cycles, err := b.cpu.Step()
	if err != nil {
		return 0, err
	}
	b.stepCounter++
	return cycles, nil
}

// RunFrame executes one sixtieth of a second of CPU time, for callers
// driving the console from a display loop. While paused it executes
// nothing unless a single step was requested.
func (b *Bus) RunFrame() error {
	if b.paused {
		if !b.stepOnce {
			return nil
		}
		b.stepOnce = false
		_, err := b.Step()
		return err
	}

	for budget := int64(ClockHz / 60); budget > 0; {
		cycles, err := b.Step()
		if err != nil {
			return err
		}
		budget -= int64(cycles)
	}
	return nil
}

func (b *Bus) TogglePause() {
	b.paused = !b.paused
}

func (b *Bus) OneStepAndStop() {
	b.paused = true
	b.stepOnce = true
}

func (b *Bus) InspectRegisters() Registers {
	return b.cpu.InspectRegisters()
}

func (b *Bus) Disassemble() map[uint16]string {
	return b.cpu.Disassemble()
}

type DebugInfo struct {
	Registers
	Steps  uint64
	Cycles uint64
	Paused bool
}

func (b *Bus) DebugInfo() DebugInfo {
	return DebugInfo{
		Registers: b.cpu.InspectRegisters(),
		Steps:     b.stepCounter,
		Cycles:    b.cpu.TotalCycles(),
		Paused:    b.paused,
	}
}
