package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
)

// ROM is an immutable cartridge image. The program bank is mapped by the
// bus at $8000-$FFFF; nothing can mutate it after construction.
type ROM struct {
	program   []uint8
	character []uint8

	prgBanks uint8
	chrBanks uint8
}

// NewROMFromFile reads a .nes file and returns a ROM.
// Supported NES format: iNES
func NewROMFromFile(path string) (*ROM, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	rom, err := readINES(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// NewROMFromBytes wraps a raw program bank. The slice is copied so the
// caller keeps no handle into the image.
func NewROMFromBytes(program []uint8) *ROM {
	rom := &ROM{program: make([]uint8, len(program))}
	copy(rom.program, program)
	return rom
}

func readINES(r io.ReadSeeker) (*ROM, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w", err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("invalid header")
	}
	// the third bit of flags6 marks a 512-byte trainer before the banks
	if header.Flags6&0x4 != 0 {
		if _, err := r.Seek(512, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w", err)
		}
	}

	rom := &ROM{
		program:   make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		character: make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
		prgBanks:  header.PrgRomSize,
		chrBanks:  header.ChrRomSize,
	}
	if _, err := io.ReadFull(r, rom.program); err != nil {
		return nil, fmt.Errorf("couldn't read PRG ROM: %w", err)
	}
	if _, err := io.ReadFull(r, rom.character); err != nil {
		return nil, fmt.Errorf("couldn't read CHR ROM: %w", err)
	}
	return rom, nil
}

// Read8 reads from the program bank. offset is relative to $8000.
func (r *ROM) Read8(offset uint16) (uint8, error) {
	if int(offset) >= len(r.program) {
		return 0, &BusError{Op: busRead, Addr: romStartAddr + offset, Reason: "beyond the PRG ROM"}
	}
	return r.program[offset], nil
}

// Size returns the program bank size in bytes.
func (r *ROM) Size() int {
	return len(r.program)
}
