package cpu

import "fmt"

// Instruction is a decoded opcode.
type Instruction struct {
	Op     Operation
	Mode   AddrMode
	Cycles int // base cycles, before page-crossing and branch penalties
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s {%s}", in.Op, in.Mode)
}

// instructions covers every opcode value, undocumented ones included.
var instructions = [0x100]Instruction{
	0x00: {OpBRK, AddrModeIMP, 7},
	0x01: {OpORA, AddrModeINDX, 6},
	0x02: {OpJAM, AddrModeIMP, 2},
	0x03: {OpSLO, AddrModeINDX, 8},
	0x04: {OpIGN, AddrModeZP, 3},
	0x05: {OpORA, AddrModeZP, 3},
	0x06: {OpASL, AddrModeZP, 5},
	0x07: {OpSLO, AddrModeZP, 5},
	0x08: {OpPHP, AddrModeIMP, 3},
	0x09: {OpORA, AddrModeIMM, 2},
	0x0a: {OpASL, AddrModeACC, 2},
	0x0b: {OpANC, AddrModeIMM, 2},
	0x0c: {OpIGN, AddrModeABS, 4},
	0x0d: {OpORA, AddrModeABS, 4},
	0x0e: {OpASL, AddrModeABS, 6},
	0x0f: {OpSLO, AddrModeABS, 6},
	0x10: {OpBPL, AddrModeREL, 2},
	0x11: {OpORA, AddrModeINDY, 5},
	0x12: {OpJAM, AddrModeIMP, 2},
	0x13: {OpSLO, AddrModeINDY, 8},
	0x14: {OpIGN, AddrModeZPX, 4},
	0x15: {OpORA, AddrModeZPX, 4},
	0x16: {OpASL, AddrModeZPX, 6},
	0x17: {OpSLO, AddrModeZPX, 6},
	0x18: {OpCLC, AddrModeIMP, 2},
	0x19: {OpORA, AddrModeABSY, 4},
	0x1a: {OpNOP, AddrModeIMP, 2},
	0x1b: {OpSLO, AddrModeABSY, 7},
	0x1c: {OpIGN, AddrModeABSX, 4},
	0x1d: {OpORA, AddrModeABSX, 4},
	0x1e: {OpASL, AddrModeABSX, 7},
	0x1f: {OpSLO, AddrModeABSX, 7},
	0x20: {OpJSR, AddrModeABS, 6},
	0x21: {OpAND, AddrModeINDX, 6},
	0x22: {OpJAM, AddrModeIMP, 2},
	0x23: {OpRLA, AddrModeINDX, 8},
	0x24: {OpBIT, AddrModeZP, 3},
	0x25: {OpAND, AddrModeZP, 3},
	0x26: {OpROL, AddrModeZP, 5},
	0x27: {OpRLA, AddrModeZP, 5},
	0x28: {OpPLP, AddrModeIMP, 4},
	0x29: {OpAND, AddrModeIMM, 2},
	0x2a: {OpROL, AddrModeACC, 2},
	0x2b: {OpANC, AddrModeIMM, 2},
	0x2c: {OpBIT, AddrModeABS, 4},
	0x2d: {OpAND, AddrModeABS, 4},
	0x2e: {OpROL, AddrModeABS, 6},
	0x2f: {OpRLA, AddrModeABS, 6},
	0x30: {OpBMI, AddrModeREL, 2},
	0x31: {OpAND, AddrModeINDY, 5},
	0x32: {OpJAM, AddrModeIMP, 2},
	0x33: {OpRLA, AddrModeINDY, 8},
	0x34: {OpIGN, AddrModeZPX, 4},
	0x35: {OpAND, AddrModeZPX, 4},
	0x36: {OpROL, AddrModeZPX, 6},
	0x37: {OpRLA, AddrModeZPX, 6},
	0x38: {OpSEC, AddrModeIMP, 2},
	0x39: {OpAND, AddrModeABSY, 4},
	0x3a: {OpNOP, AddrModeIMP, 2},
	0x3b: {OpRLA, AddrModeABSY, 7},
	0x3c: {OpIGN, AddrModeABSX, 4},
	0x3d: {OpAND, AddrModeABSX, 4},
	0x3e: {OpROL, AddrModeABSX, 7},
	0x3f: {OpRLA, AddrModeABSX, 7},
	0x40: {OpRTI, AddrModeIMP, 6},
	0x41: {OpEOR, AddrModeINDX, 6},
	0x42: {OpJAM, AddrModeIMP, 2},
	0x43: {OpSRE, AddrModeINDX, 8},
	0x44: {OpIGN, AddrModeZP, 3},
	0x45: {OpEOR, AddrModeZP, 3},
	0x46: {OpLSR, AddrModeZP, 5},
	0x47: {OpSRE, AddrModeZP, 5},
	0x48: {OpPHA, AddrModeIMP, 3},
	0x49: {OpEOR, AddrModeIMM, 2},
	0x4a: {OpLSR, AddrModeACC, 2},
	0x4b: {OpALR, AddrModeIMM, 2},
	0x4c: {OpJMP, AddrModeABS, 3},
	0x4d: {OpEOR, AddrModeABS, 4},
	0x4e: {OpLSR, AddrModeABS, 6},
	0x4f: {OpSRE, AddrModeABS, 6},
	0x50: {OpBVC, AddrModeREL, 2},
	0x51: {OpEOR, AddrModeINDY, 5},
	0x52: {OpJAM, AddrModeIMP, 2},
	0x53: {OpSRE, AddrModeINDY, 8},
	0x54: {OpIGN, AddrModeZPX, 4},
	0x55: {OpEOR, AddrModeZPX, 4},
	0x56: {OpLSR, AddrModeZPX, 6},
	0x57: {OpSRE, AddrModeZPX, 6},
	0x58: {OpCLI, AddrModeIMP, 2},
	0x59: {OpEOR, AddrModeABSY, 4},
	0x5a: {OpNOP, AddrModeIMP, 2},
	0x5b: {OpSRE, AddrModeABSY, 7},
	0x5c: {OpIGN, AddrModeABSX, 4},
	0x5d: {OpEOR, AddrModeABSX, 4},
	0x5e: {OpLSR, AddrModeABSX, 7},
	0x5f: {OpSRE, AddrModeABSX, 7},
	0x60: {OpRTS, AddrModeIMP, 6},
	0x61: {OpADC, AddrModeINDX, 6},
	0x62: {OpJAM, AddrModeIMP, 2},
	0x63: {OpRRA, AddrModeINDX, 8},
	0x64: {OpIGN, AddrModeZP, 3},
	0x65: {OpADC, AddrModeZP, 3},
	0x66: {OpROR, AddrModeZP, 5},
	0x67: {OpRRA, AddrModeZP, 5},
	0x68: {OpPLA, AddrModeIMP, 4},
	0x69: {OpADC, AddrModeIMM, 2},
	0x6a: {OpROR, AddrModeACC, 2},
	0x6b: {OpARR, AddrModeIMM, 2},
	0x6c: {OpJMP, AddrModeIND, 5},
	0x6d: {OpADC, AddrModeABS, 4},
	0x6e: {OpROR, AddrModeABS, 6},
	0x6f: {OpRRA, AddrModeABS, 6},
	0x70: {OpBVS, AddrModeREL, 2},
	0x71: {OpADC, AddrModeINDY, 5},
	0x72: {OpJAM, AddrModeIMP, 2},
	0x73: {OpRRA, AddrModeINDY, 8},
	0x74: {OpIGN, AddrModeZPX, 4},
	0x75: {OpADC, AddrModeZPX, 4},
	0x76: {OpROR, AddrModeZPX, 6},
	0x77: {OpRRA, AddrModeZPX, 6},
	0x78: {OpSEI, AddrModeIMP, 2},
	0x79: {OpADC, AddrModeABSY, 4},
	0x7a: {OpNOP, AddrModeIMP, 2},
	0x7b: {OpRRA, AddrModeABSY, 7},
	0x7c: {OpIGN, AddrModeABSX, 4},
	0x7d: {OpADC, AddrModeABSX, 4},
	0x7e: {OpROR, AddrModeABSX, 7},
	0x7f: {OpRRA, AddrModeABSX, 7},
	0x80: {OpSKB, AddrModeIMM, 2},
	0x81: {OpSTA, AddrModeINDX, 6},
	0x82: {OpSKB, AddrModeIMM, 2},
	0x83: {OpSAX, AddrModeINDX, 6},
	0x84: {OpSTY, AddrModeZP, 3},
	0x85: {OpSTA, AddrModeZP, 3},
	0x86: {OpSTX, AddrModeZP, 3},
	0x87: {OpSAX, AddrModeZP, 3},
	0x88: {OpDEY, AddrModeIMP, 2},
	0x89: {OpSKB, AddrModeIMM, 2},
	0x8a: {OpTXA, AddrModeIMP, 2},
	0x8b: {OpANE, AddrModeIMM, 2},
	0x8c: {OpSTY, AddrModeABS, 4},
	0x8d: {OpSTA, AddrModeABS, 4},
	0x8e: {OpSTX, AddrModeABS, 4},
	0x8f: {OpSAX, AddrModeABS, 4},
	0x90: {OpBCC, AddrModeREL, 2},
	0x91: {OpSTA, AddrModeINDY, 6},
	0x92: {OpJAM, AddrModeIMP, 2},
	0x93: {OpSHA, AddrModeINDY, 6},
	0x94: {OpSTY, AddrModeZPX, 4},
	0x95: {OpSTA, AddrModeZPX, 4},
	0x96: {OpSTX, AddrModeZPY, 4},
	0x97: {OpSAX, AddrModeZPY, 4},
	0x98: {OpTYA, AddrModeIMP, 2},
	0x99: {OpSTA, AddrModeABSY, 5},
	0x9a: {OpTXS, AddrModeIMP, 2},
	0x9b: {OpTAS, AddrModeABSY, 5},
	0x9c: {OpSHY, AddrModeABSX, 5},
	0x9d: {OpSTA, AddrModeABSX, 5},
	0x9e: {OpSHX, AddrModeABSY, 5},
	0x9f: {OpSHA, AddrModeABSY, 5},
	0xa0: {OpLDY, AddrModeIMM, 2},
	0xa1: {OpLDA, AddrModeINDX, 6},
	0xa2: {OpLDX, AddrModeIMM, 2},
	0xa3: {OpLAX, AddrModeINDX, 6},
	0xa4: {OpLDY, AddrModeZP, 3},
	0xa5: {OpLDA, AddrModeZP, 3},
	0xa6: {OpLDX, AddrModeZP, 3},
	0xa7: {OpLAX, AddrModeZP, 3},
	0xa8: {OpTAY, AddrModeIMP, 2},
	0xa9: {OpLDA, AddrModeIMM, 2},
	0xaa: {OpTAX, AddrModeIMP, 2},
	0xab: {OpLXA, AddrModeIMM, 2},
	0xac: {OpLDY, AddrModeABS, 4},
	0xad: {OpLDA, AddrModeABS, 4},
	0xae: {OpLDX, AddrModeABS, 4},
	0xaf: {OpLAX, AddrModeABS, 4},
	0xb0: {OpBCS, AddrModeREL, 2},
	0xb1: {OpLDA, AddrModeINDY, 5},
	0xb2: {OpJAM, AddrModeIMP, 2},
	0xb3: {OpLAX, AddrModeINDY, 5},
	0xb4: {OpLDY, AddrModeZPX, 4},
	0xb5: {OpLDA, AddrModeZPX, 4},
	0xb6: {OpLDX, AddrModeZPY, 4},
	0xb7: {OpLAX, AddrModeZPY, 4},
	0xb8: {OpCLV, AddrModeIMP, 2},
	0xb9: {OpLDA, AddrModeABSY, 4},
	0xba: {OpTSX, AddrModeIMP, 2},
	0xbb: {OpLAS, AddrModeABSY, 4},
	0xbc: {OpLDY, AddrModeABSX, 4},
	0xbd: {OpLDA, AddrModeABSX, 4},
	0xbe: {OpLDX, AddrModeABSY, 4},
	0xbf: {OpLAX, AddrModeABSY, 4},
	0xc0: {OpCPY, AddrModeIMM, 2},
	0xc1: {OpCMP, AddrModeINDX, 6},
	0xc2: {OpSKB, AddrModeIMM, 2},
	0xc3: {OpDCP, AddrModeINDX, 8},
	0xc4: {OpCPY, AddrModeZP, 3},
	0xc5: {OpCMP, AddrModeZP, 3},
	0xc6: {OpDEC, AddrModeZP, 5},
	0xc7: {OpDCP, AddrModeZP, 5},
	0xc8: {OpINY, AddrModeIMP, 2},
	0xc9: {OpCMP, AddrModeIMM, 2},
	0xca: {OpDEX, AddrModeIMP, 2},
	0xcb: {OpAXS, AddrModeIMM, 2},
	0xcc: {OpCPY, AddrModeABS, 4},
	0xcd: {OpCMP, AddrModeABS, 4},
	0xce: {OpDEC, AddrModeABS, 6},
	0xcf: {OpDCP, AddrModeABS, 6},
	0xd0: {OpBNE, AddrModeREL, 2},
	0xd1: {OpCMP, AddrModeINDY, 5},
	0xd2: {OpJAM, AddrModeIMP, 2},
	0xd3: {OpDCP, AddrModeINDY, 8},
	0xd4: {OpIGN, AddrModeZPX, 4},
	0xd5: {OpCMP, AddrModeZPX, 4},
	0xd6: {OpDEC, AddrModeZPX, 6},
	0xd7: {OpDCP, AddrModeZPX, 6},
	0xd8: {OpCLD, AddrModeIMP, 2},
	0xd9: {OpCMP, AddrModeABSY, 4},
	0xda: {OpNOP, AddrModeIMP, 2},
	0xdb: {OpDCP, AddrModeABSY, 7},
	0xdc: {OpIGN, AddrModeABSX, 4},
	0xdd: {OpCMP, AddrModeABSX, 4},
	0xde: {OpDEC, AddrModeABSX, 7},
	0xdf: {OpDCP, AddrModeABSX, 7},
	0xe0: {OpCPX, AddrModeIMM, 2},
	0xe1: {OpSBC, AddrModeINDX, 6},
	0xe2: {OpSKB, AddrModeIMM, 2},
	0xe3: {OpISC, AddrModeINDX, 8},
	0xe4: {OpCPX, AddrModeZP, 3},
	0xe5: {OpSBC, AddrModeZP, 3},
	0xe6: {OpINC, AddrModeZP, 5},
	0xe7: {OpISC, AddrModeZP, 5},
	0xe8: {OpINX, AddrModeIMP, 2},
	0xe9: {OpSBC, AddrModeIMM, 2},
	0xea: {OpNOP, AddrModeIMP, 2},
	0xeb: {OpSBC, AddrModeIMM, 2},
	0xec: {OpCPX, AddrModeABS, 4},
	0xed: {OpSBC, AddrModeABS, 4},
	0xee: {OpINC, AddrModeABS, 6},
	0xef: {OpISC, AddrModeABS, 6},
	0xf0: {OpBEQ, AddrModeREL, 2},
	0xf1: {OpSBC, AddrModeINDY, 5},
	0xf2: {OpJAM, AddrModeIMP, 2},
	0xf3: {OpISC, AddrModeINDY, 8},
	0xf4: {OpIGN, AddrModeZPX, 4},
	0xf5: {OpSBC, AddrModeZPX, 4},
	0xf6: {OpINC, AddrModeZPX, 6},
	0xf7: {OpISC, AddrModeZPX, 6},
	0xf8: {OpSED, AddrModeIMP, 2},
	0xf9: {OpSBC, AddrModeABSY, 4},
	0xfa: {OpNOP, AddrModeIMP, 2},
	0xfb: {OpISC, AddrModeABSY, 7},
	0xfc: {OpIGN, AddrModeABSX, 4},
	0xfd: {OpSBC, AddrModeABSX, 4},
	0xfe: {OpINC, AddrModeABSX, 7},
	0xff: {OpISC, AddrModeABSX, 7},
}

// Decode maps an opcode to its instruction.
func Decode(opcode uint8) (Instruction, error) {
	in := instructions[opcode]
	if in.Op == opInvalid {
		return Instruction{}, fmt.Errorf("%w: $%02X", ErrUnknownOpcode, opcode)
	}
	return in, nil
}
