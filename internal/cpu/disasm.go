package cpu

import "fmt"

// Disassemble renders the instruction at pc and returns its length in bytes.
// It only reads through b and never changes state.
func Disassemble(b Bus, pc uint16) (string, int) {
	op := b.Read(pc)
	d8 := func() byte { return b.Read(pc + 1) }
	d16 := func() uint16 { return joinWord(b.Read(pc+2), b.Read(pc+1)) }
	x, y, z := fields(op)
	p, q := y>>1, y&1

	switch x {
	case 1:
		if y == 6 && z == 6 {
			return "HALT", 1
		}
		return fmt.Sprintf("LD %v,%v", Reg8(y), Reg8(z)), 1
	case 2:
		return fmt.Sprintf("%s%v", aluKind(y), Reg8(z)), 1
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return "NOP", 1
			case 1:
				return fmt.Sprintf("LD ($%04X),SP", d16()), 3
			case 2:
				return "STOP", 2
			case 3:
				return fmt.Sprintf("JR %+d", int8(d8())), 2
			default:
				return fmt.Sprintf("JR %v,%+d", cond(y-4), int8(d8())), 2
			}
		case 1:
			if q == 0 {
				return fmt.Sprintf("LD %v,$%04X", rpTable[p], d16()), 3
			}
			return fmt.Sprintf("ADD HL,%v", rpTable[p]), 1
		case 2:
			ind := [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}[p]
			if q == 0 {
				return fmt.Sprintf("LD %s,A", ind), 1
			}
			return fmt.Sprintf("LD A,%s", ind), 1
		case 3:
			return fmt.Sprintf("%s %v", [2]string{"INC", "DEC"}[q], rpTable[p]), 1
		case 4:
			return fmt.Sprintf("INC %v", Reg8(y)), 1
		case 5:
			return fmt.Sprintf("DEC %v", Reg8(y)), 1
		case 6:
			return fmt.Sprintf("LD %v,$%02X", Reg8(y), d8()), 2
		default:
			return [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}[y], 1
		}
	}

	if IsIllegal(op) {
		return fmt.Sprintf("DB $%02X", op), 1
	}
	switch z {
	case 0:
		switch y {
		case 4:
			return fmt.Sprintf("LDH ($FF%02X),A", d8()), 2
		case 5:
			return fmt.Sprintf("ADD SP,%+d", int8(d8())), 2
		case 6:
			return fmt.Sprintf("LDH A,($FF%02X)", d8()), 2
		case 7:
			return fmt.Sprintf("LD HL,SP%+d", int8(d8())), 2
		default:
			return fmt.Sprintf("RET %v", cond(y)), 1
		}
	case 1:
		if q == 0 {
			return fmt.Sprintf("POP %v", rp2Table[p]), 1
		}
		return [4]string{"RET", "RETI", "JP HL", "LD SP,HL"}[p], 1
	case 2:
		switch y {
		case 4:
			return "LD ($FF00+C),A", 1
		case 5:
			return fmt.Sprintf("LD ($%04X),A", d16()), 3
		case 6:
			return "LD A,($FF00+C)", 1
		case 7:
			return fmt.Sprintf("LD A,($%04X)", d16()), 3
		default:
			return fmt.Sprintf("JP %v,$%04X", cond(y), d16()), 3
		}
	case 3:
		switch y {
		case 0:
			return fmt.Sprintf("JP $%04X", d16()), 3
		case 1:
			return disassembleCB(d8()), 2
		case 6:
			return "DI", 1
		default:
			return "EI", 1
		}
	case 4:
		return fmt.Sprintf("CALL %v,$%04X", cond(y), d16()), 3
	case 5:
		if q == 0 {
			return fmt.Sprintf("PUSH %v", rp2Table[p]), 1
		}
		return fmt.Sprintf("CALL $%04X", d16()), 3
	case 6:
		return fmt.Sprintf("%s$%02X", aluKind(y), d8()), 2
	default:
		return fmt.Sprintf("RST $%02X", y*8), 1
	}
}

func disassembleCB(op byte) string {
	x, y, z := fields(op)
	switch x {
	case 0:
		return fmt.Sprintf("%v %v", shiftKind(y), Reg8(z))
	case 1:
		return fmt.Sprintf("BIT %d,%v", y, Reg8(z))
	case 2:
		return fmt.Sprintf("RES %d,%v", y, Reg8(z))
	default:
		return fmt.Sprintf("SET %d,%v", y, Reg8(z))
	}
}
