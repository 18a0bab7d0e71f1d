package bitcoin

import (
	"math/big"

	"github.com/bitcoinecho/node/pkg/bhash"
	"github.com/bitcoinecho/node/pkg/codec"
	"github.com/bitcoinecho/node/pkg/ecdsa"
	"github.com/bitcoinecho/node/pkg/secp256k1"
)

// Opcode is a Bitcoin Script operation code.
type Opcode byte

// Script operation codes actually wired into the dispatch table, plus the
// handful of constant-push opcodes dispatched as opcodes rather than data
// pushes. OP_IF/OP_ELSE/OP_ENDIF/OP_VERIF/OP_VERNOTIF, OP_CHECKMULTISIG(VERIFY)
// and the BIP65/112/141/342 NOP expansions are deliberately absent: nothing
// in this evaluator wires them into dispatch.
const (
	OP_0         Opcode = 0x00
	OP_FALSE     Opcode = OP_0
	OP_PUSHDATA1 Opcode = 0x4c
	OP_PUSHDATA2 Opcode = 0x4d
	OP_PUSHDATA4 Opcode = 0x4e
	OP_1NEGATE   Opcode = 0x4f
	OP_1         Opcode = 0x51
	OP_TRUE      Opcode = OP_1
	OP_2         Opcode = 0x52
	OP_3         Opcode = 0x53
	OP_4         Opcode = 0x54
	OP_5         Opcode = 0x55
	OP_6         Opcode = 0x56
	OP_7         Opcode = 0x57
	OP_8         Opcode = 0x58
	OP_9         Opcode = 0x59
	OP_10        Opcode = 0x5a
	OP_11        Opcode = 0x5b
	OP_12        Opcode = 0x5c
	OP_13        Opcode = 0x5d
	OP_14        Opcode = 0x5e
	OP_15        Opcode = 0x5f
	OP_16        Opcode = 0x60

	OP_NOP    Opcode = 0x61
	OP_VERIFY Opcode = 0x69
	OP_RETURN Opcode = 0x6a

	OP_TOALTSTACK   Opcode = 0x6b
	OP_FROMALTSTACK Opcode = 0x6c
	OP_2DROP        Opcode = 0x6d
	OP_2DUP         Opcode = 0x6e
	OP_3DUP         Opcode = 0x6f
	OP_2OVER        Opcode = 0x70
	OP_2ROT         Opcode = 0x71
	OP_2SWAP        Opcode = 0x72
	OP_IFDUP        Opcode = 0x73
	OP_DEPTH        Opcode = 0x74
	OP_DROP         Opcode = 0x75
	OP_DUP          Opcode = 0x76
	OP_NIP          Opcode = 0x77
	OP_OVER         Opcode = 0x78
	OP_PICK         Opcode = 0x79
	OP_ROLL         Opcode = 0x7a
	OP_ROT          Opcode = 0x7b
	OP_SWAP         Opcode = 0x7c
	OP_TUCK         Opcode = 0x7d

	OP_SIZE Opcode = 0x82

	OP_EQUAL       Opcode = 0x87
	OP_EQUALVERIFY Opcode = 0x88

	OP_1ADD               Opcode = 0x8b
	OP_1SUB               Opcode = 0x8c
	OP_NEGATE             Opcode = 0x8f
	OP_ABS                Opcode = 0x90
	OP_NOT                Opcode = 0x91
	OP_0NOTEQUAL          Opcode = 0x92
	OP_ADD                Opcode = 0x93
	OP_SUB                Opcode = 0x94
	OP_MUL                Opcode = 0x95
	OP_BOOLAND            Opcode = 0x9a
	OP_BOOLOR             Opcode = 0x9b
	OP_NUMEQUAL           Opcode = 0x9c
	OP_NUMEQUALVERIFY     Opcode = 0x9d
	OP_NUMNOTEQUAL        Opcode = 0x9e
	OP_LESSTHAN           Opcode = 0x9f
	OP_GREATERTHAN        Opcode = 0xa0
	OP_LESSTHANOREQUAL    Opcode = 0xa1
	OP_GREATERTHANOREQUAL Opcode = 0xa2
	OP_MIN                Opcode = 0xa3
	OP_MAX                Opcode = 0xa4
	OP_WITHIN             Opcode = 0xa5

	OP_RIPEMD160      Opcode = 0xa6
	OP_SHA1           Opcode = 0xa7
	OP_SHA256         Opcode = 0xa8
	OP_HASH160        Opcode = 0xa9
	OP_HASH256        Opcode = 0xaa
	OP_CHECKSIG       Opcode = 0xac
	OP_CHECKSIGVERIFY Opcode = 0xad
)

// maxPushSize bounds the push length serialization accepts; a push at or
// above this length fails to serialize with ErrScriptTooLong. Parsing does
// not check it.
const maxPushSize = 520

// Command is one element of a parsed script: either a data push or an
// opcode, per the tagged-variant representation the push-length framing
// naturally selects between.
type Command struct {
	IsPush bool
	Op     Opcode
	Data   []byte
}

func pushCmd(data []byte) Command { return Command{IsPush: true, Data: data} }
func opCmd(op Opcode) Command     { return Command{Op: op} }

// Script is an ordered sequence of commands: the parsed body of a
// scriptSig or scriptPubKey.
type Script struct {
	Commands []Command
}

// parseCommands reads a script's raw command stream (without its length
// prefix); ParseScript wraps this, with the length supplied by its caller.
func parseCommands(data []byte) ([]Command, error) {
	var cmds []Command
	i := 0
	for i < len(data) {
		b := data[i]
		i++
		switch {
		case b >= 1 && b <= 0x4b:
			n := int(b)
			if i+n > len(data) {
				return nil, ErrScriptParse
			}
			cmds = append(cmds, pushCmd(append([]byte{}, data[i:i+n]...)))
			i += n
		case Opcode(b) == OP_PUSHDATA1:
			if i+1 > len(data) {
				return nil, ErrScriptParse
			}
			n := int(data[i])
			i++
			if i+n > len(data) {
				return nil, ErrScriptParse
			}
			cmds = append(cmds, pushCmd(append([]byte{}, data[i:i+n]...)))
			i += n
		case Opcode(b) == OP_PUSHDATA2:
			if i+2 > len(data) {
				return nil, ErrScriptParse
			}
			n := int(codec.LE32From(append(data[i:i+2:i+2], 0, 0)))
			i += 2
			if i+n > len(data) {
				return nil, ErrScriptParse
			}
			cmds = append(cmds, pushCmd(append([]byte{}, data[i:i+n]...)))
			i += n
		case Opcode(b) == OP_PUSHDATA4:
			// OP_PUSHDATA4 is rejected outright, whatever length it
			// declares, rather than extending the framing to it.
			return nil, ErrScriptParse
		default:
			cmds = append(cmds, opCmd(Opcode(b)))
		}
	}
	return cmds, nil
}

// rawSerialize encodes the command stream without its varint length prefix.
func (s Script) rawSerialize() ([]byte, error) {
	var out []byte
	for _, c := range s.Commands {
		if !c.IsPush {
			out = append(out, byte(c.Op))
			continue
		}
		n := len(c.Data)
		switch {
		case n <= 75:
			out = append(out, byte(n))
		case n <= 255:
			out = append(out, byte(OP_PUSHDATA1), byte(n))
		case n < maxPushSize:
			out = append(out, byte(OP_PUSHDATA2))
			out = append(out, codec.LE32(uint32(n))[:2]...)
		default:
			return nil, ErrScriptTooLong
		}
		out = append(out, c.Data...)
	}
	return out, nil
}

// Serialize encodes the script as varint(length) || rawSerialize().
func (s Script) Serialize() ([]byte, error) {
	raw, err := s.rawSerialize()
	if err != nil {
		return nil, err
	}
	prefix, err := codec.EncodeVarint(new(big.Int).SetInt64(int64(len(raw))))
	if err != nil {
		return nil, err
	}
	return append(prefix, raw...), nil
}

// ParseScript parses the first n bytes of data as a script's raw command
// stream; the caller has already read the varint length prefix. It fails
// with ErrScriptParse if data holds fewer than n bytes.
func ParseScript(data []byte, n uint64) (Script, error) {
	if uint64(len(data)) < n {
		return Script{}, ErrScriptParse
	}
	cmds, err := parseCommands(data[:n])
	if err != nil {
		return Script{}, err
	}
	return Script{Commands: cmds}, nil
}

// encodeNum encodes n using Bitcoin Script's signed-magnitude convention:
// zero is the empty byte string; otherwise a little-endian magnitude with
// the sign folded into the high bit of the final byte (padded with an
// extra zero byte first if that bit would otherwise collide with a
// genuine magnitude bit). The padding test is a bitwise AND against 0x80,
// not a multiplication.
func encodeNum(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{}
	}
	negative := n.Sign() < 0
	abs := new(big.Int).Abs(n)

	var result []byte
	mask := big.NewInt(0xff)
	for abs.Sign() > 0 {
		result = append(result, byte(new(big.Int).And(abs, mask).Int64()))
		abs.Rsh(abs, 8)
	}

	if result[len(result)-1]&0x80 != 0 {
		if negative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if negative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// decodeNum reverses encodeNum.
func decodeNum(data []byte) *big.Int {
	if len(data) == 0 {
		return big.NewInt(0)
	}
	be := append([]byte{}, data...)
	negative := be[len(be)-1]&0x80 != 0
	be[len(be)-1] &^= 0x80
	for i, j := 0, len(be)-1; i < j; i, j = i+1, j-1 {
		be[i], be[j] = be[j], be[i]
	}
	result := new(big.Int).SetBytes(be)
	if negative {
		result.Neg(result)
	}
	return result
}

// isTruthy reports whether an encoded-num byte string is Script-true: any
// nonzero byte, ignoring a lone sign bit on an all-zero magnitude.
func isTruthy(data []byte) bool {
	for i, b := range data {
		if b == 0 {
			continue
		}
		if i == len(data)-1 && b == 0x80 {
			continue
		}
		return true
	}
	return false
}

// scriptStack is the bare [][]byte stack the evaluator pushes/pops, shared
// between the main and alt stacks.
type scriptStack struct {
	items [][]byte
}

func (s *scriptStack) push(b []byte) { s.items = append(s.items, b) }

func (s *scriptStack) pop() ([]byte, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *scriptStack) peek(fromTop int) ([]byte, bool) {
	idx := len(s.items) - 1 - fromTop
	if idx < 0 || idx >= len(s.items) {
		return nil, false
	}
	return s.items[idx], true
}

func (s *scriptStack) len() int { return len(s.items) }

// opHandler is the shape of every opcode's dispatch entry: it receives the
// stack, alt-stack, and sighash z, and reports whether the operation
// succeeded. Handlers only touch the arguments they actually need.
type opHandler func(stack, alt *scriptStack, z *big.Int) bool

var opTable map[Opcode]opHandler

func init() {
	opTable = map[Opcode]opHandler{
		OP_NOP:    func(stack, alt *scriptStack, z *big.Int) bool { return true },
		OP_VERIFY: opVerify,
		OP_RETURN: func(stack, alt *scriptStack, z *big.Int) bool { return false },

		OP_TOALTSTACK:   opToAltStack,
		OP_FROMALTSTACK: opFromAltStack,

		OP_IFDUP: opIfDup,
		OP_DEPTH: opDepth,
		OP_DROP:  unary(func(a []byte) ([]byte, bool) { return nil, true }),
		OP_DUP:   opDup,
		OP_NIP:   opNip,
		OP_OVER:  opOver,
		OP_PICK:  opPick,
		OP_ROLL:  opRoll,
		OP_ROT:   opRot,
		OP_SWAP:  opSwap,
		OP_TUCK:  opTuck,
		OP_2DROP: op2Drop,
		OP_2DUP:  op2Dup,
		OP_3DUP:  op3Dup,
		OP_2OVER: op2Over,
		OP_2ROT:  op2Rot,
		OP_2SWAP: op2Swap,

		OP_SIZE:        opSize,
		OP_EQUAL:       opEqual,
		OP_EQUALVERIFY: opEqualVerify,

		OP_1ADD:      unaryNum(func(a *big.Int) *big.Int { return new(big.Int).Add(a, big.NewInt(1)) }),
		OP_1SUB:      unaryNum(func(a *big.Int) *big.Int { return new(big.Int).Sub(a, big.NewInt(1)) }),
		OP_NEGATE:    unaryNum(func(a *big.Int) *big.Int { return new(big.Int).Neg(a) }),
		OP_ABS:       unaryNum(func(a *big.Int) *big.Int { return new(big.Int).Abs(a) }),
		OP_NOT:       unaryNum(func(a *big.Int) *big.Int { return boolNum(a.Sign() == 0) }),
		OP_0NOTEQUAL: unaryNum(func(a *big.Int) *big.Int { return boolNum(a.Sign() != 0) }),

		OP_ADD: binaryNum(func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }),
		OP_SUB: binaryNum(func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }),
		OP_MUL: binaryNum(func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }),
		OP_BOOLAND:            binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Sign() != 0 && b.Sign() != 0) }),
		OP_BOOLOR:             binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Sign() != 0 || b.Sign() != 0) }),
		OP_NUMEQUAL:           binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) == 0) }),
		OP_NUMNOTEQUAL:        binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) != 0) }),
		OP_LESSTHAN:           binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) < 0) }),
		OP_GREATERTHAN:        binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) > 0) }),
		OP_LESSTHANOREQUAL:    binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) <= 0) }),
		OP_GREATERTHANOREQUAL: binaryNum(func(a, b *big.Int) *big.Int { return boolNum(a.Cmp(b) >= 0) }),
		OP_MIN: binaryNum(func(a, b *big.Int) *big.Int {
			if a.Cmp(b) < 0 {
				return a
			}
			return b
		}),
		OP_MAX: binaryNum(func(a, b *big.Int) *big.Int {
			if a.Cmp(b) > 0 {
				return a
			}
			return b
		}),
		OP_NUMEQUALVERIFY: func(stack, alt *scriptStack, z *big.Int) bool {
			return opTable[OP_NUMEQUAL](stack, alt, z) && opVerify(stack, alt, z)
		},
		OP_WITHIN: opWithin,

		OP_RIPEMD160: unary(func(a []byte) ([]byte, bool) { return bhash.Ripemd160(a), true }),
		OP_SHA1: unary(func(a []byte) ([]byte, bool) {
			digest := bhash.Sha1(a)
			return digest[:], true
		}),
		OP_SHA256: unary(func(a []byte) ([]byte, bool) {
			digest := bhash.Sha256(a)
			return digest[:], true
		}),
		OP_HASH160: unary(func(a []byte) ([]byte, bool) {
			digest := bhash.Hash160Bytes(a)
			return digest.Bytes(), true
		}),
		OP_HASH256: unary(func(a []byte) ([]byte, bool) {
			digest := bhash.Hash256Bytes(a)
			return digest.Bytes(), true
		}),

		OP_CHECKSIG: opCheckSig,
		OP_CHECKSIGVERIFY: func(stack, alt *scriptStack, z *big.Int) bool {
			return opCheckSig(stack, alt, z) && opVerify(stack, alt, z)
		},
	}

	for i := 1; i <= 16; i++ {
		n := i
		opTable[Opcode(0x50+n)] = func(stack, alt *scriptStack, z *big.Int) bool {
			stack.push(encodeNum(big.NewInt(int64(n))))
			return true
		}
	}
	opTable[OP_1NEGATE] = func(stack, alt *scriptStack, z *big.Int) bool {
		stack.push(encodeNum(big.NewInt(-1)))
		return true
	}
	opTable[OP_0] = func(stack, alt *scriptStack, z *big.Int) bool {
		stack.push([]byte{})
		return true
	}
}

func boolNum(v bool) *big.Int {
	if v {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

func unary(f func([]byte) ([]byte, bool)) opHandler {
	return func(stack, alt *scriptStack, z *big.Int) bool {
		a, ok := stack.pop()
		if !ok {
			return false
		}
		result, ok := f(a)
		if !ok {
			return false
		}
		if result != nil {
			stack.push(result)
		}
		return true
	}
}

func unaryNum(f func(*big.Int) *big.Int) opHandler {
	return func(stack, alt *scriptStack, z *big.Int) bool {
		a, ok := stack.pop()
		if !ok {
			return false
		}
		stack.push(encodeNum(f(decodeNum(a))))
		return true
	}
}

func binaryNum(f func(a, b *big.Int) *big.Int) opHandler {
	return func(stack, alt *scriptStack, z *big.Int) bool {
		b, ok := stack.pop()
		if !ok {
			return false
		}
		a, ok := stack.pop()
		if !ok {
			return false
		}
		stack.push(encodeNum(f(decodeNum(a), decodeNum(b))))
		return true
	}
}

func opVerify(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.pop()
	if !ok {
		return false
	}
	return isTruthy(top)
}

func opToAltStack(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.pop()
	if !ok {
		return false
	}
	alt.push(top)
	return true
}

func opFromAltStack(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := alt.pop()
	if !ok {
		return false
	}
	stack.push(top)
	return true
}

func opIfDup(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.peek(0)
	if !ok {
		return false
	}
	if isTruthy(top) {
		stack.push(append([]byte{}, top...))
	}
	return true
}

func opDepth(stack, alt *scriptStack, z *big.Int) bool {
	stack.push(encodeNum(big.NewInt(int64(stack.len()))))
	return true
}

func opDup(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.peek(0)
	if !ok {
		return false
	}
	stack.push(append([]byte{}, top...))
	return true
}

func opNip(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.pop()
	if !ok {
		return false
	}
	if _, ok := stack.pop(); !ok {
		return false
	}
	stack.push(top)
	return true
}

func opOver(stack, alt *scriptStack, z *big.Int) bool {
	item, ok := stack.peek(1)
	if !ok {
		return false
	}
	stack.push(append([]byte{}, item...))
	return true
}

func opPick(stack, alt *scriptStack, z *big.Int) bool {
	nBytes, ok := stack.pop()
	if !ok {
		return false
	}
	n := int(decodeNum(nBytes).Int64())
	item, ok := stack.peek(n)
	if !ok {
		return false
	}
	stack.push(append([]byte{}, item...))
	return true
}

func opRoll(stack, alt *scriptStack, z *big.Int) bool {
	nBytes, ok := stack.pop()
	if !ok {
		return false
	}
	n := int(decodeNum(nBytes).Int64())
	idx := len(stack.items) - 1 - n
	if idx < 0 || idx >= len(stack.items) {
		return false
	}
	item := stack.items[idx]
	stack.items = append(stack.items[:idx], stack.items[idx+1:]...)
	stack.push(item)
	return true
}

func opRot(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 3 {
		return false
	}
	stack.items[n-3], stack.items[n-2], stack.items[n-1] = stack.items[n-2], stack.items[n-1], stack.items[n-3]
	return true
}

func opSwap(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 2 {
		return false
	}
	stack.items[n-1], stack.items[n-2] = stack.items[n-2], stack.items[n-1]
	return true
}

// opTuck copies the top item and inserts it before the second-to-top item:
// [..., a, b] becomes [..., b, a, b].
func opTuck(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 2 {
		return false
	}
	a := stack.items[n-2]
	b := stack.items[n-1]
	bCopy := append([]byte{}, b...)
	stack.items = append(stack.items[:n-2], bCopy, a, b)
	return true
}

func op2Drop(stack, alt *scriptStack, z *big.Int) bool {
	if _, ok := stack.pop(); !ok {
		return false
	}
	if _, ok := stack.pop(); !ok {
		return false
	}
	return true
}

func op2Dup(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 2 {
		return false
	}
	stack.push(append([]byte{}, stack.items[n-2]...))
	stack.push(append([]byte{}, stack.items[n-1]...))
	return true
}

func op3Dup(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 3 {
		return false
	}
	stack.push(append([]byte{}, stack.items[n-3]...))
	stack.push(append([]byte{}, stack.items[n-2]...))
	stack.push(append([]byte{}, stack.items[n-1]...))
	return true
}

func op2Over(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 4 {
		return false
	}
	stack.push(append([]byte{}, stack.items[n-4]...))
	stack.push(append([]byte{}, stack.items[n-3]...))
	return true
}

func op2Rot(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 6 {
		return false
	}
	a := append([]byte{}, stack.items[n-6]...)
	b := append([]byte{}, stack.items[n-5]...)
	stack.items = append(stack.items[:n-6], stack.items[n-4:]...)
	stack.push(a)
	stack.push(b)
	return true
}

func op2Swap(stack, alt *scriptStack, z *big.Int) bool {
	n := len(stack.items)
	if n < 4 {
		return false
	}
	stack.items[n-4], stack.items[n-2] = stack.items[n-2], stack.items[n-4]
	stack.items[n-3], stack.items[n-1] = stack.items[n-1], stack.items[n-3]
	return true
}

func opSize(stack, alt *scriptStack, z *big.Int) bool {
	top, ok := stack.peek(0)
	if !ok {
		return false
	}
	stack.push(encodeNum(big.NewInt(int64(len(top)))))
	return true
}

func opEqual(stack, alt *scriptStack, z *big.Int) bool {
	b, ok := stack.pop()
	if !ok {
		return false
	}
	a, ok := stack.pop()
	if !ok {
		return false
	}
	stack.push(encodeNum(boolNum(bytesEqual(a, b))))
	return true
}

func opEqualVerify(stack, alt *scriptStack, z *big.Int) bool {
	return opEqual(stack, alt, z) && opVerify(stack, alt, z)
}

// opWithin implements min <= x < max, a half-open interval.
func opWithin(stack, alt *scriptStack, z *big.Int) bool {
	maxBytes, ok := stack.pop()
	if !ok {
		return false
	}
	minBytes, ok := stack.pop()
	if !ok {
		return false
	}
	xBytes, ok := stack.pop()
	if !ok {
		return false
	}
	min := decodeNum(minBytes)
	max := decodeNum(maxBytes)
	x := decodeNum(xBytes)
	within := x.Cmp(min) >= 0 && x.Cmp(max) < 0
	stack.push(encodeNum(boolNum(within)))
	return true
}

// opCheckSig pops the SEC-encoded pubkey then the DER-encoded signature
// (stripping its trailing sighash-type byte first), and pushes whether it
// verifies against z.
func opCheckSig(stack, alt *scriptStack, z *big.Int) bool {
	pubKeyBytes, ok := stack.pop()
	if !ok {
		return false
	}
	sigBytes, ok := stack.pop()
	if !ok {
		return false
	}
	if len(sigBytes) == 0 {
		return false
	}
	sigBytes = sigBytes[:len(sigBytes)-1]

	pub, err := secp256k1.ParseSEC(pubKeyBytes)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDER(sigBytes)
	if err != nil {
		return false
	}

	stack.push(encodeNum(boolNum(ecdsa.Verify(pub, z, sig))))
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Execute evaluates the script against sighash z. It returns false with
// ErrScriptFail on an unwired opcode, on the first handler failure, or if
// the final stack is empty; otherwise it returns whether the top element is
// Script-true, with a nil error.
func (s Script) Execute(z *big.Int) (bool, error) {
	main := &scriptStack{}
	alt := &scriptStack{}

	for _, cmd := range s.Commands {
		if cmd.IsPush {
			main.push(cmd.Data)
			continue
		}
		handler, ok := opTable[cmd.Op]
		if !ok {
			return false, ErrScriptFail
		}
		if !handler(main, alt, z) {
			return false, ErrScriptFail
		}
	}

	top, ok := main.peek(0)
	if !ok {
		return false, ErrScriptFail
	}
	return isTruthy(top), nil
}

// Combined concatenates a scriptSig and scriptPubKey into the single
// command stream the evaluator runs for input validation.
func Combined(scriptSig, scriptPubKey Script) Script {
	cmds := make([]Command, 0, len(scriptSig.Commands)+len(scriptPubKey.Commands))
	cmds = append(cmds, scriptSig.Commands...)
	cmds = append(cmds, scriptPubKey.Commands...)
	return Script{Commands: cmds}
}

// ScriptType classifies a scriptPubKey's shape for AnalyzeScript/IsStandard.
type ScriptType int

const (
	ScriptTypeUnknown ScriptType = iota
	ScriptTypeP2PK
	ScriptTypeP2PKH
	ScriptTypeP2SH
	ScriptTypeNullData
)

const (
	hash160Size = 20
)

// AnalyzeScript classifies s by its command shape.
func (s Script) AnalyzeScript() ScriptType {
	cmds := s.Commands
	switch {
	case len(cmds) == 5 &&
		!cmds[0].IsPush && cmds[0].Op == OP_DUP &&
		!cmds[1].IsPush && cmds[1].Op == OP_HASH160 &&
		cmds[2].IsPush && len(cmds[2].Data) == hash160Size &&
		!cmds[3].IsPush && cmds[3].Op == OP_EQUALVERIFY &&
		!cmds[4].IsPush && cmds[4].Op == OP_CHECKSIG:
		return ScriptTypeP2PKH

	case len(cmds) == 3 &&
		!cmds[0].IsPush && cmds[0].Op == 0xa9 && // OP_HASH160
		cmds[1].IsPush && len(cmds[1].Data) == hash160Size &&
		!cmds[2].IsPush && cmds[2].Op == OP_EQUAL:
		return ScriptTypeP2SH

	case len(cmds) == 2 &&
		cmds[0].IsPush && (len(cmds[0].Data) == 33 || len(cmds[0].Data) == 65) &&
		!cmds[1].IsPush && cmds[1].Op == OP_CHECKSIG:
		return ScriptTypeP2PK

	case len(cmds) >= 1 && !cmds[0].IsPush && cmds[0].Op == OP_RETURN:
		return ScriptTypeNullData
	}
	return ScriptTypeUnknown
}

// IsStandard reports whether s matches one of the widely-relayed script
// shapes AnalyzeScript recognizes.
func (s Script) IsStandard() bool {
	switch s.AnalyzeScript() {
	case ScriptTypeP2PKH, ScriptTypeP2SH, ScriptTypeP2PK:
		return true
	case ScriptTypeNullData:
		raw, err := s.rawSerialize()
		return err == nil && len(raw) <= 80
	default:
		return false
	}
}
