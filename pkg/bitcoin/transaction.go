package bitcoin

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/bitcoinecho/node/pkg/bhash"
	"github.com/bitcoinecho/node/pkg/codec"
)

// Tx is a legacy (pre-SegWit) Bitcoin transaction.
type Tx struct {
	Version  uint32
	TxIns    []TxIn
	TxOuts   []TxOut
	LockTime uint32
	Testnet  bool
}

// TxIn is a transaction input: a reference to a previous output plus the
// unlocking script that spends it.
type TxIn struct {
	PrevTx    bhash.Hash256 // display (big-endian) byte order
	PrevIndex uint32
	ScriptSig Script
	Sequence  uint32
}

// TxOut is a transaction output: an amount and the locking script that
// guards it.
type TxOut struct {
	Amount       uint64
	ScriptPubKey Script
}

// NewTxIn constructs a TxIn with the default (final) sequence number and an
// empty scriptSig, matching the shape produced before signing.
func NewTxIn(prevTx bhash.Hash256, prevIndex uint32) TxIn {
	return TxIn{PrevTx: prevTx, PrevIndex: prevIndex, Sequence: 0xffffffff}
}

// Serialize encodes the transaction in the legacy wire format: version(4
// LE) || varint(|ins|) || ins || varint(|outs|) || outs || locktime(4 LE).
func (tx *Tx) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(codec.LE32(tx.Version))

	inCount, err := codec.EncodeVarint(big.NewInt(int64(len(tx.TxIns))))
	if err != nil {
		return nil, err
	}
	buf.Write(inCount)
	for i := range tx.TxIns {
		encoded, err := tx.TxIns[i].serialize()
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}

	outCount, err := codec.EncodeVarint(big.NewInt(int64(len(tx.TxOuts))))
	if err != nil {
		return nil, err
	}
	buf.Write(outCount)
	for i := range tx.TxOuts {
		encoded, err := tx.TxOuts[i].serialize()
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}

	buf.Write(codec.LE32(tx.LockTime))
	return buf.Bytes(), nil
}

// serialize encodes a TxIn: prev_tx(32, reversed to on-wire order) ||
// prev_index(4 LE) || script_sig.serialize() || sequence(4 LE).
func (in *TxIn) serialize() ([]byte, error) {
	var buf bytes.Buffer
	reversed := in.PrevTx.Reversed()
	buf.Write(reversed[:])
	buf.Write(codec.LE32(in.PrevIndex))

	script, err := in.ScriptSig.Serialize()
	if err != nil {
		return nil, err
	}
	buf.Write(script)
	buf.Write(codec.LE32(in.Sequence))
	return buf.Bytes(), nil
}

// serialize encodes a TxOut: amount(8 LE) || script_pubkey.serialize().
func (out *TxOut) serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(codec.LE64(out.Amount))

	script, err := out.ScriptPubKey.Serialize()
	if err != nil {
		return nil, err
	}
	buf.Write(script)
	return buf.Bytes(), nil
}

// ParseTx parses a legacy transaction from its complete wire encoding.
func ParseTx(data []byte, testnet bool) (*Tx, error) {
	r := bytes.NewReader(data)
	tx, err := parseTxFrom(r, testnet)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func parseTxFrom(r *bytes.Reader, testnet bool) (*Tx, error) {
	var versionBuf [4]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return nil, ErrTxParse
	}
	version := codec.LE32From(versionBuf[:])

	inCount, err := codec.ReadVarint(r)
	if err != nil {
		return nil, ErrTxParse
	}
	ins := make([]TxIn, inCount)
	for i := range ins {
		in, err := parseTxIn(r)
		if err != nil {
			return nil, err
		}
		ins[i] = in
	}

	outCount, err := codec.ReadVarint(r)
	if err != nil {
		return nil, ErrTxParse
	}
	outs := make([]TxOut, outCount)
	for i := range outs {
		out, err := parseTxOut(r)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}

	var lockTimeBuf [4]byte
	if _, err := io.ReadFull(r, lockTimeBuf[:]); err != nil {
		return nil, ErrTxParse
	}
	lockTime := codec.LE32From(lockTimeBuf[:])

	return &Tx{
		Version:  version,
		TxIns:    ins,
		TxOuts:   outs,
		LockTime: lockTime,
		Testnet:  testnet,
	}, nil
}

func parseTxIn(r *bytes.Reader) (TxIn, error) {
	var prevTxWire [32]byte
	if _, err := io.ReadFull(r, prevTxWire[:]); err != nil {
		return TxIn{}, ErrTxParse
	}
	prevTx, err := bhash.Hash256FromBytes(prevTxWire[:])
	if err != nil {
		return TxIn{}, ErrTxParse
	}
	prevTx = prevTx.Reversed()

	var prevIndexBuf [4]byte
	if _, err := io.ReadFull(r, prevIndexBuf[:]); err != nil {
		return TxIn{}, ErrTxParse
	}
	prevIndex := codec.LE32From(prevIndexBuf[:])

	scriptLen, err := codec.ReadVarint(r)
	if err != nil {
		return TxIn{}, ErrTxParse
	}
	scriptBytes := make([]byte, scriptLen)
	if _, err := io.ReadFull(r, scriptBytes); err != nil {
		return TxIn{}, ErrTxParse
	}
	scriptSig, err := ParseScript(scriptBytes, scriptLen)
	if err != nil {
		return TxIn{}, err
	}

	var sequenceBuf [4]byte
	if _, err := io.ReadFull(r, sequenceBuf[:]); err != nil {
		return TxIn{}, ErrTxParse
	}
	sequence := codec.LE32From(sequenceBuf[:])

	return TxIn{
		PrevTx:    prevTx,
		PrevIndex: prevIndex,
		ScriptSig: scriptSig,
		Sequence:  sequence,
	}, nil
}

func parseTxOut(r *bytes.Reader) (TxOut, error) {
	var amountBuf [8]byte
	if _, err := io.ReadFull(r, amountBuf[:]); err != nil {
		return TxOut{}, ErrTxParse
	}
	amount := codec.LE64From(amountBuf[:])

	scriptLen, err := codec.ReadVarint(r)
	if err != nil {
		return TxOut{}, ErrTxParse
	}
	scriptBytes := make([]byte, scriptLen)
	if _, err := io.ReadFull(r, scriptBytes); err != nil {
		return TxOut{}, ErrTxParse
	}
	scriptPubKey, err := ParseScript(scriptBytes, scriptLen)
	if err != nil {
		return TxOut{}, err
	}

	return TxOut{Amount: amount, ScriptPubKey: scriptPubKey}, nil
}

// Hash returns hash256(serialize()) reversed to display byte order.
func (tx *Tx) Hash() (bhash.Hash256, error) {
	raw, err := tx.Serialize()
	if err != nil {
		return bhash.ZeroHash256, err
	}
	return bhash.Hash256Bytes(raw).Reversed(), nil
}

// ID returns the hex-encoded transaction id.
func (tx *Tx) ID() (string, error) {
	h, err := tx.Hash()
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// Fetcher resolves previously broadcast transactions by id, the external
// collaborator a TxIn consults to learn the previous output it spends.
type Fetcher interface {
	Fetch(txID string, testnet, fresh bool) (*Tx, error)
}

// Value resolves the amount of the output this input spends.
func (in *TxIn) Value(fetcher Fetcher, testnet bool) (uint64, error) {
	prevTx, err := fetcher.Fetch(in.PrevTx.String(), testnet, false)
	if err != nil {
		return 0, err
	}
	if int(in.PrevIndex) >= len(prevTx.TxOuts) {
		return 0, ErrTxParse
	}
	return prevTx.TxOuts[in.PrevIndex].Amount, nil
}

// ScriptPubKeyOf resolves the locking script this input spends.
func (in *TxIn) ScriptPubKeyOf(fetcher Fetcher, testnet bool) (Script, error) {
	prevTx, err := fetcher.Fetch(in.PrevTx.String(), testnet, false)
	if err != nil {
		return Script{}, err
	}
	if int(in.PrevIndex) >= len(prevTx.TxOuts) {
		return Script{}, ErrTxParse
	}
	return prevTx.TxOuts[in.PrevIndex].ScriptPubKey, nil
}

// Fee computes the transaction fee as the sum of resolved input values
// minus the sum of output amounts.
func (tx *Tx) Fee(fetcher Fetcher) (int64, error) {
	var inputTotal, outputTotal uint64
	for i := range tx.TxIns {
		value, err := tx.TxIns[i].Value(fetcher, tx.Testnet)
		if err != nil {
			return 0, err
		}
		inputTotal += value
	}
	for i := range tx.TxOuts {
		outputTotal += tx.TxOuts[i].Amount
	}
	return int64(inputTotal) - int64(outputTotal), nil
}

// IsCoinbase reports whether tx has the single null-outpoint input shape of
// a coinbase transaction.
func (tx *Tx) IsCoinbase() bool {
	return len(tx.TxIns) == 1 &&
		tx.TxIns[0].PrevTx.IsZero() &&
		tx.TxIns[0].PrevIndex == 0xffffffff
}

// String renders a human-readable summary, in the style of fmt.Stringer
// implementations elsewhere in this package.
func (tx *Tx) String() string {
	id, err := tx.ID()
	if err != nil {
		id = "?"
	}
	return fmt.Sprintf("tx %s: %d in, %d out, locktime %d", id, len(tx.TxIns), len(tx.TxOuts), tx.LockTime)
}
