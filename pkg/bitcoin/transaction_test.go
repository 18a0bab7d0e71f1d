package bitcoin

import (
	"encoding/hex"
	"testing"

	"github.com/bitcoinecho/node/pkg/bhash"
)

const sampleRawTx = "0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1" +
	"000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f" +
	"02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e36" +
	"24a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914" +
	"bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332" +
	"166702cb75f40df79fea1288ac19430600"

const sampleTxID = "452c629d67e41baec3ac6f04fe744b4b9617f8f859c63b3002f8684e7a4fee03"

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParseTx_Fields(t *testing.T) {
	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	if tx.Version != 1 {
		t.Errorf("version: want 1, got %d", tx.Version)
	}
	if len(tx.TxIns) != 1 {
		t.Fatalf("want 1 input, got %d", len(tx.TxIns))
	}
	if len(tx.TxOuts) != 2 {
		t.Fatalf("want 2 outputs, got %d", len(tx.TxOuts))
	}
	if tx.TxIns[0].PrevIndex != 0 {
		t.Errorf("prev_index: want 0, got %d", tx.TxIns[0].PrevIndex)
	}
	if tx.TxOuts[0].Amount != 0x01ef35a1 {
		t.Errorf("outs[0].amount: want 0x01ef35a1, got 0x%x", tx.TxOuts[0].Amount)
	}
	if tx.TxOuts[1].Amount != 0x0098c399 {
		t.Errorf("outs[1].amount: want 0x0098c399, got 0x%x", tx.TxOuts[1].Amount)
	}
	if tx.LockTime != 0x00064319 {
		t.Errorf("locktime: want 0x00064319, got 0x%x", tx.LockTime)
	}
}

func TestTx_SerializeRoundtrip(t *testing.T) {
	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	encoded, err := tx.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(encoded) != sampleRawTx {
		t.Errorf("re-serialization did not match the original bytes")
	}
}

func TestTx_ID(t *testing.T) {
	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	id, err := tx.ID()
	if err != nil {
		t.Fatal(err)
	}
	if id != sampleTxID {
		t.Errorf("want id %s, got %s", sampleTxID, id)
	}
}

// stubFetcher resolves every txid to a fixed single-output transaction,
// enough to exercise Tx.Fee without a network round trip.
type stubFetcher struct {
	amount uint64
}

func (f *stubFetcher) Fetch(txID string, testnet, fresh bool) (*Tx, error) {
	return &Tx{
		Version: 1,
		TxOuts:  []TxOut{{Amount: f.amount}},
	}, nil
}

func TestTx_Fee(t *testing.T) {
	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	fetcher := &stubFetcher{amount: 42505594}
	fee, err := tx.Fee(fetcher)
	if err != nil {
		t.Fatal(err)
	}
	if fee != 40000 {
		t.Errorf("want fee 40000, got %d", fee)
	}
}

func TestTxIn_Value(t *testing.T) {
	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	fetcher := &stubFetcher{amount: 100000}
	value, err := tx.TxIns[0].Value(fetcher, false)
	if err != nil {
		t.Fatal(err)
	}
	if value != 100000 {
		t.Errorf("want 100000, got %d", value)
	}
}

func TestTx_IsCoinbase(t *testing.T) {
	coinbase := &Tx{
		TxIns: []TxIn{{PrevTx: bhash.ZeroHash256, PrevIndex: 0xffffffff}},
	}
	if !coinbase.IsCoinbase() {
		t.Error("expected coinbase detection for null previous outpoint")
	}

	raw := mustDecodeHex(t, sampleRawTx)
	tx, err := ParseTx(raw, false)
	if err != nil {
		t.Fatal(err)
	}
	if tx.IsCoinbase() {
		t.Error("did not expect a real spend to look like coinbase")
	}
}

// scriptFromBytes builds a Script from raw opcode bytes, for evaluating
// a standalone arithmetic scenario rather than a scriptSig / scriptPubKey
// pair that needs a real signature.
func scriptFromBytes(t *testing.T, raw []byte) Script {
	t.Helper()
	s, err := ParseScript(raw, uint64(len(raw)))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestScript_ArithmeticEvaluatesTrue(t *testing.T) {
	// OP_2 OP_DUP OP_DUP OP_MUL OP_ADD OP_6 OP_EQUAL: 2*2 + 2 == 6, true
	// for any z since no signature check is involved.
	raw := []byte{0x52, 0x76, 0x76, 0x95, 0x93, 0x56, 0x87}
	script := scriptFromBytes(t, raw)

	ok, err := script.Execute(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected script to evaluate true")
	}
}
