package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/bitcoinecho/node/pkg/bitcoin"
	"github.com/bitcoinecho/node/pkg/ecdsa"
	"github.com/bitcoinecho/node/pkg/secp256k1"
)

const (
	name    = "bitcoin-echo"
	version = "0.1.0-dev"
)

const sampleRawTx = "0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1" +
	"000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f" +
	"02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e36" +
	"24a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914" +
	"bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332" +
	"166702cb75f40df79fea1288ac19430600"

func main() {
	fmt.Printf("%s v%s\n", name, version)

	if len(os.Args) <= 1 {
		runDemo()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("%s version %s\n", name, version)
	case "help":
		printHelp()
	case "demo":
		runDemo()
	default:
		fmt.Printf("unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Printf("Usage: %s [command]\n\n", name)
	fmt.Println("Commands:")
	fmt.Println("  help        show this help message")
	fmt.Println("  version     show version information")
	fmt.Println("  demo        parse a sample transaction and exercise the crypto core")
	fmt.Println("  (no args)   same as demo")
}

func runDemo() {
	demoTransaction()
	demoSigning()
}

func demoTransaction() {
	raw, err := hex.DecodeString(sampleRawTx)
	if err != nil {
		log.Fatalf("decode sample tx: %v", err)
	}

	tx, err := bitcoin.ParseTx(raw, false)
	if err != nil {
		log.Fatalf("parse tx: %v", err)
	}

	id, err := tx.ID()
	if err != nil {
		log.Fatalf("compute txid: %v", err)
	}

	fmt.Println("parsed transaction:")
	fmt.Printf("  id:        %s\n", id)
	fmt.Printf("  version:   %d\n", tx.Version)
	fmt.Printf("  inputs:    %d\n", len(tx.TxIns))
	fmt.Printf("  outputs:   %d\n", len(tx.TxOuts))
	fmt.Printf("  locktime:  %d\n", tx.LockTime)
	fmt.Printf("  coinbase:  %t\n", tx.IsCoinbase())

	for i, out := range tx.TxOuts {
		fmt.Printf("  outs[%d]:  amount=%d type=%v standard=%t\n",
			i, out.Amount, out.ScriptPubKey.AnalyzeScript(), out.ScriptPubKey.IsStandard())
	}
}

func demoSigning() {
	secret := new(big.Int).SetInt64(0x123456789)
	pk, err := ecdsa.NewPrivateKey(secret)
	if err != nil {
		log.Fatalf("derive private key: %v", err)
	}

	z, _ := new(big.Int).SetString("ec208baa0fc1c19f708a9ca96fdeff3ac3f230bb4a7ba4aede4942ad003c0f60", 16)
	sig, err := pk.Sign(z)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}

	fmt.Println("\nsigning round trip:")
	fmt.Printf("  pubkey (compressed):   %x\n", pk.Point.SEC(true))
	fmt.Printf("  address (mainnet):     %s\n", pk.Point.Address(true, false))
	fmt.Printf("  signature (der):       %x\n", sig.Serialize())
	fmt.Printf("  verifies:              %t\n", ecdsa.Verify(pk.Point, z, sig))

	if _, err := secp256k1.ParseSEC(pk.Point.SEC(true)); err != nil {
		log.Fatalf("parse sec: %v", err)
	}
}
