// cmd/cmd.go: end-to-end demo of the RLWE blind-signature protocol.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"RLWE-Blind-Signature/Signer"
	Parameters "RLWE-Blind-Signature/System"
	"RLWE-Blind-Signature/measure"
	"RLWE-Blind-Signature/prof"
)

func main() {
	timings := flag.Bool("timings", false, "log per-phase wall-clock timings")
	flag.Parse()
	prof.Enabled = *timings

	fmt.Println("======================================================================")
	fmt.Println("    RLWE Blind Signature Demo - KYBER512 Parameters")
	fmt.Println("======================================================================")

	fmt.Println("🔧 Creating signer with KYBER512 parameters...")
	bs, err := signer.New(Parameters.Kyber512)
	if err != nil {
		log.Fatalf("signer.New: %v", err)
	}
	p := bs.Parameters()
	fmt.Printf("   n=%d q=%d σ=%.1f (~%d classical / ~%d quantum bits)\n",
		p.N, p.Q, p.Sigma, p.ClassicalBits, p.QuantumBits)
	for _, d := range bs.Diagnostics() {
		fmt.Printf("   ⚠️  %s\n", d)
	}

	fmt.Println("🔑 Generating keys...")
	start := time.Now()
	if err := bs.GenerateKeys(); err != nil {
		log.Fatalf("GenerateKeys: %v", err)
	}
	prof.Track(start, "GenerateKeys")
	_, b, err := bs.PublicKey()
	if err != nil {
		log.Fatalf("PublicKey: %v", err)
	}
	measure.Global.Add("public key", int64(measure.BytesKeyPair(p.N, p.Q)))

	secret := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	fmt.Println("✍️  CLIENT: blinding secret 0xDEADBEEF...")
	start = time.Now()
	blinded, r, err := bs.ComputeBlindedMessage(secret)
	if err != nil {
		log.Fatalf("ComputeBlindedMessage: %v", err)
	}
	prof.Track(start, "ComputeBlindedMessage")
	measure.Global.Add("blinded message", int64(measure.BytesRing(p.N, p.Q)))

	fmt.Println("🖊️  SERVER: producing blind signature...")
	start = time.Now()
	blindSig, err := bs.BlindSign(blinded)
	if err != nil {
		log.Fatalf("BlindSign: %v", err)
	}
	prof.Track(start, "BlindSign")

	fmt.Println("🔓 CLIENT: unblinding signature...")
	start = time.Now()
	sig, err := bs.ComputeSignature(blindSig, r, b)
	if err != nil {
		log.Fatalf("ComputeSignature: %v", err)
	}
	prof.Track(start, "ComputeSignature")
	measure.Global.Add("signature", int64(measure.BytesRing(p.N, p.Q)))

	fmt.Println("🔍 SERVER: verifying signature...")
	start = time.Now()
	ok, err := bs.Verify(secret, sig)
	if err != nil {
		log.Fatalf("Verify: %v", err)
	}
	prof.Track(start, "Verify")
	if !ok {
		log.Fatal("❌ Signature verification failed")
	}
	fmt.Println("   ✓ Verification: SUCCESS")

	fmt.Println("🔍 SERVER: verifying against wrong secret 0xDEADBEEE...")
	wrong := []byte{0xDE, 0xAD, 0xBE, 0xEE}
	ok, err = bs.Verify(wrong, sig)
	if err != nil {
		log.Fatalf("Verify: %v", err)
	}
	if ok {
		log.Fatal("❌ Verification incorrectly accepted the wrong secret")
	}
	fmt.Println("   ✓ Verification: correctly rejected")

	measure.Global.Dump()

	fmt.Println()
	fmt.Println("Available security levels:")
	fmt.Println("Level                   n      q      σ   Classical  Quantum  Secure")
	fmt.Println("----------------------------------------------------------------------")
	for _, level := range Parameters.Levels() {
		ps, err := Parameters.GetParameterSet(level)
		if err != nil {
			log.Fatalf("GetParameterSet: %v", err)
		}
		status := "⚠️"
		if ps.Secure {
			status = "✓"
		}
		fmt.Printf("%-22s %5d %6d %6.1f %8d %8d    %s\n",
			ps.Name, ps.N, ps.Q, ps.Sigma, ps.ClassicalBits, ps.QuantumBits, status)
	}
	fmt.Println()
	fmt.Println("✅ All done.")
}
