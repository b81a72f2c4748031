//go:build psigen

// One-shot generator for the baked psi tables in NTT/psitables.go. For each
// supported (n, q) it tries g = 2, 3, ..., forms cand = g^((q-1)/(2n)), keeps
// the first cand of exact order 2n with cand^n ≡ -1 (mod q), and prints the
// seed entries to paste into the library. Run with: go run -tags psigen ./cmd/psigen
package main

import (
	"fmt"
	"log"

	modarith "RLWE-Blind-Signature/Mod_Arith"
)

// findPsi returns a primitive 2n-th root of unity mod q with psi^n = -1,
// or 0 when none exists.
func findPsi(n int, q uint64) uint64 {
	k := uint64(2 * n)
	if (q-1)%k != 0 {
		return 0
	}
	orderFactor := (q - 1) / k
	for g := uint64(2); g < q; g++ {
		cand := modarith.Pow(g, orderFactor, q)
		if modarith.Pow(cand, k, q) != 1 {
			continue
		}
		// reject candidates whose order properly divides 2n
		ok := true
		for tk := k; tk%2 == 0 && tk > 1; {
			tk /= 2
			if modarith.Pow(cand, tk, q) == 1 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if modarith.Pow(cand, k/2, q) != q-1 {
			continue
		}
		return cand
	}
	return 0
}

func main() {
	params := []struct {
		n int
		q uint64
	}{
		{8, 7681},
		{32, 7681},
		{256, 7681},
		{512, 12289},
		{1024, 18433},
	}

	fmt.Println("var psiSeeds = []struct {")
	fmt.Println("\tn   int")
	fmt.Println("\tq   uint64")
	fmt.Println("\tpsi uint64")
	fmt.Println("}{")
	for _, p := range params {
		psi := findPsi(p.n, p.q)
		if psi == 0 {
			log.Fatalf("no psi for n=%d q=%d", p.n, p.q)
		}
		if modarith.Pow(psi, uint64(p.n), p.q) != p.q-1 {
			log.Fatalf("psi sanity check failed for n=%d q=%d", p.n, p.q)
		}
		fmt.Printf("\t{%d, %d, %d},\n", p.n, p.q, psi)
	}
	fmt.Println("}")
}
