package NTT

import modarith "RLWE-Blind-Signature/Mod_Arith"

// PsiTable carries the primitive 2n-th root of unity for one (n, q) pair
// together with the twist vectors used by the negacyclic transform:
// Twist[i] = psi^i, TwistInv[i] = psi^{-i}.
type PsiTable struct {
	Psi      uint64
	PsiInv   uint64
	Twist    []uint64
	TwistInv []uint64
}

type psiKey struct {
	n int
	q uint64
}

// psiSeeds lists the supported rings with their 2n-th primitive roots.
// The psi values were produced offline by the root finder in cmd/psigen
// (each satisfies psi^n ≡ -1 mod q) and are baked here; the search never
// runs inside the library.
var psiSeeds = []struct {
	n   int
	q   uint64
	psi uint64
}{
	{8, 7681, 7154},
	{32, 7681, 2645},
	{256, 7681, 4055},
	{512, 12289, 10302},
	{1024, 18433, 17660},
}

var psiTables map[psiKey]*PsiTable

func init() {
	psiTables = make(map[psiKey]*PsiTable, len(psiSeeds))
	for _, s := range psiSeeds {
		psiInv, err := modarith.Inverse(s.psi, s.q)
		if err != nil {
			panic("NTT: baked psi not invertible")
		}
		tbl := &PsiTable{
			Psi:      s.psi,
			PsiInv:   psiInv,
			Twist:    make([]uint64, s.n),
			TwistInv: make([]uint64, s.n),
		}
		w, wi := uint64(1), uint64(1)
		for i := 0; i < s.n; i++ {
			tbl.Twist[i] = w
			tbl.TwistInv[i] = wi
			w = modarith.Mul(w, s.psi, s.q)
			wi = modarith.Mul(wi, psiInv, s.q)
		}
		psiTables[psiKey{s.n, s.q}] = tbl
	}
}

// LookupPsiTable returns the precomputed table for (n, q), or ok=false when
// the pair is unsupported.
func LookupPsiTable(n int, q uint64) (*PsiTable, bool) {
	tbl, ok := psiTables[psiKey{n, q}]
	return tbl, ok
}
