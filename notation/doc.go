// Package notation reads and writes the textual forms of orbitals,
// configurations, terms and parities.
//
// Grammar:
//
//	orbital        <n><ℓ>          1s, 2p, 10d, ks (continuum label k), 5[21]
//	rel. orbital   <n><ℓ>[-]       2p- (j = ℓ-1/2), 2p (j = ℓ+1/2)
//	configuration  entry entry ... 1s2 2s2 2p6, [Ne] 3s 3p-2, 1s2c 2s2i 2p
//	entry          <orbital><occupancy><state>, occupancy omitted for 1 and
//	               written with ASCII or superscript digits (2p⁶), state
//	               "" (open), "c" (closed) or "i" (inactive)
//	noble core     [He] [Ne] [Ar] [Kr] [Xe] [Rn]: closed, filled cores
//	term           <2S+1><L>[o]    1S, 2Po, 4F, 2[3/2]
//	parity         even | odd
//	orbital list   5[d] 6[s-p] k[7-10] 1-3[s,p]: n (or an n range) followed
//	               by ℓ letters, ℓ numbers and ranges of either in brackets
//
// Every Format/String function produces text that the matching Parse
// function reads back to an equal value.
//
// Errors:
//
//	ErrSyntax - malformed text. Semantic failures (ℓ >= n, occupancy
//	            above degeneracy, duplicates) are reported with the
//	            orbital, configuration or term package sentinels.
package notation
