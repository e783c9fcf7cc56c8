// Package gonao computes Natural Atomic Orbitals (NAOs): an
// orthonormal, atom-centered orbital basis derived from a molecular
// density matrix and the atomic-orbital overlap matrix, with orbitals
// partitioned into core, valence and Rydberg character and ranked by
// natural occupation.
//
// Ref: F. Weinhold et al., J. Chem. Phys. 83 (1985), 735-746.
//
// The work is split across three packages:
//
//	basis - shell and atom metadata consumed by the solver
//	orth  - Löwdin and occupation-weighted orthogonalization
//	nao   - pre-NAO eigensolver, shell classifier, NAO assembly
//
// Overlap and density matrices are consumed as opaque inputs; integral
// evaluation and the SCF solver that produces the density live outside
// this module.
package gonao
