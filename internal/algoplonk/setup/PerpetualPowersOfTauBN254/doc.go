/*
package main audits trusted parameters for the bn254 curve
as described in the doc.go file in the setup package (parent folder).

The audit compares its output with the parameters for the Prover and the
Verifier in pk.bin and vk.bin files, respectively, placed in this directory;
this repository does not include those files.

To audit the parameters you need to:

1) download the original source file `powersOfTau28_hez_final_18.ptau' from
the snarkjs github page: https://github.com/iden3/snarkjs
(direct file link:
https://storage.googleapis.com/zkevm/ptau/powersOfTau28_hez_final_18.ptau)

2) Place the file in this directory

3) Run the audit.go main program with `go run .`

This will create the pk.audit and vk.audit files and test they match the
pk.bin and vk.bin files.
*/
package main
