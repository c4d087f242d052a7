/*
package bls12_381 holds no parameter files and no audit program for the
bls12_381 curve described in the doc.go file in the setup package (parent
folder): the pk.bin and vk.bin files are not included in this repository.

The audit program for transcript.json is in the EethereumKzgCeremonyBLS12_381
folder. To audit the parameters you need to:

1) download the original source file `transcript.json` from either of:
https://ceremony.ethereum.org/#/record
https://github.com/ethereum/kzg-ceremony/blob/main/transcript.json

2) Place the `transcript.json` file in the EethereumKzgCeremonyBLS12_381 directory

3) Run its audit.go main program with `go run .`

This will create the pk.audit and vk.audit files and test they match
pk.bin and vk.bin files placed in that directory.
*/
package bls12_381
