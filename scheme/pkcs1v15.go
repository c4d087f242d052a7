package scheme

// sha256DigestInfoPrefix is the fixed ASN.1 DER prefix FIPS 180-4 / PKCS#1
// v1.5 prepends to a SHA-256 digest before RSA encryption: SEQUENCE {
// SEQUENCE { OID sha256, NULL }, OCTET STRING (32 bytes) }.
var sha256DigestInfoPrefix = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05,
	0x00, 0x04, 0x20,
}

// pkcs1v15Encode pads a SHA-256 digest per PKCS#1 v1.5 (RFC 8017 §9.2) to
// emModulusBytes, the RSA modulus length in bytes.
func pkcs1v15Encode(digest []byte, emModulusBytes int) []byte {
	t := append(append([]byte{}, sha256DigestInfoPrefix...), digest...)
	psLen := emModulusBytes - len(t) - 3
	em := make([]byte, 0, emModulusBytes)
	em = append(em, 0x00, 0x01)
	for i := 0; i < psLen; i++ {
		em = append(em, 0xff)
	}
	em = append(em, 0x00)
	em = append(em, t...)
	return em
}
