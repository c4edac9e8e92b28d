package common

// BLSSecretKeyLength is the length of serialized secret keys.
const BLSSecretKeyLength = 32

// BLSPubkeyLength is the length of serialized public keys.
const BLSPubkeyLength = 48

// BLSSignatureLength is the length of serialized signatures.
const BLSSignatureLength = 96

// ZeroSecretKey represents a zero secret key.
var ZeroSecretKey = [32]byte{}

// InfinitePublicKey represents an infinite public key (G1 Point at Infinity).
var InfinitePublicKey = [48]byte{0xC0}

// InfiniteSignature represents an infinite signature (G2 Point at Infinity).
var InfiniteSignature = [96]byte{0xC0}
