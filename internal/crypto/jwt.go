package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

type JWTHeader struct {
	Alg string `json:"alg"`
	Kid string `json:"kid,omitempty"`
	Typ string `json:"typ,omitempty"`
}

// SignRS256 создает compact JWT с alg RS256 (RSASSA-PKCS1-v1_5 / SHA-256)
func SignRS256(kid string, priv *rsa.PrivateKey, payload []byte) (compact string, sigRaw []byte, err error) {
	hdr := JWTHeader{Alg: "RS256", Kid: kid, Typ: "JWT"}
	hdrB, err := json.Marshal(hdr)
	if err != nil {
		return "", nil, err
	}
	hEnc := base64.RawURLEncoding.EncodeToString(hdrB)
	pEnc := base64.RawURLEncoding.EncodeToString(payload)
	signingInput := hEnc + "." + pEnc
	digest := sha256.Sum256([]byte(signingInput))
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return "", nil, err
	}
	sEnc := base64.RawURLEncoding.EncodeToString(sig)
	return signingInput + "." + sEnc, sig, nil
}
