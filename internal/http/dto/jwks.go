package dto

import (
	"crypto/rsa"
	"encoding/base64"
	"math/big"
)

type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// FromRSAPublicKey маппит публичный ключ эмитента в JWKSet
func FromRSAPublicKey(kid string, pub *rsa.PublicKey) JWKSet {
	e := big.NewInt(int64(pub.E))
	return JWKSet{Keys: []JWK{{
		Kty: "RSA",
		Use: "sig",
		Kid: kid,
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(e.Bytes()),
	}}}
}
