package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"flag"
	"log"
	"os"
)

func main() {
	var out, email string
	flag.StringVar(&out, "out", "credentials.json", "output credentials file")
	flag.StringVar(&email, "email", "issuer@example.com", "issuer principal (client_email)")
	flag.Parse()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		log.Fatalf("marshal key: %v", err)
	}
	pemB := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	b, err := json.MarshalIndent(map[string]string{
		"client_email": email,
		"private_key":  string(pemB),
	}, "", "  ")
	if err != nil {
		log.Fatalf("marshal credentials: %v", err)
	}
	if err := os.WriteFile(out, b, 0o600); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	log.Printf("wrote credentials for %s to %s", email, out)
}
