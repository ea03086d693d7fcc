package credentials

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoKeyMaterial — ни одна из веток разбора не дала приватный ключ
	ErrNoKeyMaterial = errors.New("no_key_material")
	// ErrUnreadable — путь к учётным данным не существует или не читается
	ErrUnreadable = errors.New("credentials_unreadable")
)

// Credentials — подписывающая идентичность: principal + ключ RSA.
// Заполняется один раз, далее неизменяема.
type Credentials struct {
	Email string
	Key   *rsa.PrivateKey
}

type credentialFile struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Resolve разбирает учётные данные: сперва пытаемся распарсить вход как JSON,
// при неудаче трактуем его как путь и читаем файл; в содержимом снова ищем
// private_key, иначе считаем весь файл PEM-ключом
func Resolve(src string) (*Credentials, error) {
	var cf credentialFile
	if err := json.Unmarshal([]byte(src), &cf); err == nil {
		return fromFields(cf)
	}

	b, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if err := json.Unmarshal(b, &cf); err == nil && cf.PrivateKey != "" {
		return fromFields(cf)
	}
	// raw PEM fallback
	key, err := parsePEM(b)
	if err != nil {
		return nil, err
	}
	return &Credentials{Key: key}, nil
}

func fromFields(cf credentialFile) (*Credentials, error) {
	if cf.PrivateKey == "" {
		return nil, ErrNoKeyMaterial
	}
	key, err := parsePEM([]byte(cf.PrivateKey))
	if err != nil {
		return nil, err
	}
	return &Credentials{Email: cf.ClientEmail, Key: key}, nil
}

func parsePEM(b []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, ErrNoKeyMaterial
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoKeyMaterial, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNoKeyMaterial
	}
	return key, nil
}

// KeyID — короткий отпечаток публичного модуля, используется как kid
func (c *Credentials) KeyID() string {
	sum := sha256.Sum256(c.Key.PublicKey.N.Bytes())
	return hex.EncodeToString(sum[:8])
}
