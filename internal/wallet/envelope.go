package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/vbncursed/vkr/wallet-service/internal/crypto"
)

const (
	// SaveURLPrefix — фиксированный шаблон ссылки "add to wallet"
	SaveURLPrefix = "https://pay.google.com/gp/v/save/"

	envelopeAudience = "google"
	envelopeType     = "savetowallet"
)

// Envelope — полезная нагрузка подписываемого токена; имена полей
// зафиксированы платформой Wallet
type Envelope struct {
	Iss     string          `json:"iss"`
	Aud     string          `json:"aud"`
	Typ     string          `json:"typ"`
	Iat     int64           `json:"iat"`
	Origins []string        `json:"origins"`
	Payload EnvelopePayload `json:"payload"`
}

type EnvelopePayload struct {
	GenericObjects []json.RawMessage `json:"genericObjects"`
	GenericClasses []*GenericClass   `json:"genericClasses,omitempty"`
}

// buildEnvelope прогоняет валидатор по объекту/классу и собирает конверт;
// шаблон попадает внутрь только если он был создан
func (b *Builder) buildEnvelope(origins []string) (*Envelope, error) {
	FillDefaults(b.object, b.class)

	objRaw, err := b.marshalObject()
	if err != nil {
		return nil, err
	}

	iss := b.issuerID
	if b.creds != nil && b.creds.Email != "" {
		iss = b.creds.Email
	}
	if origins == nil {
		origins = []string{}
	}
	env := &Envelope{
		Iss:     iss,
		Aud:     envelopeAudience,
		Typ:     envelopeType,
		Iat:     b.now().Unix(),
		Origins: origins,
		Payload: EnvelopePayload{GenericObjects: []json.RawMessage{objRaw}},
	}
	if b.class != nil {
		env.Payload.GenericClasses = []*GenericClass{b.class}
	}
	return env, nil
}

// marshalObject сериализует объект и вливает поля открытой карты расширения;
// слияние происходит только здесь, типизированная модель остаётся чистой
func (b *Builder) marshalObject() (json.RawMessage, error) {
	base, err := json.Marshal(b.object)
	if err != nil {
		return nil, err
	}
	if len(b.extras) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for _, f := range b.extras {
		merged[f.Key] = f.Value
	}
	return json.Marshal(merged)
}

// GenerateJWT собирает конверт и подписывает его RS256, возвращая compact-токен
func (b *Builder) GenerateJWT(origins ...string) (string, error) {
	if b.creds == nil {
		return "", ErrNotConfigured
	}
	env, err := b.buildEnvelope(origins)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	compact, _, err := crypto.SignRS256(b.creds.KeyID(), b.creds.Key, payload)
	return compact, err
}

// GenerateSaveLink оборачивает токен в ссылку "add to wallet"
func (b *Builder) GenerateSaveLink(origins ...string) (string, error) {
	token, err := b.GenerateJWT(origins...)
	if err != nil {
		return "", err
	}
	return SaveURLPrefix + token, nil
}

// DumpEnvelope — отладочная операция: та же валидация и сборка, но вместо
// подписи возвращается конверт как JSON. Ошибки сборки не пробрасываются,
// а попадают в вывод (диагностический путь)
func (b *Builder) DumpEnvelope() string {
	env, err := b.buildEnvelope(nil)
	if err != nil {
		return fmt.Sprintf("envelope error: %v", err)
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Sprintf("envelope error: %v", err)
	}
	return string(out)
}
