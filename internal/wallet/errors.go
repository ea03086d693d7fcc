package wallet

import "errors"

var (
	// ErrNotConfigured — генерация токена/ссылки до настройки учётных данных
	ErrNotConfigured = errors.New("credentials_not_configured")
	// ErrClassRequired — операция над шаблоном до его создания
	ErrClassRequired = errors.New("pass class must exist first: call SetPassClass or SetPassClassWithDetails before SetClassTemplateInfo")
)
