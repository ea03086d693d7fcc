package util

import "strings"

// QualifiedID собирает полный идентификатор вида "{issuer}.{suffix}"
func QualifiedID(issuerID, suffix string) string {
	return issuerID + "." + suffix
}

// OrDefault возвращает fallback, если строка пустая после trim
func OrDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
