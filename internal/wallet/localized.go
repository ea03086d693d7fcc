package wallet

// DefaultLanguage — язык по умолчанию для всех отображаемых строк
const DefaultLanguage = "en"

// LocalizedString — локализуемая строка схемы Wallet; defaultValue обязателен
type LocalizedString struct {
	DefaultValue TranslatedString `json:"defaultValue"`
}

type TranslatedString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// NewLocalizedString строит строку с языком по умолчанию
func NewLocalizedString(value string) *LocalizedString {
	return &LocalizedString{DefaultValue: TranslatedString{Language: DefaultLanguage, Value: value}}
}

// Image — изображение схемы Wallet; contentDescription обязателен всегда,
// даже если вызывающий его не передал
type Image struct {
	SourceURI          ImageURI         `json:"sourceUri"`
	ContentDescription *LocalizedString `json:"contentDescription"`
}

type ImageURI struct {
	URI string `json:"uri"`
}

// NewImage строит изображение с обязательным описанием
func NewImage(uri, description string) *Image {
	return &Image{
		SourceURI:          ImageURI{URI: uri},
		ContentDescription: NewLocalizedString(description),
	}
}
