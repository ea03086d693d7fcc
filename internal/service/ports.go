package service

import (
	"context"
	"time"
)

// Clock — абстракция времени для тестируемости
type Clock interface {
	Now() time.Time
}

// PassRepository — порт хранения выпущенных save-ссылок
type PassRepository interface {
	InsertIssuedPass(ctx context.Context, rec IssuedPassRecord) error
	GetIssuedPass(ctx context.Context, id string) (IssuedPassRecord, error)
}

// IssuedPassRecord — запись о выпуске (write-модель)
type IssuedPassRecord struct {
	ID        string
	ObjectID  string
	ClassID   string
	Issuer    string
	SaveURL   string
	Token     string
	CreatedAt time.Time
}

// Спецификации вложенных частей команды; указатели различают
// "не передано" и "передано пустым"

type ImageSpec struct {
	URI         string
	Description *string
}

type BarcodeSpec struct {
	Value         string
	Encoding      string
	AlternateText *string
}

type TextModuleSpec struct {
	ID     string
	Header string
	Body   string
}

type LinkSpec struct {
	ID          string
	URI         string
	Description string
}

type ImageModuleSpec struct {
	ID          string
	URI         string
	Description *string
}

type InfoSpec struct {
	ID    string
	Label string
	Value string
}

type LocationSpec struct {
	Lat  float64
	Long float64
}

type IntervalSpec struct {
	Start time.Time
	End   *time.Time
}

type AppLinkSpec struct {
	Platform    string
	Title       string
	Description string
	URI         string
	LogoURI     string
}

type GroupingSpec struct {
	GroupID   string
	SortIndex *int
}

type TemplateRowSpec struct {
	First  string
	Second string
}

type CustomFieldSpec struct {
	Key   string
	Value any
}

// IssuePassCommand — команда кейса выпуска save-ссылки
type IssuePassCommand struct {
	IssuerID string
	PassID   string
	ClassID  string

	IssuerName      string
	ReviewStatus    string
	BackgroundColor string
	ClassLogoURI    string
	ClassHeroURI    string

	GenericType string
	CardTitle   *string
	Header      *string
	Subheader   *string

	Logo      *ImageSpec
	HeroImage *ImageSpec
	Barcode   *BarcodeSpec

	TextModules    []TextModuleSpec
	Links          []LinkSpec
	ImageModules   []ImageModuleSpec
	InfoModules    []InfoSpec
	AdditionalInfo []InfoSpec
	// ClearDefaultInfo убирает засеянную запись default_info перед добавлением
	ClearDefaultInfo bool

	Locations    []LocationSpec
	Validity     *IntervalSpec
	AppLinks     []AppLinkSpec
	Grouping     *GroupingSpec
	TemplateRows []TemplateRowSpec
	CustomFields []CustomFieldSpec

	Origins []string
}

// IssuePassResult — результат кейса выпуска
type IssuePassResult struct {
	ID       string
	ObjectID string
	ClassID  string
	Token    string
	SaveURL  string
}
