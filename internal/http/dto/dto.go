package dto

import "time"

type ImageDTO struct {
	URI         string  `json:"uri"`
	Description *string `json:"description,omitempty"`
}

type BarcodeDTO struct {
	Value         string  `json:"value"`
	Encoding      string  `json:"encoding"`
	AlternateText *string `json:"alternate_text,omitempty"`
}

type TextModuleDTO struct {
	ID     string `json:"id"`
	Header string `json:"header,omitempty"`
	Body   string `json:"body"`
}

type LinkDTO struct {
	ID          string `json:"id"`
	URI         string `json:"uri"`
	Description string `json:"description"`
}

type ImageModuleDTO struct {
	ID          string  `json:"id"`
	URI         string  `json:"uri"`
	Description *string `json:"description,omitempty"`
}

type InfoDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type LocationDTO struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type IntervalDTO struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

type AppLinkDTO struct {
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URI         string `json:"uri"`
	LogoURI     string `json:"logo_uri,omitempty"`
}

type GroupingDTO struct {
	GroupID   string `json:"group_id"`
	SortIndex *int   `json:"sort_index,omitempty"`
}

type TemplateRowDTO struct {
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`
}

type CustomFieldDTO struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type CreatePassRequest struct {
	IssuerID string `json:"issuer_id"`
	PassID   string `json:"pass_id"`
	ClassID  string `json:"class_id"`

	IssuerName      string `json:"issuer_name,omitempty"`
	ReviewStatus    string `json:"review_status,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	ClassLogoURI    string `json:"class_logo_uri,omitempty"`
	ClassHeroURI    string `json:"class_hero_uri,omitempty"`

	GenericType string  `json:"generic_type,omitempty"`
	CardTitle   *string `json:"card_title,omitempty"`
	Header      *string `json:"header,omitempty"`
	Subheader   *string `json:"subheader,omitempty"`

	Logo      *ImageDTO   `json:"logo,omitempty"`
	HeroImage *ImageDTO   `json:"hero_image,omitempty"`
	Barcode   *BarcodeDTO `json:"barcode,omitempty"`

	TextModules      []TextModuleDTO  `json:"text_modules,omitempty"`
	Links            []LinkDTO        `json:"links,omitempty"`
	ImageModules     []ImageModuleDTO `json:"image_modules,omitempty"`
	InfoModules      []InfoDTO        `json:"info_modules,omitempty"`
	AdditionalInfo   []InfoDTO        `json:"additional_info,omitempty"`
	ClearDefaultInfo bool             `json:"clear_default_info,omitempty"`

	Locations    []LocationDTO    `json:"locations,omitempty"`
	Validity     *IntervalDTO     `json:"validity,omitempty"`
	AppLinks     []AppLinkDTO     `json:"app_links,omitempty"`
	Grouping     *GroupingDTO     `json:"grouping,omitempty"`
	TemplateRows []TemplateRowDTO `json:"template_rows,omitempty"`
	CustomFields []CustomFieldDTO `json:"custom_fields,omitempty"`

	Origins []string `json:"origins,omitempty"`
}

type CreatePassResponse struct {
	ID       string `json:"id"`
	ObjectID string `json:"object_id"`
	ClassID  string `json:"class_id"`
	Token    string `json:"token"`
	SaveURL  string `json:"save_url"`
}

type GetPassResponse struct {
	ID        string    `json:"id"`
	ObjectID  string    `json:"object_id"`
	ClassID   string    `json:"class_id"`
	Issuer    string    `json:"issuer"`
	SaveURL   string    `json:"save_url"`
	CreatedAt time.Time `json:"created_at"`
}

type PreviewResponse struct {
	Envelope string `json:"envelope"`
}
