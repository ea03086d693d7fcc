package wallet

// Имена JSON-полей зафиксированы схемой Google Wallet и не подлежат изменению.

// GenericObject — выпускаемый экземпляр пасса (per-user данные)
type GenericObject struct {
	ID                string            `json:"id"`
	ClassID           string            `json:"classId"`
	GenericType       string            `json:"genericType"`
	CardTitle         *LocalizedString  `json:"cardTitle,omitempty"`
	Header            *LocalizedString  `json:"header,omitempty"`
	Subheader         *LocalizedString  `json:"subheader,omitempty"`
	Logo              *Image            `json:"logo,omitempty"`
	HeroImage         *Image            `json:"heroImage,omitempty"`
	Barcode           *Barcode          `json:"barcode,omitempty"`
	TextModulesData   []TextModuleData  `json:"textModulesData,omitempty"`
	LinksModuleData   *LinksModuleData  `json:"linksModuleData,omitempty"`
	ImageModulesData  []ImageModuleData `json:"imageModulesData,omitempty"`
	ValidTimeInterval *TimeInterval     `json:"validTimeInterval,omitempty"`
	Locations         []LatLongPoint    `json:"locations,omitempty"`
	CustomInfoModules []InfoModuleData  `json:"customInfoModules,omitempty"`
	AdditionalInfo    []InfoModuleData  `json:"additionalInfo,omitempty"`
	AppLinkData       *AppLinkData      `json:"appLinkData,omitempty"`
	GroupingInfo      *GroupingInfo     `json:"groupingInfo,omitempty"`
}

// GenericTypeUnspecified — категория пасса по умолчанию
const GenericTypeUnspecified = "UNSPECIFIED"

// Barcode — штрихкод; alternateText обязан существовать как строка,
// пустая строка допустима, отсутствие поля — нет
type Barcode struct {
	Type          string  `json:"type"`
	Value         string  `json:"value"`
	AlternateText *string `json:"alternateText"`
}

type TextModuleData struct {
	ID     string `json:"id"`
	Header string `json:"header,omitempty"`
	Body   string `json:"body"`
}

type LinksModuleData struct {
	URIs []LinkValue `json:"uris"`
}

type LinkValue struct {
	ID          string `json:"id"`
	URI         string `json:"uri"`
	Description string `json:"description"`
}

type ImageModuleData struct {
	ID        string `json:"id"`
	MainImage *Image `json:"mainImage"`
}

type TimeInterval struct {
	Start DateTime  `json:"start"`
	End   *DateTime `json:"end,omitempty"`
}

type DateTime struct {
	Date string `json:"date"`
}

type LatLongPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type InfoModuleData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// AppLinkData — не более одной ссылки на платформу
type AppLinkData struct {
	AndroidAppLinkInfo *AppLinkInfo `json:"androidAppLinkInfo,omitempty"`
	IOSAppLinkInfo     *AppLinkInfo `json:"iosAppLinkInfo,omitempty"`
	WebAppLinkInfo     *AppLinkInfo `json:"webAppLinkInfo,omitempty"`
}

type AppLinkInfo struct {
	AppLogoImage *Image           `json:"appLogoImage,omitempty"`
	Title        *LocalizedString `json:"title,omitempty"`
	Description  *LocalizedString `json:"description,omitempty"`
	AppTarget    AppTarget        `json:"appTarget"`
}

type AppTarget struct {
	TargetURI TargetURI `json:"targetUri"`
}

type TargetURI struct {
	URI string `json:"uri"`
}

// GroupingInfo — sortIndex опускается целиком, если не задан
type GroupingInfo struct {
	GroupingID string `json:"groupingId"`
	SortIndex  *int   `json:"sortIndex,omitempty"`
}
