package wallet

import (
	"fmt"

	"github.com/vbncursed/vkr/wallet-service/internal/util"
)

// Fallback-литералы схемы: каждое присутствующее отображаемое поле обязано
// быть непустым после trim. Отсутствующие поля не трогаем.
const (
	fallbackCardTitle   = "Card"
	fallbackHeader      = "Header"
	fallbackSubheader   = "Subheader"
	fallbackLogo        = "Logo"
	fallbackHeroImage   = "Hero Image"
	fallbackImage       = "Image"
	fallbackIssuerName  = "Issuer"
	fallbackBarcodeText = "Scan this code"
)

func fallbackTextBody(id string) string    { return fmt.Sprintf("Text %s", id) }
func fallbackImageModule(id string) string { return fmt.Sprintf("Image %s", id) }
func fallbackLink(id string) string        { return fmt.Sprintf("Link %s", id) }
func fallbackLabel(id string) string       { return fmt.Sprintf("Label %s", id) }
func fallbackValue(id string) string       { return fmt.Sprintf("Value %s", id) }

func platformName(p Platform) string {
	switch p {
	case PlatformAndroid:
		return "Android"
	case PlatformIOS:
		return "iOS"
	case PlatformWeb:
		return "Web"
	}
	return string(p)
}

func fallbackAppTitle(p Platform) string { return platformName(p) + " App" }
func fallbackAppLogo(p Platform) string  { return platformName(p) + " App Logo" }

// FillDefaults — идемпотентный проход валидатора: чинит присутствующие, но
// пустые отображаемые строки, подставляя fallback для конкретного поля.
// Вызывается непосредственно перед упаковкой в конверт; повторный вызов
// ничего не меняет. class может быть nil.
func FillDefaults(o *GenericObject, c *GenericClass) {
	if o != nil {
		fillObjectDefaults(o)
	}
	if c != nil {
		fillClassDefaults(c)
	}
}

func fillObjectDefaults(o *GenericObject) {
	fillLocalized(o.CardTitle, fallbackCardTitle)
	fillLocalized(o.Header, fallbackHeader)
	fillLocalized(o.Subheader, fallbackSubheader)

	fillImage(o.Logo, fallbackLogo)
	fillImage(o.HeroImage, fallbackHeroImage)

	for i := range o.TextModulesData {
		m := &o.TextModulesData[i]
		m.Body = util.OrDefault(m.Body, fallbackTextBody(m.ID))
	}
	for i := range o.ImageModulesData {
		m := &o.ImageModulesData[i]
		if m.MainImage != nil {
			fillImage(m.MainImage, fallbackImageModule(m.ID))
		}
	}
	if o.LinksModuleData != nil {
		for i := range o.LinksModuleData.URIs {
			l := &o.LinksModuleData.URIs[i]
			l.Description = util.OrDefault(l.Description, fallbackLink(l.ID))
		}
	}
	for i := range o.CustomInfoModules {
		fillInfoModule(&o.CustomInfoModules[i])
	}
	for i := range o.AdditionalInfo {
		fillInfoModule(&o.AdditionalInfo[i])
	}
	if o.Barcode != nil && o.Barcode.AlternateText == nil {
		// явная пустая строка валидна, отсутствующее поле — нет
		alt := fallbackBarcodeText
		o.Barcode.AlternateText = &alt
	}
	if o.AppLinkData != nil {
		fillAppLink(o.AppLinkData.AndroidAppLinkInfo, PlatformAndroid)
		fillAppLink(o.AppLinkData.IOSAppLinkInfo, PlatformIOS)
		fillAppLink(o.AppLinkData.WebAppLinkInfo, PlatformWeb)
	}
}

func fillClassDefaults(c *GenericClass) {
	c.IssuerName = util.OrDefault(c.IssuerName, fallbackIssuerName)
	fillImage(c.Logo, fallbackLogo)
	fillImage(c.HeroImage, fallbackHeroImage)
}

func fillLocalized(ls *LocalizedString, fallback string) {
	if ls == nil {
		return
	}
	if ls.DefaultValue.Language == "" {
		ls.DefaultValue.Language = DefaultLanguage
	}
	ls.DefaultValue.Value = util.OrDefault(ls.DefaultValue.Value, fallback)
}

func fillImage(img *Image, fallback string) {
	if img == nil {
		return
	}
	if img.ContentDescription == nil {
		img.ContentDescription = NewLocalizedString(fallback)
		return
	}
	fillLocalized(img.ContentDescription, fallback)
}

func fillInfoModule(m *InfoModuleData) {
	m.Label = util.OrDefault(m.Label, fallbackLabel(m.ID))
	m.Value = util.OrDefault(m.Value, fallbackValue(m.ID))
}

func fillAppLink(info *AppLinkInfo, p Platform) {
	if info == nil {
		return
	}
	if info.Title != nil {
		fillLocalized(info.Title, fallbackAppTitle(p))
	}
	if info.AppLogoImage != nil {
		fillImage(info.AppLogoImage, fallbackAppLogo(p))
	}
}
