package wallet

import (
	"time"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/util"
)

// Platform — ключ платформы для appLinkData
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// AppLink — параметры ссылки на приложение; Description и LogoURI опциональны
type AppLink struct {
	Title       string
	Description string
	URI         string
	LogoURI     string
}

// ClassDetails — расширенные параметры шаблона пасса
type ClassDetails struct {
	IssuerName         string
	ReviewStatus       string
	LogoURI            string
	HeroImageURI       string
	HexBackgroundColor string
}

// CustomField — элемент упорядоченной карты расширения; сливается с объектом
// только при сериализации, чтобы не загрязнять типизированную модель
type CustomField struct {
	Key   string
	Value any
}

// Builder накапливает GenericObject и (опционально) GenericClass через
// fluent-мутации; один builder — один пасс, без разделяемого состояния
type Builder struct {
	issuerID string
	object   *GenericObject
	class    *GenericClass
	extras   []CustomField
	creds    *credentials.Credentials
	now      func() time.Time
}

// NewBuilder создает экземпляр пасса с производными идентификаторами
// id="{issuer}.{passId}" и classId="{issuer}.{classId}".
// additionalInfo засеивается одной записью default_info, чтобы не получить
// пустую последовательность, которую схема отвергает.
func NewBuilder(issuerID, passID, classID string) *Builder {
	return &Builder{
		issuerID: issuerID,
		object: &GenericObject{
			ID:          util.QualifiedID(issuerID, passID),
			ClassID:     util.QualifiedID(issuerID, classID),
			GenericType: GenericTypeUnspecified,
			AdditionalInfo: []InfoModuleData{
				{ID: "default_info", Label: "Info", Value: "See details"},
			},
		},
		now: time.Now,
	}
}

// Object возвращает накопленный экземпляр (без копирования)
func (b *Builder) Object() *GenericObject { return b.object }

// Class возвращает накопленный шаблон; nil, если шаблон не создавался
func (b *Builder) Class() *GenericClass { return b.class }

// WithClock подменяет источник времени (для тестов)
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// SetGenericType задает категорию пасса
func (b *Builder) SetGenericType(t string) *Builder {
	b.object.GenericType = util.OrDefault(t, GenericTypeUnspecified)
	return b
}

// Отображаемые строки проходят подстановку fallback уже при вызове;
// валидатор повторит её при финализации (defense in depth).

func (b *Builder) SetCardTitle(title string) *Builder {
	b.object.CardTitle = NewLocalizedString(util.OrDefault(title, fallbackCardTitle))
	return b
}

func (b *Builder) SetHeader(header string) *Builder {
	b.object.Header = NewLocalizedString(util.OrDefault(header, fallbackHeader))
	return b
}

func (b *Builder) SetSubheader(subheader string) *Builder {
	b.object.Subheader = NewLocalizedString(util.OrDefault(subheader, fallbackSubheader))
	return b
}

// AddTextModule добавляет текстовый блок; header опционален и опускается,
// если не передан
func (b *Builder) AddTextModule(id, body string, header ...string) *Builder {
	m := TextModuleData{ID: id, Body: util.OrDefault(body, fallbackTextBody(id))}
	if len(header) > 0 {
		m.Header = header[0]
	}
	b.object.TextModulesData = append(b.object.TextModulesData, m)
	return b
}

// imageWithDescription всегда прикрепляет описание: переданное (после
// подстановки fallback) либо фиксированное "Image"
func imageWithDescription(uri, fallback string, description []string) *Image {
	if len(description) > 0 {
		return NewImage(uri, util.OrDefault(description[0], fallback))
	}
	return NewImage(uri, fallbackImage)
}

func (b *Builder) SetLogo(uri string, description ...string) *Builder {
	b.object.Logo = imageWithDescription(uri, fallbackLogo, description)
	return b
}

func (b *Builder) SetHeroImage(uri string, description ...string) *Builder {
	b.object.HeroImage = imageWithDescription(uri, fallbackHeroImage, description)
	return b
}

func (b *Builder) AddImageModule(id, uri string, description ...string) *Builder {
	b.object.ImageModulesData = append(b.object.ImageModulesData, ImageModuleData{
		ID:        id,
		MainImage: imageWithDescription(uri, fallbackImageModule(id), description),
	})
	return b
}

// SetBarcode задает штрихкод; alternateText по умолчанию — пустая строка,
// которая для этого поля является валидным значением
func (b *Builder) SetBarcode(value, encoding string, alternateText ...string) *Builder {
	alt := ""
	if len(alternateText) > 0 {
		alt = alternateText[0]
	}
	b.object.Barcode = &Barcode{Type: encoding, Value: value, AlternateText: &alt}
	return b
}

func (b *Builder) AddLink(id, uri, description string) *Builder {
	if b.object.LinksModuleData == nil {
		b.object.LinksModuleData = &LinksModuleData{}
	}
	b.object.LinksModuleData.URIs = append(b.object.LinksModuleData.URIs, LinkValue{
		ID:          id,
		URI:         uri,
		Description: util.OrDefault(description, fallbackLink(id)),
	})
	return b
}

func (b *Builder) AddLocation(lat, long float64) *Builder {
	b.object.Locations = append(b.object.Locations, LatLongPoint{Latitude: lat, Longitude: long})
	return b
}

func (b *Builder) AddLocations(points []LatLongPoint) *Builder {
	b.object.Locations = append(b.object.Locations, points...)
	return b
}

// SetValidTimeInterval всегда задает начало; отсутствие конца означает
// бессрочную валидность
func (b *Builder) SetValidTimeInterval(start time.Time, end ...time.Time) *Builder {
	iv := &TimeInterval{Start: DateTime{Date: start.Format(time.RFC3339)}}
	if len(end) > 0 {
		iv.End = &DateTime{Date: end[0].Format(time.RFC3339)}
	}
	b.object.ValidTimeInterval = iv
	return b
}

func (b *Builder) AddInfoModule(id, label, value string) *Builder {
	b.object.CustomInfoModules = append(b.object.CustomInfoModules, InfoModuleData{
		ID:    id,
		Label: util.OrDefault(label, fallbackLabel(id)),
		Value: util.OrDefault(value, fallbackValue(id)),
	})
	return b
}

func (b *Builder) AddAdditionalInfo(id, label, value string) *Builder {
	b.object.AdditionalInfo = append(b.object.AdditionalInfo, InfoModuleData{
		ID:    id,
		Label: util.OrDefault(label, fallbackLabel(id)),
		Value: util.OrDefault(value, fallbackValue(id)),
	})
	return b
}

// ClearAdditionalInfo убирает засеянную запись default_info вместе с остальными
func (b *Builder) ClearAdditionalInfo() *Builder {
	b.object.AdditionalInfo = nil
	return b
}

// SetAppLink задает ссылку приложения для платформы (не более одной на ключ)
func (b *Builder) SetAppLink(platform Platform, link AppLink) *Builder {
	if b.object.AppLinkData == nil {
		b.object.AppLinkData = &AppLinkData{}
	}
	info := &AppLinkInfo{
		Title:     NewLocalizedString(util.OrDefault(link.Title, fallbackAppTitle(platform))),
		AppTarget: AppTarget{TargetURI: TargetURI{URI: link.URI}},
	}
	if link.Description != "" {
		info.Description = NewLocalizedString(link.Description)
	}
	if link.LogoURI != "" {
		info.AppLogoImage = NewImage(link.LogoURI, fallbackAppLogo(platform))
	}
	switch platform {
	case PlatformAndroid:
		b.object.AppLinkData.AndroidAppLinkInfo = info
	case PlatformIOS:
		b.object.AppLinkData.IOSAppLinkInfo = info
	case PlatformWeb:
		b.object.AppLinkData.WebAppLinkInfo = info
	}
	return b
}

// SetGroupingInfo задает группировку; sortIndex опускается целиком, если не передан
func (b *Builder) SetGroupingInfo(groupID string, sortIndex ...int) *Builder {
	gi := &GroupingInfo{GroupingID: groupID}
	if len(sortIndex) > 0 {
		idx := sortIndex[0]
		gi.SortIndex = &idx
	}
	b.object.GroupingInfo = gi
	return b
}

// AddCustomField пишет в открытую карту расширения; молча перезаписывает
// существующий ключ, включая зарезервированные — намеренно без проверок,
// ответственность вызывающего
func (b *Builder) AddCustomField(key string, value any) *Builder {
	for i := range b.extras {
		if b.extras[i].Key == key {
			b.extras[i].Value = value
			return b
		}
	}
	b.extras = append(b.extras, CustomField{Key: key, Value: value})
	return b
}

// SetPassClass создает шаблон пасса с именем эмитента
func (b *Builder) SetPassClass(issuerName string) *Builder {
	b.class = &GenericClass{
		ID:         b.object.ClassID,
		IssuerName: util.OrDefault(issuerName, fallbackIssuerName),
	}
	return b
}

// SetPassClassWithDetails создает шаблон с расширенными параметрами
func (b *Builder) SetPassClassWithDetails(d ClassDetails) *Builder {
	cls := &GenericClass{
		ID:                 b.object.ClassID,
		IssuerName:         util.OrDefault(d.IssuerName, fallbackIssuerName),
		ReviewStatus:       d.ReviewStatus,
		HexBackgroundColor: d.HexBackgroundColor,
	}
	if d.LogoURI != "" {
		cls.Logo = NewImage(d.LogoURI, fallbackLogo)
	}
	if d.HeroImageURI != "" {
		cls.HeroImage = NewImage(d.HeroImageURI, fallbackHeroImage)
	}
	b.class = cls
	return b
}

// SetClassTemplateInfo задает раскладку шаблона; требует уже созданный класс
func (b *Builder) SetClassTemplateInfo(rows ...CardRowTemplateInfo) error {
	if b.class == nil {
		return ErrClassRequired
	}
	b.class.ClassTemplateInfo = &ClassTemplateInfo{
		CardTemplateOverride: &CardTemplateOverride{CardRowTemplateInfos: rows},
	}
	return nil
}

// SetCredentials разбирает учётные данные (inline JSON | путь | raw PEM)
// и сохраняет подписывающую идентичность
func (b *Builder) SetCredentials(src string) error {
	creds, err := credentials.Resolve(src)
	if err != nil {
		return err
	}
	b.creds = creds
	return nil
}

// UseSigningIdentity подставляет уже разобранные учётные данные
func (b *Builder) UseSigningIdentity(creds *credentials.Credentials) *Builder {
	b.creds = creds
	return b
}
