package wallet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDefaultsRepairsEmptyDisplayStrings(t *testing.T) {
	o := &GenericObject{
		ID:        "3388.p1",
		ClassID:   "3388.c1",
		CardTitle: NewLocalizedString("  "),
		Header:    NewLocalizedString(""),
		Logo:      &Image{SourceURI: ImageURI{URI: "https://img/logo.png"}},
		TextModulesData: []TextModuleData{
			{ID: "about", Body: ""},
		},
		LinksModuleData: &LinksModuleData{URIs: []LinkValue{
			{ID: "l1", URI: "https://a", Description: "Site"},
			{ID: "l2", URI: "https://b", Description: " "},
		}},
		CustomInfoModules: []InfoModuleData{{ID: "m1", Label: "", Value: ""}},
	}
	c := &GenericClass{ID: "3388.c1", IssuerName: ""}

	FillDefaults(o, c)

	assert.Equal(t, "Card", o.CardTitle.DefaultValue.Value)
	assert.Equal(t, "Header", o.Header.DefaultValue.Value)
	require.NotNil(t, o.Logo.ContentDescription)
	assert.Equal(t, "Logo", o.Logo.ContentDescription.DefaultValue.Value)
	assert.Equal(t, "Text about", o.TextModulesData[0].Body)
	assert.Equal(t, "Site", o.LinksModuleData.URIs[0].Description)
	assert.Equal(t, "Link l2", o.LinksModuleData.URIs[1].Description)
	assert.Equal(t, "Label m1", o.CustomInfoModules[0].Label)
	assert.Equal(t, "Value m1", o.CustomInfoModules[0].Value)
	assert.Equal(t, "Issuer", c.IssuerName)
}

func TestFillDefaultsLeavesAbsentFieldsAbsent(t *testing.T) {
	o := &GenericObject{ID: "3388.p1", ClassID: "3388.c1"}

	FillDefaults(o, nil)

	assert.Nil(t, o.CardTitle)
	assert.Nil(t, o.Header)
	assert.Nil(t, o.Subheader)
	assert.Nil(t, o.Logo)
	assert.Nil(t, o.Barcode)
	assert.Nil(t, o.LinksModuleData)
}

func TestFillDefaultsBarcodeAlternateText(t *testing.T) {
	// отсутствующее поле чинится
	missing := &GenericObject{Barcode: &Barcode{Type: "QR_CODE", Value: "1"}}
	FillDefaults(missing, nil)
	require.NotNil(t, missing.Barcode.AlternateText)
	assert.Equal(t, "Scan this code", *missing.Barcode.AlternateText)

	// явная пустая строка — валидное значение, не трогаем
	empty := ""
	explicit := &GenericObject{Barcode: &Barcode{Type: "QR_CODE", Value: "1", AlternateText: &empty}}
	FillDefaults(explicit, nil)
	assert.Equal(t, "", *explicit.Barcode.AlternateText)
}

func TestFillDefaultsAppLinks(t *testing.T) {
	o := &GenericObject{AppLinkData: &AppLinkData{
		IOSAppLinkInfo: &AppLinkInfo{
			Title:        NewLocalizedString(""),
			AppLogoImage: &Image{SourceURI: ImageURI{URI: "https://img/app.png"}},
			AppTarget:    AppTarget{TargetURI: TargetURI{URI: "https://apps.example"}},
		},
	}}

	FillDefaults(o, nil)

	assert.Equal(t, "iOS App", o.AppLinkData.IOSAppLinkInfo.Title.DefaultValue.Value)
	assert.Equal(t, "iOS App Logo", o.AppLinkData.IOSAppLinkInfo.AppLogoImage.ContentDescription.DefaultValue.Value)
}

func TestFillDefaultsIdempotent(t *testing.T) {
	build := func() (*GenericObject, *GenericClass) {
		b := NewBuilder("3388", "p1", "c1").
			SetCardTitle("").
			SetHeader("  ").
			SetLogo("https://img/logo.png").
			SetHeroImage("https://img/hero.png").
			SetBarcode("123", "QR_CODE").
			AddTextModule("about", "").
			AddLink("l1", "https://a", "").
			AddInfoModule("m1", "", "").
			SetAppLink(PlatformAndroid, AppLink{URI: "https://play.example"}).
			SetPassClass("")
		return b.Object(), b.Class()
	}

	o, c := build()
	FillDefaults(o, c)
	once, err := json.Marshal(struct {
		O *GenericObject
		C *GenericClass
	}{o, c})
	require.NoError(t, err)

	FillDefaults(o, c)
	twice, err := json.Marshal(struct {
		O *GenericObject
		C *GenericClass
	}{o, c})
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}
