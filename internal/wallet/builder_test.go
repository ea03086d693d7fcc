package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderDerivesIdentifiers(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1")

	assert.Equal(t, "3388.p1", b.Object().ID)
	assert.Equal(t, "3388.c1", b.Object().ClassID)
	assert.Equal(t, GenericTypeUnspecified, b.Object().GenericType)
	assert.Nil(t, b.Class())
}

func TestNewBuilderSeedsDefaultInfo(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1")

	require.Len(t, b.Object().AdditionalInfo, 1)
	seed := b.Object().AdditionalInfo[0]
	assert.Equal(t, "default_info", seed.ID)
	assert.Equal(t, "Info", seed.Label)
	assert.Equal(t, "See details", seed.Value)
}

func TestClearAdditionalInfo(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").ClearAdditionalInfo()

	assert.Empty(t, b.Object().AdditionalInfo)
}

func TestDisplayStringsFallBackAtCallTime(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		SetCardTitle("").
		SetHeader("   ").
		SetSubheader(" ")

	assert.Equal(t, "Card", b.Object().CardTitle.DefaultValue.Value)
	assert.Equal(t, "Header", b.Object().Header.DefaultValue.Value)
	assert.Equal(t, "Subheader", b.Object().Subheader.DefaultValue.Value)

	// непустое значение сохраняется как есть
	b.SetSubheader("Gold")
	assert.Equal(t, "Gold", b.Object().Subheader.DefaultValue.Value)
}

func TestImagesAlwaysCarryDescription(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		SetLogo("https://img/logo.png").
		SetHeroImage("https://img/hero.png", "Banner")

	require.NotNil(t, b.Object().Logo.ContentDescription)
	assert.Equal(t, "Image", b.Object().Logo.ContentDescription.DefaultValue.Value)
	assert.Equal(t, "Banner", b.Object().HeroImage.ContentDescription.DefaultValue.Value)

	// переданное, но пустое описание чинится полевым fallback'ом
	b.SetLogo("https://img/logo.png", "  ")
	assert.Equal(t, "Logo", b.Object().Logo.ContentDescription.DefaultValue.Value)
}

func TestAddImageModuleDescription(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		AddImageModule("m1", "https://img/1.png").
		AddImageModule("m2", "https://img/2.png", "")

	require.Len(t, b.Object().ImageModulesData, 2)
	assert.Equal(t, "Image", b.Object().ImageModulesData[0].MainImage.ContentDescription.DefaultValue.Value)
	assert.Equal(t, "Image m2", b.Object().ImageModulesData[1].MainImage.ContentDescription.DefaultValue.Value)
}

func TestSetBarcodeAlternateTextDefaultsToEmpty(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").SetBarcode("123", "QR_CODE")

	bc := b.Object().Barcode
	require.NotNil(t, bc)
	assert.Equal(t, "QR_CODE", bc.Type)
	assert.Equal(t, "123", bc.Value)
	require.NotNil(t, bc.AlternateText)
	assert.Equal(t, "", *bc.AlternateText)
}

func TestAddLinkDescriptionFallback(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		AddLink("l1", "https://a", "Site A").
		AddLink("l2", "https://b", "").
		AddLink("l3", "https://c", "Site C")

	uris := b.Object().LinksModuleData.URIs
	require.Len(t, uris, 3)
	assert.Equal(t, "Site A", uris[0].Description)
	assert.Equal(t, "Link l2", uris[1].Description)
	assert.Equal(t, "Site C", uris[2].Description)
}

func TestAddLocationsPreservesOrder(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		AddLocations([]LatLongPoint{{Latitude: 1, Longitude: 2}})

	require.Len(t, b.Object().Locations, 1)
	assert.Equal(t, LatLongPoint{Latitude: 1, Longitude: 2}, b.Object().Locations[0])

	b.AddLocation(3, 4)
	require.Len(t, b.Object().Locations, 2)
	assert.Equal(t, LatLongPoint{Latitude: 3, Longitude: 4}, b.Object().Locations[1])
}

func TestSetValidTimeInterval(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	b := NewBuilder("3388", "p1", "c1").SetValidTimeInterval(start)
	require.NotNil(t, b.Object().ValidTimeInterval)
	assert.Equal(t, start.Format(time.RFC3339), b.Object().ValidTimeInterval.Start.Date)
	// отсутствие конца — бессрочная валидность
	assert.Nil(t, b.Object().ValidTimeInterval.End)

	b.SetValidTimeInterval(start, end)
	require.NotNil(t, b.Object().ValidTimeInterval.End)
	assert.Equal(t, end.Format(time.RFC3339), b.Object().ValidTimeInterval.End.Date)
}

func TestSetGroupingInfoSortIndex(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").SetGroupingInfo("festival")
	require.NotNil(t, b.Object().GroupingInfo)
	assert.Equal(t, "festival", b.Object().GroupingInfo.GroupingID)
	assert.Nil(t, b.Object().GroupingInfo.SortIndex)

	b.SetGroupingInfo("festival", 0)
	require.NotNil(t, b.Object().GroupingInfo.SortIndex)
	assert.Equal(t, 0, *b.Object().GroupingInfo.SortIndex)
}

func TestSetAppLinkFallbacks(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		SetAppLink(PlatformAndroid, AppLink{URI: "https://play.example", LogoURI: "https://img/app.png"}).
		SetAppLink(PlatformWeb, AppLink{Title: "Open", URI: "https://web.example"})

	ald := b.Object().AppLinkData
	require.NotNil(t, ald)
	require.NotNil(t, ald.AndroidAppLinkInfo)
	assert.Equal(t, "Android App", ald.AndroidAppLinkInfo.Title.DefaultValue.Value)
	assert.Equal(t, "Android App Logo", ald.AndroidAppLinkInfo.AppLogoImage.ContentDescription.DefaultValue.Value)
	assert.Equal(t, "https://play.example", ald.AndroidAppLinkInfo.AppTarget.TargetURI.URI)

	require.NotNil(t, ald.WebAppLinkInfo)
	assert.Equal(t, "Open", ald.WebAppLinkInfo.Title.DefaultValue.Value)
	assert.Nil(t, ald.WebAppLinkInfo.AppLogoImage)
	assert.Nil(t, ald.IOSAppLinkInfo)
}

func TestAddCustomFieldOverwrites(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		AddCustomField("smartTapRedemptionValue", "abc").
		AddCustomField("wideLogo", map[string]any{"uri": "x"}).
		AddCustomField("smartTapRedemptionValue", "def")

	require.Len(t, b.extras, 2)
	assert.Equal(t, "smartTapRedemptionValue", b.extras[0].Key)
	assert.Equal(t, "def", b.extras[0].Value)
	assert.Equal(t, "wideLogo", b.extras[1].Key)
}

func TestSetClassTemplateInfoRequiresClass(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1")

	err := b.SetClassTemplateInfo(TwoItemsRow("object.header", "object.subheader"))
	require.ErrorIs(t, err, ErrClassRequired)
	assert.Contains(t, err.Error(), "must exist first")

	b.SetPassClass("Acme")
	require.NoError(t, b.SetClassTemplateInfo(TwoItemsRow("object.header", "")))
	require.NotNil(t, b.Class().ClassTemplateInfo)
	rows := b.Class().ClassTemplateInfo.CardTemplateOverride.CardRowTemplateInfos
	require.Len(t, rows, 1)
}

func TestTwoItemsRowOmitsAbsentSlot(t *testing.T) {
	row := TwoItemsRow("object.header", "")

	require.NotNil(t, row.TwoItems)
	require.NotNil(t, row.TwoItems.StartItem)
	assert.Nil(t, row.TwoItems.EndItem)
	assert.Equal(t, "object.header", row.TwoItems.StartItem.FirstValue.Fields[0].FieldPath)
}

func TestSetPassClassWithDetails(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").SetPassClassWithDetails(ClassDetails{
		IssuerName:         "Acme",
		ReviewStatus:       "UNDER_REVIEW",
		LogoURI:            "https://img/logo.png",
		HexBackgroundColor: "#1a73e8",
	})

	cls := b.Class()
	require.NotNil(t, cls)
	assert.Equal(t, "3388.c1", cls.ID)
	assert.Equal(t, "Acme", cls.IssuerName)
	assert.Equal(t, "UNDER_REVIEW", cls.ReviewStatus)
	assert.Equal(t, "#1a73e8", cls.HexBackgroundColor)
	require.NotNil(t, cls.Logo)
	assert.Nil(t, cls.HeroImage)
}

func TestAddTextModuleHeaderOptional(t *testing.T) {
	b := NewBuilder("3388", "p1", "c1").
		AddTextModule("about", "Body text").
		AddTextModule("hours", "9-18", "Opening hours")

	mods := b.Object().TextModulesData
	require.Len(t, mods, 2)
	assert.Empty(t, mods[0].Header)
	assert.Equal(t, "Opening hours", mods[1].Header)
}
