package wallet

// GenericClass — общая схема уровня эмитента, на которую ссылается
// GenericObject.classId по строковому равенству
type GenericClass struct {
	ID                 string             `json:"id"`
	IssuerName         string             `json:"issuerName,omitempty"`
	ReviewStatus       string             `json:"reviewStatus,omitempty"`
	Logo               *Image             `json:"logo,omitempty"`
	HeroImage          *Image             `json:"heroImage,omitempty"`
	HexBackgroundColor string             `json:"hexBackgroundColor,omitempty"`
	ClassTemplateInfo  *ClassTemplateInfo `json:"classTemplateInfo,omitempty"`
}

type ClassTemplateInfo struct {
	CardTemplateOverride *CardTemplateOverride `json:"cardTemplateOverride,omitempty"`
}

type CardTemplateOverride struct {
	CardRowTemplateInfos []CardRowTemplateInfo `json:"cardRowTemplateInfos,omitempty"`
}

// CardRowTemplateInfo — ровно один из oneItem/twoItems/threeItems
type CardRowTemplateInfo struct {
	OneItem    *CardRowOneItem    `json:"oneItem,omitempty"`
	TwoItems   *CardRowTwoItems   `json:"twoItems,omitempty"`
	ThreeItems *CardRowThreeItems `json:"threeItems,omitempty"`
}

type CardRowOneItem struct {
	Item *TemplateItem `json:"item,omitempty"`
}

type CardRowTwoItems struct {
	StartItem *TemplateItem `json:"startItem,omitempty"`
	EndItem   *TemplateItem `json:"endItem,omitempty"`
}

type CardRowThreeItems struct {
	StartItem  *TemplateItem `json:"startItem,omitempty"`
	MiddleItem *TemplateItem `json:"middleItem,omitempty"`
	EndItem    *TemplateItem `json:"endItem,omitempty"`
}

type TemplateItem struct {
	FirstValue  *FieldSelector `json:"firstValue,omitempty"`
	SecondValue *FieldSelector `json:"secondValue,omitempty"`
}

// FieldSelector ссылается на данные GenericObject строковым fieldPath;
// путь не проверяется против экземпляра — это ответственность вызывающего
type FieldSelector struct {
	Fields []FieldReference `json:"fields"`
}

type FieldReference struct {
	FieldPath string `json:"fieldPath"`
}

func fieldSelector(path string) *FieldSelector {
	return &FieldSelector{Fields: []FieldReference{{FieldPath: path}}}
}

// OneItemRow строит однослотовую строку раскладки
func OneItemRow(path string) CardRowTemplateInfo {
	return CardRowTemplateInfo{OneItem: &CardRowOneItem{
		Item: &TemplateItem{FirstValue: fieldSelector(path)},
	}}
}

// TwoItemsRow строит двуслотовую строку раскладки; слот опускается целиком,
// когда его путь не задан
func TwoItemsRow(firstPath, secondPath string) CardRowTemplateInfo {
	row := &CardRowTwoItems{}
	if firstPath != "" {
		row.StartItem = &TemplateItem{FirstValue: fieldSelector(firstPath)}
	}
	if secondPath != "" {
		row.EndItem = &TemplateItem{FirstValue: fieldSelector(secondPath)}
	}
	return CardRowTemplateInfo{TwoItems: row}
}

// ThreeItemsRow строит трёхслотовую строку раскладки
func ThreeItemsRow(startPath, middlePath, endPath string) CardRowTemplateInfo {
	row := &CardRowThreeItems{}
	if startPath != "" {
		row.StartItem = &TemplateItem{FirstValue: fieldSelector(startPath)}
	}
	if middlePath != "" {
		row.MiddleItem = &TemplateItem{FirstValue: fieldSelector(middlePath)}
	}
	if endPath != "" {
		row.EndItem = &TemplateItem{FirstValue: fieldSelector(endPath)}
	}
	return CardRowTemplateInfo{ThreeItems: row}
}
