package dto

import (
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// ToCommand преобразует CreatePassRequest в команду use case
func (r CreatePassRequest) ToCommand() issvc.IssuePassCommand {
	cmd := issvc.IssuePassCommand{
		IssuerID: r.IssuerID,
		PassID:   r.PassID,
		ClassID:  r.ClassID,

		IssuerName:      r.IssuerName,
		ReviewStatus:    r.ReviewStatus,
		BackgroundColor: r.BackgroundColor,
		ClassLogoURI:    r.ClassLogoURI,
		ClassHeroURI:    r.ClassHeroURI,

		GenericType: r.GenericType,
		CardTitle:   r.CardTitle,
		Header:      r.Header,
		Subheader:   r.Subheader,

		ClearDefaultInfo: r.ClearDefaultInfo,
		Origins:          r.Origins,
	}
	if r.Logo != nil {
		cmd.Logo = &issvc.ImageSpec{URI: r.Logo.URI, Description: r.Logo.Description}
	}
	if r.HeroImage != nil {
		cmd.HeroImage = &issvc.ImageSpec{URI: r.HeroImage.URI, Description: r.HeroImage.Description}
	}
	if r.Barcode != nil {
		cmd.Barcode = &issvc.BarcodeSpec{
			Value:         r.Barcode.Value,
			Encoding:      r.Barcode.Encoding,
			AlternateText: r.Barcode.AlternateText,
		}
	}
	for _, m := range r.TextModules {
		cmd.TextModules = append(cmd.TextModules, issvc.TextModuleSpec{ID: m.ID, Header: m.Header, Body: m.Body})
	}
	for _, l := range r.Links {
		cmd.Links = append(cmd.Links, issvc.LinkSpec{ID: l.ID, URI: l.URI, Description: l.Description})
	}
	for _, m := range r.ImageModules {
		cmd.ImageModules = append(cmd.ImageModules, issvc.ImageModuleSpec{ID: m.ID, URI: m.URI, Description: m.Description})
	}
	for _, m := range r.InfoModules {
		cmd.InfoModules = append(cmd.InfoModules, issvc.InfoSpec{ID: m.ID, Label: m.Label, Value: m.Value})
	}
	for _, m := range r.AdditionalInfo {
		cmd.AdditionalInfo = append(cmd.AdditionalInfo, issvc.InfoSpec{ID: m.ID, Label: m.Label, Value: m.Value})
	}
	for _, p := range r.Locations {
		cmd.Locations = append(cmd.Locations, issvc.LocationSpec{Lat: p.Lat, Long: p.Long})
	}
	if r.Validity != nil {
		cmd.Validity = &issvc.IntervalSpec{Start: r.Validity.Start, End: r.Validity.End}
	}
	for _, al := range r.AppLinks {
		cmd.AppLinks = append(cmd.AppLinks, issvc.AppLinkSpec{
			Platform:    al.Platform,
			Title:       al.Title,
			Description: al.Description,
			URI:         al.URI,
			LogoURI:     al.LogoURI,
		})
	}
	if r.Grouping != nil {
		cmd.Grouping = &issvc.GroupingSpec{GroupID: r.Grouping.GroupID, SortIndex: r.Grouping.SortIndex}
	}
	for _, row := range r.TemplateRows {
		cmd.TemplateRows = append(cmd.TemplateRows, issvc.TemplateRowSpec{First: row.First, Second: row.Second})
	}
	for _, f := range r.CustomFields {
		cmd.CustomFields = append(cmd.CustomFields, issvc.CustomFieldSpec{Key: f.Key, Value: f.Value})
	}
	return cmd
}

// FromIssueResult формирует ответ по результату use case
func FromIssueResult(res issvc.IssuePassResult) CreatePassResponse {
	return CreatePassResponse{
		ID:       res.ID,
		ObjectID: res.ObjectID,
		ClassID:  res.ClassID,
		Token:    res.Token,
		SaveURL:  res.SaveURL,
	}
}

// FromRecord формирует ответ по сохранённой записи о выпуске
func FromRecord(rec issvc.IssuedPassRecord) GetPassResponse {
	return GetPassResponse{
		ID:        rec.ID,
		ObjectID:  rec.ObjectID,
		ClassID:   rec.ClassID,
		Issuer:    rec.Issuer,
		SaveURL:   rec.SaveURL,
		CreatedAt: rec.CreatedAt,
	}
}
