package service

import (
	"context"
	"crypto/rsa"

	"github.com/google/uuid"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/wallet"
)

// Service реализует use case'ы выпуска save-ссылок
type Service struct {
	passes  PassRepository
	clock   Clock
	creds   *credentials.Credentials
	origins []string
}

func New(passes PassRepository, clock Clock, creds *credentials.Credentials, defaultOrigins []string) *Service {
	return &Service{passes: passes, clock: clock, creds: creds, origins: defaultOrigins}
}

// IssueSaveLink — основной сценарий: собрать пасс, подписать, сохранить запись
func (s *Service) IssueSaveLink(ctx context.Context, cmd IssuePassCommand) (IssuePassResult, error) {
	b, err := buildPass(cmd)
	if err != nil {
		return IssuePassResult{}, err
	}
	b.UseSigningIdentity(s.creds).WithClock(s.clock.Now)

	origins := cmd.Origins
	if len(origins) == 0 {
		origins = s.origins
	}
	token, err := b.GenerateJWT(origins...)
	if err != nil {
		return IssuePassResult{}, err
	}
	saveURL := wallet.SaveURLPrefix + token

	rec := IssuedPassRecord{
		ID:        uuid.New().String(),
		ObjectID:  b.Object().ID,
		ClassID:   b.Object().ClassID,
		Issuer:    cmd.IssuerID,
		SaveURL:   saveURL,
		Token:     token,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.passes.InsertIssuedPass(ctx, rec); err != nil {
		return IssuePassResult{}, err
	}
	return IssuePassResult{
		ID:       rec.ID,
		ObjectID: rec.ObjectID,
		ClassID:  rec.ClassID,
		Token:    token,
		SaveURL:  saveURL,
	}, nil
}

// GetIssuedPass возвращает сохранённую запись о выпуске
func (s *Service) GetIssuedPass(ctx context.Context, id string) (IssuedPassRecord, error) {
	return s.passes.GetIssuedPass(ctx, id)
}

// PreviewEnvelope — отладочный путь: та же сборка, но без подписи;
// ошибки сборки не пробрасываются, а возвращаются в тексте
func (s *Service) PreviewEnvelope(cmd IssuePassCommand) string {
	b, err := buildPass(cmd)
	if err != nil {
		return "envelope error: " + err.Error()
	}
	b.UseSigningIdentity(s.creds).WithClock(s.clock.Now)
	return b.DumpEnvelope()
}

// PublicKey — kid и публичный ключ эмитента для JWKS
func (s *Service) PublicKey() (string, *rsa.PublicKey) {
	return s.creds.KeyID(), &s.creds.Key.PublicKey
}

// buildPass прогоняет команду через fluent-мутации builder'а
func buildPass(cmd IssuePassCommand) (*wallet.Builder, error) {
	b := wallet.NewBuilder(cmd.IssuerID, cmd.PassID, cmd.ClassID)

	if cmd.GenericType != "" {
		b.SetGenericType(cmd.GenericType)
	}
	if cmd.IssuerName != "" || cmd.ReviewStatus != "" || cmd.BackgroundColor != "" ||
		cmd.ClassLogoURI != "" || cmd.ClassHeroURI != "" {
		b.SetPassClassWithDetails(wallet.ClassDetails{
			IssuerName:         cmd.IssuerName,
			ReviewStatus:       cmd.ReviewStatus,
			HexBackgroundColor: cmd.BackgroundColor,
			LogoURI:            cmd.ClassLogoURI,
			HeroImageURI:       cmd.ClassHeroURI,
		})
	}

	if cmd.CardTitle != nil {
		b.SetCardTitle(*cmd.CardTitle)
	}
	if cmd.Header != nil {
		b.SetHeader(*cmd.Header)
	}
	if cmd.Subheader != nil {
		b.SetSubheader(*cmd.Subheader)
	}
	if cmd.Logo != nil {
		setImage(b.SetLogo, *cmd.Logo)
	}
	if cmd.HeroImage != nil {
		setImage(b.SetHeroImage, *cmd.HeroImage)
	}
	if cmd.Barcode != nil {
		if cmd.Barcode.AlternateText != nil {
			b.SetBarcode(cmd.Barcode.Value, cmd.Barcode.Encoding, *cmd.Barcode.AlternateText)
		} else {
			b.SetBarcode(cmd.Barcode.Value, cmd.Barcode.Encoding)
		}
	}
	for _, m := range cmd.TextModules {
		if m.Header != "" {
			b.AddTextModule(m.ID, m.Body, m.Header)
		} else {
			b.AddTextModule(m.ID, m.Body)
		}
	}
	for _, l := range cmd.Links {
		b.AddLink(l.ID, l.URI, l.Description)
	}
	for _, m := range cmd.ImageModules {
		if m.Description != nil {
			b.AddImageModule(m.ID, m.URI, *m.Description)
		} else {
			b.AddImageModule(m.ID, m.URI)
		}
	}
	for _, m := range cmd.InfoModules {
		b.AddInfoModule(m.ID, m.Label, m.Value)
	}
	if cmd.ClearDefaultInfo {
		b.ClearAdditionalInfo()
	}
	for _, m := range cmd.AdditionalInfo {
		b.AddAdditionalInfo(m.ID, m.Label, m.Value)
	}
	for _, p := range cmd.Locations {
		b.AddLocation(p.Lat, p.Long)
	}
	if cmd.Validity != nil {
		if cmd.Validity.End != nil {
			b.SetValidTimeInterval(cmd.Validity.Start, *cmd.Validity.End)
		} else {
			b.SetValidTimeInterval(cmd.Validity.Start)
		}
	}
	for _, al := range cmd.AppLinks {
		b.SetAppLink(wallet.Platform(al.Platform), wallet.AppLink{
			Title:       al.Title,
			Description: al.Description,
			URI:         al.URI,
			LogoURI:     al.LogoURI,
		})
	}
	if cmd.Grouping != nil {
		if cmd.Grouping.SortIndex != nil {
			b.SetGroupingInfo(cmd.Grouping.GroupID, *cmd.Grouping.SortIndex)
		} else {
			b.SetGroupingInfo(cmd.Grouping.GroupID)
		}
	}
	for _, f := range cmd.CustomFields {
		b.AddCustomField(f.Key, f.Value)
	}
	if len(cmd.TemplateRows) > 0 {
		rows := make([]wallet.CardRowTemplateInfo, 0, len(cmd.TemplateRows))
		for _, r := range cmd.TemplateRows {
			rows = append(rows, wallet.TwoItemsRow(r.First, r.Second))
		}
		if err := b.SetClassTemplateInfo(rows...); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func setImage(set func(string, ...string) *wallet.Builder, spec ImageSpec) {
	if spec.Description != nil {
		set(spec.URI, *spec.Description)
	} else {
		set(spec.URI)
	}
}
