package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/address"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/identifier"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/vat"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/circuit"
	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

// Labels derived from legal unit flags.
const (
	LabelSocialEconomy  = "ESS"
	LabelMissionCompany = "Société à mission"
)

var errBreakerOpen = errors.New("circuit breaker open")

// gathered holds every upstream answer of one lookup. Each goroutine
// writes only its own fields.
type gathered struct {
	records

	establishmentErr error
	legalUnitErr     error
	enrichmentErr    error
	documentsErr     error
	vatErr           error
	headOfficeErr    error
	geocodingErr     error

	enrichmentOK bool
	documents    *models.DocumentPage
	vatCheck     entity.Optional[bool]
	geocoding    entity.Optional[entity.Geocoding]
}

// degraded lists the auxiliary sources that failed, in a fixed order.
func (g *gathered) degraded() []string {
	var out []string
	for _, d := range []struct {
		source string
		err    error
	}{
		{entity.SourceEnrichment, g.enrichmentErr},
		{entity.SourceDocuments, g.documentsErr},
		{entity.SourceVAT, g.vatErr},
		{entity.SourceHeadOffice, g.headOfficeErr},
		{entity.SourceGeocoding, g.geocodingErr},
	} {
		if d.err != nil {
			out = append(out, d.source)
		}
	}
	return out
}

func (s *Service) resolveIdentifier(ctx context.Context, c identifier.Classification) (*entity.Entity, error) {
	siren := c.Siren.String()

	g, err := s.gather(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, interrupted(err)
	}
	if g.establishment == nil && g.legalUnit == nil {
		cause := errors.Join(ErrNotFound, g.establishmentErr, g.legalUnitErr)
		return nil, dErrors.Wrap(cause, dErrors.CodeNotFound, "no registry record for "+c.Code)
	}

	if c.Kind == identifier.KindSiren {
		g.headOffice, g.headOfficeErr = s.fetchHeadOffice(ctx, g.legalUnit)
	}

	m := applyPrecedence(precedence, g.records)

	if raw := m.get(FieldAddress); raw != "" {
		s.geocode(ctx, siren, g, raw)
	}
	if err := ctx.Err(); err != nil {
		return nil, interrupted(err)
	}

	for _, source := range g.degraded() {
		s.metrics.IncrementDegraded(source)
	}

	siret := c.Siret.String()
	if c.Kind == identifier.KindSiren && g.headOffice != nil && strings.HasPrefix(g.headOffice.Siret, siren) {
		siret = g.headOffice.Siret
	}

	return entity.Build(s.entityInput(siren, siret, g, m))
}

// interrupted converts the caller's context ending into a domain error.
// Supersession is reported separately by Resolve.
func interrupted(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "company lookup timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "company lookup cancelled")
}

// gather queries the registries and the auxiliary sources concurrently.
// The Siren is known up front (it prefixes a Siret), so nothing here
// depends on another call. Failures are kept per source; only the parent
// context ending aborts the gathering.
func (s *Service) gather(ctx context.Context, c identifier.Classification) (*gathered, error) {
	grp, ctx := errgroup.WithContext(ctx)
	siren := c.Siren.String()
	out := &gathered{}

	if c.Kind == identifier.KindSiret {
		grp.Go(func() error {
			out.establishment, out.establishmentErr = observe(ctx, s, "sirene_establishment", func(ctx context.Context) (*models.EstablishmentRecord, error) {
				return s.registry.GetBySiret(ctx, c.Siret.String())
			})
			if out.establishmentErr != nil {
				out.establishment = nil
				s.logUpstream(ctx, siren, SourceEstablishment, out.establishmentErr)
			}
			return nil
		})
	}

	grp.Go(func() error {
		out.legalUnit, out.legalUnitErr = observe(ctx, s, "sirene_legal_unit", func(ctx context.Context) (*models.LegalUnitRecord, error) {
			return s.registry.GetBySiren(ctx, siren)
		})
		if out.legalUnitErr != nil {
			out.legalUnit = nil
			s.logUpstream(ctx, siren, SourceLegalUnit, out.legalUnitErr)
		}
		return nil
	})

	grp.Go(func() error {
		record, err := guarded(ctx, s, s.enrichmentBreaker, "rne_company", func(ctx context.Context) (*models.EnrichmentRecord, error) {
			return s.enrichment.GetEntreprise(ctx, siren)
		})
		switch {
		case err == nil && record != nil:
			out.enrichment = *record
			out.enrichmentOK = true
		case err != nil && !providers.IsNotFound(err):
			out.enrichmentErr = err
			s.logDegraded(ctx, siren, entity.SourceEnrichment, err)
		}
		return nil
	})

	grp.Go(func() error {
		page, err := guarded(ctx, s, s.enrichmentBreaker, "rne_documents", func(ctx context.Context) (*models.DocumentPage, error) {
			return s.enrichment.GetActes(ctx, siren, 1, s.documentsPageSize)
		})
		switch {
		case err == nil:
			out.documents = page
		case !providers.IsNotFound(err):
			out.documentsErr = err
			s.logDegraded(ctx, siren, entity.SourceDocuments, err)
		}
		return nil
	})

	grp.Go(func() error {
		country, body, ok := vat.Split(vat.Compute(siren))
		if !ok {
			return nil
		}
		valid, err := guarded(ctx, s, s.vatBreaker, "vies", func(ctx context.Context) (bool, error) {
			return s.vat.Check(ctx, country, body)
		})
		if err != nil {
			out.vatErr = err
			s.logDegraded(ctx, siren, entity.SourceVAT, err)
			return nil
		}
		out.vatCheck = entity.Present(valid)
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// guarded runs a best-effort call behind a circuit breaker. Only transient
// failures count against the breaker, and nothing is recorded once the
// caller's context is done.
func guarded[T any](ctx context.Context, s *Service, breaker *circuit.Breaker, source string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if !breaker.Allow() {
		return zero, fmt.Errorf("%s: %w", breaker.Name(), errBreakerOpen)
	}
	result, err := observe(ctx, s, source, call)
	if ctx.Err() != nil {
		if err == nil {
			return result, nil
		}
		return zero, err
	}
	if err != nil && providers.IsRetryable(err) {
		if _, change := breaker.RecordFailure(); change.Opened {
			s.logger.WarnContext(ctx, "circuit breaker opened", "breaker", breaker.Name())
		}
		return zero, err
	}
	if _, change := breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "circuit breaker closed", "breaker", breaker.Name())
	}
	if err != nil {
		return zero, err
	}
	return result, nil
}

// fetchHeadOffice loads the head-office establishment of a legal unit so
// Siren lookups get an establishment identifier and address.
func (s *Service) fetchHeadOffice(ctx context.Context, lu *models.LegalUnitRecord) (*models.EstablishmentRecord, error) {
	if lu == nil || lu.HeadOfficeNIC == "" {
		return nil, nil
	}
	siret := lu.Siren + lu.HeadOfficeNIC
	if !identifier.IsSiret(siret) {
		return nil, nil
	}
	record, err := observe(ctx, s, "sirene_head_office", func(ctx context.Context) (*models.EstablishmentRecord, error) {
		return s.registry.GetBySiret(ctx, siret)
	})
	if err != nil {
		s.logDegraded(ctx, lu.Siren, entity.SourceHeadOffice, err)
		return nil, err
	}
	return record, nil
}

func (s *Service) geocode(ctx context.Context, siren string, g *gathered, raw string) {
	geo, err := s.geocoder.Resolve(ctx, address.Normalize(raw), address.ExpectedLocality(raw))
	if err != nil {
		g.geocodingErr = err
		s.logDegraded(ctx, siren, entity.SourceGeocoding, err)
		return
	}
	g.geocoding = entity.Present(*geo)
}

func (s *Service) entityInput(siren, siret string, g *gathered, m merged) entity.Input {
	legalForm := m.get(FieldLegalForm)
	activity := m.get(FieldActivity)
	workforce := m.get(FieldWorkforce)

	in := entity.Input{
		Siren: siren,
		Siret: siret,
		Name:  m.get(FieldName),
		Classification: entity.Classification{
			LegalForm:        legalForm,
			LegalFormLabel:   s.decoder.LegalForm(legalForm),
			ActivityCode:     activity,
			ActivityLabel:    s.decoder.Activity(activity),
			CreationDate:     m.get(FieldCreationDate),
			WorkforceBracket: workforce,
			WorkforceLabel:   s.decoder.Workforce(workforce),
		},
		Purpose:     m.get(FieldPurpose),
		RawAddress:  m.get(FieldAddress),
		ClosureDate: m.get(FieldClosureDate),
		Labels:      labels(g.legalUnit),
		Geocoding:   g.geocoding,
		VATCheck:    g.vatCheck,
		Provenance:  m.provenance,
		Degraded:    g.degraded(),
	}

	if g.enrichment.Capital != nil {
		in.Capital = entity.Present(*g.enrichment.Capital)
		in.Provenance[FieldCapital] = SourceEnrichment
	}
	if g.enrichmentOK {
		in.Directors = entity.Present(directors(g.enrichment.Directors))
		in.Announcements = entity.Present(announcements(g.enrichment.Registrations))
		in.Facts = entity.Present(facts(g.enrichment.Observations))
	}
	if g.documents != nil {
		in.Documents = entity.Present(documents(g.documents.Acts))
		in.Financials = entity.Present(financials(g.documents.Annual))
	}
	return in
}

func labels(lu *models.LegalUnitRecord) []string {
	var out []string
	if lu == nil {
		return out
	}
	if lu.SocialEconomy {
		out = append(out, LabelSocialEconomy)
	}
	if lu.MissionCompany {
		out = append(out, LabelMissionCompany)
	}
	return out
}

func directors(in []models.Director) []entity.Director {
	out := make([]entity.Director, 0, len(in))
	for _, d := range in {
		director := entity.Director{Role: d.Role, BirthDate: d.BirthDate, Kind: "person"}
		if d.Company != "" {
			director.Kind = "company"
			director.Name = d.Company
		} else {
			director.Name = pkgstrings.JoinNonEmpty(" ", d.FirstNames, d.LastName)
		}
		out = append(out, director)
	}
	return out
}

func announcements(in []models.Registration) []entity.Announcement {
	out := make([]entity.Announcement, 0, len(in))
	for _, r := range in {
		out = append(out, entity.Announcement{Date: r.Date, Type: r.Type, Description: r.Description})
	}
	return out
}

func facts(in []models.Observation) []entity.Fact {
	out := make([]entity.Fact, 0, len(in))
	for _, o := range in {
		out = append(out, entity.Fact{Date: o.Date, Text: o.Text})
	}
	return out
}

func documents(in []models.Act) []entity.Document {
	out := make([]entity.Document, 0, len(in))
	for _, a := range in {
		out = append(out, entity.Document{ID: a.ID, Date: a.Date, Type: a.Type, Label: a.Label})
	}
	return out
}

// financials lists filed accounts by closing year. Accounts without a
// parsable closing date are skipped.
func financials(in []models.AnnualAccounts) []entity.FinancialStatement {
	out := make([]entity.FinancialStatement, 0, len(in))
	for _, a := range in {
		if len(a.ClosingDate) < 4 {
			continue
		}
		year, err := strconv.Atoi(a.ClosingDate[:4])
		if err != nil {
			continue
		}
		out = append(out, entity.FinancialStatement{
			Year:        year,
			ClosingDate: a.ClosingDate,
			Type:        a.Type,
			Public:      !a.Confidential,
			DocumentID:  a.ID,
		})
	}
	return out
}

func (s *Service) logDegraded(ctx context.Context, siren, source string, err error) {
	s.logger.WarnContext(ctx, "auxiliary source degraded",
		"siren", siren,
		"source", source,
		"error", err,
	)
}

func (s *Service) logUpstream(ctx context.Context, siren, source string, err error) {
	s.logger.InfoContext(ctx, "registry lookup failed",
		"siren", siren,
		"source", source,
		"error", err,
	)
}
