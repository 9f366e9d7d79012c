package company

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers company lookup step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &companySteps{tc: tc}

	ctx.Step(`^I look up company "([^"]*)"$`, steps.lookUp)
	ctx.Step(`^I search companies matching "([^"]*)"$`, steps.search)
	ctx.Step(`^I list the establishments of "([^"]*)" in session "([^"]*)"$`, steps.listEstablishments)
	ctx.Step(`^I geocode a batch with address "([^"]*)" for siret "([^"]*)" in session "([^"]*)"$`, steps.geocodeBatch)
	ctx.Step(`^the VAT number should be "([^"]*)"$`, steps.vatShouldBe)
	ctx.Step(`^the response should list (\d+) or more (results|establishments)$`, steps.shouldListAtLeast)
	ctx.Step(`^every listed establishment should have coordinates or be unresolved$`, steps.establishmentsResolvedOrAbsent)
}

type companySteps struct {
	tc TestContext
}

func (s *companySteps) lookUp(ctx context.Context, code string) error {
	return s.tc.GET("/companies/"+url.PathEscape(code), nil)
}

func (s *companySteps) search(ctx context.Context, query string) error {
	return s.tc.GET("/companies/search?q="+url.QueryEscape(query), nil)
}

func (s *companySteps) listEstablishments(ctx context.Context, siren, session string) error {
	return s.tc.GET("/companies/"+url.PathEscape(siren)+"/establishments?session="+url.QueryEscape(session), nil)
}

func (s *companySteps) geocodeBatch(ctx context.Context, address, siret, session string) error {
	body := map[string]any{
		"session_key": session,
		"establishments": []map[string]any{
			{"siret": siret, "address": address},
		},
	}
	return s.tc.POST("/geocode/batch", body)
}

func (s *companySteps) vatShouldBe(ctx context.Context, expected string) error {
	v, err := s.tc.GetResponseField("vat")
	if err != nil {
		return err
	}
	if v != expected {
		return fmt.Errorf("expected vat %q, got %v", expected, v)
	}
	return nil
}

func (s *companySteps) list(field string) ([]any, error) {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list: %v", field, v)
	}
	return items, nil
}

func (s *companySteps) shouldListAtLeast(ctx context.Context, n int, field string) error {
	items, err := s.list(field)
	if err != nil {
		return err
	}
	if len(items) < n {
		return fmt.Errorf("expected at least %d %s, got %d", n, field, len(items))
	}
	return nil
}

func (s *companySteps) establishmentsResolvedOrAbsent(ctx context.Context) error {
	items, err := s.list("establishments")
	if err != nil {
		return err
	}
	for _, it := range items {
		e, ok := it.(map[string]any)
		if !ok {
			return fmt.Errorf("unexpected establishment %v", it)
		}
		_, hasLat := e["latitude"]
		_, hasLon := e["longitude"]
		if hasLat != hasLon {
			return fmt.Errorf("establishment %v has only one coordinate", e["siret"])
		}
	}
	return nil
}
