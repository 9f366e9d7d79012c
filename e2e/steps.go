package e2e

import (
	"github.com/cucumber/godog"

	"github.com/avelineg/siren-search-widget-sub000/e2e/steps/common"
	"github.com/avelineg/siren-search-widget-sub000/e2e/steps/company"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// Company lookup, listing and batch geocoding
	company.RegisterSteps(ctx, tc)
}
