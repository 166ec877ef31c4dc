package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pushbridge/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the list endpoints' envelope.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)
		return ctx, nil
	})

	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status "([^"]*)"$`, fc.theResponseShouldContainStatus)

	// Push token steps
	ctx.When(`^I upload the delivery token "([^"]*)"$`, fc.iUploadTheDeliveryToken)
	ctx.Given(`^a delivery token "([^"]*)" is registered$`, fc.aDeliveryTokenIsRegistered)
	ctx.When(`^I list the push tokens$`, fc.iListThePushTokens)
	ctx.Then(`^the list should contain the token "([^"]*)"$`, fc.theListShouldContainTheToken)
	ctx.When(`^I unregister the token "([^"]*)"$`, fc.iUnregisterTheToken)
}

func (fc *FeatureContext) waitForDuration(durationStr string) error {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}
	time.Sleep(duration)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(expected int) error {
	fc.require.NotNil(fc.response, "no response recorded")
	fc.require.Equal(expected, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) decodeBody(body io.Reader, target any) error {
	return json.NewDecoder(body).Decode(target)
}
