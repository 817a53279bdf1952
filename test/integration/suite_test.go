//go:build integration

package integration

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-card/internal/adapters/http"
	"github.com/jsamuelsen/quote-card/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-card/internal/adapters/quotes"
	"github.com/jsamuelsen/quote-card/internal/adapters/svg"
	"github.com/jsamuelsen/quote-card/internal/app"
	"github.com/jsamuelsen/quote-card/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-card/internal/ports"
)

// newInProcessServer serves the full router on a loopback listener.
// It is used when BASE_URL is not set.
func newInProcessServer() (*httptest.Server, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	catalog := quotes.NewDefaultCatalog(nil)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(catalog); err != nil {
		return nil, err
	}

	svc := app.NewCardService(app.CardServiceConfig{
		Quotes:   catalog,
		Renderer: svg.NewRenderer(),
		Recorder: telemetry.NewCardMetrics(reg),
		Logger:   logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		ServiceName: "quote-card",
		HealthHandler: handlers.NewHealthHandler(
			registry,
			handlers.NewBuildInfo("quote-card", "test", "none", "never"),
			reg,
		),
		CardHandler: handlers.NewCardHandler(svc, handlers.DefaultCacheMaxAge),
	})

	return httptest.NewServer(engine), nil
}

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
}

func newTestContext(baseURL string) *testContext {
	return &testContext{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil
}

// initializeScenario returns a scenario initializer bound to baseURL.
func initializeScenario(baseURL string) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := newTestContext(baseURL)

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
		ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
		ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
		ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
		ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, tc.theResponseHeaderShouldBe)
		ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)
		ctx.Step(`^the card should be (\d+) pixels wide$`, tc.theCardShouldBePixelsWide)
	}
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/-/live", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", resp.StatusCode)
	}

	return nil
}

// iRequestGET makes a GET request to the specified path.
func (tc *testContext) iRequestGET(path string) error {
	tc.reset()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldBe(name, want string) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if got := tc.response.Header.Get(name); got != want {
		return fmt.Errorf("header %s: expected %q, got %q", name, want, got)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldContain(name, want string) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if got := tc.response.Header.Get(name); !strings.Contains(got, want) {
		return fmt.Errorf("header %s: expected to contain %q, got %q", name, want, got)
	}

	return nil
}

// theCardShouldBePixelsWide checks the width attribute of the root element.
func (tc *testContext) theCardShouldBePixelsWide(width int) error {
	var root struct {
		XMLName xml.Name `xml:"svg"`
		Width   string   `xml:"width,attr"`
	}

	if err := xml.Unmarshal(tc.responseBody, &root); err != nil {
		return fmt.Errorf("response is not an svg document: %w", err)
	}

	if root.Width != strconv.Itoa(width) {
		return fmt.Errorf("expected width %d, got %q", width, root.Width)
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite against BASE_URL, or against an
// in-process server when BASE_URL is empty.
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		srv, err := newInProcessServer()
		if err != nil {
			t.Fatalf("starting in-process server: %v", err)
		}
		defer srv.Close()

		baseURL = srv.URL
	}

	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(baseURL),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
