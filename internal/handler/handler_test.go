package handler

import (
	"testing"

	json "github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"cyberscore-engine/internal/common"
	"cyberscore-engine/internal/engine"
	"cyberscore-engine/internal/model"
	"cyberscore-engine/internal/report"
	"cyberscore-engine/internal/scoring"
)

func testServer(t *testing.T, accessKey string) *Server {
	t.Helper()
	log := common.GetLogger()
	eng := engine.New(scoring.DefaultWeights(), log)
	reports := report.NewGenerator("Cybastion", "Riskare", "Confidential", log)
	return New(eng, reports, accessKey, log)
}

func doRequest(s *Server, method, path, accessKey string, body []byte) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if accessKey != "" {
		ctx.Request.Header.Set(accessKeyHeader, accessKey)
	}
	if body != nil {
		ctx.Request.SetBody(body)
	}
	s.Handle(&ctx)
	return &ctx
}

func TestHealthz(t *testing.T) {
	s := testServer(t, "secret")

	// Health check bypasses the access gate.
	ctx := doRequest(s, "GET", "/healthz", "", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "OK", string(ctx.Response.Body()))
}

func TestAccessGate(t *testing.T) {
	s := testServer(t, "secret")

	ctx := doRequest(s, "POST", "/v1/premium", "", []byte(`{"score":60,"coverage_amount":100}`))
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())

	ctx = doRequest(s, "POST", "/v1/premium", "wrong", []byte(`{"score":60,"coverage_amount":100}`))
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())

	ctx = doRequest(s, "POST", "/v1/premium", "secret", []byte(`{"score":60,"coverage_amount":100}`))
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestNoGateWhenUnconfigured(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "POST", "/v1/premium", "", []byte(`{"score":60,"coverage_amount":100}`))
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestPremiumEndpoint(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "POST", "/v1/premium", "", []byte(`{"score":60,"coverage_amount":1000000}`))
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.PremiumResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.InDelta(t, 0.15, resp.Rate, 1e-9)
	assert.InDelta(t, 150_000, resp.Amount, 1e-6)
}

func TestPremiumRejectsNegativeCoverage(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "POST", "/v1/premium", "", []byte(`{"score":60,"coverage_amount":-5}`))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestScoreEndpointWithDefaults(t *testing.T) {
	s := testServer(t, "")

	body := []byte(`{"tenant_id":"t1","answers":{},"fill_defaults":true,"coverage_amount":500000}`)
	ctx := doRequest(s, "POST", "/v1/score", "", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.QuoteResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.QuoteMetadata.QuoteOutcome)
	assert.Len(t, resp.QuoteResult.SectionScores, 11)
	// The score endpoint never prices, even when a coverage amount is sent.
	assert.Nil(t, resp.QuoteResult.Premium)
}

func TestQuoteEndpointMissingAnswers(t *testing.T) {
	s := testServer(t, "")

	body := []byte(`{"tenant_id":"t1","answers":{"C_infosec_policy":"Yes"}}`)
	ctx := doRequest(s, "POST", "/v1/quote", "", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.QuoteResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeFailure, resp.QuoteMetadata.QuoteOutcome)
	assert.NotEmpty(t, resp.QuoteResult.Messages)
	assert.Equal(t, model.CodeMissingAnswer, resp.QuoteResult.Messages[0].Code)
}

func TestQuoteEndpointMixedAnswerShapes(t *testing.T) {
	s := testServer(t, "")

	// Answers arrive as strings or arrays of strings.
	body := []byte(`{
		"tenant_id": "t1",
		"fill_defaults": true,
		"coverage_amount": 1000000,
		"answers": {
			"C_infosec_policy": "Yes",
			"B_types": ["Medical records", "Financial accounts"],
			"G_options": ["Data restoration", "Ransomware / cyber extortion"]
		}
	}`)
	ctx := doRequest(s, "POST", "/v1/quote", "", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.QuoteResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Equal(t, model.OutcomeSuccess, resp.QuoteMetadata.QuoteOutcome)
	// Two of six sensitive-data categories selected.
	assert.InDelta(t, (1-2.0/6.0)*100, resp.QuoteResult.SectionScores["B"], 1e-4)
	require.NotNil(t, resp.QuoteResult.Premium)
	assert.InDelta(t, resp.QuoteResult.Premium.Rate*1_000_000, resp.QuoteResult.Premium.Amount, 1e-6)
}

func TestReportEndpoint(t *testing.T) {
	s := testServer(t, "")

	body := []byte(`{"tenant_id":"t1","answers":{},"fill_defaults":true,"applicant":{"company_name":"Acme"}}`)
	ctx := doRequest(s, "POST", "/v1/report", "", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/pdf", string(ctx.Response.Header.ContentType()))
	assert.Equal(t, "%PDF", string(ctx.Response.Body()[:4]))
}

func TestReportEndpointFailsOnIncompleteAnswers(t *testing.T) {
	s := testServer(t, "")

	body := []byte(`{"tenant_id":"t1","answers":{}}`)
	ctx := doRequest(s, "POST", "/v1/report", "", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "GET", "/v1/quote", "", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestUnknownRoute(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "POST", "/v1/nope", "", []byte(`{}`))
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestInvalidJSONBody(t *testing.T) {
	s := testServer(t, "")

	ctx := doRequest(s, "POST", "/v1/quote", "", []byte(`{not json`))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}
