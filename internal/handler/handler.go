package handler

import (
	"crypto/subtle"

	json "github.com/goccy/go-json"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/valyala/fasthttp"

	"cyberscore-engine/internal/engine"
	"cyberscore-engine/internal/model"
	"cyberscore-engine/internal/pricing"
	"cyberscore-engine/internal/questionnaire"
	"cyberscore-engine/internal/report"
)

const accessKeyHeader = "X-Access-Key"

// Server routes the scoring and pricing endpoints. When an access key is
// configured, every endpoint except the health check requires it.
type Server struct {
	engine    *engine.Engine
	reports   *report.Generator
	validate  *validator.Validate
	accessKey []byte
	log       arbor.ILogger
}

func New(eng *engine.Engine, reports *report.Generator, accessKey string, log arbor.ILogger) *Server {
	return &Server{
		engine:    eng,
		reports:   reports,
		validate:  validator.New(),
		accessKey: []byte(accessKey),
		log:       log,
	}
}

// Handle is the fasthttp request handler.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	if path == "/healthz" {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
		return
	}

	if !s.authorized(ctx) {
		s.writeError(ctx, fasthttp.StatusUnauthorized, "Invalid or missing access key")
		return
	}

	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	switch path {
	case "/v1/quote":
		s.handleQuote(ctx, false)
	case "/v1/score":
		s.handleQuote(ctx, true)
	case "/v1/report":
		s.handleReport(ctx)
	case "/v1/premium":
		s.handlePremium(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (s *Server) authorized(ctx *fasthttp.RequestCtx) bool {
	if len(s.accessKey) == 0 {
		return true
	}
	provided := ctx.Request.Header.Peek(accessKeyHeader)
	return subtle.ConstantTimeCompare(provided, s.accessKey) == 1
}

func (s *Server) decodeQuoteRequest(ctx *fasthttp.RequestCtx) (*model.QuoteRequest, bool) {
	var req model.QuoteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// handleQuote runs the full pipeline. scoreOnly drops the coverage amount so
// the response carries scores and label without a premium.
func (s *Server) handleQuote(ctx *fasthttp.RequestCtx, scoreOnly bool) {
	req, ok := s.decodeQuoteRequest(ctx)
	if !ok {
		return
	}
	if scoreOnly {
		req.CoverageAmount = 0
	}

	resp := s.engine.Process(req)
	s.writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleReport(ctx *fasthttp.RequestCtx) {
	req, ok := s.decodeQuoteRequest(ctx)
	if !ok {
		return
	}

	resp := s.engine.Process(req)
	if resp.QuoteMetadata.QuoteOutcome != model.OutcomeSuccess {
		s.writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	// Mirror the engine's default merge so the report shows what was
	// actually scored.
	answers := req.Answers
	if req.FillDefaults {
		merged := questionnaire.DefaultAnswers()
		for k, v := range answers {
			merged[k] = v
		}
		answers = merged
	}

	pdf, err := s.reports.Build(&report.Assessment{
		Applicant:     req.Applicant,
		Answers:       answers,
		SectionScores: resp.QuoteResult.SectionScores,
		Overall:       *resp.QuoteResult.OverallScore,
		Label:         resp.QuoteResult.RiskLabel,
		Premium:       resp.QuoteResult.Premium,
		Weights:       s.engine.Weights(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("Report generation failed")
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Report generation failed")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/pdf")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="cyber_security_assessment.pdf"`)
	ctx.SetBody(pdf)
}

func (s *Server) handlePremium(ctx *fasthttp.RequestCtx) {
	var req model.PremiumRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	rate := pricing.Rate(req.Score)
	s.writeJSON(ctx, fasthttp.StatusOK, model.PremiumResponse{
		Score:          req.Score,
		Rate:           rate,
		CoverageAmount: req.CoverageAmount,
		Amount:         pricing.Premium(rate, req.CoverageAmount),
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error().Err(err).Msg("Response encoding failed")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
