// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs economic logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sales-economics/core/catalog"
	"sales-economics/core/contract"
	"sales-economics/core/costmodel"
	"sales-economics/core/market"
	"sales-economics/core/pricing"
	"sales-economics/core/roi"
	"sales-economics/core/tier"
	"sales-economics/internal/errors"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	catalog *catalog.Catalog

	costModel   *costmodel.Model
	recommender *tier.Recommender
	projector   *roi.Projector
	analyzer    *market.Analyzer
	optimizer   *contract.Optimizer
	pricer      *pricing.Pricer
}

// NewServer creates a new API server backed by the given catalog
func NewServer(version string, cat *catalog.Catalog) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		version:     version,
		catalog:     cat,
		costModel:   costmodel.New(cat),
		recommender: tier.New(cat),
		projector:   roi.New(cat),
		analyzer:    market.New(cat),
		optimizer:   contract.New(cat),
		pricer:      pricing.New(cat),
	}

	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /v1/tco", s.handleTCO)
	s.mux.HandleFunc("POST /v1/recommend", s.handleRecommend)
	s.mux.HandleFunc("POST /v1/roi", s.handleROI)
	s.mux.HandleFunc("POST /v1/penetration", s.handlePenetration)
	s.mux.HandleFunc("POST /v1/optimize", s.handleOptimize)
	s.mux.HandleFunc("POST /v1/pricing/subscription", s.handleSubscriptionCost)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleTCO handles POST /v1/tco
func (s *Server) handleTCO(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req TCORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.costModel.TotalCostOfOwnership(req.NumAgents, req.CallsPerMonth, req.AvgAgentSalary, req.Industry)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handleRecommend handles POST /v1/recommend
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.recommender.Recommend(req.MonthlyCalls, req.MonthlyCost)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handleROI handles POST /v1/roi
func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req ROIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	selectedTier, err := s.catalog.Tier(req.TierName)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	result, err := s.projector.Project(req.CurrentCosts, req.Metrics, *selectedTier, req.Industry, req.Scenario)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handlePenetration handles POST /v1/penetration
func (s *Server) handlePenetration(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req PenetrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.analyzer.AnalyzePenetration(req.Industry, req.MarketConditions, req.Competitors, req.PenetrationFactors, req.TimeframeMonths)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handleOptimize handles POST /v1/optimize
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.optimizer.Optimize(req.EstimatedCalls, req.Industry, req.BudgetConstraint)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handleSubscriptionCost handles POST /v1/pricing/subscription
func (s *Server) handleSubscriptionCost(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req SubscriptionCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.pricer.SubscriptionCost(req.Tier, req.DurationMonths, req.EstimatedCalls)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	s.writeResult(w, requestID, result)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "sales-economics",
		"api_version": "v1",
	}, http.StatusOK)
}

// writeEngineError maps a domain error to an HTTP status
func (s *Server) writeEngineError(w http.ResponseWriter, requestID string, err error) {
	code := string(errors.TypeOf(err))

	var status int
	switch errors.TypeOf(err) {
	case errors.TypeInvalidArgument:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	s.writeError(w, requestID, code, err.Error(), status)
}

func (s *Server) writeResult(w http.ResponseWriter, requestID string, result interface{}) {
	s.writeJSON(w, &Envelope{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Result:    result,
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.writeJSON(w, &ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}

func generateRequestID() string {
	return uuid.NewString()
}
