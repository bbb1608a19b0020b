// Package service sequences store and agent calls for each API request.
package service

import (
	"github.com/skinwise/skinwise/internal/agent"
	"github.com/skinwise/skinwise/internal/config"
	"github.com/skinwise/skinwise/internal/repository"
)

// Service coordinates the persistence layer and the task agents.
type Service struct {
	store          repository.Store
	profileAgent   *agent.ProfileAgent
	analysisAgent  *agent.AnalysisAgent
	recommendation *agent.RecommendationAgent
	router         *agent.Router
	config         *config.Config
}

// New creates a new service.
func New(store repository.Store, profileAgent *agent.ProfileAgent, analysisAgent *agent.AnalysisAgent, recommendationAgent *agent.RecommendationAgent, router *agent.Router, cfg *config.Config) *Service {
	return &Service{
		store:          store,
		profileAgent:   profileAgent,
		analysisAgent:  analysisAgent,
		recommendation: recommendationAgent,
		router:         router,
		config:         cfg,
	}
}
