// Package server exposes the governance dashboard REST API: proposals,
// votes, admin actions, mint history and the mint-execution triggers.
package server

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"pdao/config"
	"pdao/governance"
	"pdao/inscription/client"
	"pdao/internal/messaging/producer"
	"pdao/internal/models"
	"pdao/processing"
	"pdao/storage/store"
)

// Server wires the governance service, mint log store and mint pipeline
// behind HTTP handlers.
type Server struct {
	cfg      *config.ServerConfig
	logger   *log.Logger
	store    store.Store
	gov      *governance.Service
	notifier producer.Producer
}

// New creates a Server.
func New(cfg *config.ServerConfig, logger *log.Logger, s store.Store, gov *governance.Service, notifier producer.Producer) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		store:    s,
		gov:      gov,
		notifier: notifier,
	}
}

// Router builds the gin engine with all dashboard routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.GET("/proposals", s.listProposals)
	api.POST("/proposals", s.createProposal)
	api.GET("/votes", s.listVotes)
	api.POST("/votes", s.castVote)
	api.POST("/vote", s.castVote)
	api.GET("/mint-history", s.mintHistory)
	api.GET("/treasury", s.treasury)
	api.POST("/process-proposal", s.processProposal)
	api.POST("/process-proposals", s.processProposals)

	admin := api.Group("/admin")
	admin.POST("/proposals", s.createAdminProposal)
	admin.POST("/proposals/status", s.updateProposalStatus)

	r.GET("/health", s.health)

	return r
}

func (s *Server) listProposals(c *gin.Context) {
	c.JSON(http.StatusOK, s.gov.Proposals())
}

func (s *Server) createProposal(c *gin.Context) {
	var p models.GovernanceProposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal data"})
		return
	}

	id, err := s.gov.CreateProposal(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *Server) createAdminProposal(c *gin.Context) {
	var p models.GovernanceProposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal data"})
		return
	}

	id, err := s.gov.CreateAdminProposal(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin proposal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *Server) updateProposalStatus(c *gin.Context) {
	var req struct {
		ProposalID string `json:"proposalId"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProposalID == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proposalId and status are required"})
		return
	}

	if err := s.gov.UpdateStatus(req.ProposalID, req.Status); err != nil {
		if errors.Is(err, governance.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update proposal status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) listVotes(c *gin.Context) {
	c.JSON(http.StatusOK, s.gov.Votes())
}

func (s *Server) castVote(c *gin.Context) {
	var req struct {
		ProposalID string `json:"proposalId"`
		Voter      string `json:"voter"`
		Vote       string `json:"vote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProposalID == "" || req.Voter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proposalId, voter and vote are required"})
		return
	}

	vote, err := s.gov.CastVote(req.ProposalID, req.Voter, req.Vote)
	if err != nil {
		if errors.Is(err, governance.ErrAlreadyVoted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vote": vote})
}

func (s *Server) mintHistory(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Entries())
}

func (s *Server) treasury(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Stats())
}

// processRequest is the shared body shape of the mint-execution triggers.
type processRequest struct {
	ProposalID string `json:"proposalId"`
	File       string `json:"file"`
	DryRun     *bool  `json:"dryRun"`
}

// mode defaults to dry-run; live submission must be requested explicitly.
func (req *processRequest) mode() client.Mode {
	if req.DryRun != nil && !*req.DryRun {
		return client.ModeLive
	}
	return client.ModeDryRun
}

func (s *Server) newProcessor(mode client.Mode) (*processing.Processor, client.Client, error) {
	cl, err := client.NewClient(mode, &s.cfg.Bot, s.logger)
	if err != nil {
		return nil, nil, err
	}
	return processing.New(&s.cfg.Bot, s.logger, s.store, cl, s.notifier), cl, nil
}

func (s *Server) processProposal(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	file := req.File
	if file == "" && req.ProposalID != "" {
		file = req.ProposalID + ".json"
	}
	if file == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file or proposalId is required"})
		return
	}

	proc, cl, err := s.newProcessor(req.mode())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cl.Close()

	// Base keeps lookups inside the proposals directory.
	path := filepath.Join(s.cfg.Bot.ProposalsDir, filepath.Base(file))
	entry, err := proc.ProcessProposal(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": entry})
}

func (s *Server) processProposals(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	proc, cl, err := s.newProcessor(req.mode())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cl.Close()

	result, err := proc.ProcessAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"results":    result.Outcomes,
		"successful": result.Successful,
		"failed":     result.Failed,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339Nano),
		"service":   "pdao-dashboard",
	})
}
