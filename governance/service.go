// Package governance tracks proposals and votes for the dashboard. State is
// held in memory; the mint log remains the only durable record.
package governance

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdao/internal/models"
)

var (
	// ErrAlreadyVoted is returned when a voter casts a second ballot on the
	// same proposal.
	ErrAlreadyVoted = errors.New("user already voted on this proposal")

	// ErrProposalNotFound is returned for operations on unknown proposals.
	ErrProposalNotFound = errors.New("proposal not found")
)

// Service encapsulates the in-memory proposal registry and vote ledger.
type Service struct {
	mu        sync.Mutex
	logger    *log.Logger
	proposals []models.GovernanceProposal
	votes     []models.Vote
}

// NewService creates a Service with an empty registry.
func NewService(logger *log.Logger) *Service {
	return &Service{logger: logger}
}

// Proposals returns a copy of all tracked proposals.
func (s *Service) Proposals() []models.GovernanceProposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.GovernanceProposal, len(s.proposals))
	copy(out, s.proposals)
	return out
}

// CreateProposal registers a proposal. A missing id is generated as
// <TOKEN>_<unix-ms>; a missing creation time is filled in.
func (s *Service) CreateProposal(p models.GovernanceProposal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		token := p.Token
		if token == "" {
			token = "PENNY"
		}
		p.ID = fmt.Sprintf("%s_%d", token, time.Now().UnixMilli())
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = "voting"
	}

	s.proposals = append(s.proposals, p)
	s.logger.Printf("Proposal created: %s (%s %s)", p.ID, p.Amount, p.Token)
	return p.ID, nil
}

// CreateAdminProposal registers a proposal on behalf of an admin, with an
// ADMIN_<unix-ms> id.
func (s *Service) CreateAdminProposal(p models.GovernanceProposal) (string, error) {
	p.ID = fmt.Sprintf("ADMIN_%d", time.Now().UnixMilli())
	p.CreatedBy = "admin"
	return s.CreateProposal(p)
}

// Votes returns a copy of the vote ledger.
func (s *Service) Votes() []models.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Vote, len(s.votes))
	copy(out, s.votes)
	return out
}

// CastVote records one ballot and updates the proposal tally. A voter may
// vote at most once per proposal.
func (s *Service) CastVote(proposalID, voter, vote string) (*models.Vote, error) {
	if vote != "up" && vote != "down" {
		return nil, fmt.Errorf("invalid vote '%s': must be up or down", vote)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.votes {
		if v.ProposalID == proposalID && v.Voter == voter {
			return nil, ErrAlreadyVoted
		}
	}

	newVote := models.Vote{
		ID:         "vote_" + uuid.NewString(),
		ProposalID: proposalID,
		Voter:      voter,
		Vote:       vote,
		Timestamp:  time.Now().UTC(),
		Weight:     1,
	}
	s.votes = append(s.votes, newVote)

	for i := range s.proposals {
		if s.proposals[i].ID != proposalID {
			continue
		}
		if vote == "up" {
			s.proposals[i].Votes.Up++
		} else {
			s.proposals[i].Votes.Down++
		}
		s.proposals[i].Votes.Total++
		break
	}

	s.logger.Printf("Vote submitted: %s voted %s on %s", voter, vote, proposalID)
	return &newVote, nil
}

// UpdateStatus sets a proposal's lifecycle status (voting, approved,
// rejected, executed).
func (s *Service) UpdateStatus(proposalID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.proposals {
		if s.proposals[i].ID == proposalID {
			s.proposals[i].Status = status
			s.logger.Printf("Proposal %s status updated to %s", proposalID, status)
			return nil
		}
	}
	return ErrProposalNotFound
}
