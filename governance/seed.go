package governance

import (
	"time"

	"pdao/internal/models"
)

// SeedDemo loads the demo proposals and votes shown on a fresh dashboard.
func (s *Service) SeedDemo() {
	created := time.Date(2025, 1, 27, 10, 0, 0, 0, time.UTC)
	votingEnds := created.AddDate(0, 0, 7)

	demo := []models.GovernanceProposal{
		{
			Proposal: models.Proposal{
				ID: "PENNY_001", Type: "mint", Token: "PENNY", Amount: "1000",
				To: "bc1qzd25jxt7qr44punnmjwgc6eaumhhf0nf5szsph",
			},
			Status:        "voting",
			CreatedAt:     created,
			Description:   "Initial PennyDAO mint backed by 1000 pre-1982 copper pennies",
			CreatedBy:     "admin",
			VotingEnds:    &votingEnds,
			Votes:         models.VoteTally{Up: 3, Down: 1, Total: 4},
			RequiredVotes: 5,
		},
		{
			Proposal: models.Proposal{
				ID: "PDAO_001", Type: "mint", Token: "PDAO", Amount: "50000",
				To: "bc1qpdao987654321fedcba9876543210fedcba98",
			},
			Status:        "voting",
			CreatedAt:     created.Add(time.Hour),
			Description:   "Governance token mint for active DAO members",
			CreatedBy:     "member",
			VotingEnds:    &votingEnds,
			Votes:         models.VoteTally{Up: 2, Down: 3, Total: 5},
			RequiredVotes: 5,
		},
		{
			Proposal: models.Proposal{
				ID: "SATS_001", Type: "mint", Token: "SATS", Amount: "2100000",
				To: "bc1qsats456789012345678901234567890123456",
			},
			Status:        "approved",
			CreatedAt:     created.Add(2 * time.Hour),
			Description:   "Satoshi tribute token - approved by community vote",
			CreatedBy:     "member",
			Votes:         models.VoteTally{Up: 8, Down: 1, Total: 9},
			RequiredVotes: 5,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals = append(s.proposals, demo...)
	s.logger.Printf("Seeded %d demo proposals", len(demo))
}
