package models

import "time"

// VoteTally aggregates the votes cast on a proposal.
type VoteTally struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Total int `json:"total"`
}

// GovernanceProposal is a mint proposal as tracked by the dashboard,
// carrying voting state on top of the core Proposal fields.
type GovernanceProposal struct {
	Proposal
	Status        string     `json:"status"` // voting, approved, rejected, executed
	CreatedAt     time.Time  `json:"createdAt"`
	Description   string     `json:"description,omitempty"`
	CreatedBy     string     `json:"createdBy,omitempty"`
	VotingEnds    *time.Time `json:"votingEnds,omitempty"`
	Votes         VoteTally  `json:"votes"`
	RequiredVotes int        `json:"requiredVotes"`
}

// Vote is one ballot cast by a member on a proposal.
type Vote struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposalId"`
	Voter      string    `json:"voter"`
	Vote       string    `json:"vote"` // up or down
	Timestamp  time.Time `json:"timestamp"`
	Weight     int       `json:"weight"`
}
