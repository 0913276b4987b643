package models

// Proposal defines a raw mint request as read from a proposal file or the
// REST API. It is consumed read-only by the mint pipeline.
type Proposal struct {
	ID     string `json:"id"`
	Type   string `json:"type"`   // only "mint" is supported
	Token  string `json:"token"`  // BRC-20 ticker
	Amount string `json:"amount"` // numeric string, validated before use
	To     string `json:"to"`     // destination bech32 address
}
