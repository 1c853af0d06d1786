package test

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// DefaultEmailDomain is the domain used for generated test addresses
const DefaultEmailDomain = "example.com"

// EmailProvider hands out unique email addresses on demand. Addresses are
// unique across providers too: each provider carries a random run identifier
// so accounts left over from an aborted run never collide with a new one.
type EmailProvider struct {
	domain string
	runID  string
	seq    atomic.Uint64
}

// NewEmailProvider creates an email provider for the given domain.
// An empty domain falls back to DefaultEmailDomain.
func NewEmailProvider(domain string) (*EmailProvider, error) {
	if domain == "" {
		domain = DefaultEmailDomain
	}

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate email run id: %w", err)
	}

	return &EmailProvider{
		domain: domain,
		runID:  hex.EncodeToString(buf),
	}, nil
}

// Next returns a fresh address that has never been handed out by this provider
func (p *EmailProvider) Next() string {
	n := p.seq.Add(1)
	return fmt.Sprintf("roster-test-%s-%d@%s", p.runID, n, p.domain)
}
