// Package test provides integration testing infrastructure for roster:
// a real API server on an in-memory database, a real API client, and the
// person registry used to manage test accounts across a suite.
package test

import "time"

// DefaultTestTimeout is the default timeout for test suites.
const DefaultTestTimeout = 30 * time.Second

// Fixed identity attributes given to every account created by the harness.
// Searching for this display name finds every leftover test account.
const (
	TestPersonDisplayName = "roster-test-account"
	TestPersonFirstName   = "roster"
	TestPersonLastName    = "test"
)
