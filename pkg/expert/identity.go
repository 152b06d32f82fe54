// Package expert implements the query router, the expert responders and
// the orchestrator tying them together.
//
// An Expert pairs a persona, a generation temperature and one retrieval
// strategy; the Router classifies each query into exactly one expert
// identity; the Orchestrator exposes a single Answer entry point that
// never fails.
package expert

import "strings"

// Identity tags an expert responder. The set is closed: the router only
// ever returns one of the four known identities (or the default).
type Identity string

const (
	// IdentityGuidance answers education and career guidance questions
	IdentityGuidance Identity = "rehberlik"
	// IdentityRecommendation recommends study resources
	IdentityRecommendation Identity = "öneri"
	// IdentityMotivation provides motivational support
	IdentityMotivation Identity = "motivasyon"
	// IdentityCoach matches students with coaches
	IdentityCoach Identity = "koç"

	// IdentitySystem tags answers produced by the orchestrator itself
	// when no expert could run
	IdentitySystem Identity = "sistem"
)

// DefaultIdentity is returned on classification failure or ambiguity.
const DefaultIdentity = IdentityGuidance

// Identities returns the closed set of routable identities.
func Identities() []Identity {
	return []Identity{IdentityGuidance, IdentityRecommendation, IdentityMotivation, IdentityCoach}
}

// ParseIdentity matches a string against the routable identities after
// trimming and lowercasing.
func ParseIdentity(s string) (Identity, bool) {
	candidate := Identity(strings.ToLower(strings.TrimSpace(s)))
	for _, identity := range Identities() {
		if candidate == identity {
			return identity, true
		}
	}
	return "", false
}
