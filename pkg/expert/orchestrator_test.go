package expert

import (
	"context"
	"strings"
	"testing"

	"github.com/datafy-ai/go-mentor/pkg/llm"
	"github.com/datafy-ai/go-mentor/pkg/retrieval"
)

func newTestExpert(identity Identity, response string) *Expert {
	return New(Config{
		Identity: identity,
		Persona:  "persona",
		Strategy: stubStrategy{passages: []retrieval.Passage{{Text: "bağlam"}}},
		Client:   llm.NewMockClient(response),
	})
}

func TestOrchestratorAnswerRoutesToExpert(t *testing.T) {
	router := NewRouter(RouterConfig{Client: llm.NewMockClient("motivasyon")})
	o := NewOrchestrator(router, []*Expert{
		newTestExpert(IdentityGuidance, "rehberlik cevabı"),
		newTestExpert(IdentityMotivation, "motivasyon cevabı"),
	}, nil)

	answer := o.Answer(context.Background(), "Bugün hiç çalışasım yok")
	if answer.Identity != IdentityMotivation {
		t.Errorf("Identity = %q, want motivasyon", answer.Identity)
	}
	if answer.Text != "motivasyon cevabı" {
		t.Errorf("Text = %q", answer.Text)
	}
}

func TestOrchestratorAnswerMissingExpertFallsBackToDefault(t *testing.T) {
	// Router picks koç but only the default expert is registered
	router := NewRouter(RouterConfig{Client: llm.NewMockClient("koç")})
	o := NewOrchestrator(router, []*Expert{
		newTestExpert(DefaultIdentity, "rehberlik cevabı"),
	}, nil)

	answer := o.Answer(context.Background(), "koç arıyorum")
	if answer.Identity != DefaultIdentity {
		t.Errorf("Identity = %q, want default", answer.Identity)
	}
	if answer.Text != "rehberlik cevabı" {
		t.Errorf("Text = %q", answer.Text)
	}
}

func TestOrchestratorAnswerNoExpertsYieldsSystemApology(t *testing.T) {
	router := NewRouter(RouterConfig{Client: llm.NewMockClient("rehberlik")})
	o := NewOrchestrator(router, nil, nil)

	answer := o.Answer(context.Background(), "soru")
	if answer.Identity != IdentitySystem {
		t.Errorf("Identity = %q, want sistem", answer.Identity)
	}
	if answer.Text != systemApology {
		t.Errorf("Text = %q", answer.Text)
	}
}

func TestOrchestratorAnswerIsTotal(t *testing.T) {
	// Everything fails: classification, retrieval and generation
	router := NewRouter(RouterConfig{Client: llm.NewMockClientWithError("llm down")})
	broken := New(Config{
		Identity: DefaultIdentity,
		Persona:  "persona",
		Strategy: stubStrategy{},
		Client:   llm.NewMockClientWithError("llm down"),
	})
	o := NewOrchestrator(router, []*Expert{broken}, nil)

	for _, query := range []string{"", "soru", strings.Repeat("uzun ", 500)} {
		answer := o.Answer(context.Background(), query)
		if answer.Text == "" {
			t.Errorf("Answer(%.20q) produced an empty answer", query)
		}
		if answer.Identity != DefaultIdentity {
			t.Errorf("Answer(%.20q) identity = %q, want default", query, answer.Identity)
		}
	}
}
