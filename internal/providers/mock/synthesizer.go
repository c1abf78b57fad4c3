package mock

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nathadriele/creditlens/internal/core"
)

// Synthesizer fabricates plausible retrieval responses when the backend
// is unavailable. Demo use only; the dispatcher never calls it in strict
// mode.
//
// Classification is ordered: the first matching keyword wins, matched
// case-insensitively against the query.
type Synthesizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *Synthesizer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource takes the randomness source so tests can pin a seed.
func NewWithSource(src rand.Source) *Synthesizer {
	return &Synthesizer{rnd: rand.New(src)}
}

type template struct {
	keyword string
	answer  string
	sources []core.Source
}

const creditScoreAnswer = `Based on our credit policies, the minimum credit score requirements are:

- **Personal Loans**: 650 minimum credit score
- **Business Loans**: 700 minimum credit score
- **Auto Loans**: 620 minimum credit score
- **Home Loans**: 680 minimum credit score

These requirements may be adjusted based on other factors such as income, debt-to-income ratio, and collateral.`

const riskAnswer = `Our risk assessment framework evaluates multiple factors:

1. **Credit History**: Payment history, credit utilization, length of credit history
2. **Financial Stability**: Income verification, employment history, debt-to-income ratio
3. **Collateral**: Asset valuation and loan-to-value ratios
4. **External Factors**: Economic conditions, industry-specific risks

Risk scores range from 0-100, with scores below 30 considered low risk and scores above 70 considered high risk.`

const genericAnswer = `I found information related to your query about %q in our %s collection.

This is a demo response showing how the retrieval system would provide contextual answers based on your organization's documents and policies. In a production environment, this would be generated using your actual document collection and AI models.`

var templates = []template{
	{
		keyword: "credit score",
		answer:  creditScoreAnswer,
		sources: []core.Source{
			{
				Title:   "Personal Loan Credit Policy",
				Content: "Minimum credit score of 650 is required for personal loans up to $50,000.",
				Score:   0.95,
				Metadata: map[string]string{
					"document": "credit_policy_v2.1.pdf",
					"page":     "3",
				},
			},
			{
				Title:   "Credit Scoring Guidelines",
				Content: "Credit score requirements vary by loan type and risk assessment.",
				Score:   0.87,
				Metadata: map[string]string{
					"document": "scoring_guidelines.pdf",
					"page":     "1",
				},
			},
		},
	},
	{
		keyword: "risk",
		answer:  riskAnswer,
		sources: []core.Source{
			{
				Title:   "Risk Assessment Framework",
				Content: "Comprehensive risk evaluation considers credit, financial, and external factors.",
				Score:   0.92,
				Metadata: map[string]string{
					"document": "risk_framework_v3.0.pdf",
					"page":     "5",
				},
			},
		},
	},
}

// Synthesize builds a response for query against collection. The shape
// is deterministic; confidence, token and timing fields are drawn from
// fixed ranges.
func (s *Synthesizer) Synthesize(query, collection string) *core.RetrievalResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer, sources := s.classify(query, collection)

	return &core.RetrievalResponse{
		Answer:     answer,
		Confidence: s.uniform(0.70, 0.95),
		Sources:    sources,
		Usage: core.Usage{
			TotalTokens:    150 + s.rnd.Intn(351), // [150,500]
			ProcessingTime: s.uniform(1.2, 3.5),
		},
	}
}

func (s *Synthesizer) classify(query, collection string) (string, []core.Source) {
	q := strings.ToLower(query)
	for _, t := range templates {
		if strings.Contains(q, t.keyword) {
			return t.answer, cloneSources(t.sources)
		}
	}

	answer := fmt.Sprintf(genericAnswer, query, collection)
	sources := []core.Source{
		{
			Title:   "General Policy Document",
			Content: fmt.Sprintf("Information related to %s can be found in our policy documentation.", query),
			Score:   0.75,
			Metadata: map[string]string{
				"document": "general_policies.pdf",
				"page":     strconv.Itoa(1 + s.rnd.Intn(20)),
			},
		},
	}
	return answer, sources
}

func (s *Synthesizer) uniform(min, max float64) float64 {
	return min + s.rnd.Float64()*(max-min)
}

// cloneSources keeps callers from mutating the shared templates.
func cloneSources(in []core.Source) []core.Source {
	out := make([]core.Source, len(in))
	for i, src := range in {
		out[i] = src
		if src.Metadata != nil {
			md := make(map[string]string, len(src.Metadata))
			for k, v := range src.Metadata {
				md[k] = v
			}
			out[i].Metadata = md
		}
	}
	return out
}
