package core

import "time"

const (
	AppName   = "CreditLens"
	UserAgent = "CreditLens/0.1"
	Version   = "0.1.0"
)

// KnownCollections are the document partitions the platform ships with.
// The backend accepts any collection name; this set only feeds
// suggestions in the CLI selector.
var KnownCollections = []string{
	"credit_policies",
	"risk_guidelines",
	"compliance_docs",
	"all_documents",
}

// RetrievalResponse is the answer envelope for a dispatched query. The
// dispatcher never returns one with an empty Answer.
type RetrievalResponse struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources"`
	Usage      Usage    `json:"usage"`
}

// Source is one document excerpt backing an answer.
type Source struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Usage struct {
	TotalTokens    int     `json:"totalTokens"`
	ProcessingTime float64 `json:"processingTime"`
}

// Turn is one query/response pair in a conversation. Immutable once
// appended.
type Turn struct {
	ID        string
	Timestamp time.Time
	Query     string
	Response  RetrievalResponse
}

// Health is the backend liveness report.
type Health struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
