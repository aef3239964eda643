package rumbo

import "github.com/atenea/rumbo/core"

// RecommendMonitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps and results.
type RecommendMonitor interface {
	Start(query string)
	AfterRetrieval(candidates []core.Candidate)
	AfterFilter(candidates []core.Candidate)
	Finish(ranked []core.Candidate)
}

// noopMonitor is a no-op implementation of RecommendMonitor
type noopMonitor struct{}

var _ RecommendMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterRetrieval(_ []core.Candidate)   {}
func (n *noopMonitor) AfterFilter(_ []core.Candidate)      {}
func (n *noopMonitor) Finish(_ []core.Candidate)           {}
