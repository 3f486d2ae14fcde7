package search

import "github.com/innovatel/docstore/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(request *core.SearchRequest)
	AfterScan(total int)
	Matched(doc *core.Document)
	Finish(results []*core.Document)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchRequest) {}
func (n *noopMonitor) AfterScan(_ int)             {}
func (n *noopMonitor) Matched(_ *core.Document)    {}
func (n *noopMonitor) Finish(_ []*core.Document)   {}
