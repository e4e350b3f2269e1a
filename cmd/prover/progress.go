package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// progress shows finished proof jobs on a stderr spinner.
type progress struct {
	mu     sync.Mutex
	bar    *progressbar.ProgressBar
	failed int
}

func newProgress() *progress {
	return &progress{bar: progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("proving"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)}
}

func (p *progress) JobStarted(_ context.Context, job model.ProofJob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bar.Describe(fmt.Sprintf("proving %s [%d..%d]", job.Kind, job.FirstHeight, job.LastHeight))
}

func (p *progress) JobFinished(_ context.Context, job model.ProofJob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if job.Status == model.JobFailed {
		p.failed++
		p.bar.Describe(fmt.Sprintf("%d failed", p.failed))
	}
	_ = p.bar.Add(1)
}

func (p *progress) Finish() {
	_ = p.bar.Finish()
}
