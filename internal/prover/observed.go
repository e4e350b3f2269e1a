package prover

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// ObservedGateway wraps a Gateway with metrics and logging.
type ObservedGateway struct {
	next    Gateway
	metrics GatewayMetrics
	logger  *zap.Logger
}

// NewObservedGateway constructs an instrumented gateway.
func NewObservedGateway(next Gateway, metrics GatewayMetrics, logger *zap.Logger) *ObservedGateway {
	return &ObservedGateway{
		next:    next,
		metrics: metrics,
		logger:  logger.Named("gateway"),
	}
}

func (g *ObservedGateway) observe(operation, circuitPath string, err error, started time.Time) {
	g.metrics.Observe(operation, err, started)
	if err != nil {
		g.logger.Error("toolchain call failed",
			zap.String("operation", operation),
			zap.String("circuit", circuitPath),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return
	}
	g.logger.Debug("toolchain call finished",
		zap.String("operation", operation),
		zap.String("circuit", circuitPath),
		zap.Duration("elapsed", time.Since(started)),
	)
}

func (g *ObservedGateway) Compile(ctx context.Context, circuitPath string) (err error) {
	started := time.Now()
	defer func() {
		g.observe("compile", circuitPath, err, started)
	}()
	return g.next.Compile(ctx, circuitPath)
}

func (g *ObservedGateway) BuildWitness(ctx context.Context, doc witness.Document, circuitPath string) (w []byte, err error) {
	started := time.Now()
	defer func() {
		g.observe("build_witness", circuitPath, err, started)
	}()
	return g.next.BuildWitness(ctx, doc, circuitPath)
}

func (g *ObservedGateway) BuildVerificationKey(ctx context.Context, vkPath, circuitPath string) (err error) {
	started := time.Now()
	defer func() {
		g.observe("build_verification_key", circuitPath, err, started)
	}()
	return g.next.BuildVerificationKey(ctx, vkPath, circuitPath)
}

func (g *ObservedGateway) CreateProof(ctx context.Context, vkPath string, publicInputs int, circuitPath string) (public, proof []string, err error) {
	started := time.Now()
	defer func() {
		g.observe("create_proof", circuitPath, err, started)
	}()
	return g.next.CreateProof(ctx, vkPath, publicInputs, circuitPath)
}

func (g *ObservedGateway) Verify(ctx context.Context, vkPath, circuitPath string) (ok bool, err error) {
	started := time.Now()
	defer func() {
		g.observe("verify", circuitPath, err, started)
	}()
	return g.next.Verify(ctx, vkPath, circuitPath)
}

func (g *ObservedGateway) ExtractVerificationKeyAsFields(ctx context.Context, vkPath, circuitPath string) (fields []string, err error) {
	started := time.Now()
	defer func() {
		g.observe("extract_vk_as_fields", circuitPath, err, started)
	}()
	return g.next.ExtractVerificationKeyAsFields(ctx, vkPath, circuitPath)
}

func (g *ObservedGateway) CreateFinalProof(ctx context.Context, project, circuitPath string) (proof string, err error) {
	started := time.Now()
	defer func() {
		g.observe("create_final_proof", circuitPath, err, started)
	}()
	return g.next.CreateFinalProof(ctx, project, circuitPath)
}
