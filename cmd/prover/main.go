// Command prover produces the final bridge proof for one order.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/artifact"
	"github.com/goodnatureofminers/bridgeprover/internal/bitcoin"
	"github.com/goodnatureofminers/bridgeprover/internal/ledger"
	"github.com/goodnatureofminers/bridgeprover/internal/metrics"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/repository/clickhouse"
	"github.com/goodnatureofminers/bridgeprover/internal/scheduler"
	"github.com/goodnatureofminers/bridgeprover/internal/service/blockproof"
	"github.com/goodnatureofminers/bridgeprover/internal/service/composite"
	"github.com/goodnatureofminers/bridgeprover/internal/service/subproof"
	"github.com/goodnatureofminers/bridgeprover/pkg/batcher"
)

type config struct {
	Request string `long:"request" env:"BRIDGE_PROVER_REQUEST" description:"path to the order or request JSON file" required:"true"`
	Output  string `long:"output" env:"BRIDGE_PROVER_OUTPUT" description:"path of the proof JSON file, stdout when empty"`

	CircuitsDir  string `long:"circuits-dir" env:"BRIDGE_PROVER_CIRCUITS_DIR" description:"root of the Noir circuit projects" default:"circuits"`
	ScratchDir   string `long:"scratch-dir" env:"BRIDGE_PROVER_SCRATCH_DIR" description:"directory for isolated circuit copies"`
	VKCacheDir   string `long:"vk-cache-dir" env:"BRIDGE_PROVER_VK_CACHE_DIR" description:"directory of precomputed data hash keys" default:"generated_sha_circuits"`
	GeneratedDir string `long:"generated-dir" env:"BRIDGE_PROVER_GENERATED_DIR" description:"directory of precompiled tree circuit keys" default:"generated_block_tree_circuits"`
	NargoBinary  string `long:"nargo" env:"BRIDGE_PROVER_NARGO" description:"nargo binary" default:"nargo"`
	BBBinary     string `long:"bb" env:"BRIDGE_PROVER_BB" description:"bb binary" default:"bb"`

	MaxConcurrent  int  `long:"max-concurrent" env:"BRIDGE_PROVER_MAX_CONCURRENT" description:"proofs generated at once" default:"10"`
	StartRPS       int  `long:"start-rps" env:"BRIDGE_PROVER_START_RPS" description:"proof starts per second, 0 for unlimited"`
	SafeConcurrent bool `long:"safe-concurrent" env:"BRIDGE_PROVER_SAFE_CONCURRENT" description:"also isolate circuits that run once per proof (tree pairs are always isolated)"`
	Verify         bool `long:"verify" env:"BRIDGE_PROVER_VERIFY" description:"verify every intermediate proof"`

	Network      string        `long:"network" env:"BRIDGE_PROVER_NETWORK" description:"bitcoin network name" default:"mainnet"`
	RPCURL       string        `long:"rpc-url" env:"BRIDGE_PROVER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser      string        `long:"rpc-user" env:"BRIDGE_PROVER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword  string        `long:"rpc-password" env:"BRIDGE_PROVER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCWorkers   int           `long:"rpc-workers" env:"BRIDGE_PROVER_RPC_WORKERS" description:"concurrent block fetches" default:"8"`
	FetchTimeout time.Duration `long:"fetch-timeout" env:"BRIDGE_PROVER_FETCH_TIMEOUT" description:"deadline for fetching order blocks" default:"2m"`
	WaitForTip   time.Duration `long:"wait-for-tip" env:"BRIDGE_PROVER_WAIT_FOR_TIP" description:"how long to wait for the node to reach the order's last confirmation, fail at once when zero"`
	PollInterval time.Duration `long:"poll-interval" env:"BRIDGE_PROVER_POLL_INTERVAL" description:"node height poll interval while waiting for the tip" default:"30s"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"BRIDGE_PROVER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the proof job ledger, disabled when empty"`
	MetricsAddr   string `long:"metrics-addr" env:"BRIDGE_PROVER_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
	Progress      bool   `long:"progress" env:"BRIDGE_PROVER_PROGRESS" description:"show a progress spinner on stderr"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("bridge prover failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	ctx = scheduler.WithRunID(ctx, runID)

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	req, err := loadRequest(ctx, cfg, logger)
	if err != nil {
		return err
	}

	observers := []scheduler.Observer{metrics.NewScheduler()}
	var recorder *ledger.Recorder
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		recorder, err = ledger.NewRecorder(logger, repo, batcher.Config{})
		if err != nil {
			return err
		}
		recorder.Start(ctx)
		defer recorder.Stop()
		observers = append(observers, recorder)
	}
	if cfg.Progress {
		progress := newProgress()
		defer progress.Finish()
		observers = append(observers, progress)
	}

	svc, err := newService(cfg, logger, recorder, observers)
	if err != nil {
		return err
	}

	started := time.Now()
	proof, err := svc.Prove(ctx, req)
	if err != nil {
		return err
	}
	logger.Info("bridge proof generated", zap.Duration("elapsed", time.Since(started)))
	return writeProof(cfg.Output, proof)
}

func newService(cfg config, logger *zap.Logger, recorder *ledger.Recorder, observers []scheduler.Observer) (*composite.Service, error) {
	root, err := filepath.Abs(cfg.CircuitsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve circuits dir: %w", err)
	}
	gateway := prover.NewObservedGateway(
		prover.NewToolchain(logger, prover.ExecRunner{}, prover.ToolchainConfig{
			NargoBinary: cfg.NargoBinary,
			BBBinary:    cfg.BBBinary,
		}),
		metrics.NewProverGateway(),
		logger,
	)
	workspaces := prover.NewWorkspaces(logger, root, cfg.ScratchDir)
	gate := scheduler.NewGate(logger, scheduler.Config{
		MaxConcurrent: cfg.MaxConcurrent,
		StartRPS:      cfg.StartRPS,
	}, observers...)

	blockCfg := blockproof.CircuitConfig{SafeConcurrent: cfg.SafeConcurrent, Verify: cfg.Verify}
	recursiveTree := prover.NewTemplate(filepath.Join(workspaces.Root(), blockproof.DefaultRecursiveTreeCircuit, prover.MainSource))
	trees := artifact.NewTreeCircuitCache(logger, gateway, workspaces, recursiveTree, artifact.TreeCircuitConfig{
		BaseCircuit:      blockproof.DefaultBaseTreeCircuit,
		RecursiveCircuit: blockproof.DefaultRecursiveTreeCircuit,
		GeneratedDir:     cfg.GeneratedDir,
	})
	treeBuilder, err := blockproof.NewTreeBuilder(
		blockproof.NewPairBuilder(gateway, workspaces, blockCfg, logger),
		blockproof.NewNodeBuilder(gateway, workspaces, trees, recursiveTree, blockCfg, logger),
		gate,
		metrics.NewBlockTree(),
		logger,
	)
	if err != nil {
		return nil, err
	}
	var tree composite.BlockTree = treeBuilder
	if recorder != nil {
		tree = ledger.NewRecordingTree(treeBuilder, recorder)
	}

	sha := prover.NewTemplate(filepath.Join(workspaces.Root(), subproof.DefaultDataHashCircuit, prover.MainSource))
	subproofs := subproof.NewBuilder(gateway, workspaces, artifact.NewVKCache(cfg.VKCacheDir), sha, subproof.Config{
		SafeConcurrent: cfg.SafeConcurrent,
		Verify:         cfg.Verify,
	}, logger)

	return composite.NewService(gateway, workspaces, subproofs, tree, gate, composite.Config{
		SafeConcurrent: cfg.SafeConcurrent,
	}, logger)
}

// loadRequest reads a full request, or an order whose blocks are fetched from the node.
func loadRequest(ctx context.Context, cfg config, logger *zap.Logger) (composite.Request, error) {
	raw, err := os.ReadFile(cfg.Request)
	if err != nil {
		return composite.Request{}, fmt.Errorf("read request: %w", err)
	}
	var shape struct {
		Safe *model.Block `json:"safe_block"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return composite.Request{}, fmt.Errorf("%w: decode request: %v", model.ErrEncoding, err)
	}
	if shape.Safe != nil {
		var req composite.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return composite.Request{}, fmt.Errorf("%w: decode request: %v", model.ErrEncoding, err)
		}
		return req, nil
	}

	var order composite.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return composite.Request{}, fmt.Errorf("%w: decode order: %v", model.ErrEncoding, err)
	}
	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return composite.Request{}, fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source := bitcoin.NewBlockSource(bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network)), cfg.RPCWorkers).
		WithLogger(logger)
	if cfg.WaitForTip > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, cfg.WaitForTip)
		defer cancel()
		if _, err := source.WaitForHeight(waitCtx, order.TipHeight(), cfg.PollInterval); err != nil {
			return composite.Request{}, err
		}
	} else {
		latest, err := source.LatestHeight(ctx)
		if err != nil {
			return composite.Request{}, fmt.Errorf("read node height: %w", err)
		}
		if tip := order.TipHeight(); tip > latest {
			return composite.Request{}, fmt.Errorf("%w: order tip %d is above node height %d", model.ErrNotFound, tip, latest)
		}
	}
	logger.Info("fetching order blocks",
		zap.Uint64("safe_height", order.SafeHeight),
		zap.Uint64("proposed_height", order.ProposedHeight),
		zap.Int("confirmations", order.ConfirmationCount()))
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()
	return order.Resolve(fetchCtx, source)
}

func writeProof(path string, proof model.SolidityProofArtifact) error {
	out, err := json.MarshalIndent(proof, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
