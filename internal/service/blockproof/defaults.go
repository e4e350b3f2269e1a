package blockproof

// Default circuit projects, relative to the circuits root.
const (
	DefaultPairCircuit          = "block_verification/pair_block_verification"
	DefaultBaseTreeCircuit      = "block_verification/base_block_tree"
	DefaultRecursiveTreeCircuit = "block_verification/recursive_block_tree"
)

// CircuitConfig locates the block circuits relative to the circuits root.
type CircuitConfig struct {
	PairCircuit          string
	BaseTreeCircuit      string
	RecursiveTreeCircuit string
	// SafeConcurrent isolates pairs built outside a tree. Tree pairs are always isolated.
	SafeConcurrent bool
	// Verify checks every proof before it is used.
	Verify bool
}

func (c CircuitConfig) withDefaults() CircuitConfig {
	if c.PairCircuit == "" {
		c.PairCircuit = DefaultPairCircuit
	}
	if c.BaseTreeCircuit == "" {
		c.BaseTreeCircuit = DefaultBaseTreeCircuit
	}
	if c.RecursiveTreeCircuit == "" {
		c.RecursiveTreeCircuit = DefaultRecursiveTreeCircuit
	}
	return c
}
