package subproof

// Default circuit projects, relative to the circuits root.
const (
	DefaultDataHashCircuit = "recursive_sha"
	DefaultLPHashCircuit   = "lp_hash_verification"
	DefaultPaymentCircuit  = "payment_verification"

	// proxyKeyFile is the raw key of the inner sha256 circuit, read by the data hash circuit.
	proxyKeyFile = "public_input_proxy_vk"
	// publicInputCountField is the index of the public input count among key fields.
	publicInputCountField = 4
)

// Config locates the sub-proof circuits relative to the circuits root.
type Config struct {
	DataHashCircuit string
	LPHashCircuit   string
	PaymentCircuit  string
	// SafeConcurrent proves the reservation and payment circuits in isolated workspaces.
	SafeConcurrent bool
	Verify         bool
}

func (c Config) withDefaults() Config {
	if c.DataHashCircuit == "" {
		c.DataHashCircuit = DefaultDataHashCircuit
	}
	if c.LPHashCircuit == "" {
		c.LPHashCircuit = DefaultLPHashCircuit
	}
	if c.PaymentCircuit == "" {
		c.PaymentCircuit = DefaultPaymentCircuit
	}
	return c
}
