package composite

// Default top-level circuit project and the name bb gives its proof.
const (
	DefaultCircuit = "giga"
	DefaultProject = "giga"
)

// Config locates the top-level circuit relative to the circuits root.
type Config struct {
	Circuit string
	Project string
	// SafeConcurrent proves in an isolated workspace copy.
	SafeConcurrent bool
}

func (c Config) withDefaults() Config {
	if c.Circuit == "" {
		c.Circuit = DefaultCircuit
	}
	if c.Project == "" {
		c.Project = DefaultProject
	}
	return c
}
