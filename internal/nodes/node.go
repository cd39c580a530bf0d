// Package nodes fetches the node registry of a subnet and decodes it into Node
// records.
package nodes

import "fmt"

// Node is one registered participant of a subnet at a given block.
type Node struct {
	Hotkey      string  `json:"hotkey"`
	Coldkey     string  `json:"coldkey"`
	NodeID      int     `json:"node_id"`
	Netuid      int     `json:"netuid"`
	Incentive   float64 `json:"incentive"`
	AlphaStake  float64 `json:"alpha_stake"`
	TaoStake    float64 `json:"tao_stake"`
	Stake       float64 `json:"stake"`
	Trust       float64 `json:"trust"`
	VTrust      float64 `json:"vtrust"`
	LastUpdated float64 `json:"last_updated"`
	IP          string  `json:"ip"`
	IPType      int     `json:"ip_type"`
	Port        int     `json:"port"`
	Protocol    int     `json:"protocol"`
}

// Schema selects the runtime call a batch comes from.
type Schema int

const (
	// SchemaMetagraph is SubnetInfoRuntimeApi.get_metagraph: one object of
	// parallel per-uid arrays.
	SchemaMetagraph Schema = iota
	// SchemaNeuronsLite is NeuronInfoRuntimeApi.get_neurons_lite: one object
	// per neuron.
	SchemaNeuronsLite
)

func (s Schema) String() string {
	switch s {
	case SchemaMetagraph:
		return "metagraph"
	case SchemaNeuronsLite:
		return "neurons-lite"
	default:
		return fmt.Sprintf("schema(%d)", int(s))
	}
}

// ParseSchema is the inverse of Schema.String.
func ParseSchema(name string) (Schema, error) {
	switch name {
	case "metagraph", "":
		return SchemaMetagraph, nil
	case "neurons-lite":
		return SchemaNeuronsLite, nil
	default:
		return 0, fmt.Errorf("unknown schema %q", name)
	}
}

// DecodeError reports a registry entry that could not be turned into a Node.
// Index is -1 for failures outside a single entry.
type DecodeError struct {
	Schema Schema
	Index  int
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode %s: %s: %v", e.Schema, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s entry %d: %s: %v", e.Schema, e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
