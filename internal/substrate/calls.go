package substrate

import (
	"bytes"
	"fmt"

	"github.com/rayonlabs/fiber/internal/layout"
)

const (
	SubnetInfoAPI  = "SubnetInfoRuntimeApi"
	NeuronInfoAPI  = "NeuronInfoRuntimeApi"
	GetMetagraph   = "get_metagraph"
	GetNeuronsLite = "get_neurons_lite"
)

// RuntimeCall describes the param and result layouts of a runtime API method.
type RuntimeCall struct {
	Params []layout.Type
	Result layout.Type
}

func defaultRuntimeCalls() map[string]RuntimeCall {
	return map[string]RuntimeCall{
		callName(SubnetInfoAPI, GetMetagraph): {
			Params: []layout.Type{layout.U16},
			Result: layout.Option(layout.Metagraph),
		},
		callName(NeuronInfoAPI, GetNeuronsLite): {
			Params: []layout.Type{layout.U16},
			Result: layout.Vec(layout.NeuronInfoLite),
		},
	}
}

// callName is the state_call method name of api.method.
func callName(api, method string) string {
	return api + "_" + method
}

func (c RuntimeCall) encodeParams(params []any) ([]byte, error) {
	args, err := encodeArgs(c.Params, params)
	if err != nil {
		return nil, err
	}
	return bytes.Join(args, nil), nil
}

// encodeArgs encodes each param with its layout. Nil params are rejected
// rather than encoded as zero values.
func encodeArgs(layouts []layout.Type, params []any) ([][]byte, error) {
	if len(params) != len(layouts) {
		return nil, fmt.Errorf("expected %d params, got %d", len(layouts), len(params))
	}
	args := make([][]byte, len(layouts))
	for i, t := range layouts {
		if params[i] == nil {
			return nil, fmt.Errorf("param %d is nil", i)
		}
		b, err := layout.Encode(t, params[i])
		if err != nil {
			return nil, fmt.Errorf("failed to encode param %d: %w", i, err)
		}
		args[i] = b
	}
	return args, nil
}
