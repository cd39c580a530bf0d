package nodes

import (
	"errors"
	"fmt"

	"github.com/rayonlabs/fiber/internal/chain"
	"github.com/rayonlabs/fiber/internal/metrics"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// ErrNoMetagraph is returned when the chain has no metagraph for a netuid.
var ErrNoMetagraph = errors.New("no metagraph for netuid")

// raoScale is applied inline on the metagraph path, which carries rao amounts
// in parallel arrays.
const raoScale = 1e-9

// Batch is a raw runtime-call result tagged with the schema that produced it.
type Batch struct {
	Schema Schema
	Value  any
}

// Decode turns a batch into nodes in batch order.
//
// The two schemas fail differently. A metagraph is a consistent snapshot of the
// whole subnet, so any bad entry fails the batch. Neuron-lite entries are
// independent, so a bad entry is dropped and the rest are returned.
func Decode(batch Batch, ss58Format uint16, logger *zap.Logger) ([]Node, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		nodes []Node
		err   error
	)
	switch batch.Schema {
	case SchemaMetagraph:
		nodes, err = decodeMetagraph(batch.Value, ss58Format)
	case SchemaNeuronsLite:
		nodes, err = decodeNeuronsLite(batch.Value, ss58Format, logger)
	default:
		return nil, fmt.Errorf("unknown schema %s", batch.Schema)
	}
	if err != nil {
		return nil, err
	}
	metrics.NodesDecoded.WithLabelValues(batch.Schema.String()).Add(float64(len(nodes)))
	return nodes, nil
}

// metagraphArrays are the per-uid arrays read from a metagraph, besides the
// hotkeys that define its length.
var metagraphArrays = []string{
	"coldkeys", "incentives", "alpha_stake", "tao_stake", "total_stake",
	"trust", "consensus", "last_update", "axons",
}

func decodeMetagraph(value any, ss58Format uint16) ([]Node, error) {
	batchErr := func(field string, err error) error {
		return &DecodeError{Schema: SchemaMetagraph, Index: -1, Field: field, Err: err}
	}

	if value == nil {
		return nil, batchErr("metagraph", ErrNoMetagraph)
	}
	mg, err := asMap(value)
	if err != nil {
		return nil, batchErr("metagraph", err)
	}

	rawNetuid, err := field(mg, "netuid")
	if err != nil {
		return nil, batchErr("netuid", err)
	}
	netuid, err := toInt(rawNetuid)
	if err != nil {
		return nil, batchErr("netuid", err)
	}

	rawHotkeys, err := field(mg, "hotkeys")
	if err != nil {
		return nil, batchErr("hotkeys", err)
	}
	hotkeys, err := asSlice(rawHotkeys)
	if err != nil {
		return nil, batchErr("hotkeys", err)
	}

	arrays := make(map[string][]any, len(metagraphArrays))
	for _, name := range metagraphArrays {
		raw, err := field(mg, name)
		if err != nil {
			return nil, batchErr(name, err)
		}
		arr, err := asSlice(raw)
		if err != nil {
			return nil, batchErr(name, err)
		}
		arrays[name] = arr
	}

	nodes := make([]Node, 0, len(hotkeys))
	for uid := range hotkeys {
		node, err := decodeMetagraphEntry(uid, netuid, hotkeys, arrays, ss58Format)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeMetagraphEntry(uid, netuid int, hotkeys []any, arrays map[string][]any, ss58Format uint16) (Node, error) {
	entryErr := func(field string, err error) (Node, error) {
		return Node{}, &DecodeError{Schema: SchemaMetagraph, Index: uid, Field: field, Err: err}
	}
	get := func(name string) (any, error) {
		return at(arrays[name], uid)
	}
	getFloat := func(name string) (float64, error) {
		v, err := get(name)
		if err != nil {
			return 0, err
		}
		return toNonNegativeFloat(v)
	}

	node := Node{NodeID: uid, Netuid: netuid}
	var err error

	if node.Hotkey, err = chain.DecodeAddress(hotkeys[uid], ss58Format); err != nil {
		return entryErr("hotkeys", err)
	}
	rawColdkey, err := get("coldkeys")
	if err != nil {
		return entryErr("coldkeys", err)
	}
	if node.Coldkey, err = chain.DecodeAddress(rawColdkey, ss58Format); err != nil {
		return entryErr("coldkeys", err)
	}

	if node.Incentive, err = getFloat("incentives"); err != nil {
		return entryErr("incentives", err)
	}
	if node.Trust, err = getFloat("trust"); err != nil {
		return entryErr("trust", err)
	}
	if node.VTrust, err = getFloat("consensus"); err != nil {
		return entryErr("consensus", err)
	}
	if node.LastUpdated, err = getFloat("last_update"); err != nil {
		return entryErr("last_update", err)
	}

	stakes := []struct {
		name string
		dst  *float64
	}{
		{"alpha_stake", &node.AlphaStake},
		{"tao_stake", &node.TaoStake},
		{"total_stake", &node.Stake},
	}
	for _, s := range stakes {
		rao, err := getFloat(s.name)
		if err != nil {
			return entryErr(s.name, err)
		}
		*s.dst = rao * raoScale
	}

	rawAxon, err := get("axons")
	if err != nil {
		return entryErr("axons", err)
	}
	axon, err := asMap(rawAxon)
	if err != nil {
		return entryErr("axons", err)
	}
	ip, err := field(axon, "ip")
	if err != nil {
		return entryErr("axons.ip", err)
	}
	node.IP = toString(ip)
	if err := readEndpoint(axon, &node); err != nil {
		return entryErr("axons", err)
	}

	return node, nil
}

func decodeNeuronsLite(value any, ss58Format uint16, logger *zap.Logger) ([]Node, error) {
	entries, err := asSlice(value)
	if err != nil {
		return nil, &DecodeError{Schema: SchemaNeuronsLite, Index: -1, Field: "neurons", Err: err}
	}

	nodes := make([]Node, 0, len(entries))
	for i, entry := range entries {
		node, err := decodeNeuronLite(i, entry, ss58Format)
		if err != nil {
			logger.Debug("Skipping malformed neuron entry", zap.Int("index", i), zap.Error(err))
			metrics.EntriesSkipped.WithLabelValues(SchemaNeuronsLite.String()).Inc()
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeNeuronLite(index int, entry any, ss58Format uint16) (Node, error) {
	entryErr := func(field string, err error) (Node, error) {
		return Node{}, &DecodeError{Schema: SchemaNeuronsLite, Index: index, Field: field, Err: err}
	}

	neuron, err := asMap(entry)
	if err != nil {
		return entryErr("entry", err)
	}
	get := func(key string) (any, error) {
		return field(neuron, key)
	}

	var node Node

	for _, key := range []struct {
		name string
		dst  *string
	}{
		{"hotkey", &node.Hotkey},
		{"coldkey", &node.Coldkey},
	} {
		raw, err := get(key.name)
		if err != nil {
			return entryErr(key.name, err)
		}
		if *key.dst, err = chain.DecodeAddress(raw, ss58Format); err != nil {
			return entryErr(key.name, err)
		}
	}

	for _, key := range []struct {
		name string
		dst  *int
	}{
		{"uid", &node.NodeID},
		{"netuid", &node.Netuid},
	} {
		raw, err := get(key.name)
		if err != nil {
			return entryErr(key.name, err)
		}
		if *key.dst, err = toInt(raw); err != nil {
			return entryErr(key.name, err)
		}
	}

	rawStake, err := get("stake")
	if err != nil {
		return entryErr("stake", err)
	}
	if node.Stake, err = sumStake(rawStake); err != nil {
		return entryErr("stake", err)
	}

	rawIncentive, err := get("incentive")
	if err != nil {
		return entryErr("incentive", err)
	}
	if node.Incentive, err = toNonNegativeFloat(rawIncentive); err != nil {
		return entryErr("incentive", err)
	}

	for _, key := range []struct {
		name string
		dst  *float64
	}{
		{"trust", &node.Trust},
		{"validator_trust", &node.VTrust},
	} {
		raw, err := get(key.name)
		if err != nil {
			return entryErr(key.name, err)
		}
		fraction, err := toUint16(raw)
		if err != nil {
			return entryErr(key.name, err)
		}
		*key.dst = chain.NormalizeU16(fraction)
	}

	rawLastUpdate, err := get("last_update")
	if err != nil {
		return entryErr("last_update", err)
	}
	if node.LastUpdated, err = toFloat(rawLastUpdate); err != nil {
		return entryErr("last_update", err)
	}

	rawAxon, err := get("axon_info")
	if err != nil {
		return entryErr("axon_info", err)
	}
	axon, err := asMap(rawAxon)
	if err != nil {
		return entryErr("axon_info", err)
	}
	rawIP, err := field(axon, "ip")
	if err != nil {
		return entryErr("axon_info.ip", err)
	}
	packed, err := toBigInt(rawIP)
	if err != nil {
		return entryErr("axon_info.ip", err)
	}
	if node.IP, err = chain.IPFromInt(packed); err != nil {
		return entryErr("axon_info.ip", err)
	}
	if err := readEndpoint(axon, &node); err != nil {
		return entryErr("axon_info", err)
	}

	return node, nil
}

// sumStake totals a list of (coldkey, rao) pairs in display units.
func sumStake(raw any) (float64, error) {
	pairs, err := asSlice(raw)
	if err != nil {
		return 0, err
	}
	amounts := make([]float64, len(pairs))
	for i, p := range pairs {
		pair, err := asSlice(p)
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
		if len(pair) != 2 {
			return 0, fmt.Errorf("pair %d: expected (coldkey, amount), got %d elements", i, len(pair))
		}
		rao, err := toInt64(pair[1])
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
		if rao < 0 {
			return 0, fmt.Errorf("pair %d: %w: %d", i, errNegative, rao)
		}
		amounts[i] = chain.RaoToTao(rao)
	}
	return floats.Sum(amounts), nil
}

// readEndpoint fills the endpoint fields shared by both axon shapes.
func readEndpoint(axon map[string]any, node *Node) error {
	for _, key := range []struct {
		name string
		dst  *int
	}{
		{"ip_type", &node.IPType},
		{"port", &node.Port},
		{"protocol", &node.Protocol},
	} {
		raw, err := field(axon, key.name)
		if err != nil {
			return fmt.Errorf("%s: %w", key.name, err)
		}
		if *key.dst, err = toInt(raw); err != nil {
			return fmt.Errorf("%s: %w", key.name, err)
		}
	}
	return nil
}
