package layout

// Layouts of the subtensor runtime API types read by this module. They track the
// finney runtime; a field added upstream shows up as ErrTrailingBytes or a
// decode error rather than silently shifted values.

// AxonInfo is the served endpoint of a neuron.
var AxonInfo = Struct("AxonInfo",
	Field{"block", U64},
	Field{"version", U32},
	Field{"ip", U128},
	Field{"port", U16},
	Field{"ip_type", U8},
	Field{"protocol", U8},
	Field{"placeholder1", U8},
	Field{"placeholder2", U8},
)

// PrometheusInfo is the served metrics endpoint of a neuron.
var PrometheusInfo = Struct("PrometheusInfo",
	Field{"block", U64},
	Field{"version", U32},
	Field{"ip", U128},
	Field{"port", U16},
	Field{"ip_type", U8},
)

// NeuronInfoLite is one entry of NeuronInfoRuntimeApi.get_neurons_lite.
var NeuronInfoLite = Struct("NeuronInfoLite",
	Field{"hotkey", AccountID},
	Field{"coldkey", AccountID},
	Field{"uid", Compact},
	Field{"netuid", Compact},
	Field{"active", Bool},
	Field{"axon_info", AxonInfo},
	Field{"prometheus_info", PrometheusInfo},
	Field{"stake", Vec(Tuple(AccountID, Compact))},
	Field{"rank", Compact},
	Field{"emission", Compact},
	Field{"incentive", Compact},
	Field{"consensus", Compact},
	Field{"trust", Compact},
	Field{"validator_trust", Compact},
	Field{"dividends", Compact},
	Field{"last_update", Compact},
	Field{"validator_permit", Bool},
	Field{"pruning_score", Compact},
)

var SubnetIdentity = Struct("SubnetIdentity",
	Field{"subnet_name", Bytes},
	Field{"github_repo", Bytes},
	Field{"subnet_contact", Bytes},
	Field{"subnet_url", Bytes},
	Field{"discord", Bytes},
	Field{"description", Bytes},
	Field{"additional", Bytes},
)

var ChainIdentity = Struct("ChainIdentity",
	Field{"name", Bytes},
	Field{"url", Bytes},
	Field{"github_repo", Bytes},
	Field{"image", Bytes},
	Field{"discord", Bytes},
	Field{"description", Bytes},
	Field{"additional", Bytes},
)

// Metagraph is the value of SubnetInfoRuntimeApi.get_metagraph. Per-neuron data
// is held in parallel vectors indexed by uid.
var Metagraph = Struct("Metagraph",
	Field{"netuid", Compact},
	Field{"name", Vec(Compact)},
	Field{"symbol", Vec(Compact)},
	Field{"identity", Option(SubnetIdentity)},
	Field{"network_registered_at", Compact},

	Field{"owner_hotkey", AccountID},
	Field{"owner_coldkey", AccountID},

	Field{"block", Compact},
	Field{"tempo", Compact},
	Field{"last_step", Compact},
	Field{"blocks_since_last_step", Compact},

	Field{"subnet_emission", Compact},
	Field{"alpha_in", Compact},
	Field{"alpha_out", Compact},
	Field{"tao_in", Compact},
	Field{"alpha_out_emission", Compact},
	Field{"alpha_in_emission", Compact},
	Field{"tao_in_emission", Compact},
	Field{"pending_alpha_emission", Compact},
	Field{"pending_root_emission", Compact},
	Field{"subnet_volume", Compact},
	Field{"moving_price", U128},

	Field{"rho", Compact},
	Field{"kappa", Compact},

	Field{"min_allowed_weights", Compact},
	Field{"max_weights_limit", Compact},
	Field{"weights_version", Compact},
	Field{"weights_rate_limit", Compact},
	Field{"activity_cutoff", Compact},
	Field{"max_validators", Compact},

	Field{"num_uids", Compact},
	Field{"max_uids", Compact},
	Field{"burn", Compact},
	Field{"difficulty", Compact},
	Field{"registration_allowed", Bool},
	Field{"pow_registration_allowed", Bool},
	Field{"immunity_period", Compact},
	Field{"min_difficulty", Compact},
	Field{"max_difficulty", Compact},
	Field{"min_burn", Compact},
	Field{"max_burn", Compact},
	Field{"adjustment_alpha", Compact},
	Field{"adjustment_interval", Compact},
	Field{"target_regs_per_interval", Compact},
	Field{"max_regs_per_block", Compact},
	Field{"serving_rate_limit", Compact},

	Field{"commit_reveal_weights_enabled", Bool},
	Field{"commit_reveal_period", Compact},

	Field{"liquid_alpha_enabled", Bool},
	Field{"alpha_high", Compact},
	Field{"alpha_low", Compact},
	Field{"bonds_moving_avg", Compact},

	Field{"hotkeys", Vec(AccountID)},
	Field{"coldkeys", Vec(AccountID)},
	Field{"identities", Vec(Option(ChainIdentity))},
	Field{"axons", Vec(AxonInfo)},
	Field{"active", Vec(Bool)},
	Field{"validator_permit", Vec(Bool)},
	Field{"pruning_score", Vec(Compact)},
	Field{"last_update", Vec(Compact)},
	Field{"emission", Vec(Compact)},
	Field{"dividends", Vec(Compact)},
	Field{"incentives", Vec(Compact)},
	Field{"consensus", Vec(Compact)},
	Field{"trust", Vec(Compact)},
	Field{"rank", Vec(Compact)},
	Field{"block_at_registration", Vec(Compact)},
	Field{"alpha_stake", Vec(Compact)},
	Field{"tao_stake", Vec(Compact)},
	Field{"total_stake", Vec(Compact)},

	Field{"tao_dividends_per_hotkey", Vec(Tuple(AccountID, Compact))},
	Field{"alpha_dividends_per_hotkey", Vec(Tuple(AccountID, Compact))},
)
