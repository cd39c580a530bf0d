package substrate

import "github.com/rayonlabs/fiber/internal/layout"

const (
	SystemModule    = "System"
	SubtensorModule = "SubtensorModule"

	Number        = "Number"
	TotalNetworks = "TotalNetworks"
	SubnetworkN   = "SubnetworkN"
)

// StorageItem describes the map key and value layouts of a storage entry.
// Plain values have no Params.
type StorageItem struct {
	Params []layout.Type
	Value  layout.Type
}

func defaultStorageItems() map[string]StorageItem {
	return map[string]StorageItem{
		storageName(SystemModule, Number): {
			Value: layout.U32,
		},
		storageName(SubtensorModule, TotalNetworks): {
			Value: layout.U16,
		},
		storageName(SubtensorModule, SubnetworkN): {
			Params: []layout.Type{layout.U16},
			Value:  layout.U16,
		},
	}
}

func storageName(module, method string) string {
	return module + "." + method
}
