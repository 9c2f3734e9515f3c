package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
)

const (
	// Singleton records use prefixes no record family starts with, so
	// prefix scans never meet them.
	adminKey        = "A"
	creatorCountKey = "N"

	creatorPrefix     = 'a'
	eventPrefix       = 'e'
	contestPrefix     = 'c'
	participantPrefix = 'p'
)

// _deploy optionally initializes the registry with the admin passed as the
// first element of data.
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	if data != nil {
		args := data.([]any)
		if len(args) > 0 && args[0] != nil {
			initRegistry(ctx, args[0].(interop.Hash160))
		}
	}

	runtime.Log("contest contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.CheckUpdateAccess()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("contest contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
