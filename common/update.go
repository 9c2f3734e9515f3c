package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrUpdateAccess is thrown by CheckUpdateAccess when the committee has not
// signed the invocation.
const ErrUpdateAccess = "only committee can update contract"

// CommitteeAddress returns the `M = N/2+1` multisignature account of the
// current Neo committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	return contract.CreateMultisigAccount(len(committee)/2+1, committee)
}

// CheckUpdateAccess panics with ErrUpdateAccess unless the invocation is
// witnessed by the committee account.
func CheckUpdateAccess() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		panic(ErrUpdateAccess)
	}
}
