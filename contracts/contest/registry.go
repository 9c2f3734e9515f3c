package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// InitializeAuth sets the registry administrator. It can be invoked only once
// and only with the witness of admin.
//
// It produces AuthInitialized notification.
func InitializeAuth(admin interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckWitnessWithMessage(admin, contestconst.ErrUnauthorized)

	initRegistry(ctx, admin)
}

func initRegistry(ctx storage.Context, admin interop.Hash160) {
	if storage.Get(ctx, adminKey) != nil {
		panic(contestconst.ErrAlreadyInitialized)
	}

	if !common.IsValidHash(admin) {
		panic(contestconst.ErrInvalidIdentifier)
	}

	storage.Put(ctx, adminKey, admin)

	runtime.Notify("AuthInitialized", admin)
}

// Admin returns the registry administrator.
func Admin() interop.Hash160 {
	return getAdmin(storage.GetReadOnlyContext())
}

// SetCreatorAuthorization grants (if grant is true) or revokes the right of
// creator to create and resolve contests. It can be invoked only by the
// registry administrator.
//
// Both directions are idempotent: if creator already has the requested state,
// nothing is changed and no notification is produced. Otherwise
// CreatorAuthorizationUpdated or CreatorAuthorizationRemoved notification is
// produced.
func SetCreatorAuthorization(creator interop.Hash160, grant bool) {
	ctx := storage.GetContext()

	common.CheckWitnessWithMessage(getAdmin(ctx), contestconst.ErrUnauthorized)

	if !common.IsValidHash(creator) {
		panic(contestconst.ErrInvalidIdentifier)
	}

	key := append([]byte{creatorPrefix}, creator...)
	exists := storage.Get(ctx, key) != nil
	if grant == exists {
		return
	}

	cnt := creatorCount(ctx)

	if grant {
		if cnt >= contestconst.MaxCreators {
			panic(contestconst.ErrCapacityExceeded)
		}

		storage.Put(ctx, key, []byte{1})
		storage.Put(ctx, creatorCountKey, cnt+1)
		runtime.Notify("CreatorAuthorizationUpdated", creator, true)

		return
	}

	storage.Delete(ctx, key)
	storage.Put(ctx, creatorCountKey, cnt-1)
	runtime.Notify("CreatorAuthorizationRemoved", creator, false)
}

// IsAuthorized checks whether identity may create and resolve contests.
func IsAuthorized(identity interop.Hash160) bool {
	return isAuthorized(storage.GetReadOnlyContext(), identity)
}

// Creators returns an iterator over authorized creator script hashes. The
// order is not defined.
func Creators() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{creatorPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

func getAdmin(ctx storage.Context) interop.Hash160 {
	admin := storage.Get(ctx, adminKey)
	if admin == nil {
		panic(contestconst.ErrNotInitialized)
	}

	return admin.(interop.Hash160)
}

func isAuthorized(ctx storage.Context, identity interop.Hash160) bool {
	if !common.IsValidHash(identity) {
		return false
	}

	return storage.Get(ctx, append([]byte{creatorPrefix}, identity...)) != nil
}

func creatorCount(ctx storage.Context) int {
	cnt := storage.Get(ctx, creatorCountKey)
	if cnt == nil {
		return 0
	}

	return cnt.(int)
}

// checkCreator panics unless caller witnessed the invocation and is an
// authorized creator.
func checkCreator(ctx storage.Context, caller interop.Hash160) {
	common.CheckWitnessWithMessage(caller, contestconst.ErrUnauthorized)

	if !isAuthorized(ctx, caller) {
		panic(contestconst.ErrUnauthorized)
	}
}
