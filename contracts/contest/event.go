package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// Event is a named container contests of the same authority refer to.
type Event struct {
	Authority interop.Hash160
	EventID   int
	Name      string
	Status    int
}

// CreateEvent registers a new event of the authority. Authority must witness
// the invocation and be an authorized creator. Event IDs are unique per
// authority.
//
// It produces EventCreated notification.
func CreateEvent(authority interop.Hash160, eventID int, name string) {
	ctx := storage.GetContext()

	checkCreator(ctx, authority)
	checkID(eventID)

	key := eventKey(authority, eventID)
	if storage.Get(ctx, key) != nil {
		panic(contestconst.ErrEventExists)
	}

	common.SetSerialized(ctx, key, Event{
		Authority: authority,
		EventID:   eventID,
		Name:      name,
		Status:    contestconst.EventUpcoming,
	})

	runtime.Notify("EventCreated", authority, eventID, name)
}

// GetEvent returns the event of the authority with the given ID.
func GetEvent(authority interop.Hash160, eventID int) Event {
	data := common.GetSerialized(storage.GetReadOnlyContext(), eventKey(authority, eventID))
	if data == nil {
		panic(contestconst.ErrEventNotFound)
	}

	return data.(Event)
}

func eventKey(authority interop.Hash160, eventID int) []byte {
	return append([]byte{eventPrefix}, common.RecordKey(contestconst.EventTag, authority, eventID)...)
}

func checkID(id int) {
	if id < 0 {
		panic(contestconst.ErrInvalidIdentifier)
	}
}
