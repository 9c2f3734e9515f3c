package contest

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Names of the notifications emitted by the contract.
const (
	AuthInitializedEventName             = "AuthInitialized"
	CreatorAuthorizationUpdatedEventName = "CreatorAuthorizationUpdated"
	CreatorAuthorizationRemovedEventName = "CreatorAuthorizationRemoved"
	EventCreatedEventName                = "EventCreated"
	ContestCreatedEventName              = "ContestCreated"
	ContestEnteredEventName              = "ContestEntered"
	ContestResolvedEventName             = "ContestResolved"
	ContestCancelledEventName            = "ContestCancelled"
)

// eventsFromApplicationLog calls f for every event with the given name from
// the provided [result.ApplicationLog].
func eventsFromApplicationLog(log *result.ApplicationLog, name string, f func(*stackitem.Array) error) error {
	if log == nil {
		return errors.New("nil application log")
	}

	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			err := f(e.Item)
			if err != nil {
				return fmt.Errorf("failed to deserialize %s from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
		}
	}

	return nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

// AuthInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuthInitialized" name from the provided [result.ApplicationLog].
func AuthInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuthInitializedEvent, error) {
	var res []*AuthInitializedEvent
	err := eventsFromApplicationLog(log, AuthInitializedEventName, func(item *stackitem.Array) error {
		event := new(AuthInitializedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuthInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *AuthInitializedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	e.Admin, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	return nil
}

// CreatorAuthorizationEventsFromApplicationLog retrieves a set of all emitted
// "CreatorAuthorizationUpdated" and "CreatorAuthorizationRemoved" events from
// the provided [result.ApplicationLog]. Updated events go first.
func CreatorAuthorizationEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreatorAuthorizationEvent, error) {
	var res []*CreatorAuthorizationEvent
	f := func(item *stackitem.Array) error {
		event := new(CreatorAuthorizationEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	}

	for _, name := range []string{CreatorAuthorizationUpdatedEventName, CreatorAuthorizationRemovedEventName} {
		if err := eventsFromApplicationLog(log, name, f); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreatorAuthorizationEvent or
// returns an error if it's not possible to do to so.
func (e *CreatorAuthorizationEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Creator, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	e.Authorized, err = arr[1].TryBool()
	if err != nil {
		return fmt.Errorf("field Authorized: %w", err)
	}

	return nil
}

// EventCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "EventCreated" name from the provided [result.ApplicationLog].
func EventCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EventCreatedEvent, error) {
	var res []*EventCreatedEvent
	err := eventsFromApplicationLog(log, EventCreatedEventName, func(item *stackitem.Array) error {
		event := new(EventCreatedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EventCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *EventCreatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Authority, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	e.EventID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	e.Name, err = itemToString(arr[2])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// ContestCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContestCreated" name from the provided [result.ApplicationLog].
func ContestCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContestCreatedEvent, error) {
	var res []*ContestCreatedEvent
	err := eventsFromApplicationLog(log, ContestCreatedEventName, func(item *stackitem.Array) error {
		event := new(ContestCreatedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContestCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ContestCreatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 6)
	if err != nil {
		return err
	}

	e.Authority, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	e.ContestID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ContestID: %w", err)
	}

	e.EventID, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	e.EntryFee, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntryFee: %w", err)
	}

	e.Name, err = itemToString(arr[4])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	e.FeeReceiver, err = itemToUint160(arr[5])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	return nil
}

// ContestEnteredEventsFromApplicationLog retrieves a set of all emitted events
// with "ContestEntered" name from the provided [result.ApplicationLog].
func ContestEnteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContestEnteredEvent, error) {
	var res []*ContestEnteredEvent
	err := eventsFromApplicationLog(log, ContestEnteredEventName, func(item *stackitem.Array) error {
		event := new(ContestEnteredEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContestEnteredEvent or
// returns an error if it's not possible to do to so.
func (e *ContestEnteredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.Authority, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	e.ContestID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ContestID: %w", err)
	}

	e.Participant, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	e.Amount, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ContestResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContestResolved" name from the provided [result.ApplicationLog].
func ContestResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContestResolvedEvent, error) {
	var res []*ContestResolvedEvent
	err := eventsFromApplicationLog(log, ContestResolvedEventName, func(item *stackitem.Array) error {
		event := new(ContestResolvedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContestResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *ContestResolvedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 6)
	if err != nil {
		return err
	}

	e.Authority, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	e.ContestID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ContestID: %w", err)
	}

	e.WinnersCount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field WinnersCount: %w", err)
	}

	e.TotalPayout, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPayout: %w", err)
	}

	e.FeeReceiver, err = itemToUint160(arr[4])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	e.Fee, err = arr[5].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// ContestCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "ContestCancelled" name from the provided [result.ApplicationLog].
func ContestCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContestCancelledEvent, error) {
	var res []*ContestCancelledEvent
	err := eventsFromApplicationLog(log, ContestCancelledEventName, func(item *stackitem.Array) error {
		event := new(ContestCancelledEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContestCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *ContestCancelledEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Authority, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	e.ContestID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ContestID: %w", err)
	}

	e.Refunded, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refunded: %w", err)
	}

	return nil
}
