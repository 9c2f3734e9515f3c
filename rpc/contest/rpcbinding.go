// Package contest contains RPC wrappers for Contest contract.
package contest

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Contest is a contract-specific contest.Contest type used by its methods.
type Contest struct {
	Authority        util.Uint160
	EventID          *big.Int
	ContestID        *big.Int
	Name             string
	EntryFee         *big.Int
	FeeReceiver      util.Uint160
	Status           *big.Int
	TotalPool        *big.Int
	ParticipantCount *big.Int
}

// Event is a contract-specific contest.Event type used by its methods.
type Event struct {
	Authority util.Uint160
	EventID   *big.Int
	Name      string
	Status    *big.Int
}

// AuthInitializedEvent represents "AuthInitialized" event emitted by the contract.
type AuthInitializedEvent struct {
	Admin util.Uint160
}

// CreatorAuthorizationEvent represents "CreatorAuthorizationUpdated" and
// "CreatorAuthorizationRemoved" events emitted by the contract.
type CreatorAuthorizationEvent struct {
	Creator    util.Uint160
	Authorized bool
}

// EventCreatedEvent represents "EventCreated" event emitted by the contract.
type EventCreatedEvent struct {
	Authority util.Uint160
	EventID   *big.Int
	Name      string
}

// ContestCreatedEvent represents "ContestCreated" event emitted by the contract.
type ContestCreatedEvent struct {
	Authority   util.Uint160
	ContestID   *big.Int
	EventID     *big.Int
	EntryFee    *big.Int
	Name        string
	FeeReceiver util.Uint160
}

// ContestEnteredEvent represents "ContestEntered" event emitted by the contract.
type ContestEnteredEvent struct {
	Authority   util.Uint160
	ContestID   *big.Int
	Participant util.Uint160
	Amount      *big.Int
}

// ContestResolvedEvent represents "ContestResolved" event emitted by the contract.
type ContestResolvedEvent struct {
	Authority    util.Uint160
	ContestID    *big.Int
	WinnersCount *big.Int
	TotalPayout  *big.Int
	FeeReceiver  util.Uint160
	Fee          *big.Int
}

// ContestCancelledEvent represents "ContestCancelled" event emitted by the contract.
type ContestCancelledEvent struct {
	Authority util.Uint160
	ContestID *big.Int
	Refunded  *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// IsAuthorized invokes `isAuthorized` method of contract.
func (c *ContractReader) IsAuthorized(identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorized", identity))
}

// Creators invokes `creators` method of contract.
func (c *ContractReader) Creators() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "creators"))
}

// CreatorsExpanded is similar to Creators (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) CreatorsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "creators", _numOfIteratorItems))
}

// GetEvent invokes `getEvent` method of contract.
func (c *ContractReader) GetEvent(authority util.Uint160, eventID *big.Int) (*Event, error) {
	return itemToEvent(unwrap.Item(c.invoker.Call(c.hash, "getEvent", authority, eventID)))
}

// GetContest invokes `getContest` method of contract.
func (c *ContractReader) GetContest(authority util.Uint160, contestID *big.Int) (*Contest, error) {
	return itemToContest(unwrap.Item(c.invoker.Call(c.hash, "getContest", authority, contestID)))
}

// Participants invokes `participants` method of contract.
func (c *ContractReader) Participants(authority util.Uint160, contestID *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "participants", authority, contestID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// InitializeAuth creates a transaction invoking `initializeAuth` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitializeAuth(admin util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initializeAuth", admin)
}

// InitializeAuthTransaction creates a transaction invoking `initializeAuth` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeAuthTransaction(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initializeAuth", admin)
}

// InitializeAuthUnsigned creates a transaction invoking `initializeAuth` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeAuthUnsigned(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initializeAuth", nil, admin)
}

// SetCreatorAuthorization creates a transaction invoking `setCreatorAuthorization` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCreatorAuthorization(creator util.Uint160, grant bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCreatorAuthorization", creator, grant)
}

// SetCreatorAuthorizationTransaction creates a transaction invoking `setCreatorAuthorization` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCreatorAuthorizationTransaction(creator util.Uint160, grant bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCreatorAuthorization", creator, grant)
}

// SetCreatorAuthorizationUnsigned creates a transaction invoking `setCreatorAuthorization` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCreatorAuthorizationUnsigned(creator util.Uint160, grant bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCreatorAuthorization", nil, creator, grant)
}

// CreateEvent creates a transaction invoking `createEvent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateEvent(authority util.Uint160, eventID *big.Int, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createEvent", authority, eventID, name)
}

// CreateEventTransaction creates a transaction invoking `createEvent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateEventTransaction(authority util.Uint160, eventID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createEvent", authority, eventID, name)
}

// CreateEventUnsigned creates a transaction invoking `createEvent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateEventUnsigned(authority util.Uint160, eventID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createEvent", nil, authority, eventID, name)
}

// CreateContest creates a transaction invoking `createContest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateContest(authority util.Uint160, eventID *big.Int, contestID *big.Int, entryFee *big.Int, name string, feeReceiver *util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createContest", authority, eventID, contestID, entryFee, name, optionalHash(feeReceiver))
}

// CreateContestTransaction creates a transaction invoking `createContest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateContestTransaction(authority util.Uint160, eventID *big.Int, contestID *big.Int, entryFee *big.Int, name string, feeReceiver *util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createContest", authority, eventID, contestID, entryFee, name, optionalHash(feeReceiver))
}

// CreateContestUnsigned creates a transaction invoking `createContest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateContestUnsigned(authority util.Uint160, eventID *big.Int, contestID *big.Int, entryFee *big.Int, name string, feeReceiver *util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createContest", nil, authority, eventID, contestID, entryFee, name, optionalHash(feeReceiver))
}

// ResolveContest creates a transaction invoking `resolveContest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveContest(caller util.Uint160, authority util.Uint160, contestID *big.Int, winners []util.Uint160, payouts []*big.Int, targets []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveContest", caller, authority, contestID, winners, payouts, targets)
}

// ResolveContestTransaction creates a transaction invoking `resolveContest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveContestTransaction(caller util.Uint160, authority util.Uint160, contestID *big.Int, winners []util.Uint160, payouts []*big.Int, targets []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveContest", caller, authority, contestID, winners, payouts, targets)
}

// ResolveContestUnsigned creates a transaction invoking `resolveContest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveContestUnsigned(caller util.Uint160, authority util.Uint160, contestID *big.Int, winners []util.Uint160, payouts []*big.Int, targets []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveContest", nil, caller, authority, contestID, winners, payouts, targets)
}

// CancelContest creates a transaction invoking `cancelContest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelContest(caller util.Uint160, authority util.Uint160, contestID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelContest", caller, authority, contestID)
}

// CancelContestTransaction creates a transaction invoking `cancelContest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelContestTransaction(caller util.Uint160, authority util.Uint160, contestID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelContest", caller, authority, contestID)
}

// CancelContestUnsigned creates a transaction invoking `cancelContest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelContestUnsigned(caller util.Uint160, authority util.Uint160, contestID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelContest", nil, caller, authority, contestID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// optionalHash turns a missing fee receiver into a null contract argument.
func optionalHash(h *util.Uint160) any {
	if h == nil {
		return nil
	}
	return *h
}

// itemToContest converts stack item into *Contest.
func itemToContest(item stackitem.Item, err error) (*Contest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Contest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Contest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Contest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.EventID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	index++
	res.ContestID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ContestID: %w", err)
	}

	index++
	res.Name, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.EntryFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EntryFee: %w", err)
	}

	index++
	res.FeeReceiver, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.TotalPool, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPool: %w", err)
	}

	index++
	res.ParticipantCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ParticipantCount: %w", err)
	}

	return nil
}

// itemToEvent converts stack item into *Event.
func itemToEvent(item stackitem.Item, err error) (*Event, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Event)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Event from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Event) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.EventID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EventID: %w", err)
	}

	index++
	res.Name, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
