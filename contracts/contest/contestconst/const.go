/*
Package contestconst holds constants shared by the Contest contract and the
code working with it off-chain: limits, status codes and the messages the
contract aborts with.
*/
package contestconst

const (
	// WinnersCount is the exact number of winners (and payouts) every
	// resolution takes.
	WinnersCount = 10

	// FeeDivisor defines the platform fee: pool / FeeDivisor, truncated.
	FeeDivisor = 10

	// MaxCreators limits the number of authorized creators.
	MaxCreators = 100

	// MaxParticipants limits the number of entries of a single contest.
	MaxParticipants = 1000

	// MaxAmount is the largest amount the ledger accepts: fees, pools and
	// payouts are kept within the unsigned 64-bit range of GAS fractions
	// that fits a signed 64-bit integer.
	MaxAmount = 1<<63 - 1
)

// Record tags used to derive storage keys of events and contests.
const (
	EventTag   = "event"
	ContestTag = "contest"
)

// Contest statuses.
const (
	StatusOpen = iota
	StatusResolved
	StatusCancelled
)

// Event statuses.
const (
	EventUpcoming = iota
	EventLive
	EventOpen
	EventCancelled
	EventSuspended
)

// Messages the contract panics with.
const (
	ErrUnauthorized          = "unauthorized access"
	ErrOverflow              = "arithmetic overflow"
	ErrInvalidWinnersCount   = "invalid number of winners"
	ErrInsufficientPool      = "insufficient pool balance"
	ErrInvalidContestStatus  = "invalid contest status"
	ErrMissingWinnerAccount  = "missing winner account"
	ErrIncorrectAmount       = "incorrect entry fee amount"
	ErrCapacityExceeded      = "capacity exceeded"
	ErrAlreadyInitialized    = "already initialized"
	ErrNotInitialized        = "registry is not initialized"
	ErrEventExists           = "event already exists"
	ErrEventNotFound         = "event not found"
	ErrContestExists         = "contest already exists"
	ErrContestNotFound       = "contest not found"
	ErrInvalidIdentifier     = "invalid identifier"
	ErrInvalidEntryData      = "invalid entry data"
	ErrOnlyGAS               = "only GAS is accepted"
	ErrCustodyTransferFailed = "failed to transfer custody"
)
