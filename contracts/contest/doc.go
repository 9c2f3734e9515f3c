/*
Package contest implements Contest contract which holds contest entry fees in
escrow and pays them out when a contest is resolved.

The contract keeps a registry of creators authorized by a single administrator.
Creators register events and contests inside them. Participants enter an open
contest by transferring exactly its entry fee in GAS to the contract with the
contest authority and ID as transfer data. The GAS received stays in the
contract custody and is accounted in the contest pool.

A creator resolves the contest by naming exactly ten winners with their payouts.
A tenth of the pool (truncated) goes to the contest fee receiver, payouts are
taken from the rest. A contest can also be cancelled, then every entry is
refunded.

# Contract notifications

AuthInitialized notification. This notification is produced once, when the
registry administrator is set.

	AuthInitialized:
	  - name: admin
	    type: Hash160

CreatorAuthorizationUpdated and CreatorAuthorizationRemoved notifications.
These notifications are produced only when the creator set actually changes.

	CreatorAuthorizationUpdated:
	  - name: creator
	    type: Hash160
	  - name: authorized
	    type: Boolean

	CreatorAuthorizationRemoved:
	  - name: creator
	    type: Hash160
	  - name: authorized
	    type: Boolean

EventCreated notification.

	EventCreated:
	  - name: authority
	    type: Hash160
	  - name: eventID
	    type: Integer
	  - name: name
	    type: String

ContestCreated notification.

	ContestCreated:
	  - name: authority
	    type: Hash160
	  - name: contestID
	    type: Integer
	  - name: eventID
	    type: Integer
	  - name: entryFee
	    type: Integer
	  - name: name
	    type: String
	  - name: feeReceiver
	    type: Hash160

ContestEntered notification. This notification is produced for every accepted
entry payment.

	ContestEntered:
	  - name: authority
	    type: Hash160
	  - name: contestID
	    type: Integer
	  - name: participant
	    type: Hash160
	  - name: amount
	    type: Integer

ContestResolved notification. It contains the sum of winner payouts and the
platform fee sent to the fee receiver.

	ContestResolved:
	  - name: authority
	    type: Hash160
	  - name: contestID
	    type: Integer
	  - name: winnersCount
	    type: Integer
	  - name: totalPayout
	    type: Integer
	  - name: feeReceiver
	    type: Hash160
	  - name: fee
	    type: Integer

ContestCancelled notification.

	ContestCancelled:
	  - name: authority
	    type: Hash160
	  - name: contestID
	    type: Integer
	  - name: refunded
	    type: Integer
*/
package contest
