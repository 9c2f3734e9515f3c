package gasrecv

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Payment struct {
	From   interop.Hash160
	Amount int
	Data   any
}

const (
	refuseKey  = "refuse"
	paymentKey = "payment"
)

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if storage.Get(ctx, refuseKey) != nil {
		panic("payment refused")
	}
	storage.Put(ctx, paymentKey, std.Serialize(Payment{
		From:   from,
		Amount: amount,
		Data:   data,
	}))
}

func SetRefuse(refuse bool) {
	ctx := storage.GetContext()
	if refuse {
		storage.Put(ctx, refuseKey, []byte{1})
		return
	}
	storage.Delete(ctx, refuseKey)
}

func LastPayment() Payment {
	val := storage.Get(storage.GetReadOnlyContext(), paymentKey)
	if val == nil {
		return Payment{}
	}
	return std.Deserialize(val.([]byte)).(Payment)
}
