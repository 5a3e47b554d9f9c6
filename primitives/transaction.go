package primitives

// Transaction type discriminants.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
)

// TransactionKind is either a contract creation or a message call to an
// address. The zero value is Create.
type TransactionKind struct {
	to *B160
}

// Create returns the contract creation kind.
func Create() TransactionKind {
	return TransactionKind{}
}

// Call returns the message call kind destined for to.
func Call(to B160) TransactionKind {
	return TransactionKind{to: &to}
}

func (k TransactionKind) IsCreate() bool {
	return k.to == nil
}

// To returns the call destination, ok is false for Create.
func (k TransactionKind) To() (addr B160, ok bool) {
	if k.to == nil {
		return B160{}, false
	}
	return *k.to, true
}

func (k TransactionKind) String() string {
	if k.to == nil {
		return "create"
	}
	return "call(" + k.to.Hex() + ")"
}

// TxEssence is the signed part of a transaction. It is implemented by
// *TxEssenceLegacy, *TxEssenceEip2930 and *TxEssenceEip1559 only.
type TxEssence interface {
	TxType() uint8
	txEssence()
}

// TxEssenceLegacy is a pre-EIP-2718 transaction. ChainID is nil for
// transactions signed without EIP-155 replay protection.
type TxEssenceLegacy struct {
	ChainID  *uint64
	Nonce    uint64
	GasPrice U256
	GasLimit U256
	To       TransactionKind
	Value    U256
	Data     []byte
}

// TxEssenceEip2930 is an access list transaction.
type TxEssenceEip2930 struct {
	ChainID    uint64
	Nonce      uint64
	GasPrice   U256
	GasLimit   U256
	To         TransactionKind
	Value      U256
	AccessList AccessList
	Data       []byte
}

// TxEssenceEip1559 is a dynamic fee transaction.
type TxEssenceEip1559 struct {
	ChainID              uint64
	Nonce                uint64
	MaxPriorityFeePerGas U256
	MaxFeePerGas         U256
	GasLimit             U256
	To                   TransactionKind
	Value                U256
	AccessList           AccessList
	Data                 []byte
}

func (*TxEssenceLegacy) TxType() uint8  { return LegacyTxType }
func (*TxEssenceEip2930) TxType() uint8 { return AccessListTxType }
func (*TxEssenceEip1559) TxType() uint8 { return DynamicFeeTxType }

func (*TxEssenceLegacy) txEssence()  {}
func (*TxEssenceEip2930) txEssence() {}
func (*TxEssenceEip1559) txEssence() {}

// TxSignature is carried verbatim, it is not checked here.
type TxSignature struct {
	V uint64
	R U256
	S U256
}

type Transaction struct {
	Essence   TxEssence
	Signature TxSignature
}

// Kind returns the destination kind of the essence.
func (tx *Transaction) Kind() TransactionKind {
	switch e := tx.Essence.(type) {
	case *TxEssenceLegacy:
		return e.To
	case *TxEssenceEip2930:
		return e.To
	case *TxEssenceEip1559:
		return e.To
	}
	return Create()
}
