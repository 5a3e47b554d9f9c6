package eth

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/nando-os/ghost-primitives/primitives"
)

func txType(tx *RPCTransaction) uint64 {
	if tx.Type == nil {
		return primitives.LegacyTxType
	}
	return uint64(*tx.Type)
}

// SupportedTxType reports whether the type discriminant of tx can be handled
// by ConvertEssence. Callers facing untrusted nodes check this first, since
// ConvertEssence treats any other discriminant as a broken invariant.
func SupportedTxType(tx *RPCTransaction) error {
	switch t := txType(tx); t {
	case primitives.LegacyTxType, primitives.AccessListTxType, primitives.DynamicFeeTxType:
		return nil
	default:
		return &primitives.UnsupportedTxTypeError{Type: t}
	}
}

// ConvertTransaction converts an RPC transaction into its canonical essence
// and signature. The first missing or out of range field aborts conversion.
func ConvertTransaction(tx *RPCTransaction) (*primitives.Transaction, error) {
	essence, err := ConvertEssence(tx)
	if err != nil {
		return nil, err
	}
	v, err := narrow("v", &tx.V)
	if err != nil {
		return nil, err
	}
	return &primitives.Transaction{
		Essence: essence,
		Signature: primitives.TxSignature{
			V: v,
			R: FromU256(tx.R),
			S: FromU256(tx.S),
		},
	}, nil
}

// ConvertEssence selects the essence variant from the type discriminant and
// validates the fields that variant requires.
//
// It panics with *primitives.UnsupportedTxTypeError if the discriminant is
// not 0, 1 or 2; see SupportedTxType.
func ConvertEssence(tx *RPCTransaction) (primitives.TxEssence, error) {
	switch t := txType(tx); t {
	case primitives.LegacyTxType:
		return legacyEssence(tx)
	case primitives.AccessListTxType:
		return eip2930Essence(tx)
	case primitives.DynamicFeeTxType:
		return eip1559Essence(tx)
	default:
		panic(&primitives.UnsupportedTxTypeError{Type: t})
	}
}

func legacyEssence(tx *RPCTransaction) (*primitives.TxEssenceLegacy, error) {
	var chainID *uint64
	if tx.ChainID != nil {
		id, err := narrow("chain_id", tx.ChainID)
		if err != nil {
			return nil, err
		}
		chainID = &id
	}
	nonce, err := narrow("nonce", &tx.Nonce)
	if err != nil {
		return nil, err
	}
	if tx.GasPrice == nil {
		return nil, &primitives.MissingFieldError{Field: "gas_price"}
	}
	return &primitives.TxEssenceLegacy{
		ChainID:  chainID,
		Nonce:    nonce,
		GasPrice: FromU256(*tx.GasPrice),
		GasLimit: FromU256(tx.Gas),
		To:       ConvertKind(tx.To),
		Value:    FromU256(tx.Value),
		Data:     common.CopyBytes(tx.Input),
	}, nil
}

func eip2930Essence(tx *RPCTransaction) (*primitives.TxEssenceEip2930, error) {
	chainID, err := requiredChainID(tx)
	if err != nil {
		return nil, err
	}
	nonce, err := narrow("nonce", &tx.Nonce)
	if err != nil {
		return nil, err
	}
	if tx.GasPrice == nil {
		return nil, &primitives.MissingFieldError{Field: "gas_price"}
	}
	if tx.AccessList == nil {
		return nil, &primitives.MissingFieldError{Field: "access_list"}
	}
	return &primitives.TxEssenceEip2930{
		ChainID:    chainID,
		Nonce:      nonce,
		GasPrice:   FromU256(*tx.GasPrice),
		GasLimit:   FromU256(tx.Gas),
		To:         ConvertKind(tx.To),
		Value:      FromU256(tx.Value),
		AccessList: ConvertAccessList(*tx.AccessList),
		Data:       common.CopyBytes(tx.Input),
	}, nil
}

func eip1559Essence(tx *RPCTransaction) (*primitives.TxEssenceEip1559, error) {
	chainID, err := requiredChainID(tx)
	if err != nil {
		return nil, err
	}
	nonce, err := narrow("nonce", &tx.Nonce)
	if err != nil {
		return nil, err
	}
	if tx.MaxPriorityFeePerGas == nil {
		return nil, &primitives.MissingFieldError{Field: "max_priority_fee_per_gas"}
	}
	if tx.MaxFeePerGas == nil {
		return nil, &primitives.MissingFieldError{Field: "max_fee_per_gas"}
	}
	if tx.AccessList == nil {
		return nil, &primitives.MissingFieldError{Field: "access_list"}
	}
	return &primitives.TxEssenceEip1559{
		ChainID:              chainID,
		Nonce:                nonce,
		MaxPriorityFeePerGas: FromU256(*tx.MaxPriorityFeePerGas),
		MaxFeePerGas:         FromU256(*tx.MaxFeePerGas),
		GasLimit:             FromU256(tx.Gas),
		To:                   ConvertKind(tx.To),
		Value:                FromU256(tx.Value),
		AccessList:           ConvertAccessList(*tx.AccessList),
		Data:                 common.CopyBytes(tx.Input),
	}, nil
}

func requiredChainID(tx *RPCTransaction) (uint64, error) {
	if tx.ChainID == nil {
		return 0, &primitives.MissingFieldError{Field: "chain_id"}
	}
	return narrow("chain_id", tx.ChainID)
}
