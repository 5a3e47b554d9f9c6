package eth

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/nando-os/ghost-primitives/primitives"
)

// FromU256 reinterprets a JSON-RPC quantity as the canonical U256.
func FromU256(v hexutil.U256) primitives.U256 {
	return uint256.Int(v)
}

func FromAddress(a common.Address) primitives.B160 {
	return primitives.B160(a)
}

func FromHash(h common.Hash) primitives.B256 {
	return primitives.B256(h)
}

func FromBloom(b types.Bloom) primitives.Bloom {
	return primitives.Bloom(b)
}

func FromNonce(n types.BlockNonce) primitives.B64 {
	return primitives.B64(n)
}

// ConvertAccessList maps an access list keeping both item and storage key
// order.
func ConvertAccessList(list types.AccessList) primitives.AccessList {
	out := make(primitives.AccessList, 0, len(list))
	for _, item := range list {
		keys := make([]primitives.B256, len(item.StorageKeys))
		for i, key := range item.StorageKeys {
			keys[i] = FromHash(key)
		}
		out = append(out, primitives.AccessListItem{
			Address:     FromAddress(item.Address),
			StorageKeys: keys,
		})
	}
	return out
}

// ConvertKind derives the destination kind from the "to" field.
func ConvertKind(to *common.Address) primitives.TransactionKind {
	if to == nil {
		return primitives.Create()
	}
	return primitives.Call(FromAddress(*to))
}

// narrow runs a JSON-RPC quantity through the shared overflow check.
func narrow(field string, v *hexutil.U256) (uint64, error) {
	return primitives.NarrowU64(field, (*uint256.Int)(v))
}

// narrowUint64 lifts a 64-bit quantity through the same check as narrow so
// every count in a record is validated the same way.
func narrowUint64(field string, v hexutil.Uint64) (uint64, error) {
	return primitives.NarrowU64(field, primitives.U256FromUint64(uint64(v)))
}
