package primitives

import "github.com/ethereum/go-ethereum/common/hexutil"

const (
	B64Length   = 8
	B160Length  = 20
	B256Length  = 32
	BloomLength = 256
)

// B64 is an 8 byte sequence, used for the block nonce.
type B64 [B64Length]byte

// B160 is a 20 byte sequence, used for addresses.
type B160 [B160Length]byte

// B256 is a 32 byte sequence, used for hashes, roots and storage keys.
type B256 [B256Length]byte

// Bloom is the 2048-bit log bloom filter of a block.
type Bloom [BloomLength]byte

func (b B64) Bytes() []byte  { return b[:] }
func (b B64) Hex() string    { return hexutil.Encode(b[:]) }
func (b B64) String() string { return b.Hex() }

func (b B160) Bytes() []byte  { return b[:] }
func (b B160) Hex() string    { return hexutil.Encode(b[:]) }
func (b B160) String() string { return b.Hex() }

func (b B256) Bytes() []byte  { return b[:] }
func (b B256) Hex() string    { return hexutil.Encode(b[:]) }
func (b B256) String() string { return b.Hex() }

func (b Bloom) Bytes() []byte  { return b[:] }
func (b Bloom) Hex() string    { return hexutil.Encode(b[:]) }
func (b Bloom) String() string { return b.Hex() }
