package model

// Fixed dimensions shared with the circuits. Changing any of these breaks circuit binding.
const (
	RetargetInterval = 2016

	ChunkBytes             = 31
	MaxEncodedChunks       = 226
	MaxDataBytes           = MaxEncodedChunks * ChunkBytes
	MaxLiquidityProviders  = 175
	ChunksPerProvider      = 4
	MaxInnerBlocks         = 24
	ConfirmationBlockDelta = 5
	MerkleProofDepth       = 20

	VerificationKeyFields = 114
	ProofFields           = 93

	PairPublicInputs    = 100
	TreePublicInputs    = 101
	LPHashPublicInputs  = 703
	PaymentPublicInputs = 930

	// VKBucketWidth is the number of byte lengths per cached data-hash key file.
	VKBucketWidth = 1000
)

// ZeroField is the numeral used to fill unused field slots.
const ZeroField = "0x0"
