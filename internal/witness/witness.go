// Package witness defines the prover input documents handed to the circuits.
// Field names and their order are part of the circuit ABI.
package witness

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// Document is any prover input.
type Document interface {
	circuitInput()
}

// Header is a block header table.
type Header struct {
	Bits          uint32 `toml:"bits"`
	Height        uint64 `toml:"height"`
	MerkleRoot    []int  `toml:"merkle_root"`
	Nonce         uint32 `toml:"nonce"`
	PrevBlockHash []int  `toml:"prev_block_hash"`
	Timestamp     uint32 `toml:"timestamp"`
	Version       uint32 `toml:"version"`
}

// PairInput feeds the pair verification circuit.
type PairInput struct {
	BlockHash1                  []int    `toml:"block_hash_1"`
	BlockHash2                  []int    `toml:"block_hash_2"`
	LastRetargetBlockHash       []int    `toml:"last_retarget_block_hash"`
	BlockHeight1                uint64   `toml:"block_height_1"`
	BlockHeight2                uint64   `toml:"block_height_2"`
	LastRetargetBlockHeight     uint64   `toml:"last_retarget_block_height"`
	IsBuffer                    bool     `toml:"is_buffer"`
	NextRetargetHash            []int    `toml:"next_retarget_hash"`
	NextRetargetVerificationKey []string `toml:"next_retarget_verification_key"`
	NextRetargetProof           []string `toml:"next_retarget_proof"`
	BlockHeader1                Header   `toml:"block_header_1"`
	BlockHeader2                Header   `toml:"block_header_2"`
	LastRetargetBlock           Header   `toml:"last_retarget_block"`
	NextRetargetHeader          Header   `toml:"next_retarget_header"`
}

// TreeInput feeds the base and recursive block tree circuits.
type TreeInput struct {
	FirstBlockHash           []int    `toml:"first_block_hash"`
	LastBlockHash            []int    `toml:"last_block_hash"`
	FirstBlockHeight         uint64   `toml:"first_block_height"`
	LastBlockHeight          uint64   `toml:"last_block_height"`
	FirstIsBuffer            bool     `toml:"first_is_buffer"`
	LastIsBuffer             bool     `toml:"last_is_buffer"`
	LastRetargetBlockHash    []int    `toml:"last_retarget_block_hash"`
	LastRetargetBlockHeight  uint64   `toml:"last_retarget_block_height"`
	LinkBlockHash            []int    `toml:"link_block_hash"`
	FirstPairVerificationKey []string `toml:"first_pair_verification_key"`
	FirstPairProof           []string `toml:"first_pair_proof"`
	LastPairVerificationKey  []string `toml:"last_pair_verification_key"`
	LastPairProof            []string `toml:"last_pair_proof"`
}

// DataHashInput feeds a fixed-length recursive sha256 circuit.
type DataHashInput struct {
	EncodedData         []string `toml:"encoded_data"`
	ExpectedHashEncoded []string `toml:"expected_hash_encoded"`
}

// LPHashInput feeds the reservation hash circuit.
type LPHashInput struct {
	LPReservationHashEncoded []string   `toml:"lp_reservation_hash_encoded"`
	LPReservationDataEncoded [][]string `toml:"lp_reservation_data_encoded"`
	LPCount                  int        `toml:"lp_count"`
}

// PaymentInput feeds the payment verification circuit.
type PaymentInput struct {
	TxnDataEncoded           []string   `toml:"txn_data_encoded"`
	LPReservationDataEncoded [][]string `toml:"lp_reservation_data_encoded"`
	OrderNonceEncoded        []string   `toml:"order_nonce_encoded"`
	ExpectedPayout           uint64     `toml:"expected_payout"`
	LPCount                  int        `toml:"lp_count"`
	TxnData                  []int      `toml:"txn_data"`
}

// MerkleStep is one entry of the fixed-depth inclusion proof array.
type MerkleStep struct {
	Hash      []int `toml:"hash"`
	Direction bool  `toml:"direction"`
}

// CompositeInput feeds the top-level circuit that verifies every sub-proof.
type CompositeInput struct {
	TxnHashEncoded                   []string     `toml:"txn_hash_encoded"`
	IntermediateHashEncodedAndTxData []string     `toml:"intermediate_hash_encoded_and_txn_data"`
	ProposedMerkleRootEncoded        []string     `toml:"proposed_merkle_root_encoded"`
	LPReservationHashEncoded         []string     `toml:"lp_reservation_hash_encoded"`
	OrderNonceEncoded                []string     `toml:"order_nonce_encoded"`
	ExpectedPayout                   uint64       `toml:"expected_payout"`
	LPCount                          int          `toml:"lp_count"`
	LPReservationDataFlatEncoded     []string     `toml:"lp_reservation_data_flat_encoded"`
	ConfirmationBlockHashEncoded     []string     `toml:"confirmation_block_hash_encoded"`
	ProposedBlockHashEncoded         []string     `toml:"proposed_block_hash_encoded"`
	SafeBlockHashEncoded             []string     `toml:"safe_block_hash_encoded"`
	RetargetBlockHashEncoded         []string     `toml:"retarget_block_hash_encoded"`
	SafeBlockHeight                  uint64       `toml:"safe_block_height"`
	BlockHeightDelta                 uint64       `toml:"block_height_delta"`
	LPHashVerificationKey            []string     `toml:"lp_hash_verification_key"`
	LPHashProof                      []string     `toml:"lp_hash_proof"`
	TxnHashVerificationKey           []string     `toml:"txn_hash_verification_key"`
	TxnHashProof                     []string     `toml:"txn_hash_proof"`
	TxnHashVKHashIndex               int          `toml:"txn_hash_vk_hash_index"`
	PaymentVerificationKey           []string     `toml:"payment_verification_key"`
	PaymentProof                     []string     `toml:"payment_proof"`
	BlockVerificationKey             []string     `toml:"block_verification_key"`
	BlockProof                       []string     `toml:"block_proof"`
	ProposedMerkleProof              []MerkleStep `toml:"proposed_merkle_proof"`
}

func (PairInput) circuitInput()      {}
func (TreeInput) circuitInput()      {}
func (DataHashInput) circuitInput()  {}
func (LPHashInput) circuitInput()    {}
func (PaymentInput) circuitInput()   {}
func (CompositeInput) circuitInput() {}

// Encode renders doc as a Prover.toml document.
func Encode(doc Document) ([]byte, error) {
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: encode prover input: %v", model.ErrEncoding, err)
	}
	return out, nil
}

// HeaderOf converts a block into its header table.
func HeaderOf(b model.Block) (Header, error) {
	merkle, err := fieldenc.ByteArray(b.MerkleRoot)
	if err != nil {
		return Header{}, fmt.Errorf("block %d merkle_root: %w", b.Height, err)
	}
	prev, err := fieldenc.ByteArray(b.PrevBlockHash)
	if err != nil {
		return Header{}, fmt.Errorf("block %d prev_block_hash: %w", b.Height, err)
	}
	return Header{
		Bits:          b.Bits,
		Height:        b.Height,
		MerkleRoot:    merkle,
		Nonce:         b.Nonce,
		PrevBlockHash: prev,
		Timestamp:     b.Timestamp,
		Version:       b.Version,
	}, nil
}
