package subproof

import (
	"crypto/sha256"
	"fmt"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/reservation"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// PaymentRequest describes the payment the bridge expects to find in a transaction.
type PaymentRequest struct {
	// TxData is the transaction serialized without witness data, hex encoded.
	TxData         string
	LPs            []model.LiquidityProvider
	OrderNonce     string
	ExpectedPayout uint64
}

// DataHashWitness builds the sha256 circuit input for data.
func DataHashWitness(data []byte) (witness.DataHashInput, error) {
	encoded, err := fieldenc.Pad(fieldenc.ChunkBytes(data), model.MaxEncodedChunks, "0x00")
	if err != nil {
		return witness.DataHashInput{}, fmt.Errorf("encode data: %w", err)
	}
	sum := sha256.Sum256(data)
	return witness.DataHashInput{
		EncodedData:         encoded,
		ExpectedHashEncoded: fieldenc.ChunkBytes(sum[:]),
	}, nil
}

// LPHashWitness builds the reservation hash circuit input.
func LPHashWitness(lps []model.LiquidityProvider) (witness.LPHashInput, error) {
	encoded, err := reservation.EncodeAll(lps)
	if err != nil {
		return witness.LPHashInput{}, err
	}
	hash, err := reservation.Hash(lps)
	if err != nil {
		return witness.LPHashInput{}, err
	}
	hashEncoded, err := fieldenc.Chunk(hash)
	if err != nil {
		return witness.LPHashInput{}, err
	}
	return witness.LPHashInput{
		LPReservationHashEncoded: hashEncoded,
		LPReservationDataEncoded: encoded,
		LPCount:                  len(lps),
	}, nil
}

// PaymentWitness builds the payment circuit input.
func PaymentWitness(req PaymentRequest) (witness.PaymentInput, error) {
	data, err := fieldenc.HexToBytes(req.TxData)
	if err != nil {
		return witness.PaymentInput{}, fmt.Errorf("transaction data: %w", err)
	}
	if len(data) > model.MaxDataBytes {
		return witness.PaymentInput{}, fmt.Errorf("%w: transaction is %d bytes, max %d", model.ErrCapacity, len(data), model.MaxDataBytes)
	}
	nonce, err := fieldenc.HexToBytes(req.OrderNonce)
	if err != nil {
		return witness.PaymentInput{}, fmt.Errorf("order nonce: %w", err)
	}
	lpData, err := reservation.EncodeAll(req.LPs)
	if err != nil {
		return witness.PaymentInput{}, err
	}

	txChunks, err := fieldenc.ChunkPadded(req.TxData)
	if err != nil {
		return witness.PaymentInput{}, fmt.Errorf("transaction data: %w", err)
	}
	txEncoded, err := fieldenc.Pad(txChunks, model.MaxEncodedChunks, model.ZeroField)
	if err != nil {
		return witness.PaymentInput{}, fmt.Errorf("encode transaction: %w", err)
	}
	txBytes, err := fieldenc.Pad(fieldenc.Bytes(data), model.MaxDataBytes, 0)
	if err != nil {
		return witness.PaymentInput{}, fmt.Errorf("transaction bytes: %w", err)
	}

	return witness.PaymentInput{
		TxnDataEncoded:           txEncoded,
		LPReservationDataEncoded: lpData,
		OrderNonceEncoded:        fieldenc.ChunkBytes(nonce),
		ExpectedPayout:           req.ExpectedPayout,
		LPCount:                  len(req.LPs),
		TxnData:                  txBytes,
	}, nil
}
