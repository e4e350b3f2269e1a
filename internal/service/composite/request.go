package composite

import (
	"fmt"

	"github.com/goodnatureofminers/bridgeprover/internal/artifact"
	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/reservation"
)

// Request is everything needed to prove one bridge order.
type Request struct {
	// TxData is the payment transaction serialized without witness data, hex encoded.
	TxData         string                    `json:"txn_data_no_segwit_hex"`
	LPs            []model.LiquidityProvider `json:"lp_reservations"`
	OrderNonce     string                    `json:"order_nonce_hex"`
	ExpectedPayout uint64                    `json:"expected_payout"`

	Retarget      model.Block   `json:"retarget_block"`
	Safe          model.Block   `json:"safe_block"`
	Inner         []model.Block `json:"inner_blocks"`
	Proposed      model.Block   `json:"proposed_block"`
	Confirmations []model.Block `json:"confirmation_blocks"`
}

// Chain returns the proved header chain: safe, inner, proposed, then confirmations.
func (r Request) Chain() []model.Block {
	chain := make([]model.Block, 0, len(r.Inner)+len(r.Confirmations)+2)
	chain = append(chain, r.Safe)
	chain = append(chain, r.Inner...)
	chain = append(chain, r.Proposed)
	return append(chain, r.Confirmations...)
}

// Tip returns the last confirmation block.
func (r Request) Tip() model.Block {
	return r.Confirmations[len(r.Confirmations)-1]
}

// Validate checks the shape of r before any proof is started.
func (r Request) Validate() error {
	data, err := fieldenc.HexToBytes(r.TxData)
	if err != nil {
		return fmt.Errorf("transaction data: %w", err)
	}
	if err := artifact.ValidateByteLength(len(data)); err != nil {
		return fmt.Errorf("transaction data: %w", err)
	}
	if _, err := fieldenc.HexToBytes(r.OrderNonce); err != nil {
		return fmt.Errorf("order nonce: %w", err)
	}
	if _, err := reservation.EncodeAll(r.LPs); err != nil {
		return err
	}
	if len(r.Inner) > model.MaxInnerBlocks {
		return fmt.Errorf("%w: %d inner blocks, max %d", model.ErrCapacity, len(r.Inner), model.MaxInnerBlocks)
	}
	if len(r.Confirmations) == 0 {
		return fmt.Errorf("%w: at least one confirmation block is required", model.ErrInvalidLength)
	}
	chain := r.Chain()
	for i, b := range chain {
		if err := b.Validate(); err != nil {
			return err
		}
		if i > 0 && b.Height != chain[i-1].Height+1 {
			return fmt.Errorf("%w: block %d does not follow block %d", model.ErrInvalidLength, b.Height, chain[i-1].Height)
		}
	}
	return r.Retarget.Validate()
}
