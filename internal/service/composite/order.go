package composite

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// Order names the blocks of a Request by height instead of carrying them.
type Order struct {
	TxData         string                    `json:"txn_data_no_segwit_hex"`
	LPs            []model.LiquidityProvider `json:"lp_reservations"`
	OrderNonce     string                    `json:"order_nonce_hex"`
	ExpectedPayout uint64                    `json:"expected_payout"`

	SafeHeight     uint64 `json:"safe_block_height"`
	ProposedHeight uint64 `json:"proposed_block_height"`
	Confirmations  int    `json:"confirmations,omitempty"`
}

// ConfirmationCount is the number of blocks required on top of the proposed one.
// Zero means model.ConfirmationBlockDelta.
func (o Order) ConfirmationCount() int {
	if o.Confirmations == 0 {
		return model.ConfirmationBlockDelta
	}
	return o.Confirmations
}

// TipHeight is the height of the last confirmation block.
func (o Order) TipHeight() uint64 {
	return o.ProposedHeight + uint64(max(o.ConfirmationCount(), 0))
}

// Resolve fetches the blocks o refers to and returns the full Request.
// The retarget block is the one opening the safe block's period.
func (o Order) Resolve(ctx context.Context, src BlockSource) (Request, error) {
	if o.ProposedHeight <= o.SafeHeight {
		return Request{}, fmt.Errorf("%w: proposed block %d is not above safe block %d",
			model.ErrInvalidLength, o.ProposedHeight, o.SafeHeight)
	}
	if inner := o.ProposedHeight - o.SafeHeight - 1; inner > model.MaxInnerBlocks {
		return Request{}, fmt.Errorf("%w: %d inner blocks, max %d", model.ErrCapacity, inner, model.MaxInnerBlocks)
	}
	if o.ConfirmationCount() < 1 {
		return Request{}, fmt.Errorf("%w: at least one confirmation block is required", model.ErrInvalidLength)
	}

	tip := o.TipHeight()
	chain, err := src.FetchRange(ctx, o.SafeHeight, tip)
	if err != nil {
		return Request{}, fmt.Errorf("fetch blocks %d..%d: %w", o.SafeHeight, tip, err)
	}
	if uint64(len(chain)) != tip-o.SafeHeight+1 {
		return Request{}, fmt.Errorf("%w: fetched %d blocks for %d..%d", model.ErrInvalidLength, len(chain), o.SafeHeight, tip)
	}
	retarget, err := src.FetchBlock(ctx, model.RetargetHeight(o.SafeHeight))
	if err != nil {
		return Request{}, fmt.Errorf("fetch retarget block: %w", err)
	}

	proposed := o.ProposedHeight - o.SafeHeight
	return Request{
		TxData:         o.TxData,
		LPs:            o.LPs,
		OrderNonce:     o.OrderNonce,
		ExpectedPayout: o.ExpectedPayout,
		Retarget:       retarget,
		Safe:           chain[0],
		Inner:          chain[1:proposed],
		Proposed:       chain[proposed],
		Confirmations:  chain[proposed+1:],
	}, nil
}
