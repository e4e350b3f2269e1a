package model

import "math/big"

// LiquidityProvider is a single reservation of an LP's liquidity.
type LiquidityProvider struct {
	Amount           *big.Int `json:"amount"`
	BTCExchangeRate  uint64   `json:"btc_exchange_rate"`
	LockingScriptHex string   `json:"locking_script_hex"`
}
