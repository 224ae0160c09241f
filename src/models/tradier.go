package models

import (
	"encoding/json"
	"fmt"
)

// TradierGreeksDTO is the nested greeks block returned with each contract
// when the chains endpoint is called with greeks=true. Tradier omits the
// whole block for illiquid contracts, so the parent holds a pointer.
type TradierGreeksDTO struct {
	Delta     *float64 `json:"delta"`
	Gamma     *float64 `json:"gamma"`
	Theta     *float64 `json:"theta"`
	Vega      *float64 `json:"vega"`
	Rho       *float64 `json:"rho"`
	Phi       *float64 `json:"phi"`
	BidIV     *float64 `json:"bid_iv"`
	MidIV     *float64 `json:"mid_iv"`
	AskIV     *float64 `json:"ask_iv"`
	SmvVol    *float64 `json:"smv_vol"`
	UpdatedAt string   `json:"updated_at"`
}

// TradierOptionDTO is one contract record from the options chains endpoint.
// Nullable upstream fields are pointers: a missing bid must stay
// distinguishable from a zero bid.
type TradierOptionDTO struct {
	Symbol           string            `json:"symbol"`
	Description      string            `json:"description"`
	Exch             string            `json:"exch"`
	Type             string            `json:"type"`
	Last             *float64          `json:"last"`
	Change           *float64          `json:"change"`
	Volume           int               `json:"volume"`
	Open             *float64          `json:"open"`
	High             *float64          `json:"high"`
	Low              *float64          `json:"low"`
	Close            *float64          `json:"close"`
	Bid              *float64          `json:"bid"`
	Ask              *float64          `json:"ask"`
	Underlying       string            `json:"underlying"`
	Strike           float64           `json:"strike"`
	ChangePercentage *float64          `json:"change_percentage"`
	AverageVolume    int               `json:"average_volume"`
	LastVolume       int               `json:"last_volume"`
	TradeDate        int64             `json:"trade_date"`
	PrevClose        *float64          `json:"prevclose"`
	BidSize          int               `json:"bidsize"`
	BidDate          int64             `json:"bid_date"`
	AskSize          int               `json:"asksize"`
	AskDate          int64             `json:"ask_date"`
	OpenInterest     int               `json:"open_interest"`
	ContractSize     int               `json:"contract_size"`
	ExpirationDate   string            `json:"expiration_date"`
	ExpirationType   string            `json:"expiration_type"`
	OptionType       string            `json:"option_type"`
	RootSymbol       string            `json:"root_symbol"`
	Greeks           *TradierGreeksDTO `json:"greeks"`
}

// TradierOptionList decodes Tradier's `options.option` field, which is a
// list for a normal chain but collapses to a single object when only one
// contract exists.
type TradierOptionList []*TradierOptionDTO

func (l *TradierOptionList) UnmarshalJSON(data []byte) error {
	var list []*TradierOptionDTO
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single TradierOptionDTO
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("TradierOptionList: expected object or array: %w", err)
	}

	*l = TradierOptionList{&single}
	return nil
}

type TradierOptionsChainResponse struct {
	Options struct {
		Option TradierOptionList `json:"option"`
	} `json:"options"`
}

// TradierDateList decodes Tradier's `expirations.date` field, which is a
// bare string when a symbol has exactly one expiration.
type TradierDateList []string

func (l *TradierDateList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("TradierDateList: expected string or array: %w", err)
	}

	*l = TradierDateList{single}
	return nil
}

// TradierExpirationsResponse carries the expirations for a symbol. A null
// `expirations` field is Tradier's signal for an unrecognized symbol.
type TradierExpirationsResponse struct {
	Expirations *struct {
		Date TradierDateList `json:"date"`
	} `json:"expirations"`
}

type TradierQuoteDTO struct {
	Symbol           string   `json:"symbol"`
	Description      string   `json:"description"`
	Exch             string   `json:"exch"`
	Type             string   `json:"type"`
	Last             *float64 `json:"last"`
	Change           *float64 `json:"change"`
	Volume           int      `json:"volume"`
	Open             *float64 `json:"open"`
	High             *float64 `json:"high"`
	Low              *float64 `json:"low"`
	Close            *float64 `json:"close"`
	Bid              float64  `json:"bid"`
	Ask              float64  `json:"ask"`
	ChangePercentage *float64 `json:"change_percentage"`
	AverageVolume    int      `json:"average_volume"`
	LastVolume       int      `json:"last_volume"`
	TradeDate        int64    `json:"trade_date"`
	PrevClose        *float64 `json:"prevclose"`
	Week52High       float64  `json:"week_52_high"`
	Week52Low        float64  `json:"week_52_low"`
	BidSize          int      `json:"bidsize"`
	BidDate          int64    `json:"bid_date"`
	AskSize          int      `json:"asksize"`
	AskDate          int64    `json:"ask_date"`
	RootSymbols      string   `json:"root_symbols"`
}

// TradierQuotesResponse is the quotes envelope. Exactly one of Quote or
// UnmatchedSymbols is populated; UnmatchedSymbols is kept raw because
// Tradier returns either a list or an object there.
type TradierQuotesResponse struct {
	Quotes struct {
		Quote            *TradierQuoteDTO `json:"quote"`
		UnmatchedSymbols json.RawMessage  `json:"unmatched_symbols"`
	} `json:"quotes"`
}
