package models

import (
	"strconv"
)

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// Option is the display-ready projection of one contract. Numeric fields
// are pre-formatted strings; fields derived from a missing bid or ask are
// nil so the rendering layer can tell "no quote" apart from zero.
type Option struct {
	Symbol       string  `json:"symbol"`
	Direction    string  `json:"direction"`
	Date         string  `json:"date"`
	DateStr      string  `json:"date_str"`
	Strike       string  `json:"strike"`
	Volume       string  `json:"volume"`
	OpenInterest string  `json:"open_interest"`
	Bid          *string `json:"bid"`
	Ask          *string `json:"ask"`
	Price        *string `json:"price"`
	Spread       *string `json:"spread"`
	Delta        *string `json:"delta"`
	Gamma        *string `json:"gamma"`
	Theta        *string `json:"theta"`
	Vega         *string `json:"vega"`
	Rho          *string `json:"rho"`
	Phi          *string `json:"phi"`
	MidIV        *string `json:"mid_iv"`
}

// OptionChain holds the aligned call and put rows for one expiration date.
// Both slices share the strike axis of the whole response; a nil entry
// means no contract exists at that strike.
type OptionChain struct {
	Calls []*Option `json:"calls"`
	Puts  []*Option `json:"puts"`
}

// NewOptionFromDTO projects an upstream contract record onto the display
// format for the given expiration date.
func NewOptionFromDTO(dto *TradierOptionDTO, date string, dateStr string) *Option {
	option := &Option{
		Symbol:       dto.Symbol,
		Direction:    dto.OptionType,
		Date:         date,
		DateStr:      dateStr,
		Strike:       FormatStrike(dto.Strike),
		Volume:       strconv.Itoa(dto.Volume),
		OpenInterest: strconv.Itoa(dto.OpenInterest),
		Bid:          formatOptionalFixed(dto.Bid, 2),
		Ask:          formatOptionalFixed(dto.Ask, 2),
	}

	// Before the first trade of the day Tradier reports open as null and
	// the day volume resets; last_volume is the meaningful figure then.
	if dto.Open == nil {
		option.Volume = strconv.Itoa(dto.LastVolume)
	}

	if dto.Bid != nil && dto.Ask != nil {
		mid := (*dto.Ask + *dto.Bid) / 2
		spread := *dto.Ask - *dto.Bid
		option.Price = formatFixed(mid, 2)
		option.Spread = formatFixed(spread, 2)
	}

	if dto.Greeks != nil {
		option.Delta = formatOptionalFixed(dto.Greeks.Delta, 6)
		option.Gamma = formatOptionalFixed(dto.Greeks.Gamma, 6)
		option.Theta = formatOptionalFixed(dto.Greeks.Theta, 6)
		option.Vega = formatOptionalFixed(dto.Greeks.Vega, 6)
		option.Rho = formatOptionalFixed(dto.Greeks.Rho, 6)
		option.Phi = formatOptionalFixed(dto.Greeks.Phi, 6)
		option.MidIV = formatOptionalFixed(dto.Greeks.MidIV, 6)
	}

	return option
}

// FormatStrike renders a strike without trailing zeros, e.g. 150 -> "150"
// and 152.5 -> "152.5". Lookup keys and the strike axis both use this form.
func FormatStrike(strike float64) string {
	return strconv.FormatFloat(strike, 'f', -1, 64)
}

func formatFixed(value float64, prec int) *string {
	s := strconv.FormatFloat(value, 'f', prec, 64)
	return &s
}

func formatOptionalFixed(value *float64, prec int) *string {
	if value == nil {
		return nil
	}

	return formatFixed(*value, prec)
}
