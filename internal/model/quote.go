package model

type Quote struct {
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	TrailingPE       float64 `json:"trailing_pe"`
	PriceToBook      float64 `json:"price_to_book"`
}
