package model

const (
	StatusDiscounted = "DISCOUNTED"
	StatusFairOrHigh = "FAIR/HIGH"
)

type AnalysisJob struct {
	ChatId         int64  `json:"chat_id"`
	Industry       string `json:"industry,omitempty"`
	OnlyDiscounted bool   `json:"only_discounted"`
}

type ReportRow struct {
	Symbol      string
	CompanyName string
	Price       float64
	TrailingPE  float64
	PriceToBook float64
	DiscountPct float64
	Status      string
}

type Report struct {
	ChatId   int64  `json:"chat_id"`
	Filename string `json:"filename"`
	Caption  string `json:"caption"`
	Data     []byte `json:"data"`
}
