package model

import "time"

type Stock struct {
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	Isin        string    `json:"isin"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
