package domain

type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	DurationMin int32  `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
}
