package domain

// BoundingBox is a rectangle in document units. The origin is bottom-left and y grows upward.
type BoundingBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Fragment is a unit of extracted text together with its page and position.
type Fragment struct {
	Page int         `json:"page"`
	Box  BoundingBox `json:"box"`
	Text string      `json:"text"`
}

// ColumnLayout holds the x-coordinates inferred for the statement table columns.
// HasCredit and HasDebit are false when no fragment of that kind was seen,
// in which case the corresponding right edge is meaningless.
type ColumnLayout struct {
	BookingDateX     float64 `json:"booking_date_x"`
	ValutaDateX      float64 `json:"valuta_date_x"`
	CreditRightEdgeX float64 `json:"credit_right_edge_x"`
	DebitRightEdgeX  float64 `json:"debit_right_edge_x"`
	HasDates         bool    `json:"has_dates"`
	HasCredit        bool    `json:"has_credit"`
	HasDebit         bool    `json:"has_debit"`
}
