package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

type MonthlySummaryDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	NoShows   int `json:"no_shows"`
	Upcoming  int `json:"upcoming"`

	Revenue float64 `json:"revenue"`
}
