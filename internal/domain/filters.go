package domain

// DishFilter narrows menu listings. OnlyAvailable is set for the public
// menu; management listings see every dish.
type DishFilter struct {
	CategoryID    int
	Search        string
	OnlyAvailable bool
}

// ReservationFilter narrows the staff reservation listing. Date is a
// YYYY-MM-DD day filter against the requested datetime.
type ReservationFilter struct {
	Date   string
	Status string
}
