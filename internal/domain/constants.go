package domain

// Параметры парковки
const (
	TotalSlots    = 20
	SlotsPerFloor = 5
	ZoneASlots    = 10
)

// Business validation constants
const (
	MinVehicleNumberLength = 4
	MaxVehicleNumberLength = 20
)

// Тарифы за сутки по типу транспорта (в минимальных единицах валюты)
const (
	RateBike int64 = 50
	RateCar  int64 = 100
	RateSUV  int64 = 150
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
