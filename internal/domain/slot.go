package domain

import "fmt"

// Slot represents a physical parking slot
// Каталог слотов статичен: слоты не создаются и не удаляются в runtime
type Slot struct {
	ID    int64
	Name  string
	Zone  string
	Floor int
}

// NewSlot строит слот каталога по его номеру (1..TotalSlots)
// Зона и этаж выводятся из номера: зона A для первых ZoneASlots слотов,
// этаж назначается группами по SlotsPerFloor слотов
func NewSlot(id int64) Slot {
	return Slot{
		ID:    id,
		Name:  fmt.Sprintf("Slot %d", id),
		Zone:  ZoneForSlot(id),
		Floor: FloorForSlot(id),
	}
}

// ZoneForSlot возвращает зону слота по его номеру
func ZoneForSlot(id int64) string {
	if id <= ZoneASlots {
		return "A"
	}
	return "B"
}

// FloorForSlot возвращает этаж слота: ceil(id / SlotsPerFloor)
func FloorForSlot(id int64) int {
	return int((id + SlotsPerFloor - 1) / SlotsPerFloor)
}

// SeedSlots возвращает полный каталог слотов для первичного наполнения БД
func SeedSlots() []Slot {
	slots := make([]Slot, 0, TotalSlots)
	for id := int64(1); id <= TotalSlots; id++ {
		slots = append(slots, NewSlot(id))
	}
	return slots
}
