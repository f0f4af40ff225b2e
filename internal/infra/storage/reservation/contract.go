package reservation

import (
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
