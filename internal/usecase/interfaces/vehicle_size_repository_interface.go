package interfaces

import (
	"context"

	"wrapcommand/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_size_repository_interface.go -destination=mocks/vehicle_size_repository_mock.go -package=mock_interfaces

// IVehicleSizeRepository stores the vehicle_dimensions reference table.
//
// The table is replaced wholesale: DeleteAll followed by InsertBatch calls.
type IVehicleSizeRepository interface {
	ListAll(ctx context.Context) ([]entities.VehicleSize, error)
	DeleteAll(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, rows []entities.VehicleSize) error
}
