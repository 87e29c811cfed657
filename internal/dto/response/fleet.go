package response

import (
	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/pkg/listing"
	"taxi-dispatch/pkg/token"
)

type SyncStatus struct {
	TotalVehicles   int  `json:"totalVehicles"`
	OnlineVehicles  int  `json:"onlineVehicles"`
	LastSyncSuccess bool `json:"lastSyncSuccess"`
}

type VehicleListResponse struct {
	listing.Page[entity.Vehicle]
	Online int `json:"online"`
}

type DriverListResponse struct {
	listing.Page[entity.Driver]
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *token.User `json:"user"`
}
