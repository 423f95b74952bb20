package requests

type ListContracts struct {
	SessionData string
	Status      string `validate:"omitempty,oneof=upcoming completed canceled"`
}

type ContractByID struct {
	SessionData string
	ContractID  string
}

// AttendanceVerification carries what the device captured right before a
// check-in or check-out. Frame is a base64 data URL.
type AttendanceVerification struct {
	SessionData string          `json:"-"`
	ContractID  string          `json:"-"`
	Frame       string          `json:"frame"`
	Location    *DeviceLocation `json:"location"`
}

type DeviceLocation struct {
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	Accuracy   float64 `json:"accuracy" validate:"gte=0"`
	Permission string  `json:"permission,omitempty"`
}
