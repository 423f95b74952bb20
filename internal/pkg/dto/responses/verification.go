package responses

type Verification struct {
	MatchScore      float64 `json:"matchScore"`
	DistanceMeters  float64 `json:"distanceMeters"`
	FrameObjectName string  `json:"frameObjectName"`
}
