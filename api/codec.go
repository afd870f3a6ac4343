package api

// Payload and image bytes travel base64-encoded, the default Go JSON
// representation for byte slices.

type EncodePayloadRequest struct {
	Bits    byte   `json:"bits" binding:"required"`
	Payload []byte `json:"payload"`
}

type EncodePayloadResponse struct {
	Image []byte `json:"image"`
}

type DecodePayloadRequest struct {
	Bits  byte   `json:"bits" binding:"required"`
	Image []byte `json:"image" binding:"required"`
}

type DecodePayloadResponse struct {
	Payload []byte `json:"payload"`
}

type CapacityResponse struct {
	Bits          byte   `json:"bits"`
	CarrierBytes  int    `json:"carrier_bytes"`
	Capacity      int    `json:"capacity"`
	CapacityHuman string `json:"capacity_human"`
}
