package server

import "pngcart/api"

var (
	errRequestBodyDecode  = api.Error{Error: "Error reading request body"}
	errInvalidImage       = api.Error{Code: "invalid_image", Error: "Supplied image is not a valid PNG"}
	errInvalidBitDensity  = api.Error{Code: "invalid_bit_density", Error: "Bit density must be between 1 and 8"}
	errCapacityExceeded   = api.Error{Code: "capacity_exceeded", Error: "Payload does not fit in the carrier at the requested bit density"}
	errPayloadTruncated   = api.Error{Code: "payload_truncated", Error: "Image does not hold the payload its length prefix declares, check the bit density"}
	errEncodeFailed       = api.Error{Code: "encode_error", Error: "An error occurred while encoding the payload"}
	errDecodeFailed       = api.Error{Code: "decode_error", Error: "An error occurred while decoding the image"}
	errPackerInitFailed   = api.Error{Error: "Error initializing the codec"}
	errCapacityComputeErr = api.Error{Error: "Error computing capacity"}
)
