package server

import (
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"pngcart/api"
	"pngcart/internal/logging"
	"pngcart/pkg/config"
	"pngcart/pkg/steg"
)

// EncodePayloadHandler godoc
//
// @Summary Embed a payload into the carrier image
// @Description Embeds the supplied payload into the built-in carrier image at the given bit density and returns the resulting PNG.
// @Tags codec
// @Accept json
// @Produce json
// @Param requestBody body api.EncodePayloadRequest true "Bit density and payload to embed"
// @Success 200 {object} api.EncodePayloadResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode [post]
func EncodePayloadHandler(ctx *gin.Context) {
	var requestBody api.EncodePayloadRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	packer, err := steg.NewPacker(config.PackConfig{
		// best compression to reduce bandwidth costs, lower levels produce huge images
		PngCompressionLevel: png.BestCompression,
	})
	if err != nil {
		logger.WithError(err).Error("Error initializing packer")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errPackerInitFailed)
		return
	}

	imageBytes, err := packer.Encode(requestBody.Bits, requestBody.Payload)
	switch {
	case errors.Is(err, steg.ErrInvalidBitDensity):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitDensity)
		return
	case errors.Is(err, steg.ErrPayloadTooLarge):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errCapacityExceeded)
		return
	case err != nil:
		logger.WithError(err).Error("Error encoding payload")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncodeFailed)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(packer.EncodeStats())).Info("Payload encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodePayloadResponse{Image: imageBytes})
}

// CapacityHandler godoc
//
// @Summary Carrier capacity at a bit density
// @Description Reports the maximal payload size the built-in carrier can hold at the given bit density.
// @Tags codec
// @Produce json
// @Param bits query int true "Bit density, 1-8"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Router /capacity [get]
func CapacityHandler(ctx *gin.Context) {
	bits, err := strconv.ParseUint(ctx.Query("bits"), 10, 8)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitDensity)
		return
	}

	packer, err := steg.NewPacker(config.PackConfig{})
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errCapacityComputeErr)
		return
	}

	capacity, err := packer.Capacity(byte(bits))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitDensity)
		return
	}

	ctx.JSON(http.StatusOK, api.CapacityResponse{
		Bits:          byte(bits),
		CarrierBytes:  packer.CarrierBytes(),
		Capacity:      capacity,
		CapacityHuman: humanize.Bytes(uint64(capacity)),
	})
}
