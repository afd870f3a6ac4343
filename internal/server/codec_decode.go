package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pngcart/api"
	"pngcart/internal/logging"
	"pngcart/pkg/config"
	"pngcart/pkg/raster"
	"pngcart/pkg/steg"
)

// DecodePayloadHandler godoc
//
// @Summary Extract a payload from a stego image
// @Description Extracts the payload embedded in the supplied image at the given bit density. The density must match the one used when the image was produced; the format does not record it.
// @Tags codec
// @Accept json
// @Produce json
// @Param requestBody body api.DecodePayloadRequest true "Bit density and image to extract from"
// @Success 200 {object} api.DecodePayloadResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode [post]
func DecodePayloadHandler(ctx *gin.Context) {
	var requestBody api.DecodePayloadRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing payload decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	packer, err := steg.NewPacker(config.PackConfig{})
	if err != nil {
		logger.WithError(err).Error("Error initializing packer")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errPackerInitFailed)
		return
	}

	payload, err := packer.Decode(requestBody.Bits, requestBody.Image)
	switch {
	case errors.Is(err, steg.ErrInvalidBitDensity):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitDensity)
		return
	case errors.Is(err, raster.ErrInvalidSignature):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	case errors.Is(err, steg.ErrPayloadTruncated):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, errPayloadTruncated)
		return
	case err != nil:
		logger.WithError(err).Error("Error decoding payload from image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errDecodeFailed)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(packer.DecodeStats())).Info("Payload decoding was successful")

	ctx.JSON(http.StatusOK, api.DecodePayloadResponse{Payload: payload})
}
