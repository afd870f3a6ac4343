package server

import (
	"pngcart/pkg/model"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	CarrierDecodeHuman       string `json:"carrier_decode_human"`
	DataEmbeddingHuman       string `json:"data_embedding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	ImageDecodeHuman    string `json:"image_decode_human"`
	DataExtractionHuman string `json:"data_extraction_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		CarrierDecodeHuman:       encodeStats.CarrierDecode.String(),
		DataEmbeddingHuman:       encodeStats.DataEmbedding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:         decodeStats,
		ImageDecodeHuman:    decodeStats.ImageDecode.String(),
		DataExtractionHuman: decodeStats.DataExtraction.String(),
	}
}
