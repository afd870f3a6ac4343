package model

import (
	"time"
)

type EncodeStats struct {
	CarrierDecode       time.Duration `json:"carrier_decode"`
	DataEmbedding       time.Duration `json:"data_embedding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type DecodeStats struct {
	ImageDecode    time.Duration `json:"image_decode"`
	DataExtraction time.Duration `json:"data_extraction"`
}
