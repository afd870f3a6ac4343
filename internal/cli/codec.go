package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pngcart/pkg/config"
	"pngcart/pkg/steg"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type commonOpts struct {
	bits           int8
	pngCompression string
}

func (o commonOpts) toPackConfig() config.PackConfig {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return config.PackConfig{
		PngCompressionLevel: mappedCompression,
	}
}

func EncodeCommand() *cobra.Command {
	var (
		payloadFile string
		outputImage string
		opts        commonOpts
	)

	encodeCmd := &cobra.Command{
		Use:     "encode",
		Example: "pngcart encode --payload bundle.bin --output-file cart.png --bits 4",
		Short:   "Embed a payload file into the carrier image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EncodePayloadFile(payloadFile, outputImage, byte(opts.bits), opts.toPackConfig())
		},
	}

	encodeCmd.Flags().StringVar(&payloadFile, "payload", "", "File with the payload to embed")
	encodeCmd.Flags().StringVar(&outputImage, "output-file", "", "Name for the image that will be generated")
	encodeCmd.Flags().Int8Var(&opts.bits, "bits", 4, "Low-order bits of each carrier byte to overwrite, 1-8. Higher densities fit more data but distort the image more")
	encodeCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for the output png. Options are default, none, fast, best")

	MarkFlagsRequired(encodeCmd, "payload", "output-file")

	return encodeCmd
}

func EncodePayloadFile(payloadFile, outputPath string, bits byte, cfg config.PackConfig) error {
	payload, err := os.ReadFile(payloadFile)
	if err != nil {
		return err
	}

	packer, err := steg.NewPacker(cfg)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Embedding payload "
	s.Start()

	imageBytes, err := packer.Encode(bits, payload)
	if err != nil {
		s.Stop()
		return err
	}

	if err = os.WriteFile(outputPath, imageBytes, 0664); err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Embedded %s of payload into %s at %d bits per carrier byte\n",
		humanize.Bytes(uint64(len(payload))), outputPath, bits)
	s.Stop()

	stats := packer.EncodeStats()
	fmt.Printf("Carrier decode time: %s\n", stats.CarrierDecode)
	fmt.Printf("Data embed time: %s\n", stats.DataEmbedding)
	fmt.Printf("Output image encode time: %s\n", stats.OutputImageEncoding)
	return nil
}

func DecodeCommand() *cobra.Command {
	var (
		sourceImage string
		outputFile  string
		bits        int8
	)

	decodeCmd := &cobra.Command{
		Use:     "decode",
		Example: "pngcart decode --source cart.png --output-file bundle.bin --bits 4",
		Short:   "Extract the payload embedded in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodePayloadFile(sourceImage, outputFile, byte(bits))
		},
	}

	decodeCmd.Flags().StringVar(&sourceImage, "source", "", "Image to extract the payload from")
	decodeCmd.Flags().StringVar(&outputFile, "output-file", "", "File to write the extracted payload to")
	decodeCmd.Flags().Int8Var(&bits, "bits", 4, "Bit density the image was encoded with. Must match the value used at encode time, it is not recorded in the image")

	MarkFlagsRequired(decodeCmd, "source", "output-file")

	return decodeCmd
}

func DecodePayloadFile(sourcePath, outputPath string, bits byte) error {
	imageBytes, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}

	packer, err := steg.NewPacker(config.PackConfig{})
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Extracting payload "
	s.Start()

	payload, err := packer.Decode(bits, imageBytes)
	if err != nil {
		s.Stop()
		return err
	}

	if err = os.WriteFile(outputPath, payload, 0664); err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Extracted %s of payload from %s into %s\n",
		humanize.Bytes(uint64(len(payload))), sourcePath, outputPath)
	s.Stop()

	stats := packer.DecodeStats()
	fmt.Printf("Image decode time: %s\n", stats.ImageDecode)
	fmt.Printf("Data extract time: %s\n", stats.DataExtraction)
	return nil
}
