package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pngcart/pkg/config"
	"pngcart/pkg/steg"
)

func SelfTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "selftest",
		Example: "pngcart selftest",
		Short:   "Round-trip random payloads at every bit density against the built-in carrier",
		RunE: func(cmd *cobra.Command, args []string) error {
			packer, err := steg.NewPacker(config.PackConfig{})
			if err != nil {
				return err
			}

			for density := byte(steg.MinBitDensity); density <= steg.MaxBitDensity; density++ {
				capacity, err := packer.Capacity(density)
				if err != nil {
					return err
				}
				fmt.Printf("bits %d - capacity %s\n", density, humanize.Bytes(uint64(capacity)))
			}

			s := NewSpinner()
			s.Prefix = "Running round-trip self test "
			s.Start()
			err = packer.SelfTest()
			s.Stop()

			if err != nil {
				return err
			}
			fmt.Println("Self test passed for all bit densities")
			return nil
		},
	}
}
