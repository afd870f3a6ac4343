package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pngcart/internal/cli"
)

func main() {
	var cpuProfile, memProfileDir string

	rootCmd := &cobra.Command{
		Use:          "pngcart",
		Short:        "Move binary payloads in and out of PNG images",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(cli.EncodeCommand(), cli.DecodeCommand(), cli.SelfTestCommand(), cli.ServeAppCommand())

	var cpuProfTeardown, memProfTeardown func()
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cpuProfile != "" {
			cpuProfTeardown = setupCPUProfilingAndReturnTeardown(cpuProfile)
		}
		if memProfileDir != "" {
			cli.StartMemoryProfiler(memProfileDir)
			memProfTeardown = cli.StopMemoryProfiler
		}
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if cpuProfTeardown != nil {
			cpuProfTeardown()
		}
		if memProfTeardown != nil {
			memProfTeardown()
		}
	}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		if cpuProfTeardown != nil {
			cpuProfTeardown()
		}
		if memProfTeardown != nil {
			memProfTeardown()
		}
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupCPUProfilingAndReturnTeardown(cpuProfile string) (deferredTeardown func()) {
	cpuProfileFile, err := os.Create(cpuProfile)
	if err != nil {
		log.Fatal(err)
	}
	cli.StartCPUProfiler(cpuProfileFile)

	return func() {
		cli.StopCPUProfiler()
		cpuProfileFile.Close()
	}
}
