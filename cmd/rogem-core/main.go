// main.go - rogem-core command-line entry point

/*
 ██▀███   ▒█████    ▄████ ▓█████  ███▄ ▄███▓
▓██ ▒ ██▒▒██▒  ██▒ ██▒ ▀█▒▓█   ▀ ▓██▒▀█▀ ██▒
▓██ ░▄█ ▒▒██░  ██▒▒██░▄▄▄░▒███   ▓██    ▓██░
▒██▀▀█▄  ▒██   ██░░▓█  ██▓▒▓█  ▄ ▒██    ▒██
░██▓ ▒██▒░ ████▓▒░░▒▓███▀▒░▒████▒▒██▒   ░██▒

(c) 2026 rogem contributors
https://github.com/rogem-emu/rogem

License: GPLv3 or later
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rogem-emu/rogem"
)

const banner = `
 ██▀███   ▒█████    ▄████ ▓█████  ███▄ ▄███▓
▓██ ▒ ██▒▒██▒  ██▒ ██▒ ▀█▒▓█   ▀ ▓██▒▀█▀ ██▒
▓██ ░▄█ ▒▒██░  ██▒▒██░▄▄▄░▒███   ▓██    ▓██░
▒██▀▀█▄  ▒██   ██░░▓█  ██▓▒▓█  ▄ ▒██    ▒██
░██▓ ▒██▒░ ████▓▒░░▒▓███▀▒░▒████▒▒██▒   ░██▒
`

func printBanner(out *os.File) {
	if term.IsTerminal(int(out.Fd())) {
		fmt.Fprintln(out, "\033[38;5;39m"+banner+"\033[0m")
	} else {
		fmt.Fprintln(out, banner)
	}
	fmt.Fprintln(out, "A PlayStation-class hardware core: bus, GPU command decoder, GTE, BIOS/RAM and disc loading.")
}

func main() {
	logger := log.New(os.Stderr, "rogem: ", log.LstdFlags)
	diags := rogem.NewDiagnostics(logger)

	root := &cobra.Command{
		Use:   "rogem-core <bios-path>",
		Short: "Run the rogem hardware core against a BIOS image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], diags)
		},
		SilenceUsage: true,
	}

	root.Flags().String("exe", "", "PSX-EXE to copy into RAM after the BIOS is loaded")
	root.Flags().String("disc", "", "raw CD-ROM image to mount")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rogem:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, biosPath string, diags *rogem.Diagnostics) error {
	printBanner(os.Stdout)

	bios := rogem.NewBIOS(diags)
	if err := bios.LoadFromFile(biosPath); err != nil {
		return fmt.Errorf("loading BIOS: %w", err)
	}

	ram := rogem.NewRAM(diags)
	mc1 := rogem.NewMemoryControl1(diags)
	mc2 := rogem.NewMemoryControl2(diags)
	cache := rogem.NewCacheControl(diags)
	dma := rogem.NewDMA(diags)
	gpu := rogem.NewGPUCommand(diags)

	bus := rogem.NewBus(bios, ram, mc1, mc2, cache, dma, gpu, diags)

	if discPath, _ := cmd.Flags().GetString("disc"); discPath != "" {
		disc := rogem.NewDisc(diags)
		if err := disc.Open(discPath); err != nil {
			return fmt.Errorf("mounting disc: %w", err)
		}
		defer disc.Close()
		fmt.Printf("Mounted disc %q (%d sectors)\n", discPath, disc.TotalSectors())
	}

	if exePath, _ := cmd.Flags().GetString("exe"); exePath != "" {
		var exe rogem.PSXExecutable
		if !exe.Load(exePath) {
			return fmt.Errorf("loading executable %q", exePath)
		}
		for i, b := range exe.Data {
			bus.Write8(exe.RAMDestination+uint32(i), b)
		}
		fmt.Printf("Loaded %q: entry 0x%08X, %d bytes at 0x%08X\n", exePath, exe.InitialPC, exe.Size, exe.RAMDestination)
	}

	fmt.Println("BIOS loaded, bus wired. Core initialized; no CPU core is attached in this build.")
	return nil
}
