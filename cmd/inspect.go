package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/icoforge-cli/internal/hasher"
	"github.com/AnyUserName/icoforge-cli/internal/ico"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <ico_file>",
	Short: "Show the directory of an .ico file and validate its layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "emit a machine-readable report")
	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the machine-readable form of an inspection.
type inspectReport struct {
	Path    string        `json:"path"`
	Bytes   int           `json:"bytes"`
	Count   int           `json:"count"`
	Entries []entryReport `json:"entries"`
	Errors  []string      `json:"errors,omitempty"`
}

type entryReport struct {
	Edge         int    `json:"edge"`
	Format       string `json:"format"`
	BitsPerPixel int    `json:"bpp"`
	Length       uint32 `json:"length"`
	Offset       uint32 `json:"offset"`
	Hash         string `json:"hash"`
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	dir, err := ico.Decode(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	report := inspectReport{
		Path:   path,
		Bytes:  len(data),
		Count:  len(dir.Entries),
		Errors: dir.Validate(len(data)),
	}
	for _, e := range dir.Entries {
		report.Entries = append(report.Entries, entryReport{
			Edge:         e.Edge,
			Format:       e.Format,
			BitsPerPixel: e.BitsPerPixel,
			Length:       e.Length,
			Offset:       e.Offset,
			Hash:         hasher.ContentHash(e.Data, 16),
		})
	}

	if inspectJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printInspectReport(report)
	}

	if len(report.Errors) > 0 {
		return fmt.Errorf("layout validation failed with %d error(s)", len(report.Errors))
	}
	return nil
}

func printInspectReport(r inspectReport) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	fmt.Println()
	bold.Printf("  %s", r.Path)
	fmt.Printf("  (%s, %d entries)\n", formatBytes(int64(r.Bytes)), r.Count)
	fmt.Println()

	fmt.Println("     size  format  bpp     bytes    offset  hash")
	for _, e := range r.Entries {
		fmt.Printf("  %3dx%-3d  %-6s  %3d  %8d  %8d  ", e.Edge, e.Edge, e.Format, e.BitsPerPixel, e.Length, e.Offset)
		dim.Printf("%s\n", e.Hash)
	}
	fmt.Println()

	if len(r.Errors) == 0 {
		green.Println("  ✓ layout valid: payloads contiguous, offsets consistent")
	} else {
		red.Printf("  ✗ %d layout error(s):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("    • %s\n", e)
		}
	}
	fmt.Println()
}
