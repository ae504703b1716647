package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "icoforge",
	Short: "Convert raster images into multi-resolution ICO files",
	Long: `icoforge — turns a PNG/JPEG/GIF/BMP/WebP image into a Windows icon
container with crisp variants at every standard size.

Small sizes are stored as raw 32-bit bitmaps for maximum renderer
compatibility; the 256px variant is embedded as PNG.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"icoforge %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[icoforge] "+format+"\n", args...)
	}
}
