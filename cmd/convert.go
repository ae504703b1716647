package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/icoforge-cli/internal/hasher"
	"github.com/AnyUserName/icoforge-cli/internal/ico"
	"github.com/AnyUserName/icoforge-cli/internal/pipeline"
	"github.com/AnyUserName/icoforge-cli/internal/profile"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	convertOut          string
	convertSizes        []int
	convertProfile      string
	convertProfilesFile string
	convertForce        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <source_image>",
	Short: "Convert an image to a multi-resolution .ico file",
	Long: `Decodes the source image (png, jpg, jpeg, gif, bmp, tiff, webp),
renders a square variant at each requested size with transparent
letterboxing for non-square sources, and writes a single .ico container.

Default destination: source path with its extension replaced by .ico.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "destination path (default: source with .ico extension)")
	convertCmd.Flags().IntSliceVarP(&convertSizes, "sizes", "s", nil, "icon sizes, subset of 16,32,48,256 (overrides profile)")
	convertCmd.Flags().StringVarP(&convertProfile, "profile", "p", profile.DefaultName, "size profile (standard, favicon, small)")
	convertCmd.Flags().StringVar(&convertProfilesFile, "profiles-file", "", "YAML file with extra size profiles")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "overwrite the destination if it exists")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]
	start := time.Now()

	if convertProfilesFile != "" {
		if err := profile.LoadFile(convertProfilesFile); err != nil {
			return err
		}
	}

	requested := convertSizes
	if len(requested) == 0 {
		requested = profile.Get(convertProfile).Sizes
	}

	dest := convertOut
	if dest == "" {
		ext := filepath.Ext(source)
		dest = strings.TrimSuffix(source, ext) + ".ico"
	}

	logVerbose("source:  %s", source)
	logVerbose("dest:    %s", dest)
	logVerbose("sizes:   %v", requested)

	src, format, err := decodeSource(source)
	if err != nil {
		return err
	}
	logVerbose("decoded: %s %dx%d", format, src.Bounds().Dx(), src.Bounds().Dy())

	p := pipeline.New(pipeline.Config{Sizes: requested})
	variants, err := p.Variants(src)
	if err != nil {
		return err
	}
	data, err := ico.Encode(variants)
	if err != nil {
		return err
	}

	if !convertForce {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%w: %s exists (use --force to overwrite)", ErrWriteFailed, dest)
		}
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	printConvertReport(source, dest, variants, len(data), time.Since(start))
	return nil
}

// decodeSource opens and decodes the source image, classifying the two
// failure modes the exit codes distinguish: missing file vs a file no
// registered decoder accepts.
func decodeSource(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, "", fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}
	return img, format, nil
}

func printConvertReport(source, dest string, variants []ico.Variant, total int, elapsed time.Duration) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	green := color.New(color.FgGreen)

	fmt.Println()
	green.Printf("  ✓ ")
	bold.Printf("%s", dest)
	fmt.Printf("  (%s)\n", formatBytes(int64(total)))
	fmt.Println()

	for _, v := range variants {
		fmt.Printf("    %3dx%-3d  %-4s %9s  ", v.Edge, v.Edge, v.Format, formatBytes(int64(len(v.Data))))
		dim.Printf("%s\n", hasher.ContentHash(v.Data, 16))
	}
	fmt.Println()
	dim.Printf("    source %s · %d variants · %s\n",
		filepath.Base(source), len(variants), elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
