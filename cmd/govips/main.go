// Command govips resizes, crops and blurs an image with libvips or with the
// pure Go image packages, and reports how long each stage took.
package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mnemonic-labs/govips"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	resize     string
	fastResize bool
	crop       string
	quality    int
	blur       float64
	scaler     string
	native     bool
	verbose    bool

	resizePoint image.Point
	cropRect    image.Rectangle
}

// timings holds the elapsed time of each stage. Stages that did not run
// stay zero.
type timings struct {
	decode, crop, resize, blur, encode, total time.Duration
}

func (t *timings) record(stage string, elapsed time.Duration) {
	switch stage {
	case govips.StageDecode:
		t.decode = elapsed
	case govips.StageCrop:
		t.crop = elapsed
	case govips.StageResize:
		t.resize = elapsed
	case govips.StageBlur:
		t.blur = elapsed
	case govips.StageEncode:
		t.encode = elapsed
	}
}

func (t *timings) print(w io.Writer) {
	fmt.Fprintln(w, "Timing Data:")
	fmt.Fprintf(w, "  Decode: %v\n", t.decode)
	fmt.Fprintf(w, "  Crop: %v\n", t.crop)
	fmt.Fprintf(w, "  Resize: %v\n", t.resize)
	fmt.Fprintf(w, "  Blur: %v\n", t.blur)
	fmt.Fprintf(w, "  Encode: %v\n", t.encode)
	fmt.Fprintf(w, "  Total: %v\n", t.total)
}

func availableScalers() []string {
	names := lo.Keys(scalerByName)
	slices.Sort(names)
	return names
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "govips [flags] <input file or URL> <output file>",
		Short:         "Transform an image and report stage timings",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.parse()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlagName)
	flags.StringVarP(&opts.resize, "resize", "r", "", "resize to fit, for example 300x300")
	flags.BoolVar(&opts.fastResize, "fast-resize", false, "do an integer shrink before the final resize")
	flags.StringVarP(&opts.crop, "crop", "c", "", "crop before resize, for example 0x50y400w300h")
	flags.IntVarP(&opts.quality, "quality", "q", 85, "quality (1-100)")
	flags.Float64VarP(&opts.blur, "blur", "b", 0, "gaussian blur sigma")
	flags.StringVarP(&opts.scaler, "scaler", "s", "ApproxBiLinear", "native scaler, one of: "+strings.Join(availableScalers(), ", "))
	flags.BoolVar(&opts.native, "native", false, "use the pure Go image packages instead of libvips")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log libvips activity to stderr")
	return cmd
}

// normalizeFlagName accepts fast_resize for fast-resize.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (o *options) parse() error {
	var err error
	if o.resize != "" {
		if o.resizePoint, err = parseResize(o.resize); err != nil {
			return err
		}
	}
	if o.crop != "" {
		if o.cropRect, err = parseCrop(o.crop); err != nil {
			return err
		}
	}
	if o.quality < 1 || o.quality > 100 {
		return fmt.Errorf("invalid quality: %d", o.quality)
	}
	if _, ok := scalerByName[o.scaler]; !ok {
		return fmt.Errorf("unknown scaler: %s", o.scaler)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, input, output string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(output); err == nil {
		return fmt.Errorf("%s already exists", output)
	}

	if isURL(input) {
		downloaded, err := download(cmd.Context(), input, output)
		if err != nil {
			return err
		}
		log.Debug("downloaded input", "url", input, "path", downloaded)
		input = downloaded
	}

	buf, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var (
		t       timings
		content []byte
	)
	start := time.Now()
	if opts.native {
		content, err = transformNative(buf, opts, &t)
	} else {
		content, err = transformVips(buf, opts, &t, log)
	}
	if err != nil {
		return err
	}
	t.total = time.Since(start)

	if err := os.WriteFile(output, content, 0644); err != nil {
		return err
	}
	t.print(cmd.OutOrStdout())
	return nil
}

func transformVips(buf []byte, opts *options, t *timings, log *slog.Logger) ([]byte, error) {
	config, err := govips.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	config.Logger = log
	if err := govips.InitializeWithConfig(config); err != nil {
		return nil, err
	}
	defer govips.Shutdown()

	ops := &govips.ImageOps{Trace: t.record}
	imageOpts := &govips.ImageOptions{
		Quality: opts.quality,
		Blur:    opts.blur,
		Kernel:  govips.KernelLanczos3,
	}
	if opts.cropRect != (image.Rectangle{}) {
		imageOpts.Crop = &opts.cropRect
	}
	if opts.resizePoint != (image.Point{}) {
		imageOpts.ResizeMethod = govips.ImageOpsFit
		imageOpts.Width = opts.resizePoint.X
		imageOpts.Height = opts.resizePoint.Y
		imageOpts.FastResize = opts.fastResize
	}
	content, err := ops.Transform(buf, imageOpts)
	if err != nil {
		if msg := govips.ErrorBuffer(); msg != nil {
			log.Error("libvips", "error", msg)
		}
		return nil, err
	}
	return content, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
