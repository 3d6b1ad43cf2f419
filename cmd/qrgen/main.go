// Command qrgen renders a QR code for a URL or text into an image file.
//
// Usage:
//
//	qrgen [flags] url file_output
//
// The image format follows the extension of file_output; unknown or missing
// extensions are written as PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ankek/terraform-provider-qrcode/internal/config"
	"github.com/ankek/terraform-provider-qrcode/internal/format"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/logger"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

const (
	progName = "qrgen"
	version  = "1.1.0"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	app := &cli{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(app.run(context.Background(), os.Args[1:]))
}

// cli holds the streams and environment of one invocation.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	// environ replaces the process environment and .env file when non-nil.
	environ map[string]string
}

// options are the parsed command line.
type options struct {
	data        string
	output      string
	configFile  string
	showVersion bool
	// flags holds only the settings given explicitly on the command line.
	flags config.Config
}

// usageError is reported with the usage line and exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (c *cli) run(ctx context.Context, args []string) int {
	opts, err := parseArgs(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		printHelp(c.stdout)
		return exitOK
	case err != nil:
		printUsage(c.stderr)
		fmt.Fprintf(c.stderr, "%s: error: %v\n", progName, err)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(c.stdout, "%s %s\n", progName, version)
		return exitOK
	}

	cfg, err := config.Load(config.LoadOptions{
		File:    opts.configFile,
		Environ: c.environ,
		DotEnv:  []string{config.DefaultDotEnv},
	})
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return exitError
	}
	cfg = cfg.Merge(opts.flags)

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return exitError
	}
	log := logger.New(level, c.stderr).With(logger.Component(progName))

	gen := generator.New(generator.Options{Logger: log})
	result, err := gen.Generate(ctx, generator.Request{
		Data:       opts.data,
		OutputPath: opts.output,
		Style:      cfg.Style,
		FillColor:  cfg.FillColor,
		BackColor:  cfg.BackColor,
	})
	if err != nil {
		var saveErr *format.SaveError
		if errors.As(err, &saveErr) {
			fmt.Fprintf(c.stderr, "Error saving QR code: %v\n", saveErr.Err)
		} else {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
		}
		return exitError
	}

	fmt.Fprintf(c.stdout, "QR code successfully saved to: %s\n", result.OutputPath)
	fmt.Fprintf(c.stdout, "Style: %s, Fill: %s, Background: %s\n", result.Style, cfg.FillColor, cfg.BackColor)
	return exitOK
}

// newFlagSet declares the command-line flags on a silent FlagSet; errors and
// help are reported by run.
func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVar(&opts.flags.Style, "s", "", "module style")
	fs.StringVar(&opts.flags.Style, "style", "", "module style")
	fs.StringVar(&opts.flags.FillColor, "f", "", "fill color")
	fs.StringVar(&opts.flags.FillColor, "fill-color", "", "fill color")
	fs.StringVar(&opts.flags.BackColor, "b", "", "background color")
	fs.StringVar(&opts.flags.BackColor, "back-color", "", "background color")
	fs.StringVar(&opts.configFile, "config", "", "HCL config file")
	fs.StringVar(&opts.flags.LogLevel, "log-level", "", "log level")
	fs.BoolVar(&opts.showVersion, "version", false, "print version")
	return fs
}

// parseArgs parses args allowing flags before, between and after the two
// positional arguments. Everything after "--" is positional.
func parseArgs(args []string) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts)

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, &usageError{msg: err.Error()}
		}
		remaining := fs.Args()
		if len(remaining) == 0 {
			break
		}
		consumed := len(rest) - len(remaining)
		if consumed > 0 && rest[consumed-1] == "--" {
			positional = append(positional, remaining...)
			break
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}

	if opts.showVersion {
		return opts, nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if (set["s"] || set["style"]) && !validStyle(opts.flags.Style) {
		return nil, &usageError{msg: fmt.Sprintf(
			"argument -s/--style: invalid choice: %q (choose from %s)",
			opts.flags.Style, strings.Join(style.Names(), ", "))}
	}
	if opts.flags.LogLevel != "" {
		if _, err := logger.ParseLevel(opts.flags.LogLevel); err != nil {
			return nil, &usageError{msg: "argument --log-level: " + err.Error()}
		}
	}

	switch {
	case len(positional) == 0:
		return nil, &usageError{msg: "the following arguments are required: url, file_output"}
	case len(positional) == 1:
		return nil, &usageError{msg: "the following arguments are required: file_output"}
	case len(positional) > 2:
		return nil, &usageError{msg: "unrecognized arguments: " + strings.Join(positional[2:], " ")}
	}

	opts.data = positional[0]
	opts.output = positional[1]
	return opts, nil
}

// validStyle reports whether name is one of the style choices. Choices are
// matched exactly.
func validStyle(name string) bool {
	for _, n := range style.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [-h] [-s {%s}] [-f FILL_COLOR] [-b BACK_COLOR] [--config FILE] [--log-level LEVEL] [--version] url file_output\n",
		progName, strings.Join(style.Names(), ","))
}

func printHelp(w io.Writer) {
	printUsage(w)
	fmt.Fprintf(w, `
Generate a QR code image from a URL or text.

positional arguments:
  url                   URL or text to encode
  file_output           output image file; the format follows the extension
                        (.png, .jpg, .jpeg, .bmp, .gif, .tif, .tiff, .webp, .ico)

options:
  -h, --help            show this help message and exit
  -s, --style {%s}
                        module style (default: square)
  -f, --fill-color FILL_COLOR
                        module color: name, #RRGGBB or R,G,B (default: black)
  -b, --back-color BACK_COLOR
                        background color (default: white)
  --config FILE         HCL file with style, fill_color, back_color and log_level
  --log-level LEVEL     one of %s (default: info)
  --version             show program's version number and exit

Environment variables %sSTYLE, %sFILL_COLOR, %sBACK_COLOR and %sLOG_LEVEL
override the config file; flags override both.
`, strings.Join(style.Names(), ","), strings.Join(logger.LevelNames(), ", "),
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
}
