// Command jbl renders text from a file or standard input to a PNG image
// written on standard output.
//
// Usage:
//
//	jbl [flags] [FILE]
//
// With no FILE, or when FILE is -, the text is read from standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"unicode/utf8"

	"github.com/gogpu/jbl"
	"github.com/tdewolff/argp"
)

// version is set with -ldflags "-X main.version=...".
var version = ""

// Render holds the command line of jbl.
type Render struct {
	Font            string  `short:"f" default:"Monospace" desc:"Font family: Serif, SansSerif, Cursive, Fantasy, Monospace or a font name"`
	Size            float64 `short:"s" default:"18.0" desc:"Font size in pixels"`
	Color           string  `short:"c" default:"#cdd6f4" desc:"Text color (#RRGGBB or #RGB)"`
	BackgroundColor string  `short:"b" name:"background-color" default:"#1e1e2e" desc:"Background color (#RRGGBB or #RGB)"`
	Padding         uint8   `short:"p" default:"8" desc:"Padding around the text in pixels"`
	Blend           string  `default:"black" desc:"Compositing: black (c*a/255) or over (blend over the background)"`
	Lang            string  `default:"en" desc:"Language tag used for shaping"`
	FontFile        string  `name:"font-file" desc:"Extra font file to register"`
	NoSystemFonts   bool    `name:"no-system-fonts" desc:"Use the embedded fonts only"`
	FontCacheDir    string  `name:"font-cache-dir" desc:"Directory of the system font index (default: user cache directory)"`
	Verbose         bool    `short:"v" desc:"Debug logging to standard error"`
	Version         bool    `desc:"Print version"`
	Input           string  `index:"0" default:"-" desc:"Input file, - for standard input"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Render text to a PNG image on standard output")
	root.Parse()
}

// Run is called by argp after parsing. A returned error is printed by
// argp and exits with status 1.
func (cmd *Render) Run() error {
	if cmd.Version {
		fmt.Println("jbl", buildVersion())
		return nil
	}
	return cmd.run(os.Stdin, os.Stdout, os.Stderr)
}

func (cmd *Render) run(stdin io.Reader, stdout, stderr io.Writer) error {
	if cmd.Verbose {
		jbl.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode, err := jbl.ParseBlendMode(cmd.Blend)
	if err != nil {
		return err
	}

	// Validate the parameters before blocking on standard input.
	if _, err := jbl.NewDescriptor("", cmd.Font, cmd.Size, cmd.Color, cmd.BackgroundColor, cmd.Padding); err != nil {
		return err
	}

	txt, err := readInput(cmd.Input, stdin)
	if err != nil {
		return err
	}

	d, err := jbl.NewDescriptor(txt, cmd.Font, cmd.Size, cmd.Color, cmd.BackgroundColor, cmd.Padding)
	if err != nil {
		return err
	}

	opts := []jbl.Option{
		jbl.WithBlend(mode),
		jbl.WithSystemFonts(!cmd.NoSystemFonts),
		jbl.WithLanguage(cmd.Lang),
	}
	if cmd.FontCacheDir != "" {
		opts = append(opts, jbl.WithFontCacheDir(cmd.FontCacheDir))
	}
	if cmd.FontFile != "" {
		opts = append(opts, jbl.WithFontFiles(cmd.FontFile))
	}

	canvas, err := jbl.Render(d, opts...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if err := canvas.EncodePNG(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", jbl.ErrEncode, err)
	}
	return nil
}

// readInput returns the content of path, or of stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read std input: %w", err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("failed to read std input: invalid UTF-8")
		}
		return string(data), nil
	}

	f, err := os.Open(path) //nolint:gosec // reading a user supplied file is the point
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read file: invalid UTF-8")
	}
	return string(data), nil
}

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
