package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontparts"
	"github.com/npillmayer/fontparts/memfont"
	"github.com/npillmayer/fontparts/sfntlayer"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontparts.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontparts.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.fontparts":     "Info",
		"trace.fontparts.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Compiled font to load (TTF/OTF); empty for the demo font")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the fontparts CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fp > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load the font to inspect
	if err := intp.loadFont(*fontname); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	fontname string
	layers   []*fontparts.Layer
	current  *fontparts.Layer
	closer   func()
}

// loadFont prepares the layers to inspect: a compiled font wrapped by
// sfntlayer, or the built-in demo font when no path is given.
func (intp *Intp) loadFont(path string) error {
	if path == "" {
		font := demoFont()
		intp.fontname = font.Name()
		intp.layers = font.Layers()
		intp.closer = font.Close
	} else {
		ff, err := sfntlayer.Load(path)
		if err != nil {
			return err
		}
		layer, err := ff.Layer()
		if err != nil {
			return err
		}
		intp.fontname = ff.Fontname
		intp.layers = []*fontparts.Layer{layer}
		intp.closer = ff.Close
	}
	intp.current = intp.layers[0]
	tracer().Infof("loaded font %q with %d layer(s)", intp.fontname, len(intp.layers))
	return nil
}

// demoFont builds a small in-memory font with two layers.
func demoFont() *memfont.Font {
	font := memfont.New("Demo")
	fg, _ := font.NewLayer("foreground")
	bg, _ := font.NewLayer("background")
	bg.SetColor([]float64{0.5, 0.5, 0.5, 1})
	for _, name := range []string{"A", "B", "comma", "space", "uni00E9"} {
		for _, layer := range []*fontparts.Layer{fg, bg} {
			g, _ := layer.NewGlyph(name, true)
			mg := g.(*memfont.Glyph)
			mg.Advance = 500
			mg.Contours = [][]memfont.Point{{
				{X: 50, Y: 0, OnCurve: true},
				{X: 450, Y: 0, OnCurve: true},
				{X: 250, Y: 700, OnCurve: true},
			}}
		}
	}
	fg.AutoUnicodes()
	return font
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		name, _ := intp.current.Name()
		pterm.Printf("( font=%s layer=%s )\n", intp.fontname, name)
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	if intp.closer != nil {
		intp.closer()
	}
	pterm.Info.Println("Good bye!")
}

// execute runs one REPL command.
func (intp *Intp) execute(words []string) (quit bool, err error) {
	cmd, args := words[0], words[1:]
	switch cmd {
	case "quit":
		return true, nil
	case "help":
		printHelp()
	case "layers":
		printLayerList(intp.layers)
	case "use":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: use <layer>")
		}
		for _, layer := range intp.layers {
			if name, _ := layer.Name(); name == args[0] {
				intp.current = layer
				return false, nil
			}
		}
		return false, fmt.Errorf("no layer named %q", args[0])
	case "info":
		printLayerInfo(intp.current)
	case "glyphs":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		err = printGlyphList(intp.current, prefix)
	case "glyph":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: glyph <name>")
		}
		err = printGlyph(intp.current, args[0])
	case "cmap":
		err = printCharacterMap(intp.current)
	case "color":
		err = intp.setColor(args)
	case "rename":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: rename <name>")
		}
		err = intp.current.SetName(args[0])
	case "round":
		err = intp.current.Round()
	case "auto":
		err = intp.current.AutoUnicodes()
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, err
}

// setColor parses "color none" or "color r g b a".
func (intp *Intp) setColor(args []string) error {
	if len(args) == 1 && args[0] == "none" {
		return intp.current.SetColor(nil)
	}
	if len(args) != 4 {
		return fmt.Errorf("usage: color none | color <r> <g> <b> <a>")
	}
	components := make([]float64, 4)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("color component %q is not a number", arg)
		}
		components[i] = v
	}
	return intp.current.SetColor(components)
}
