// Command annulusmesh generates a uniform triangular mesh of an annulus and
// plots it.
//
//	annulusmesh -r 0.3 -d 0.1 --plot mesh.png
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/annulusmesh"
	"github.com/osuushi/annulusmesh/internal/logging"
	"github.com/osuushi/annulusmesh/render"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.2.0"

type options struct {
	configPath string
	inner      float64
	dist       float64
	ratio      float64
	sweeps     int
	epsilon    float64
	seed       uint64
	oracle     string
	qhullPath  string
	plot       string
	svg        string
	noShow     bool
	name       string
	debug      bool
}

func main() {
	app := kingpin.New("annulusmesh", "Simple annulus triangulation generator.")
	app.Version(version)
	app.HelpFlag.Short('h')

	defaults := annulusmesh.DefaultConfig()
	var opts options
	app.Flag("config", "YAML config file; flags override it.").StringVar(&opts.configPath)
	app.Flag("inner", "Inner radius.").Short('r').Default(fmt.Sprint(defaults.InnerRadius)).Float64Var(&opts.inner)
	app.Flag("dist", "Point distance.").Short('d').Default(fmt.Sprint(defaults.MinDist)).Float64Var(&opts.dist)
	app.Flag("ratio", "Boundary vertex density relative to the point distance.").Default(fmt.Sprint(defaults.BoundaryRatio)).Float64Var(&opts.ratio)
	app.Flag("sweeps", "Maximum Laplace smoothing sweeps.").Default(fmt.Sprint(defaults.Sweeps)).IntVar(&opts.sweeps)
	app.Flag("eps", "Smoothing convergence threshold.").Default(fmt.Sprint(defaults.Epsilon)).Float64Var(&opts.epsilon)
	app.Flag("seed", "Random seed.").Default(fmt.Sprint(defaults.Seed)).Uint64Var(&opts.seed)
	app.Flag("oracle", "Triangulation oracle.").Default(defaults.Oracle).EnumVar(&opts.oracle, annulusmesh.OracleQuickHull, annulusmesh.OracleQhull)
	app.Flag("qhull", "Path of the qhull program.").StringVar(&opts.qhullPath)
	app.Flag("plot", "Output mesh plot (PNG).").StringVar(&opts.plot)
	app.Flag("svg", "Output mesh plot (SVG).").StringVar(&opts.svg)
	app.Flag("no-show", "Do not plot anything.").BoolVar(&opts.noShow)
	app.Flag("name", "Run name, used for the logger and the default plot file.").Default(petname.Generate(2, "-")).StringVar(&opts.name)
	app.Flag("debug", "Debug logging.").BoolVar(&opts.debug)

	setFlags, err := parse(app, os.Args[1:])
	app.FatalIfError(err, "")

	logger, err := logging.NewLogger(opts.name, opts.debug)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync()

	if err := run(opts, setFlags, logger); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
}

// Parses the arguments and returns which flags were given explicitly, so they
// can take precedence over the config file.
func parse(app *kingpin.Application, args []string) (map[string]bool, error) {
	ctx, err := app.ParseContext(args)
	if err != nil {
		return nil, err
	}
	setFlags := map[string]bool{}
	for _, element := range ctx.Elements {
		if flag, ok := element.Clause.(*kingpin.FlagClause); ok {
			setFlags[flag.Model().Name] = true
		}
	}
	_, err = app.Parse(args)
	return setFlags, err
}

func buildConfig(opts options, setFlags map[string]bool) (annulusmesh.Config, error) {
	cfg := annulusmesh.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = annulusmesh.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	override := func(flag string, apply func()) {
		if opts.configPath == "" || setFlags[flag] {
			apply()
		}
	}
	override("inner", func() { cfg.InnerRadius = opts.inner })
	override("dist", func() { cfg.MinDist = opts.dist })
	override("ratio", func() { cfg.BoundaryRatio = opts.ratio })
	override("sweeps", func() { cfg.Sweeps = opts.sweeps })
	override("eps", func() { cfg.Epsilon = opts.epsilon })
	override("seed", func() { cfg.Seed = opts.seed })
	override("oracle", func() { cfg.Oracle = opts.oracle })
	if opts.qhullPath != "" {
		cfg.QhullPath = opts.qhullPath
	}
	return cfg, cfg.Validate()
}

func run(opts options, setFlags map[string]bool, logger *zap.Logger) error {
	cfg, err := buildConfig(opts, setFlags)
	if err != nil {
		return err
	}

	mesh, err := annulusmesh.Generate(cfg, nil, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d nodes\n", aurora.Green(len(mesh.Points)))
	fmt.Printf("Delaunay triangulation has %d triangles\n", aurora.Green(len(mesh.Faces)))

	if opts.noShow {
		return nil
	}

	renderOpts := render.Options{NumFixed: mesh.NumFixed}
	if opts.svg != "" {
		f, err := os.Create(opts.svg)
		if err != nil {
			return err
		}
		render.SVG(f, mesh.Points, mesh.Faces, renderOpts)
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote svg plot", zap.String("path", opts.svg))
	}

	// Without a plot file, show the mesh in the terminal.
	plot := opts.plot
	show := plot == ""
	if show {
		plot = filepath.Join(os.TempDir(), strings.ToLower(opts.name)+".png")
	}
	if err := render.PNG(plot, mesh.Points, mesh.Faces, renderOpts); err != nil {
		return err
	}
	logger.Info("wrote plot", zap.String("path", plot))
	if show {
		render.Preview(plot, os.Stdout)
	}
	return nil
}
