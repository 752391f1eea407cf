package annulusmesh

import (
	"bytes"
	"os"

	"github.com/osuushi/annulusmesh/advanced"
	"github.com/osuushi/annulusmesh/oracle"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The annulus always has unit outer radius; scale the result for other sizes.
const OuterRadius = 1.0

const (
	OracleQuickHull = "quickhull"
	OracleQhull     = "qhull"
)

type Config struct {
	// Minimum distance between points, which is also the target edge length.
	MinDist     float64 `yaml:"min_dist"`
	InnerRadius float64 `yaml:"inner_radius"`
	// Boundary vertices per unit of arc, relative to 1/MinDist.
	BoundaryRatio float64 `yaml:"boundary_ratio"`
	// Candidates tried around each point while sampling.
	Attempts int     `yaml:"attempts"`
	Sweeps   int     `yaml:"sweeps"`
	Epsilon  float64 `yaml:"epsilon"`
	Seed     uint64  `yaml:"seed"`
	// Which triangulation oracle to use: "quickhull" or "qhull".
	Oracle    string `yaml:"oracle"`
	QhullPath string `yaml:"qhull_path"`
}

func DefaultConfig() Config {
	return Config{
		MinDist:       0.2,
		InnerRadius:   0.2,
		BoundaryRatio: 0.7,
		Attempts:      advanced.DefaultAttempts,
		Sweeps:        advanced.DefaultSweeps,
		Epsilon:       advanced.DefaultEpsilon,
		Seed:          0,
		Oracle:        OracleQuickHull,
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are an error,
// so a typo doesn't silently leave a default in place.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(advanced.ErrInvalidConfiguration, "parsing config %s: %v", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !(c.MinDist > 0) {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "min_dist must be positive, got %v", c.MinDist)
	}
	if !(0 < c.InnerRadius && c.InnerRadius < OuterRadius) {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "inner_radius must be in (0, %v), got %v", OuterRadius, c.InnerRadius)
	}
	if !(c.BoundaryRatio > 0) {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "boundary_ratio must be positive, got %v", c.BoundaryRatio)
	}
	if c.Attempts <= 0 {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "attempts must be positive, got %d", c.Attempts)
	}
	if c.Sweeps <= 0 {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "sweeps must be positive, got %d", c.Sweeps)
	}
	if !(c.Epsilon > 0) {
		return errors.Wrapf(advanced.ErrInvalidConfiguration, "epsilon must be positive, got %v", c.Epsilon)
	}
	if _, err := c.Triangulator(); err != nil {
		return err
	}
	return nil
}

// Triangulator returns the oracle named by the config.
func (c Config) Triangulator() (oracle.Triangulator, error) {
	switch c.Oracle {
	case OracleQuickHull, "":
		return oracle.QuickHull{}, nil
	case OracleQhull:
		return oracle.Qhull{Path: c.QhullPath}, nil
	}
	return nil, errors.Wrapf(advanced.ErrInvalidConfiguration, "unknown oracle %q", c.Oracle)
}
