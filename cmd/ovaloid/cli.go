package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/ovaloid/vcv"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(logger zerolog.Logger) *cli.App {
	app := &cli.App{
		Name:    "ovaloid",
		Usage:   "Variance-covariance object synthesizer",
		Version: Version,
		Commands: []*cli.Command{
			buildCmd(logger),
			batchCmd(logger),
			studyCmd(logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// objectPayload is the JSON shape of one built object.
type objectPayload struct {
	Name       string      `json:"name,omitempty"`
	Dimensions int         `json:"dimensions"`
	Shape      float64     `json:"shape"`
	Covariance float64     `json:"covariance"`
	Recovered  float64     `json:"recovered_roundness"`
	Matrix     [][]float64 `json:"matrix"`
	Location   []float64   `json:"location"`
	SemiAxes   []float64   `json:"semi_axes,omitempty"`
}

// studyPoint is one (dimension, requested, recovered) sample of the
// roundness recovery study.
type studyPoint struct {
	Dimensions int     `json:"dimensions"`
	Requested  float64 `json:"requested"`
	Recovered  float64 `json:"recovered"`
}

// buildCmd creates the build command: one object from flags.
func buildCmd(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build a single VCV object from shape/covariance/size/position",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "dimensions", Aliases: []string{"d"}, Value: vcv.DefaultDimensions, Usage: "Dimensionality D >= 1"},
			&cli.Float64Flag{Name: "shape", Aliases: []string{"s"}, Value: vcv.DefaultShape, Usage: "Roundness in [0,1]: 1 sphere, 0 line"},
			&cli.Float64Flag{Name: "covariance", Aliases: []string{"c"}, Value: vcv.DefaultCovariance, Usage: "Shared pairwise covariance, |C| < 1"},
			&cli.Float64Flag{Name: "size", Value: vcv.DefaultSize, Usage: "Uniform axis scale z > 0"},
			&cli.StringFlag{Name: "sizes", Usage: "Per-dimension scales, comma-separated (overrides --size)"},
			&cli.Float64Flag{Name: "position", Value: vcv.DefaultPosition, Usage: "Center coordinate, broadcast to all axes"},
			&cli.StringFlag{Name: "positions", Usage: "Per-dimension center, comma-separated (overrides --position)"},
			&cli.Float64Flag{Name: "min-thickness", Value: vcv.DefaultMinThickness, Usage: "Axis floor in [0,1)"},
			&cli.BoolFlag{Name: "extrapolate", Usage: "Allow shape outside [0,1]"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Object label"},
			&cli.BoolFlag{Name: "axes", Usage: "Include eigen semi-axes in the output"},
			&cli.StringFlag{Name: "db", Usage: "SQLite file to persist the run into"},
		},
		Action: func(c *cli.Context) error {
			params, err := paramsFromFlags(c)
			if err != nil {
				return outputError(err)
			}
			obj, err := params.Build()
			if err != nil {
				return outputError(err)
			}
			payload, err := buildPayload(params, obj, c.Bool("axes"))
			if err != nil {
				return outputError(err)
			}
			if path := c.String("db"); path != "" {
				if err = persistObjects(logger, path, "build", []objectPayload{payload}); err != nil {
					return outputError(err)
				}
			}
			return outputJSON(payload)
		},
	}
}

// batchCmd creates the batch command: many objects from a CSV parameter
// table, order preserved.
func batchCmd(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Build VCV objects from a CSV parameter table (stdin or --file)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: "-", Usage: "CSV path, or - for stdin"},
			&cli.BoolFlag{Name: "axes", Usage: "Include eigen semi-axes in the output"},
			&cli.StringFlag{Name: "db", Usage: "SQLite file to persist the run into"},
		},
		Action: func(c *cli.Context) error {
			var (
				src  io.Reader
				path = c.String("file")
			)
			if path == "-" {
				src = os.Stdin
			} else {
				f, err := os.Open(path)
				if err != nil {
					return outputError(fmt.Errorf("open %s: %w", path, err))
				}
				defer f.Close()
				src = f
			}

			rows, err := readCSVParams(src)
			if err != nil {
				return outputError(err)
			}
			objs, err := vcv.BuildBatch(rows)
			if err != nil {
				return outputError(err)
			}

			payloads := make([]objectPayload, len(objs))
			for i := range objs {
				if payloads[i], err = buildPayload(rows[i], objs[i], c.Bool("axes")); err != nil {
					return outputError(err)
				}
			}
			if db := c.String("db"); db != "" {
				if err = persistObjects(logger, db, "batch", payloads); err != nil {
					return outputError(err)
				}
			}
			return outputJSON(payloads)
		},
	}
}

// studyCmd creates the study command: the requested-vs-recovered roundness
// sweep across dimensionalities.
func studyCmd(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "study",
		Usage: "Sweep shapes per dimensionality and report recovered roundness",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dimensions", Aliases: []string{"d"}, Value: "2,5,20,100", Usage: "Dimensionalities to sweep, comma-separated"},
			&cli.IntFlag{Name: "steps", Value: 21, Usage: "Shape grid points over [0,1], >= 2"},
			&cli.Float64Flag{Name: "covariance", Aliases: []string{"c"}, Value: vcv.DefaultCovariance, Usage: "Shared pairwise covariance, |C| < 1"},
			&cli.Float64Flag{Name: "min-thickness", Value: vcv.DefaultMinThickness, Usage: "Axis floor in [0,1)"},
			&cli.StringFlag{Name: "db", Usage: "SQLite file to persist the run into"},
		},
		Action: func(c *cli.Context) error {
			dims, err := parseInts(c.String("dimensions"), ",")
			if err != nil {
				return outputError(fmt.Errorf("dimensions: %w", err))
			}
			steps := c.Int("steps")
			if steps < 2 {
				return outputError(fmt.Errorf("steps must be >= 2, got %d", steps))
			}

			points := make([]studyPoint, 0, len(dims)*steps)
			var (
				shape float64
				obj   *vcv.Object
				rec   float64
			)
			for _, d := range dims {
				for i := 0; i < steps; i++ {
					shape = float64(i) / float64(steps-1)
					obj, err = vcv.Build(
						vcv.WithDimensions(d),
						vcv.WithShape(shape),
						vcv.WithCovariance(c.Float64("covariance")),
						vcv.WithMinThickness(c.Float64("min-thickness")),
					)
					if err != nil {
						return outputError(fmt.Errorf("d=%d shape=%.3f: %w", d, shape, err))
					}
					if rec, err = obj.RecoveredRoundness(); err != nil {
						return outputError(err)
					}
					points = append(points, studyPoint{Dimensions: d, Requested: shape, Recovered: rec})
				}
			}
			if db := c.String("db"); db != "" {
				if err = persistStudy(logger, db, points); err != nil {
					return outputError(err)
				}
			}
			return outputJSON(points)
		},
	}
}

// Helper functions

// paramsFromFlags maps the build command flags onto a parameter row.
func paramsFromFlags(c *cli.Context) (vcv.Params, error) {
	p := vcv.DefaultParams()
	p.Name = c.String("name")
	p.Shape = c.Float64("shape")
	p.Covariance = c.Float64("covariance")
	p.Dimensions = c.Int("dimensions")
	p.Size = c.Float64("size")
	p.Position = c.Float64("position")
	p.MinThickness = c.Float64("min-thickness")
	p.Extrapolate = c.Bool("extrapolate")

	var err error
	if s := c.String("sizes"); s != "" {
		if p.Sizes, err = parseFloats(s, ","); err != nil {
			return p, fmt.Errorf("sizes: %w", err)
		}
	}
	if s := c.String("positions"); s != "" {
		if p.Positions, err = parseFloats(s, ","); err != nil {
			return p, fmt.Errorf("positions: %w", err)
		}
	}
	return p, nil
}

// buildPayload flattens a built object into its JSON form, pairing it with
// the parameters that produced it.
func buildPayload(p vcv.Params, obj *vcv.Object, withAxes bool) (objectPayload, error) {
	rec, err := obj.RecoveredRoundness()
	if err != nil {
		return objectPayload{}, err
	}
	n := obj.Dim()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = obj.At(i, j)
		}
	}
	payload := objectPayload{
		Name:       obj.Name(),
		Dimensions: n,
		Shape:      p.Shape,
		Covariance: p.Covariance,
		Recovered:  rec,
		Matrix:     rows,
		Location:   obj.Location(),
	}
	if withAxes {
		ax, err := obj.MajorAxes()
		if err != nil {
			return objectPayload{}, err
		}
		payload.SemiAxes = ax.SemiAxes()
	}
	return payload, nil
}

// readCSVParams decodes a parameter table. The header row names the
// columns; unknown columns error, missing ones keep their defaults.
// Vector cells (sizes, positions) use ; between entries.
func readCSVParams(r io.Reader) ([]vcv.Params, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: header row required")
	}

	header := records[0]
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
		switch cols[i] {
		case "name", "shape", "covariance", "dimensions", "size", "sizes",
			"position", "positions", "min_thickness", "extrapolate":
		default:
			return nil, fmt.Errorf("unknown column %q", header[i])
		}
	}

	rows := make([]vcv.Params, 0, len(records)-1)
	var (
		p    vcv.Params
		cell string
	)
	for rowIdx, record := range records[1:] {
		p = vcv.DefaultParams()
		for i, col := range cols {
			if i >= len(record) {
				break
			}
			cell = strings.TrimSpace(record[i])
			if cell == "" {
				continue
			}
			if err = setParamField(&p, col, cell); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", rowIdx+1, col, err)
			}
		}
		rows = append(rows, p)
	}
	return rows, nil
}

// setParamField parses one CSV cell into its Params field.
func setParamField(p *vcv.Params, col, cell string) error {
	var err error
	switch col {
	case "name":
		p.Name = cell
	case "shape":
		p.Shape, err = strconv.ParseFloat(cell, 64)
	case "covariance":
		p.Covariance, err = strconv.ParseFloat(cell, 64)
	case "dimensions":
		p.Dimensions, err = strconv.Atoi(cell)
	case "size":
		p.Size, err = strconv.ParseFloat(cell, 64)
	case "sizes":
		p.Sizes, err = parseFloats(cell, ";")
	case "position":
		p.Position, err = strconv.ParseFloat(cell, 64)
	case "positions":
		p.Positions, err = parseFloats(cell, ";")
	case "min_thickness":
		p.MinThickness, err = strconv.ParseFloat(cell, 64)
	case "extrapolate":
		p.Extrapolate, err = strconv.ParseBool(cell)
	}
	return err
}

// parseFloats splits s on sep and parses each part as float64.
func parseFloats(s, sep string) ([]float64, error) {
	parts := strings.Split(s, sep)
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}

// parseInts splits s on sep and parses each part as int.
func parseInts(s, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	return cli.Exit(err.Error(), 1)
}
