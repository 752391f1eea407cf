package oracle

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/osuushi/annulusmesh/advanced"
	"github.com/pkg/errors"
)

// Qhull runs the qhull program (http://qhull.org/) as a child process, asking
// for the Delaunay triangulation ("d") as vertex indices ("i").
type Qhull struct {
	// Program to run. Empty means "qhull" on the PATH.
	Path string
}

func (q Qhull) Triangulate(points []advanced.Point) ([]advanced.Face, error) {
	path := q.Path
	if path == "" {
		path = "qhull"
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		return nil, errors.Wrapf(advanced.ErrOracleUnavailable, "%s: %v", path, err)
	}

	var stdin, stdout, stderr bytes.Buffer
	if err := writeQhullInput(&stdin, points); err != nil {
		return nil, errors.Wrapf(advanced.ErrOracleFailure, "writing qhull input: %v", err)
	}
	cmd := exec.Command(bin, "d", "i")
	cmd.Stdin = &stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, errors.Wrapf(advanced.ErrOracleFailure, "%s exited with %d: %s",
				path, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, errors.Wrapf(advanced.ErrOracleUnavailable, "running %s: %v", path, err)
	}
	return parseQhullOutput(&stdout, len(points))
}

// The input is the dimension, the point count, then one point per line.
func writeQhullInput(w io.Writer, points []advanced.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "2\n%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "%s %s\n", strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return bw.Flush()
}

// The output is the facet count, then the vertex indices of one facet per line.
// Anything that doesn't add up is an oracle failure.
func parseQhullOutput(r io.Reader, n int) ([]advanced.Face, error) {
	scanner := bufio.NewScanner(r)
	declared := -1
	var faces []advanced.Face
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if declared < 0 {
			count, err := strconv.Atoi(text)
			if err != nil || count < 0 {
				return nil, errors.Wrapf(advanced.ErrOracleFailure, "line %d: bad facet count %q", line, text)
			}
			declared = count
			continue
		}

		fields := strings.Fields(text)
		face := make(advanced.Face, len(fields))
		for k, field := range fields {
			i, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(advanced.ErrOracleFailure, "line %d: bad vertex index %q", line, field)
			}
			if i < 0 || i >= n {
				return nil, errors.Wrapf(advanced.ErrOracleFailure, "line %d: vertex index %d outside of %d points", line, i, n)
			}
			face[k] = i
		}
		if len(face) < 3 {
			return nil, errors.Wrapf(advanced.ErrOracleFailure, "line %d: facet has %d vertices", line, len(face))
		}
		faces = append(faces, face)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(advanced.ErrOracleFailure, "reading qhull output: %v", err)
	}
	if declared < 0 {
		return nil, errors.Wrap(advanced.ErrOracleFailure, "qhull produced no output")
	}
	if declared != len(faces) {
		return nil, errors.Wrapf(advanced.ErrOracleFailure, "qhull declared %d facets but listed %d", declared, len(faces))
	}
	return faces, nil
}
