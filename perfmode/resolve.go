package main

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// controller carries everything an invocation needs to touch the
// hardware. root is prepended to every control file path.
type controller struct {
	root  string
	probe prober
	log   zerolog.Logger
}

func newController(root string, p prober, log zerolog.Logger) *controller {
	return &controller{root: root, probe: p, log: log}
}

func (c *controller) path(f ControlFile) string {
	return filepath.Join(c.root, f.Path())
}

// resolve picks the control file to act on. The first candidate that
// passes the access check for the direction of op wins.
func (c *controller) resolve(o Operator, op Operation) (ControlFile, error) {
	files := candidates(o)
	if len(files) == 0 {
		return 0, errInvalidArgFunc
	}
	for i, f := range files {
		if c.accessible(c.path(f), op) {
			if i > 0 {
				c.log.Debug().Str("operator", o.String()).Str("path", f.Path()).Msg("using fallback driver")
			}
			return f, nil
		}
	}
	return 0, errNoPermission
}

// accessible reports whether path suits the direction of op. Reads
// require a file we cannot write to, writes one we can. When the
// writability probe fails the file is treated as read-only, so a get
// still goes ahead and a set does not.
func (c *controller) accessible(path string, op Operation) bool {
	if !c.probe.Exists(path) {
		c.log.Debug().Str("path", path).Msg("control file missing")
		return false
	}
	readOnly, err := c.probe.ReadOnly(path)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cannot determine write access; assuming read-only")
		readOnly = true
	}
	ok := readOnly
	if op != Get {
		ok = !readOnly
	}
	c.log.Debug().
		Str("path", path).
		Bool("read_only", readOnly).
		Str("operation", op.String()).
		Bool("ok", ok).
		Msg("probed control file")
	return ok
}
