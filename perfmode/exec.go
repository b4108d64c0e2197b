package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// run carries out a parsed command and returns the text to print.
func (c *controller) run(o Operator, op Operation) (string, error) {
	f, err := c.resolve(o, op)
	if err != nil {
		return "", err
	}
	if op == Get {
		return c.read(o, f)
	}
	return c.write(o, op, f)
}

func (c *controller) write(o Operator, op Operation, f ControlFile) (msg string, err error) {
	b, err := encode(o, op)
	if err != nil {
		return "", err
	}
	path := c.path(f)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("open for write failed")
		return "", errBadFilePointer
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			c.log.Debug().Err(cerr).Str("path", path).Msg("close after write failed")
			msg, err = "", errFileWrite
		}
	}()
	if _, err := file.Write([]byte{b}); err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("write failed")
		return "", errFileWrite
	}
	c.log.Debug().Str("path", path).Str("value", string(b)).Msg("wrote control file")
	return fmt.Sprintf("%s set to %s", o, op), nil
}

func (c *controller) read(o Operator, f ControlFile) (string, error) {
	path := c.path(f)
	file, err := os.Open(path)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("open for read failed")
		return "", errBadFilePointer
	}
	defer file.Close()
	b, err := io.ReadAll(file)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("read failed")
		return "", errBadFilePointer
	}
	content := strings.TrimSpace(string(b))
	c.log.Debug().Str("path", path).Str("value", content).Msg("read control file")
	return decode(o, content)
}
